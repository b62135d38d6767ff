package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest input to register an employee.
type CreateEmployeeRequest struct {
	Code        string          `json:"code" validate:"required,min=1,max=20"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Designation string          `json:"designation" validate:"omitempty,max=100"`
	DailyWage   decimal.Decimal `json:"daily_wage" validate:"required"`
	JoiningDate time.Time       `json:"joining_date" validate:"required"`
}

// UpdateEmployeeRequest partial update of an employee.
type UpdateEmployeeRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Designation *string          `json:"designation" validate:"omitempty,max=100"`
	DailyWage   *decimal.Decimal `json:"daily_wage"`
	IsActive    *bool            `json:"is_active"`
}

// EmployeeResponse employee output.
type EmployeeResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Designation string          `json:"designation,omitempty"`
	DailyWage   decimal.Decimal `json:"daily_wage"`
	JoiningDate time.Time       `json:"joining_date"`
	IsActive    bool            `json:"is_active"`
}

// PayrollLineInput attendance and adjustments for one employee in a run.
type PayrollLineInput struct {
	EmployeeID  string          `json:"employee_id" validate:"required,uuid"`
	DaysPresent int             `json:"days_present" validate:"min=0,max=31"`
	Incentive   decimal.Decimal `json:"incentive"`
	Advances    decimal.Decimal `json:"advances"`
}

// RunPayrollRequest input to finalize one month for a set of employees.
// The whole run commits or none of it does.
type RunPayrollRequest struct {
	Year  int                `json:"year" validate:"required,min=2020,max=2100"`
	Month int                `json:"month" validate:"required,min=1,max=12"`
	Lines []PayrollLineInput `json:"lines" validate:"required,min=1,dive"`
}

// PayrollEntryResponse one finalized pay line.
type PayrollEntryResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	DaysPresent  int             `json:"days_present"`
	DailyWage    decimal.Decimal `json:"daily_wage"`
	Incentive    decimal.Decimal `json:"incentive"`
	Advances     decimal.Decimal `json:"advances"`
	GrossPay     decimal.Decimal `json:"gross_pay"`
	NetPay       decimal.Decimal `json:"net_pay"`
	FinalizedAt  time.Time       `json:"finalized_at"`
}

// RunPayrollResponse the finalized month.
type RunPayrollResponse struct {
	Year    int                    `json:"year"`
	Month   int                    `json:"month"`
	Entries []PayrollEntryResponse `json:"entries"`
}
