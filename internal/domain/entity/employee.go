package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a payroll-relevant worker (plant, van, office).
type Employee struct {
	ID          string
	Code        string // badge / employee number, unique
	Name        string
	Designation string
	DailyWage   decimal.Decimal
	JoiningDate time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PayrollEntry is one employee's computed pay for a month.
// NetPay = DaysPresent × DailyWage + Incentive − Advances.
type PayrollEntry struct {
	ID          string
	EmployeeID  string
	Year        int
	Month       time.Month
	DaysPresent int
	DailyWage   decimal.Decimal // wage at the time the run was finalized
	Incentive   decimal.Decimal
	Advances    decimal.Decimal
	GrossPay    decimal.Decimal
	NetPay      decimal.Decimal
	FinalizedAt time.Time
}
