// Package payroll implements the monthly wage run for daily-wage staff.
// A run is transactional: the whole month commits or none of it does.
package payroll

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jalveda/ops-api/internal/application/dto"
	"github.com/jalveda/ops-api/internal/domain"
	"github.com/jalveda/ops-api/internal/domain/entity"
	"github.com/jalveda/ops-api/internal/domain/repository"
)

// TxRunner executes a callback with repositories bound to one database
// transaction.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		employeeRepo repository.EmployeeRepository,
		payrollRepo repository.PayrollRepository,
	) error) error
}

// PayrollUseCase employee CRUD plus the monthly run.
type PayrollUseCase struct {
	employees repository.EmployeeRepository
	entries   repository.PayrollRepository
	tx        TxRunner
}

// NewPayrollUseCase builds the use case.
func NewPayrollUseCase(
	employees repository.EmployeeRepository,
	entries repository.PayrollRepository,
	tx TxRunner,
) *PayrollUseCase {
	return &PayrollUseCase{employees: employees, entries: entries, tx: tx}
}

// CreateEmployee registers an employee.
func (uc *PayrollUseCase) CreateEmployee(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	existing, _ := uc.employees.GetByCode(ctx, in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.DailyWage.IsNegative() || in.DailyWage.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	e := &entity.Employee{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Name:        in.Name,
		Designation: in.Designation,
		DailyWage:   in.DailyWage,
		JoiningDate: in.JoiningDate,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.employees.Create(ctx, e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// UpdateEmployee applies a partial update. Wage changes affect future runs
// only; finalized entries keep the wage they were computed with.
func (uc *PayrollUseCase) UpdateEmployee(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Designation != nil {
		e.Designation = *in.Designation
	}
	if in.DailyWage != nil {
		if in.DailyWage.IsNegative() || in.DailyWage.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		e.DailyWage = *in.DailyWage
	}
	if in.IsActive != nil {
		e.IsActive = *in.IsActive
	}
	e.UpdatedAt = time.Now()
	if err := uc.employees.Update(ctx, e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// ListEmployees returns employees with pagination.
func (uc *PayrollUseCase) ListEmployees(ctx context.Context, page dto.PageRequest) ([]*dto.EmployeeResponse, error) {
	page.DefaultPage()
	list, err := uc.employees.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, len(list))
	for i, e := range list {
		out[i] = toEmployeeResponse(e)
	}
	return out, nil
}

// RunMonth finalizes one month of pay for the given attendance lines inside
// a single transaction. NetPay = daysPresent × dailyWage + incentive −
// advances; the wage is snapshotted into the entry. Fails with ErrConflict
// when any employee's month was already finalized.
func (uc *PayrollUseCase) RunMonth(ctx context.Context, in dto.RunPayrollRequest) (*dto.RunPayrollResponse, error) {
	if in.Month < 1 || in.Month > 12 || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	month := time.Month(in.Month)
	now := time.Now()

	resp := &dto.RunPayrollResponse{Year: in.Year, Month: in.Month}
	err := uc.tx.Run(ctx, func(
		employeeRepo repository.EmployeeRepository,
		payrollRepo repository.PayrollRepository,
	) error {
		for _, line := range in.Lines {
			e, err := employeeRepo.GetByID(ctx, line.EmployeeID)
			if err != nil {
				return err
			}
			if e == nil {
				return domain.ErrNotFound
			}
			exists, err := payrollRepo.ExistsForMonth(ctx, e.ID, in.Year, month)
			if err != nil {
				return err
			}
			if exists {
				return domain.ErrConflict
			}
			if line.DaysPresent < 0 || line.Incentive.IsNegative() || line.Advances.IsNegative() {
				return domain.ErrInvalidInput
			}

			gross := e.DailyWage.Mul(decimal.NewFromInt(int64(line.DaysPresent)))
			net := gross.Add(line.Incentive).Sub(line.Advances)
			entry := &entity.PayrollEntry{
				ID:          uuid.New().String(),
				EmployeeID:  e.ID,
				Year:        in.Year,
				Month:       month,
				DaysPresent: line.DaysPresent,
				DailyWage:   e.DailyWage,
				Incentive:   line.Incentive,
				Advances:    line.Advances,
				GrossPay:    gross,
				NetPay:      net,
				FinalizedAt: now,
			}
			if err := payrollRepo.Create(ctx, entry); err != nil {
				return err
			}
			resp.Entries = append(resp.Entries, toEntryResponse(entry, e.Name))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListMonth returns the finalized entries of one month.
func (uc *PayrollUseCase) ListMonth(ctx context.Context, year, month int) ([]*dto.PayrollEntryResponse, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidInput
	}
	entries, err := uc.entries.ListByMonth(ctx, year, time.Month(month))
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PayrollEntryResponse, len(entries))
	for i, e := range entries {
		resp := toEntryResponse(e, "")
		out[i] = &resp
	}
	return out, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:          e.ID,
		Code:        e.Code,
		Name:        e.Name,
		Designation: e.Designation,
		DailyWage:   e.DailyWage,
		JoiningDate: e.JoiningDate,
		IsActive:    e.IsActive,
	}
}

func toEntryResponse(e *entity.PayrollEntry, employeeName string) dto.PayrollEntryResponse {
	return dto.PayrollEntryResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		EmployeeName: employeeName,
		Year:         e.Year,
		Month:        int(e.Month),
		DaysPresent:  e.DaysPresent,
		DailyWage:    e.DailyWage,
		Incentive:    e.Incentive,
		Advances:     e.Advances,
		GrossPay:     e.GrossPay,
		NetPay:       e.NetPay,
		FinalizedAt:  e.FinalizedAt,
	}
}
