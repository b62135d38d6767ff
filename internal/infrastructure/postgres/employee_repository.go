package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jalveda/ops-api/internal/domain"
	"github.com/jalveda/ops-api/internal/domain/entity"
	"github.com/jalveda/ops-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implements EmployeeRepository on PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository builds the persistence adapter for employees.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, code, name, designation, daily_wage, joining_date, is_active, created_at, updated_at`

// Create persists a new employee. Code must be unique.
func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	query := `
		INSERT INTO employees (id, code, name, designation, daily_wage, joining_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		employee.ID, employee.Code, employee.Name, employee.Designation,
		employee.DailyWage, employee.JoiningDate, employee.IsActive,
		employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID fetches an employee by ID. Returns (nil, nil) when absent.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByCode fetches an employee by badge code. Returns (nil, nil) when absent.
func (r *EmployeeRepo) GetByCode(ctx context.Context, code string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE code = $1`
	return r.getOne(ctx, query, code)
}

func (r *EmployeeRepo) getOne(ctx context.Context, query string, arg any) (*entity.Employee, error) {
	var e entity.Employee
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&e.ID, &e.Code, &e.Name, &e.Designation, &e.DailyWage,
		&e.JoiningDate, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// Update rewrites an employee.
func (r *EmployeeRepo) Update(ctx context.Context, employee *entity.Employee) error {
	query := `
		UPDATE employees SET name = $2, designation = $3, daily_wage = $4, is_active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		employee.ID, employee.Name, employee.Designation, employee.DailyWage,
		employee.IsActive, employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// ListActive returns every active employee; the payroll run iterates this.
func (r *EmployeeRepo) ListActive(ctx context.Context) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE is_active = true ORDER BY code`
	return r.list(ctx, query)
}

// List returns employees with pagination.
func (r *EmployeeRepo) List(ctx context.Context, limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY code LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

func (r *EmployeeRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Code, &e.Name, &e.Designation, &e.DailyWage,
			&e.JoiningDate, &e.IsActive, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// ──────────────────────────────────────────────────────────────────────────────

var _ repository.PayrollRepository = (*PayrollRepo)(nil)

// PayrollRepo implements PayrollRepository on PostgreSQL.
type PayrollRepo struct {
	q Querier
}

// NewPayrollRepository builds the persistence adapter for payroll entries.
func NewPayrollRepository(q Querier) *PayrollRepo {
	return &PayrollRepo{q: q}
}

const payrollColumns = `id, employee_id, year, month, days_present, daily_wage, incentive, advances, gross_pay, net_pay, finalized_at`

// Create persists one finalized payroll entry.
func (r *PayrollRepo) Create(ctx context.Context, entry *entity.PayrollEntry) error {
	query := `
		INSERT INTO payroll_entries (id, employee_id, year, month, days_present, daily_wage, incentive, advances, gross_pay, net_pay, finalized_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.EmployeeID, entry.Year, int(entry.Month), entry.DaysPresent,
		entry.DailyWage, entry.Incentive, entry.Advances, entry.GrossPay,
		entry.NetPay, entry.FinalizedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert payroll entry: %w", err)
	}
	return nil
}

// ExistsForMonth reports whether a finalized entry already covers
// (employee, year, month).
func (r *PayrollRepo) ExistsForMonth(ctx context.Context, employeeID string, year int, month time.Month) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM payroll_entries WHERE employee_id = $1 AND year = $2 AND month = $3)`,
		employeeID, year, int(month),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check payroll entry: %w", err)
	}
	return exists, nil
}

// ListByMonth returns the finalized entries of one month.
func (r *PayrollRepo) ListByMonth(ctx context.Context, year int, month time.Month) ([]*entity.PayrollEntry, error) {
	query := `SELECT ` + payrollColumns + ` FROM payroll_entries
		WHERE year = $1 AND month = $2 ORDER BY employee_id`
	rows, err := r.q.Query(ctx, query, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("list payroll entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.PayrollEntry
	for rows.Next() {
		var e entity.PayrollEntry
		var monthInt int
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Year, &monthInt, &e.DaysPresent,
			&e.DailyWage, &e.Incentive, &e.Advances, &e.GrossPay, &e.NetPay, &e.FinalizedAt); err != nil {
			return nil, fmt.Errorf("scan payroll entry: %w", err)
		}
		e.Month = time.Month(monthInt)
		list = append(list, &e)
	}
	return list, rows.Err()
}
