package repository

import (
	"context"
	"time"

	"github.com/jalveda/ops-api/internal/domain/entity"
)

// EmployeeRepository defines the persistence port for Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	GetByCode(ctx context.Context, code string) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	ListActive(ctx context.Context) ([]*entity.Employee, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Employee, error)
}

// PayrollRepository defines the persistence port for PayrollEntry.
type PayrollRepository interface {
	Create(ctx context.Context, entry *entity.PayrollEntry) error
	// ExistsForMonth reports whether a finalized run already covers
	// (employee, year, month); a month is finalized at most once.
	ExistsForMonth(ctx context.Context, employeeID string, year int, month time.Month) (bool, error)
	ListByMonth(ctx context.Context, year int, month time.Month) ([]*entity.PayrollEntry, error)
}
