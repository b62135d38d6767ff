package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jalveda/ops-api/internal/application/payroll"
	"github.com/jalveda/ops-api/internal/domain/repository"
)

// Ensure TxRunner implements payroll.TxRunner.
var _ payroll.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner on the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, invokes fn with repos bound to the tx and
// commits, or rolls back when fn fails. A payroll run inserts one entry per
// employee; a partial month must never be visible.
func (r *TxRunner) Run(ctx context.Context, fn func(
	employeeRepo repository.EmployeeRepository,
	payrollRepo repository.PayrollRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	employeeRepo := NewEmployeeRepository(tx)
	payrollRepo := NewPayrollRepository(tx)

	if err := fn(employeeRepo, payrollRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
