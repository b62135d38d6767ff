package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalveda/ops-api/internal/application/dto"
	"github.com/jalveda/ops-api/internal/domain"
	"github.com/jalveda/ops-api/internal/domain/entity"
	"github.com/jalveda/ops-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeEmployeeRepo struct {
	byID map[string]*entity.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	return f.byID[id], nil
}

func (f *fakeEmployeeRepo) GetByCode(_ context.Context, code string) (*entity.Employee, error) {
	for _, e := range f.byID {
		if e.Code == code {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range f.byID {
		if e.IsActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _, _ int) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range f.byID {
		out = append(out, e)
	}
	return out, nil
}

type monthKey struct {
	employeeID string
	year       int
	month      time.Month
}

type fakePayrollRepo struct {
	entries map[monthKey]*entity.PayrollEntry
}

func (f *fakePayrollRepo) Create(_ context.Context, e *entity.PayrollEntry) error {
	k := monthKey{e.EmployeeID, e.Year, e.Month}
	if _, ok := f.entries[k]; ok {
		return domain.ErrConflict
	}
	f.entries[k] = e
	return nil
}

func (f *fakePayrollRepo) ExistsForMonth(_ context.Context, employeeID string, year int, month time.Month) (bool, error) {
	_, ok := f.entries[monthKey{employeeID, year, month}]
	return ok, nil
}

func (f *fakePayrollRepo) ListByMonth(_ context.Context, year int, month time.Month) ([]*entity.PayrollEntry, error) {
	var out []*entity.PayrollEntry
	for k, e := range f.entries {
		if k.year == year && k.month == month {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakeTxRunner hands the same repos to the callback and discards all writes
// of the run when it returns an error, mirroring a rolled-back transaction.
type fakeTxRunner struct {
	employees *fakeEmployeeRepo
	entries   *fakePayrollRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.EmployeeRepository, repository.PayrollRepository) error) error {
	snapshot := make(map[monthKey]*entity.PayrollEntry, len(f.entries.entries))
	for k, v := range f.entries.entries {
		snapshot[k] = v
	}
	if err := fn(f.employees, f.entries); err != nil {
		f.entries.entries = snapshot
		return err
	}
	return nil
}

func fixture() (*PayrollUseCase, *fakeEmployeeRepo, *fakePayrollRepo) {
	employees := &fakeEmployeeRepo{byID: map[string]*entity.Employee{
		"e1": {
			ID: "e1", Code: "EMP-001", Name: "Ravi", Designation: "operator",
			DailyWage: decimal.NewFromInt(500), IsActive: true,
		},
		"e2": {
			ID: "e2", Code: "EMP-002", Name: "Meena", Designation: "driver",
			DailyWage: decimal.NewFromInt(650), IsActive: true,
		},
	}}
	entries := &fakePayrollRepo{entries: map[monthKey]*entity.PayrollEntry{}}
	tx := &fakeTxRunner{employees: employees, entries: entries}
	return NewPayrollUseCase(employees, entries, tx), employees, entries
}

// ──────────────────────────────────────────────────────────────────────────────
// RunMonth
// ──────────────────────────────────────────────────────────────────────────────

func TestRunMonth_ComputesNetPay(t *testing.T) {
	uc, _, _ := fixture()

	out, err := uc.RunMonth(context.Background(), dto.RunPayrollRequest{
		Year: 2026, Month: 8,
		Lines: []dto.PayrollLineInput{
			{
				EmployeeID:  "e1",
				DaysPresent: 26,
				Incentive:   decimal.NewFromInt(1000),
				Advances:    decimal.NewFromInt(2500),
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Entries, 1)

	e := out.Entries[0]
	// 26 × 500 = 13000 gross; 13000 + 1000 − 2500 = 11500 net
	assert.True(t, e.GrossPay.Equal(decimal.NewFromInt(13000)), "gross = %s", e.GrossPay)
	assert.True(t, e.NetPay.Equal(decimal.NewFromInt(11500)), "net = %s", e.NetPay)
	assert.True(t, e.DailyWage.Equal(decimal.NewFromInt(500)), "wage must be snapshotted")
	assert.Equal(t, "Ravi", e.EmployeeName)
}

func TestRunMonth_DuplicateMonthAbortsWholeRun(t *testing.T) {
	uc, _, entries := fixture()

	_, err := uc.RunMonth(context.Background(), dto.RunPayrollRequest{
		Year: 2026, Month: 8,
		Lines: []dto.PayrollLineInput{{EmployeeID: "e2", DaysPresent: 20}},
	})
	require.NoError(t, err)

	// e1 is fine, e2 is already finalized: nothing of this run may persist.
	_, err = uc.RunMonth(context.Background(), dto.RunPayrollRequest{
		Year: 2026, Month: 8,
		Lines: []dto.PayrollLineInput{
			{EmployeeID: "e1", DaysPresent: 26},
			{EmployeeID: "e2", DaysPresent: 22},
		},
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, entries.entries, 1, "the failed run must leave no partial entries")
	_, e1Written := entries.entries[monthKey{"e1", 2026, time.August}]
	assert.False(t, e1Written)
}

func TestRunMonth_UnknownEmployeeAborts(t *testing.T) {
	uc, _, entries := fixture()

	_, err := uc.RunMonth(context.Background(), dto.RunPayrollRequest{
		Year: 2026, Month: 8,
		Lines: []dto.PayrollLineInput{
			{EmployeeID: "e1", DaysPresent: 26},
			{EmployeeID: "ghost", DaysPresent: 10},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, entries.entries)
}

func TestRunMonth_NegativeAdjustmentsRejected(t *testing.T) {
	uc, _, _ := fixture()

	_, err := uc.RunMonth(context.Background(), dto.RunPayrollRequest{
		Year: 2026, Month: 8,
		Lines: []dto.PayrollLineInput{
			{EmployeeID: "e1", DaysPresent: 26, Advances: decimal.NewFromInt(-1)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunMonth_InvalidMonthRejected(t *testing.T) {
	uc, _, _ := fixture()

	_, err := uc.RunMonth(context.Background(), dto.RunPayrollRequest{
		Year: 2026, Month: 13,
		Lines: []dto.PayrollLineInput{{EmployeeID: "e1", DaysPresent: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Employee CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateEmployee_DuplicateCodeRejected(t *testing.T) {
	uc, _, _ := fixture()

	_, err := uc.CreateEmployee(context.Background(), dto.CreateEmployeeRequest{
		Code: "EMP-001", Name: "Someone", DailyWage: decimal.NewFromInt(400),
		JoiningDate: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateEmployee_WageMustBePositive(t *testing.T) {
	uc, _, _ := fixture()

	_, err := uc.CreateEmployee(context.Background(), dto.CreateEmployeeRequest{
		Code: "EMP-003", Name: "Someone", DailyWage: decimal.Zero,
		JoiningDate: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
