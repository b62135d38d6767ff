package scan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalveda/ops-api/internal/application/dto"
	"github.com/jalveda/ops-api/internal/domain"
	"github.com/jalveda/ops-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeScanRepo struct {
	codes  map[string]*entity.ScanCode
	events []*entity.ScanEvent
	stats  *entity.ScanStats
}

func newFakeScanRepo() *fakeScanRepo {
	return &fakeScanRepo{codes: map[string]*entity.ScanCode{}}
}

func (f *fakeScanRepo) CreateCodes(_ context.Context, codes []*entity.ScanCode) error {
	for _, c := range codes {
		f.codes[c.Code] = c
	}
	return nil
}

func (f *fakeScanRepo) GetCode(_ context.Context, code string) (*entity.ScanCode, error) {
	return f.codes[code], nil
}

func (f *fakeScanRepo) InsertEvent(_ context.Context, event *entity.ScanEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeScanRepo) Stats(_ context.Context, _, _ time.Time, _ int) (*entity.ScanStats, error) {
	return f.stats, nil
}

// fakeClaims claims in memory; optionally failing to verify that counter
// errors never break the scan response.
type fakeClaims struct {
	claimed         map[string]bool
	incrErr         error
	incrDays        int
	todayTotal      int64
	todaySuspicious int64
	countsErr       error
}

func newFakeClaims() *fakeClaims {
	return &fakeClaims{claimed: map[string]bool{}}
}

func (f *fakeClaims) ClaimFirst(_ context.Context, code string, _ time.Time) (bool, error) {
	if f.claimed[code] {
		return false, nil
	}
	f.claimed[code] = true
	return true, nil
}

func (f *fakeClaims) IncrDaily(_ context.Context, _ time.Time, _ bool) error {
	f.incrDays++
	return f.incrErr
}

func (f *fakeClaims) DailyCounts(_ context.Context, _ time.Time) (int64, int64, error) {
	if f.countsErr != nil {
		return 0, 0, f.countsErr
	}
	return f.todayTotal, f.todaySuspicious, nil
}

func seededUseCase(t *testing.T) (*ScanUseCase, *fakeScanRepo, *fakeClaims, string) {
	t.Helper()
	repo := newFakeScanRepo()
	claims := newFakeClaims()
	uc := NewScanUseCase(repo, claims)

	out, err := uc.GenerateCodes(context.Background(), dto.GenerateCodesRequest{
		ProductID: "p1",
		BatchNo:   "B-2026-08",
		Count:     3,
	})
	require.NoError(t, err)
	require.Len(t, out.Codes, 3)
	return uc, repo, claims, out.Codes[0]
}

// ──────────────────────────────────────────────────────────────────────────────
// GenerateCodes
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateCodes_CodesAreUniqueAndStored(t *testing.T) {
	_, repo, _, _ := seededUseCase(t)

	assert.Len(t, repo.codes, 3, "every generated code must be persisted")
	for code, stored := range repo.codes {
		assert.Len(t, code, 32, "codes are compact UUIDs without hyphens")
		assert.Equal(t, "B-2026-08", stored.BatchNo)
	}
}

func TestGenerateCodes_ZeroCountRejected(t *testing.T) {
	uc := NewScanUseCase(newFakeScanRepo(), newFakeClaims())
	_, err := uc.GenerateCodes(context.Background(), dto.GenerateCodesRequest{ProductID: "p1", BatchNo: "B", Count: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordScan verdicts
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordScan_FirstScanIsGenuine(t *testing.T) {
	uc, repo, _, code := seededUseCase(t)

	resp, err := uc.RecordScan(context.Background(), dto.RecordScanRequest{Code: code, Pincode: "400601"})
	require.NoError(t, err)

	assert.True(t, resp.Genuine)
	assert.True(t, resp.FirstScan)
	assert.False(t, resp.Suspicious)
	require.Len(t, repo.events, 1, "the scan event must be recorded")
	assert.Equal(t, "400601", repo.events[0].Pincode)
	assert.False(t, repo.events[0].Suspicious)
}

func TestRecordScan_RepeatScanIsSuspicious(t *testing.T) {
	uc, repo, _, code := seededUseCase(t)

	_, err := uc.RecordScan(context.Background(), dto.RecordScanRequest{Code: code})
	require.NoError(t, err)
	resp, err := uc.RecordScan(context.Background(), dto.RecordScanRequest{Code: code})
	require.NoError(t, err)

	assert.True(t, resp.Genuine, "a printed code stays genuine even when rescanned")
	assert.False(t, resp.FirstScan)
	assert.True(t, resp.Suspicious)
	assert.Contains(t, resp.Message, "already scanned")
	require.Len(t, repo.events, 2)
	assert.True(t, repo.events[1].Suspicious)
}

func TestRecordScan_UnknownCodeIsCounterfeit(t *testing.T) {
	uc, repo, _, _ := seededUseCase(t)

	resp, err := uc.RecordScan(context.Background(), dto.RecordScanRequest{Code: "never-printed"})
	require.NoError(t, err)

	assert.False(t, resp.Genuine)
	assert.True(t, resp.Suspicious)
	assert.Contains(t, resp.Message, "counterfeit")
	// Unknown codes are still recorded for the dashboard.
	require.Len(t, repo.events, 1)
	assert.True(t, repo.events[0].Suspicious)
}

func TestRecordScan_CounterFailureDoesNotBreakVerdict(t *testing.T) {
	uc, _, claims, code := seededUseCase(t)
	claims.incrErr = assert.AnError

	resp, err := uc.RecordScan(context.Background(), dto.RecordScanRequest{Code: code})
	require.NoError(t, err, "counter errors are advisory")
	assert.True(t, resp.Genuine)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stats
// ──────────────────────────────────────────────────────────────────────────────

func TestStats_RejectsInvertedRange(t *testing.T) {
	uc, _, _, _ := seededUseCase(t)
	now := time.Now()
	_, err := uc.Stats(context.Background(), now, now.Add(-time.Hour), 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStats_MapsAggregates(t *testing.T) {
	uc, repo, _, _ := seededUseCase(t)
	repo.stats = &entity.ScanStats{
		TotalScans:      42,
		SuspiciousScans: 5,
		UniqueCodes:     30,
		TopPincodes: []entity.PincodeScanCount{
			{Pincode: "400601", Scans: 12},
			{Pincode: "110001", Scans: 7},
		},
	}
	now := time.Now()

	out, err := uc.Stats(context.Background(), now.Add(-24*time.Hour), now, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(42), out.TotalScans)
	assert.Equal(t, int64(5), out.SuspiciousScans)
	assert.Equal(t, int64(30), out.UniqueCodes)
	require.Len(t, out.TopPincodes, 2)
	assert.Equal(t, "400601", out.TopPincodes[0].Pincode)
	assert.Equal(t, int64(12), out.TopPincodes[0].Scans)
}

func TestStats_IncludesTodayCounters(t *testing.T) {
	uc, repo, claims, _ := seededUseCase(t)
	repo.stats = &entity.ScanStats{TotalScans: 42}
	claims.todayTotal = 17
	claims.todaySuspicious = 3
	now := time.Now()

	out, err := uc.Stats(context.Background(), now.Add(-24*time.Hour), now, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(17), out.TodayScans)
	assert.Equal(t, int64(3), out.TodaySuspicious)
}

func TestStats_CounterOutageLeavesTodayAtZero(t *testing.T) {
	uc, repo, claims, _ := seededUseCase(t)
	repo.stats = &entity.ScanStats{TotalScans: 42}
	claims.todayTotal = 17
	claims.countsErr = assert.AnError
	now := time.Now()

	out, err := uc.Stats(context.Background(), now.Add(-24*time.Hour), now, 10)
	require.NoError(t, err, "live counters are advisory")

	assert.Equal(t, int64(42), out.TotalScans)
	assert.Zero(t, out.TodayScans)
	assert.Zero(t, out.TodaySuspicious)
}
