// Package scan implements the anti-counterfeit QR flow: printing code
// batches, recording consumer scans with first-claim detection, and the
// dashboard aggregates.
package scan

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jalveda/ops-api/internal/application/dto"
	"github.com/jalveda/ops-api/internal/domain"
	"github.com/jalveda/ops-api/internal/domain/entity"
	"github.com/jalveda/ops-api/internal/domain/repository"
)

// ClaimStore is the atomic first-claim tracker (Redis in production). The
// first scan of a code claims it; later scans are flagged suspicious.
type ClaimStore interface {
	ClaimFirst(ctx context.Context, code string, at time.Time) (bool, error)
	IncrDaily(ctx context.Context, day time.Time, suspicious bool) error
	DailyCounts(ctx context.Context, day time.Time) (total, suspicious int64, err error)
}

// ScanUseCase use cases for the QR scan module.
type ScanUseCase struct {
	repo   repository.ScanRepository
	claims ClaimStore
}

// NewScanUseCase builds the use case.
func NewScanUseCase(repo repository.ScanRepository, claims ClaimStore) *ScanUseCase {
	return &ScanUseCase{repo: repo, claims: claims}
}

// GenerateCodes prints a batch of unique codes for a product batch.
func (uc *ScanUseCase) GenerateCodes(ctx context.Context, in dto.GenerateCodesRequest) (*dto.GenerateCodesResponse, error) {
	if in.Count <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	codes := make([]*entity.ScanCode, in.Count)
	raw := make([]string, in.Count)
	for i := range codes {
		// Compact form without hyphens; short enough for a bottle-cap QR.
		code := strings.ReplaceAll(uuid.New().String(), "-", "")
		codes[i] = &entity.ScanCode{
			Code:      code,
			ProductID: in.ProductID,
			BatchNo:   in.BatchNo,
			PrintedAt: now,
		}
		raw[i] = code
	}
	if err := uc.repo.CreateCodes(ctx, codes); err != nil {
		return nil, err
	}
	return &dto.GenerateCodesResponse{BatchNo: in.BatchNo, Codes: raw}, nil
}

// RecordScan processes one consumer scan. Unknown codes are recorded as
// suspicious and reported as not genuine; known codes are genuine, with the
// first scan claiming the code and later scans flagged.
func (uc *ScanUseCase) RecordScan(ctx context.Context, in dto.RecordScanRequest) (*dto.RecordScanResponse, error) {
	now := time.Now()

	code, err := uc.repo.GetCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}

	var resp dto.RecordScanResponse
	switch {
	case code == nil:
		resp = dto.RecordScanResponse{
			Genuine:    false,
			Suspicious: true,
			Message:    "This code is not recognized. The product may be counterfeit.",
		}
	default:
		first, err := uc.claims.ClaimFirst(ctx, in.Code, now)
		if err != nil {
			return nil, err
		}
		if first {
			resp = dto.RecordScanResponse{
				Genuine:   true,
				FirstScan: true,
				Message:   "Genuine product. Thank you for verifying.",
			}
		} else {
			resp = dto.RecordScanResponse{
				Genuine:    true,
				Suspicious: true,
				Message:    "This code was already scanned before. The product may be refilled.",
			}
		}
	}

	event := &entity.ScanEvent{
		ID:         uuid.New().String(),
		Code:       in.Code,
		Pincode:    in.Pincode,
		Suspicious: resp.Suspicious,
		UserAgent:  in.UserAgent,
		ScannedAt:  now,
	}
	if err := uc.repo.InsertEvent(ctx, event); err != nil {
		return nil, err
	}
	if err := uc.claims.IncrDaily(ctx, now, resp.Suspicious); err != nil {
		// Counters are advisory; the durable event is already written.
		return &resp, nil
	}
	return &resp, nil
}

// Stats aggregates scan events over [from, to) for the dashboard.
func (uc *ScanUseCase) Stats(ctx context.Context, from, to time.Time, topN int) (*dto.ScanStatsResponse, error) {
	if !to.After(from) {
		return nil, domain.ErrInvalidInput
	}
	if topN <= 0 {
		topN = 10
	}
	stats, err := uc.repo.Stats(ctx, from, to, topN)
	if err != nil {
		return nil, err
	}
	resp := &dto.ScanStatsResponse{
		From:            from,
		To:              to,
		TotalScans:      stats.TotalScans,
		SuspiciousScans: stats.SuspiciousScans,
		UniqueCodes:     stats.UniqueCodes,
	}
	// Live today-so-far counters from Redis. Advisory only: a counter
	// outage leaves them at zero, the durable aggregates stand on their own.
	if total, suspicious, err := uc.claims.DailyCounts(ctx, time.Now()); err == nil {
		resp.TodayScans = total
		resp.TodaySuspicious = suspicious
	}
	for _, pc := range stats.TopPincodes {
		resp.TopPincodes = append(resp.TopPincodes, dto.PincodeScanStats{
			Pincode: pc.Pincode,
			Scans:   pc.Scans,
		})
	}
	return resp, nil
}
