package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jalveda/ops-api/internal/domain/entity"
	"github.com/jalveda/ops-api/internal/domain/repository"
)

var _ repository.ScanRepository = (*ScanRepo)(nil)

// ScanRepo implements ScanRepository on PostgreSQL. Redis claims decide
// suspicious-or-not in the hot path; Postgres is the durable record behind
// the dashboard.
type ScanRepo struct {
	q Querier
}

// NewScanRepository builds the persistence adapter for scan codes and events.
func NewScanRepository(q Querier) *ScanRepo {
	return &ScanRepo{q: q}
}

// CreateCodes bulk-inserts a printed batch of QR codes.
func (r *ScanRepo) CreateCodes(ctx context.Context, codes []*entity.ScanCode) error {
	for _, c := range codes {
		_, err := r.q.Exec(ctx,
			`INSERT INTO scan_codes (code, product_id, batch_no, printed_at)
			 VALUES ($1, $2, $3, $4) ON CONFLICT (code) DO NOTHING`,
			c.Code, c.ProductID, c.BatchNo, c.PrintedAt,
		)
		if err != nil {
			return fmt.Errorf("insert scan code: %w", err)
		}
	}
	return nil
}

// GetCode returns (nil, nil) when the code was never printed by us.
func (r *ScanRepo) GetCode(ctx context.Context, code string) (*entity.ScanCode, error) {
	var c entity.ScanCode
	err := r.q.QueryRow(ctx,
		`SELECT code, product_id, batch_no, printed_at FROM scan_codes WHERE code = $1`,
		code,
	).Scan(&c.Code, &c.ProductID, &c.BatchNo, &c.PrintedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get scan code: %w", err)
	}
	return &c, nil
}

// InsertEvent records one consumer scan.
func (r *ScanRepo) InsertEvent(ctx context.Context, event *entity.ScanEvent) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO scan_events (id, code, pincode, suspicious, user_agent, scanned_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		event.ID, event.Code, event.Pincode, event.Suspicious, event.UserAgent, event.ScannedAt,
	)
	if err != nil {
		return fmt.Errorf("insert scan event: %w", err)
	}
	return nil
}

// Stats aggregates scan events over [from, to) for the dashboard.
func (r *ScanRepo) Stats(ctx context.Context, from, to time.Time, topN int) (*entity.ScanStats, error) {
	var stats entity.ScanStats
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE suspicious),
			COUNT(DISTINCT code)
		FROM scan_events WHERE scanned_at >= $1 AND scanned_at < $2`,
		from, to,
	).Scan(&stats.TotalScans, &stats.SuspiciousScans, &stats.UniqueCodes)
	if err != nil {
		return nil, fmt.Errorf("scan stats totals: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT pincode, COUNT(*) AS scans
		FROM scan_events
		WHERE scanned_at >= $1 AND scanned_at < $2 AND pincode <> ''
		GROUP BY pincode ORDER BY scans DESC LIMIT $3`,
		from, to, topN,
	)
	if err != nil {
		return nil, fmt.Errorf("scan stats top pincodes: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pc entity.PincodeScanCount
		if err := rows.Scan(&pc.Pincode, &pc.Scans); err != nil {
			return nil, fmt.Errorf("scan pincode count: %w", err)
		}
		stats.TopPincodes = append(stats.TopPincodes, pc)
	}
	return &stats, rows.Err()
}
