package repository

import (
	"context"
	"time"

	"github.com/jalveda/ops-api/internal/domain/entity"
)

// ScanRepository defines the persistence port for printed QR codes and
// their scan events.
type ScanRepository interface {
	CreateCodes(ctx context.Context, codes []*entity.ScanCode) error
	// GetCode returns (nil, nil) when the code was never printed by us —
	// such scans are recorded as suspicious.
	GetCode(ctx context.Context, code string) (*entity.ScanCode, error)
	InsertEvent(ctx context.Context, event *entity.ScanEvent) error
	// Stats aggregates scan events over [from, to) for the dashboard.
	Stats(ctx context.Context, from, to time.Time, topN int) (*entity.ScanStats, error)
}
