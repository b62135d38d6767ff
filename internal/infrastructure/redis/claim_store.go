package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jalveda/ops-api/internal/application/scan"
)

var _ scan.ClaimStore = (*ClaimStore)(nil)

const (
	claimKeyPrefix  = "scan:claim:%s"
	dailyKeyPrefix  = "scan:count:%s"      // yyyy-mm-dd
	dailySuspPrefix = "scan:suspicious:%s" // yyyy-mm-dd
	dailyCounterTTL = 90 * 24 * time.Hour
)

// ClaimStore tracks which printed codes have been scanned, atomically.
// The first scan of a code claims it; every later scan sees the claim and is
// flagged suspicious.
type ClaimStore struct {
	client *goredis.Client
}

// NewClaimStore builds the store on a connected client.
func NewClaimStore(client *goredis.Client) *ClaimStore {
	return &ClaimStore{client: client}
}

// ClaimFirst atomically claims the code and reports whether this call was
// the first. Claims never expire; a code stays claimed for the life of the
// bottle.
func (s *ClaimStore) ClaimFirst(ctx context.Context, code string, at time.Time) (bool, error) {
	key := fmt.Sprintf(claimKeyPrefix, code)
	first, err := s.client.SetNX(ctx, key, at.UTC().Format(time.RFC3339), 0).Result()
	if err != nil {
		return false, fmt.Errorf("claim scan code: %w", err)
	}
	return first, nil
}

// IncrDaily bumps the day's scan counter, and the suspicious counter when
// the scan was flagged. Counters expire after 90 days.
func (s *ClaimStore) IncrDaily(ctx context.Context, day time.Time, suspicious bool) error {
	date := day.UTC().Format("2006-01-02")
	pipe := s.client.Pipeline()
	totalKey := fmt.Sprintf(dailyKeyPrefix, date)
	pipe.Incr(ctx, totalKey)
	pipe.Expire(ctx, totalKey, dailyCounterTTL)
	if suspicious {
		suspKey := fmt.Sprintf(dailySuspPrefix, date)
		pipe.Incr(ctx, suspKey)
		pipe.Expire(ctx, suspKey, dailyCounterTTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("incr daily scan counters: %w", err)
	}
	return nil
}

// DailyCounts returns (total, suspicious) for a day; missing keys read as zero.
func (s *ClaimStore) DailyCounts(ctx context.Context, day time.Time) (int64, int64, error) {
	date := day.UTC().Format("2006-01-02")
	total, err := s.client.Get(ctx, fmt.Sprintf(dailyKeyPrefix, date)).Int64()
	if err != nil && err != goredis.Nil {
		return 0, 0, fmt.Errorf("get daily scan count: %w", err)
	}
	susp, err := s.client.Get(ctx, fmt.Sprintf(dailySuspPrefix, date)).Int64()
	if err != nil && err != goredis.Nil {
		return 0, 0, fmt.Errorf("get daily suspicious count: %w", err)
	}
	return total, susp, nil
}
