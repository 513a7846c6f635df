package history

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/skinpulse/skinpulse/internal/domain"
	"github.com/skinpulse/skinpulse/internal/entity"
)

const (
	_snapshotLogKey = "prices:snapshots"

	// Entries older than the retention window are dropped on every write,
	// keeping the log bounded.
	_snapshotRetention = 30 * 24 * time.Hour
)

// SnapshotLog - append-mostly log of full price-map snapshots kept in the
// key-value store. Writes are fire-and-forget: a failed persist is logged
// and must never break the refresh cycle.
type SnapshotLog struct {
	store domain.KeyValueStore
	log   domain.Logger
	now   func() time.Time
}

// SnapshotLogOption - configuration hook for tests.
type SnapshotLogOption func(*SnapshotLog)

// WithSnapshotClock overrides the time source.
func WithSnapshotClock(now func() time.Time) SnapshotLogOption {
	return func(l *SnapshotLog) {
		l.now = now
	}
}

func NewSnapshotLog(store domain.KeyValueStore, log domain.Logger, opts ...SnapshotLogOption) *SnapshotLog {
	l := &SnapshotLog{
		store: store,
		log:   log,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Append pushes a snapshot of the current price map and prunes entries
// beyond the retention window.
func (l *SnapshotLog) Append(ctx context.Context, prices entity.PriceMap) {
	if len(prices) == 0 {
		return
	}

	now := l.now()
	snapshots := l.Snapshots(ctx)

	snapshots = append(snapshots, entity.PriceSnapshot{
		ID:        uuid.NewString(),
		Timestamp: now,
		Date:      now.UTC().Format(time.RFC3339),
		Prices:    prices,
	})

	cutoff := now.Add(-_snapshotRetention)
	pruned := snapshots[:0]
	for _, snap := range snapshots {
		if snap.Timestamp.After(cutoff) {
			pruned = append(pruned, snap)
		}
	}

	data, err := json.Marshal(pruned)
	if err != nil {
		l.log.Error("marshal snapshot log", "error", err)
		return
	}

	if err := l.store.Set(ctx, _snapshotLogKey, string(data), 0); err != nil {
		l.log.Warn("persist snapshot log", "error", err, "snapshots", len(pruned))
	}
}

// Snapshots reads the current log. Storage failures and corrupt payloads
// degrade to an empty log.
func (l *SnapshotLog) Snapshots(ctx context.Context) []entity.PriceSnapshot {
	data, err := l.store.Get(ctx, _snapshotLogKey)
	if err != nil {
		if err != domain.ErrNotFound {
			l.log.Warn("read snapshot log", "error", err)
		}
		return nil
	}

	var snapshots []entity.PriceSnapshot
	if err := json.Unmarshal([]byte(data), &snapshots); err != nil {
		l.log.Warn("decode snapshot log", "error", err)
		return nil
	}

	return snapshots
}

// ProjectHistory extracts the price series of one market name from the
// snapshot log, skipping snapshots without the key and zero prices.
func (l *SnapshotLog) ProjectHistory(ctx context.Context, marketHashName string) []entity.PriceHistoryPoint {
	var points []entity.PriceHistoryPoint

	for _, snap := range l.Snapshots(ctx) {
		quote, ok := snap.Prices[marketHashName]
		if !ok || quote.Price <= 0 {
			continue
		}
		points = append(points, entity.PriceHistoryPoint{
			Timestamp: snap.Timestamp,
			Price:     quote.Price,
		})
	}

	return points
}
