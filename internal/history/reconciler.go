package history

import (
	"context"

	"github.com/skinpulse/skinpulse/internal/domain"
	"github.com/skinpulse/skinpulse/internal/entity"
)

// Reconciler merges the three history sources into a single ascending
// series: the remote store first, the local snapshot log when the remote
// yields nothing, and a synthetic walk when no real points exist at all.
// Source failures are absorbed at each tier boundary; callers only ever
// see a series, possibly empty of real data but never an error.
type Reconciler struct {
	remote    domain.RemoteHistoryStore
	snapshots *SnapshotLog
	synthetic *Generator
	log       domain.Logger
}

func NewReconciler(remote domain.RemoteHistoryStore, snapshots *SnapshotLog, synthetic *Generator, log domain.Logger) *Reconciler {
	return &Reconciler{
		remote:    remote,
		snapshots: snapshots,
		synthetic: synthetic,
		log:       log,
	}
}

// History resolves the price series for one market name. currentPrice
// anchors the synthetic tier; days bounds the synthetic series length.
func (r *Reconciler) History(ctx context.Context, marketHashName string, currentPrice float64, days int) []entity.PriceHistoryPoint {
	if marketHashName == "" {
		return nil
	}

	points := r.remoteHistory(ctx, marketHashName)

	if len(points) == 0 {
		points = r.snapshots.ProjectHistory(ctx, marketHashName)
	}

	if len(points) == 0 {
		points = r.synthetic.Series(ctx, marketHashName, currentPrice, days)
	}

	sortAscending(points)
	return points
}

func (r *Reconciler) remoteHistory(ctx context.Context, marketHashName string) []entity.PriceHistoryPoint {
	if r.remote == nil {
		return nil
	}

	remote, err := r.remote.QueryHistory(ctx, marketHashName)
	if err != nil {
		if err != domain.ErrNotFound {
			r.log.Warn("remote history unavailable", "market_hash_name", marketHashName, "error", err)
		}
		return nil
	}

	usable := remote[:0]
	for _, point := range remote {
		if point.Price > 0 {
			usable = append(usable, point)
		}
	}

	return usable
}
