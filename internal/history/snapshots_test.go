package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skinpulse/skinpulse/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotLog_AppendAndRead(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	log := NewSnapshotLog(store, nopLogger{})

	log.Append(ctx, entity.PriceMap{
		"AK-47 | Redline (Field-Tested)": {Price: 15.50, Quantity: 100},
	})
	log.Append(ctx, entity.PriceMap{
		"AK-47 | Redline (Field-Tested)": {Price: 16.00, Quantity: 90},
	})

	snapshots := log.Snapshots(ctx)
	require.Len(t, snapshots, 2)
	assert.Equal(t, 15.50, snapshots[0].Prices["AK-47 | Redline (Field-Tested)"].Price)
	assert.Equal(t, 16.00, snapshots[1].Prices["AK-47 | Redline (Field-Tested)"].Price)
	assert.NotEmpty(t, snapshots[0].ID)
	assert.NotEmpty(t, snapshots[0].Date)
}

func TestSnapshotLog_RetentionPrunesOldEntries(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	current := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	// Write two snapshots from the past through a back-dated clock.
	past := current.Add(-40 * 24 * time.Hour)
	backdated := NewSnapshotLog(store, nopLogger{}, WithSnapshotClock(func() time.Time { return past }))
	backdated.Append(ctx, entity.PriceMap{"old": {Price: 1}})

	recent := current.Add(-2 * 24 * time.Hour)
	backdated.now = func() time.Time { return recent }
	backdated.Append(ctx, entity.PriceMap{"recent": {Price: 2}})

	// The next append at current time prunes the 40-day-old entry.
	log := NewSnapshotLog(store, nopLogger{}, WithSnapshotClock(func() time.Time { return current }))
	log.Append(ctx, entity.PriceMap{"new": {Price: 3}})

	snapshots := log.Snapshots(ctx)
	require.Len(t, snapshots, 2)
	for _, snap := range snapshots {
		_, hasOld := snap.Prices["old"]
		assert.False(t, hasOld)
	}
}

func TestSnapshotLog_AppendSurvivesStorageFailure(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.setErr = errors.New("disk full")

	log := NewSnapshotLog(store, nopLogger{})

	assert.NotPanics(t, func() {
		log.Append(ctx, entity.PriceMap{"x": {Price: 1}})
	})
	assert.Empty(t, log.Snapshots(ctx))
}

func TestSnapshotLog_EmptyMapIgnored(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	log := NewSnapshotLog(store, nopLogger{})

	log.Append(ctx, nil)
	log.Append(ctx, entity.PriceMap{})

	assert.Empty(t, log.Snapshots(ctx))
}

func TestSnapshotLog_ProjectHistory(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	log := NewSnapshotLog(store, nopLogger{})

	log.Append(ctx, entity.PriceMap{
		"AWP | Asiimov (Field-Tested)": {Price: 95.00},
	})
	log.Append(ctx, entity.PriceMap{
		"AWP | Asiimov (Field-Tested)": {Price: 0}, // invalid, filtered
	})
	log.Append(ctx, entity.PriceMap{
		"AK-47 | Redline (Field-Tested)": {Price: 15.50}, // other key
	})
	log.Append(ctx, entity.PriceMap{
		"AWP | Asiimov (Field-Tested)": {Price: 97.25},
	})

	points := log.ProjectHistory(ctx, "AWP | Asiimov (Field-Tested)")
	require.Len(t, points, 2)
	assert.Equal(t, 95.00, points[0].Price)
	assert.Equal(t, 97.25, points[1].Price)
}
