package domain

import (
	"context"
	"errors"
	"time"

	"github.com/skinpulse/skinpulse/internal/entity"
)

// ErrNotFound is returned by collaborators when a key or record is absent.
// Callers inside the reconciliation core treat it as "no data", never as a
// failure.
var ErrNotFound = errors.New("not found")

// KeyValueStore - opaque on-device/local storage boundary. Values are JSON
// blobs; ttl of zero means no expiry.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// RemoteHistoryStore - opaque remote time-series boundary, the first tier
// of history resolution. Absence or failure must degrade gracefully.
type RemoteHistoryStore interface {
	QueryHistory(ctx context.Context, marketHashName string) ([]entity.PriceHistoryPoint, error)
}

// MessageProducer - outbound event stream for price updates.
type MessageProducer interface {
	WriteMessage(ctx context.Context, key string, value interface{}) error
	Close() error
}

// Logger - minimal leveled logger consumed by services.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
