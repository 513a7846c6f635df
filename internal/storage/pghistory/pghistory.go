package pghistory

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/skinpulse/skinpulse/internal/domain"
	"github.com/skinpulse/skinpulse/internal/entity"
	"github.com/skinpulse/skinpulse/pkg/postgres"
)

const _schema = `
CREATE TABLE IF NOT EXISTS price_history (
	id BIGSERIAL PRIMARY KEY,
	market_hash_name TEXT NOT NULL,
	price DOUBLE PRECISION NOT NULL,
	recorded_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_price_history_name_time
	ON price_history (market_hash_name, recorded_at);
`

// Repository - remote time-series store on Postgres. The refresh cycle
// writes every priced item here, so the remote tier accretes real history
// over time.
type Repository struct {
	pg      *postgres.Postgres
	builder squirrel.StatementBuilderType
	log     domain.Logger
}

var _ domain.RemoteHistoryStore = (*Repository)(nil)

func New(ctx context.Context, pg *postgres.Postgres, log domain.Logger) (*Repository, error) {
	r := &Repository{
		pg:      pg,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		log:     log,
	}

	if _, err := pg.Pool.Exec(ctx, _schema); err != nil {
		return nil, fmt.Errorf("ensure price_history schema: %w", err)
	}

	return r, nil
}

// QueryHistory returns the full recorded series for one market name,
// ascending by time.
func (r *Repository) QueryHistory(ctx context.Context, marketHashName string) ([]entity.PriceHistoryPoint, error) {
	query, args, err := r.builder.
		Select("recorded_at", "price").
		From("price_history").
		Where(squirrel.Eq{"market_hash_name": marketHashName}).
		OrderBy("recorded_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history query: %w", err)
	}

	rows, err := r.pg.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var points []entity.PriceHistoryPoint
	for rows.Next() {
		var point entity.PriceHistoryPoint
		if err := rows.Scan(&point.Timestamp, &point.Price); err != nil {
			return nil, fmt.Errorf("scan history point: %w", err)
		}
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return points, nil
}

// RecordPrices inserts one point per priced item from a refresh cycle.
func (r *Repository) RecordPrices(ctx context.Context, prices entity.PriceMap, at time.Time) error {
	if len(prices) == 0 {
		return nil
	}

	qb := r.builder.
		Insert("price_history").
		Columns("market_hash_name", "price", "recorded_at")

	rowCount := 0
	for name, quote := range prices {
		if quote.Price <= 0 {
			continue
		}
		qb = qb.Values(name, quote.Price, at)
		rowCount++
	}

	if rowCount == 0 {
		return nil
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.pg.Pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert price points: %w", err)
	}

	r.log.Debug("price points recorded", "count", rowCount)

	return nil
}

// Prune drops points older than the retention window.
func (r *Repository) Prune(ctx context.Context, olderThan time.Time) error {
	query, args, err := r.builder.
		Delete("price_history").
		Where(squirrel.Lt{"recorded_at": olderThan}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build prune query: %w", err)
	}

	if _, err := r.pg.Pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("prune history: %w", err)
	}

	return nil
}
