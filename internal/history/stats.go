package history

import (
	"sort"
	"time"

	"github.com/skinpulse/skinpulse/internal/entity"
)

// ChangeStats compares the first and last points of a series. Fewer than
// two points yields a zero, stable change.
func ChangeStats(series []entity.PriceHistoryPoint) entity.PriceChange {
	if len(series) < 2 {
		return entity.PriceChange{Trend: entity.TrendStable}
	}

	first := series[0].Price
	last := series[len(series)-1].Price

	change := entity.PriceChange{
		AbsoluteChange: last - first,
		Trend:          entity.TrendStable,
	}
	if first > 0 {
		change.PercentageChange = (last - first) / first * 100
	}

	switch {
	case change.PercentageChange > entity.StableTrendThreshold:
		change.Trend = entity.TrendUp
	case change.PercentageChange < -entity.StableTrendThreshold:
		change.Trend = entity.TrendDown
	}

	return change
}

// Stats computes min/max/avg over a series, with the last point as the
// current price. An empty series yields all zeros.
func Stats(series []entity.PriceHistoryPoint) entity.TrendStats {
	if len(series) == 0 {
		return entity.TrendStats{}
	}

	stats := entity.TrendStats{
		Min:     series[0].Price,
		Max:     series[0].Price,
		Current: series[len(series)-1].Price,
	}

	var sum float64
	for _, point := range series {
		if point.Price < stats.Min {
			stats.Min = point.Price
		}
		if point.Price > stats.Max {
			stats.Max = point.Price
		}
		sum += point.Price
	}
	stats.Avg = sum / float64(len(series))

	return stats
}

// FilterPeriod restricts a series to the trailing window ending at now.
func FilterPeriod(series []entity.PriceHistoryPoint, period entity.PriceStatsPeriod, now time.Time) []entity.PriceHistoryPoint {
	cutoff := now.Add(-period.Duration())

	filtered := make([]entity.PriceHistoryPoint, 0, len(series))
	for _, point := range series {
		if point.Timestamp.After(cutoff) {
			filtered = append(filtered, point)
		}
	}

	return filtered
}

// sortAscending orders a series by timestamp in place.
func sortAscending(series []entity.PriceHistoryPoint) {
	sort.Slice(series, func(i, j int) bool {
		return series[i].Timestamp.Before(series[j].Timestamp)
	})
}
