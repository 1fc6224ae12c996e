// Package stats derives dashboard summaries from a set of transactions.
// It performs no I/O; the caller supplies the records and the clock value.
package stats

import (
	"time"

	"github.com/MKhiriev/pos-lite/models"
	"github.com/shopspring/decimal"
)

// DayStart returns local midnight of now's calendar day.
func DayStart(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// WeekStart returns local midnight of the most recent Sunday at or before
// now. Weeks run Sunday through Saturday.
func WeekStart(now time.Time) time.Time {
	day := DayStart(now)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// Aggregate computes daily and weekly totals and the pending count.
// Both windows are inclusive at their start. Records dated in the future
// still count, as the windows have no upper bound.
func Aggregate(records []models.Transaction, now time.Time) models.Stats {
	dayStart, weekStart := DayStart(now), WeekStart(now)

	result := models.Stats{
		Daily:  models.PeriodStats{Total: decimal.Zero},
		Weekly: models.PeriodStats{Total: decimal.Zero},
	}

	for _, r := range records {
		line := r.LineTotal()

		if !r.Timestamp.Before(dayStart) {
			result.Daily.Total = result.Daily.Total.Add(line)
			result.Daily.Count++
		}
		if !r.Timestamp.Before(weekStart) {
			result.Weekly.Total = result.Weekly.Total.Add(line)
			result.Weekly.Count++
		}
		if !r.Synced {
			result.Pending++
		}
	}

	return result
}
