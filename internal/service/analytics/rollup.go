// Package analytics aggregates raw session and food records into daily and
// range summaries. Every function here is a pure computation over the
// records it is handed; fetching belongs to the caller.
package analytics

import (
	"time"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/domain/models"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/service/food"
)

// DailyRollup folds all records for one calendar day into a summary.
// Records whose date does not match are skipped, so callers may pass an
// unfiltered superset. Zero records yields an all-zero summary.
func DailyRollup(date string, sessions []models.GamingSession, entries []models.FoodEntry) models.DailySummary {
	summary := models.DailySummary{Date: date}

	for _, session := range sessions {
		if session.Date != date {
			continue
		}
		summary.GamingRevenue += session.Total
		summary.GamingSessionsCount++
	}

	for _, entry := range entries {
		if entry.Date != date {
			continue
		}
		revenue, cost, profit := food.EntryTotals(entry)
		summary.FoodRevenue += revenue
		summary.FoodCost += cost
		summary.FoodProfit += profit
	}

	summary.TotalProfit = summary.GamingRevenue + summary.FoodProfit
	return summary
}

// RangeRollup computes one DailySummary per calendar day in [start, end],
// ascending and gap-free, plus the field-wise sum of all of them. Slicing a
// range into contiguous sub-ranges and summing their totals gives the same
// result as rolling up the whole range at once.
func RangeRollup(start, end time.Time, sessions []models.GamingSession, entries []models.FoodEntry) models.RangeSummary {
	result := models.RangeSummary{
		Start:     models.FormatDate(start),
		End:       models.FormatDate(end),
		DailyData: []models.DailySummary{},
	}

	for day := truncateDay(start); !day.After(truncateDay(end)); day = day.AddDate(0, 0, 1) {
		daily := DailyRollup(models.FormatDate(day), sessions, entries)
		result.DailyData = append(result.DailyData, daily)
		result.Summary.Add(daily.SummaryTotals)
	}

	return result
}

// WeekRange returns the Monday-Sunday week containing the pivot date.
func WeekRange(pivot time.Time) (start, end time.Time) {
	start = MondayStart(pivot)
	return start, start.AddDate(0, 0, 6)
}

// MonthRange returns the first and last calendar day of the pivot month.
func MonthRange(pivot time.Time) (start, end time.Time) {
	start = time.Date(pivot.Year(), pivot.Month(), 1, 0, 0, 0, 0, pivot.Location())
	return start, start.AddDate(0, 1, -1)
}

// MondayStart truncates a date to the Monday of its week.
func MondayStart(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	start := t.AddDate(0, 0, -daysSinceMonday)
	return truncateDay(start)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
