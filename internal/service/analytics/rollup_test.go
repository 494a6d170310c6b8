package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/domain/models"
)

func day(value string) time.Time {
	t, err := models.ParseDate(value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDailyRollup(t *testing.T) {
	sessions := []models.GamingSession{
		{Date: "2025-03-10", Total: 600},
		{Date: "2025-03-10", Total: 150},
		{Date: "2025-03-11", Total: 999}, // different day, must be skipped
	}
	entries := []models.FoodEntry{
		{
			Date:       "2025-03-10",
			Items:      []models.FoodItem{{Name: "Maggi", Price: 50}, {Name: "Tea", Price: 20}},
			VendorCost: 30,
		},
	}

	summary := DailyRollup("2025-03-10", sessions, entries)

	assert.Equal(t, "2025-03-10", summary.Date)
	assert.Equal(t, 750.0, summary.GamingRevenue)
	assert.Equal(t, 2, summary.GamingSessionsCount)
	assert.Equal(t, 70.0, summary.FoodRevenue)
	assert.Equal(t, 30.0, summary.FoodCost)
	assert.Equal(t, 40.0, summary.FoodProfit)
	assert.Equal(t, 790.0, summary.TotalProfit)
}

func TestDailyRollupScenario(t *testing.T) {
	// gaming 600 + food (70 - 30) = 640
	sessions := []models.GamingSession{{Date: "2025-03-10", Total: 600}}
	entries := []models.FoodEntry{{Date: "2025-03-10", TotalRevenue: 70, VendorCost: 30}}

	summary := DailyRollup("2025-03-10", sessions, entries)
	assert.Equal(t, 640.0, summary.TotalProfit)
}

func TestDailyRollupEmptyDay(t *testing.T) {
	summary := DailyRollup("2025-03-10", nil, nil)
	assert.Equal(t, models.SummaryTotals{}, summary.SummaryTotals)
}

func TestDailyRollupIdempotent(t *testing.T) {
	sessions := []models.GamingSession{{Date: "2025-03-10", Total: 300}}
	entries := []models.FoodEntry{{Date: "2025-03-10", TotalRevenue: 50, VendorCost: 80}}

	first := DailyRollup("2025-03-10", sessions, entries)
	second := DailyRollup("2025-03-10", sessions, entries)
	assert.Equal(t, first, second)
}

func TestRangeRollup(t *testing.T) {
	sessions := []models.GamingSession{
		{Date: "2025-03-10", Total: 600},
		{Date: "2025-03-12", Total: 200},
	}
	entries := []models.FoodEntry{
		{Date: "2025-03-11", TotalRevenue: 70, VendorCost: 100}, // a loss day
	}

	result := RangeRollup(day("2025-03-10"), day("2025-03-13"), sessions, entries)

	require.Len(t, result.DailyData, 4)
	assert.Equal(t, "2025-03-10", result.Start)
	assert.Equal(t, "2025-03-13", result.End)

	// Contiguous, ascending, one entry per day even when empty.
	expectedDates := []string{"2025-03-10", "2025-03-11", "2025-03-12", "2025-03-13"}
	for i, daily := range result.DailyData {
		assert.Equal(t, expectedDates[i], daily.Date)
	}
	assert.Equal(t, models.SummaryTotals{}, result.DailyData[3].SummaryTotals)

	// Range totals are the field-wise sum of the per-day summaries.
	var profitSum float64
	for _, daily := range result.DailyData {
		profitSum += daily.TotalProfit
	}
	assert.Equal(t, profitSum, result.Summary.TotalProfit)
	assert.Equal(t, 800.0, result.Summary.GamingRevenue)
	assert.Equal(t, -30.0, result.Summary.FoodProfit)
	assert.Equal(t, 770.0, result.Summary.TotalProfit)
}

func TestRangeRollupSliceAssociativity(t *testing.T) {
	sessions := []models.GamingSession{
		{Date: "2025-03-10", Total: 100},
		{Date: "2025-03-11", Total: 200},
		{Date: "2025-03-12", Total: 300},
		{Date: "2025-03-13", Total: 400},
	}

	whole := RangeRollup(day("2025-03-10"), day("2025-03-13"), sessions, nil)
	left := RangeRollup(day("2025-03-10"), day("2025-03-11"), sessions, nil)
	right := RangeRollup(day("2025-03-12"), day("2025-03-13"), sessions, nil)

	assert.Equal(t, whole.Summary.TotalProfit, left.Summary.TotalProfit+right.Summary.TotalProfit)
	assert.Equal(t, whole.Summary.GamingRevenue, left.Summary.GamingRevenue+right.Summary.GamingRevenue)
}

func TestRangeRollupSingleDay(t *testing.T) {
	result := RangeRollup(day("2025-03-10"), day("2025-03-10"), nil, nil)
	require.Len(t, result.DailyData, 1)
	assert.Equal(t, "2025-03-10", result.DailyData[0].Date)
}

func TestWeekRange(t *testing.T) {
	testCases := []struct {
		name          string
		pivot         string
		expectedStart string
		expectedEnd   string
	}{
		{name: "wednesday pivot", pivot: "2025-03-12", expectedStart: "2025-03-10", expectedEnd: "2025-03-16"},
		{name: "monday pivot", pivot: "2025-03-10", expectedStart: "2025-03-10", expectedEnd: "2025-03-16"},
		{name: "sunday pivot", pivot: "2025-03-16", expectedStart: "2025-03-10", expectedEnd: "2025-03-16"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := WeekRange(day(tc.pivot))
			assert.Equal(t, tc.expectedStart, models.FormatDate(start))
			assert.Equal(t, tc.expectedEnd, models.FormatDate(end))
		})
	}
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(day("2025-02-14"))
	assert.Equal(t, "2025-02-01", models.FormatDate(start))
	assert.Equal(t, "2025-02-28", models.FormatDate(end))

	start, end = MonthRange(day("2024-02-10"))
	assert.Equal(t, "2024-02-29", models.FormatDate(end), "leap year february")
	assert.Equal(t, "2024-02-01", models.FormatDate(start))
}
