package analytics

import "github.com/Mamlesh18/apex-gaming-cafe/internal/domain/models"

// SplitSlice is one wedge of a proportion-style revenue split.
type SplitSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// RevenueSplit projects a summary into proportion slices for a split view.
// Negative food profit is clamped to zero here and only here: a proportion
// cannot carry a negative share, but the numeric totals keep the real value.
// Zero-valued slices are dropped; an all-zero summary yields no slices.
func RevenueSplit(totals models.SummaryTotals) []SplitSlice {
	foodProfit := totals.FoodProfit
	if foodProfit < 0 {
		foodProfit = 0
	}

	slices := make([]SplitSlice, 0, 2)
	if totals.GamingRevenue > 0 {
		slices = append(slices, SplitSlice{Name: "Gaming", Value: totals.GamingRevenue})
	}
	if foodProfit > 0 {
		slices = append(slices, SplitSlice{Name: "Food Profit", Value: foodProfit})
	}
	return slices
}

// TrendPoint is one day of the profit trend series.
type TrendPoint struct {
	Date        string  `json:"date"`
	TotalProfit float64 `json:"total_profit"`
	FoodProfit  float64 `json:"food_profit"`
}

// ProfitTrend projects per-day summaries into a line series. Negative
// values pass through untouched; a loss day plots below the axis.
func ProfitTrend(daily []models.DailySummary) []TrendPoint {
	points := make([]TrendPoint, 0, len(daily))
	for _, day := range daily {
		points = append(points, TrendPoint{
			Date:        day.Date,
			TotalProfit: day.TotalProfit,
			FoodProfit:  day.FoodProfit,
		})
	}
	return points
}
