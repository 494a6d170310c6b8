package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/domain/models"
)

func TestRevenueSplit(t *testing.T) {
	t.Run("both slices present", func(t *testing.T) {
		split := RevenueSplit(models.SummaryTotals{GamingRevenue: 600, FoodProfit: 40})
		require.Len(t, split, 2)
		assert.Equal(t, SplitSlice{Name: "Gaming", Value: 600}, split[0])
		assert.Equal(t, SplitSlice{Name: "Food Profit", Value: 40}, split[1])
	})

	t.Run("negative food profit clamps to zero in the split only", func(t *testing.T) {
		totals := models.SummaryTotals{GamingRevenue: 600, FoodProfit: -30, TotalProfit: 570}
		split := RevenueSplit(totals)
		require.Len(t, split, 1)
		assert.Equal(t, "Gaming", split[0].Name)
		// The numeric total keeps the real value.
		assert.Equal(t, -30.0, totals.FoodProfit)
	})

	t.Run("all-zero summary yields no slices", func(t *testing.T) {
		assert.Empty(t, RevenueSplit(models.SummaryTotals{}))
	})
}

func TestProfitTrend(t *testing.T) {
	daily := []models.DailySummary{
		{Date: "2025-03-10", SummaryTotals: models.SummaryTotals{TotalProfit: 640, FoodProfit: 40}},
		{Date: "2025-03-11", SummaryTotals: models.SummaryTotals{TotalProfit: -20, FoodProfit: -20}},
	}

	points := ProfitTrend(daily)
	require.Len(t, points, 2)
	assert.Equal(t, TrendPoint{Date: "2025-03-10", TotalProfit: 640, FoodProfit: 40}, points[0])
	// Loss days pass through untouched.
	assert.Equal(t, -20.0, points[1].TotalProfit)
}
