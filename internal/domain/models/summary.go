package models

import "time"

// SummaryTotals carries the derived revenue figures shared by daily and
// range summaries. FoodProfit may be negative; TotalProfit always equals
// GamingRevenue + FoodRevenue - FoodCost.
type SummaryTotals struct {
	GamingRevenue       float64 `bson:"gaming_revenue" json:"gaming_revenue"`
	GamingSessionsCount int     `bson:"gaming_sessions_count" json:"gaming_sessions_count"`
	FoodRevenue         float64 `bson:"food_revenue" json:"food_revenue"`
	FoodCost            float64 `bson:"food_cost" json:"food_cost"`
	FoodProfit          float64 `bson:"food_profit" json:"food_profit"`
	TotalProfit         float64 `bson:"total_profit" json:"total_profit"`
}

// Add accumulates another set of totals field-wise.
func (t *SummaryTotals) Add(other SummaryTotals) {
	t.GamingRevenue += other.GamingRevenue
	t.GamingSessionsCount += other.GamingSessionsCount
	t.FoodRevenue += other.FoodRevenue
	t.FoodCost += other.FoodCost
	t.FoodProfit += other.FoodProfit
	t.TotalProfit += other.TotalProfit
}

// DailySummary is the derived rollup for one calendar day. Never persisted
// except as a close-of-day snapshot.
type DailySummary struct {
	Date          string `bson:"date" json:"date"`
	SummaryTotals `bson:",inline"`
}

// RangeSummary is the derived rollup for an inclusive date range, with one
// DailySummary per calendar day in ascending order.
type RangeSummary struct {
	Start     string         `json:"start"`
	End       string         `json:"end"`
	Summary   SummaryTotals  `json:"summary"`
	DailyData []DailySummary `json:"daily_data"`
}

// DailyReport is the close-of-day snapshot stored by the nightly job.
type DailyReport struct {
	Date          string `bson:"date" json:"date"`
	SummaryTotals `bson:",inline"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
