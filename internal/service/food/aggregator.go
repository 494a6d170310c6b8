// Package food derives revenue, cost and profit for food-sale records.
package food

import (
	"github.com/Mamlesh18/apex-gaming-cafe/internal/apperr"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/domain/models"
)

// Totals sums line-item revenue and derives profit against the vendor cost.
// Profit may be negative: selling at a loss is a valid business state.
func Totals(items []models.FoodItem, vendorCost float64) (revenue, profit float64) {
	for _, item := range items {
		revenue += item.Price
	}
	return revenue, revenue - vendorCost
}

// Validate rejects malformed entries before submission: an entry needs at
// least one item, every item needs a positive price, and vendor cost cannot
// be negative.
func Validate(items []models.FoodItem, vendorCost float64) error {
	if len(items) == 0 {
		return apperr.Invalid("items", "at least one item is required")
	}
	for _, item := range items {
		if item.Name == "" {
			return apperr.Invalid("items", "item name is required")
		}
		if item.Price <= 0 {
			return apperr.Invalid("items", "item price must be positive")
		}
	}
	if vendorCost < 0 {
		return apperr.Invalid("vendor_cost", "must not be negative")
	}
	return nil
}

// EntryTotals derives the totals for a fetched entry. Entries with line
// items are recomputed from them (the same formula the create path uses);
// legacy records without items fall back to their stored figures, missing
// numerics reading as zero.
func EntryTotals(entry models.FoodEntry) (revenue, cost, profit float64) {
	cost = entry.VendorCost
	if len(entry.Items) > 0 {
		revenue, profit = Totals(entry.Items, cost)
		return revenue, cost, profit
	}
	return entry.TotalRevenue, cost, entry.TotalRevenue - cost
}
