package food

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/apperr"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/domain/models"
)

func TestTotals(t *testing.T) {
	testCases := []struct {
		name            string
		items           []models.FoodItem
		vendorCost      float64
		expectedRevenue float64
		expectedProfit  float64
	}{
		{
			name: "maggi and tea",
			items: []models.FoodItem{
				{Name: "Maggi", Price: 50},
				{Name: "Tea", Price: 20},
			},
			vendorCost:      30,
			expectedRevenue: 70,
			expectedProfit:  40,
		},
		{
			name:            "single item no cost",
			items:           []models.FoodItem{{Name: "Chips", Price: 25}},
			vendorCost:      0,
			expectedRevenue: 25,
			expectedProfit:  25,
		},
		{
			name:            "loss is a valid state",
			items:           []models.FoodItem{{Name: "Sandwich", Price: 40}},
			vendorCost:      60,
			expectedRevenue: 40,
			expectedProfit:  -20,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			revenue, profit := Totals(tc.items, tc.vendorCost)
			assert.Equal(t, tc.expectedRevenue, revenue)
			assert.Equal(t, tc.expectedProfit, profit)
		})
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name       string
		items      []models.FoodItem
		vendorCost float64
		wantErr    bool
	}{
		{
			name:    "empty item list rejected",
			items:   nil,
			wantErr: true,
		},
		{
			name:    "item without name rejected",
			items:   []models.FoodItem{{Price: 10}},
			wantErr: true,
		},
		{
			name:    "zero price rejected",
			items:   []models.FoodItem{{Name: "Tea", Price: 0}},
			wantErr: true,
		},
		{
			name:       "negative vendor cost rejected",
			items:      []models.FoodItem{{Name: "Tea", Price: 20}},
			vendorCost: -1,
			wantErr:    true,
		},
		{
			name:       "valid entry",
			items:      []models.FoodItem{{Name: "Tea", Price: 20}},
			vendorCost: 5,
			wantErr:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.items, tc.vendorCost)
			if tc.wantErr {
				assert.Error(t, err)
				assert.True(t, apperr.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEntryTotals(t *testing.T) {
	t.Run("recomputes from items", func(t *testing.T) {
		entry := models.FoodEntry{
			Items:      []models.FoodItem{{Name: "Maggi", Price: 50}, {Name: "Tea", Price: 20}},
			VendorCost: 30,
			// Stored figures deliberately stale; items win.
			TotalRevenue: 1,
			Profit:       1,
		}
		revenue, cost, profit := EntryTotals(entry)
		assert.Equal(t, 70.0, revenue)
		assert.Equal(t, 30.0, cost)
		assert.Equal(t, 40.0, profit)
	})

	t.Run("legacy entry without items uses stored figures", func(t *testing.T) {
		entry := models.FoodEntry{VendorCost: 10, TotalRevenue: 45}
		revenue, cost, profit := EntryTotals(entry)
		assert.Equal(t, 45.0, revenue)
		assert.Equal(t, 10.0, cost)
		assert.Equal(t, 35.0, profit)
	})

	t.Run("missing numerics read as zero", func(t *testing.T) {
		revenue, cost, profit := EntryTotals(models.FoodEntry{})
		assert.Zero(t, revenue)
		assert.Zero(t, cost)
		assert.Zero(t, profit)
	})
}

func TestNormalizeLegacyDishes(t *testing.T) {
	entry := models.FoodEntry{
		Dishes: []models.FoodItem{{Name: "Samosa", Price: 15}},
	}
	entry.Normalize()
	assert.Len(t, entry.Items, 1)
	assert.Equal(t, "Samosa", entry.Items[0].Name)
	assert.Nil(t, entry.Dishes)
}
