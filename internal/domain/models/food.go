package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// FoodItem is a single sold line item within a food entry.
type FoodItem struct {
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

// FoodEntry is one recorded food sale, possibly multiple items.
// Immutable once created. TotalRevenue and Profit are derived on create.
type FoodEntry struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date         string             `bson:"date" json:"date"`
	Items        []FoodItem         `bson:"items" json:"items"`
	VendorCost   float64            `bson:"vendor_cost" json:"vendor_cost"`
	TotalRevenue float64            `bson:"total_revenue" json:"total_revenue"`
	Profit       float64            `bson:"profit" json:"profit"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedBy    string             `bson:"created_by" json:"created_by"`

	// Dishes is the legacy field name for Items; old records carry it.
	Dishes []FoodItem `bson:"dishes,omitempty" json:"-"`
}

// Normalize folds legacy fields into their current shape: entries written
// before the rename keep their line items under "dishes".
func (e *FoodEntry) Normalize() {
	if len(e.Items) == 0 && len(e.Dishes) > 0 {
		e.Items = e.Dishes
	}
	e.Dishes = nil
}
