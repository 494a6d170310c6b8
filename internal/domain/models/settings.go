package models

// PricingSettings is the process-wide pricing configuration singleton.
// Mutated only via a full replace.
type PricingSettings struct {
	PrivatePrice float64   `bson:"private_price" json:"private_price"`
	NormalPrice  float64   `bson:"normal_price" json:"normal_price"`
	Durations    []float64 `bson:"durations" json:"durations"`
}

// DefaultPricingSettings seeds the singleton on first use.
func DefaultPricingSettings() PricingSettings {
	return PricingSettings{
		PrivatePrice: 100,
		NormalPrice:  75,
		Durations:    []float64{1, 1.5, 2, 3, 4},
	}
}
