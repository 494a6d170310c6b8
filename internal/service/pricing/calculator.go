// Package pricing derives the billable rate and total cost of a single
// gaming session from the configured room rates.
package pricing

import (
	"strconv"
	"strings"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/domain/models"
)

// Quote describes one session to be priced. CustomPrice is a raw user value
// and only consulted when UseCustomPrice is set.
type Quote struct {
	RoomType      models.RoomType
	DurationHours float64
	NumPeople     int
	UseCustomPrice bool
	CustomPrice    string
}

// BaseRate returns the configured hourly rate for the room type.
func BaseRate(settings models.PricingSettings, roomType models.RoomType) float64 {
	if roomType == models.RoomPrivate {
		return settings.PrivatePrice
	}
	return settings.NormalPrice
}

// EffectiveRate resolves the hourly rate for a quote. A custom price is used
// only when the flag is set and the value parses to a non-negative number;
// anything else falls back to the base rate. This permissive policy mirrors
// the operator-facing form, which treats a bad override as "no override".
func EffectiveRate(settings models.PricingSettings, q Quote) float64 {
	if q.UseCustomPrice {
		raw := strings.TrimSpace(q.CustomPrice)
		if raw != "" {
			if rate, err := strconv.ParseFloat(raw, 64); err == nil && rate >= 0 {
				return rate
			}
		}
	}
	return BaseRate(settings, q.RoomType)
}

// Total computes the full session cost: rate x duration x headcount.
// Duration and headcount default to 1 when unset, so a well-formed quote
// always yields a finite, non-negative total.
func Total(settings models.PricingSettings, q Quote) float64 {
	duration := q.DurationHours
	if duration <= 0 {
		duration = 1
	}
	people := q.NumPeople
	if people <= 0 {
		people = 1
	}
	return EffectiveRate(settings, q) * duration * float64(people)
}

// SessionTotal recomputes the stored formula for an already-priced session:
// price_per_hour x duration x headcount. Used to keep client- and
// server-side totals in agreement.
func SessionTotal(pricePerHour, durationHours float64, numPeople int) float64 {
	if durationHours <= 0 {
		durationHours = 1
	}
	if numPeople <= 0 {
		numPeople = 1
	}
	return pricePerHour * durationHours * float64(numPeople)
}
