package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/domain/models"
)

var testSettings = models.PricingSettings{
	PrivatePrice: 100,
	NormalPrice:  75,
	Durations:    []float64{1, 1.5, 2, 3, 4},
}

func TestBaseRate(t *testing.T) {
	assert.Equal(t, 100.0, BaseRate(testSettings, models.RoomPrivate))
	assert.Equal(t, 75.0, BaseRate(testSettings, models.RoomNormal))
}

func TestEffectiveRate(t *testing.T) {
	testCases := []struct {
		name     string
		quote    Quote
		expected float64
	}{
		{
			name:     "no override uses base rate",
			quote:    Quote{RoomType: models.RoomPrivate},
			expected: 100,
		},
		{
			name:     "override flag with valid value",
			quote:    Quote{RoomType: models.RoomPrivate, UseCustomPrice: true, CustomPrice: "120"},
			expected: 120,
		},
		{
			name:     "override value ignored without flag",
			quote:    Quote{RoomType: models.RoomNormal, CustomPrice: "120"},
			expected: 75,
		},
		{
			name:     "empty override falls back to base rate",
			quote:    Quote{RoomType: models.RoomNormal, UseCustomPrice: true, CustomPrice: ""},
			expected: 75,
		},
		{
			name:     "non-numeric override falls back to base rate",
			quote:    Quote{RoomType: models.RoomPrivate, UseCustomPrice: true, CustomPrice: "abc"},
			expected: 100,
		},
		{
			name:     "negative override falls back to base rate",
			quote:    Quote{RoomType: models.RoomPrivate, UseCustomPrice: true, CustomPrice: "-5"},
			expected: 100,
		},
		{
			name:     "zero override is honored",
			quote:    Quote{RoomType: models.RoomPrivate, UseCustomPrice: true, CustomPrice: "0"},
			expected: 0,
		},
		{
			name:     "whitespace around override is tolerated",
			quote:    Quote{RoomType: models.RoomNormal, UseCustomPrice: true, CustomPrice: " 90 "},
			expected: 90,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EffectiveRate(testSettings, tc.quote))
		})
	}
}

func TestTotal(t *testing.T) {
	testCases := []struct {
		name     string
		quote    Quote
		expected float64
	}{
		{
			name:     "private two hours three people",
			quote:    Quote{RoomType: models.RoomPrivate, DurationHours: 2, NumPeople: 3},
			expected: 600,
		},
		{
			name:     "duration and headcount default to one",
			quote:    Quote{RoomType: models.RoomNormal},
			expected: 75,
		},
		{
			name:     "fractional duration",
			quote:    Quote{RoomType: models.RoomNormal, DurationHours: 1.5, NumPeople: 2},
			expected: 225,
		},
		{
			name:     "custom rate drives the total",
			quote:    Quote{RoomType: models.RoomPrivate, DurationHours: 2, NumPeople: 3, UseCustomPrice: true, CustomPrice: "50"},
			expected: 300,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			total := Total(testSettings, tc.quote)
			assert.Equal(t, tc.expected, total)
			assert.GreaterOrEqual(t, total, 0.0)
		})
	}
}

func TestSessionTotal(t *testing.T) {
	assert.Equal(t, 600.0, SessionTotal(100, 2, 3))
	assert.Equal(t, 75.0, SessionTotal(75, 0, 0))
	assert.Equal(t, 150.0, SessionTotal(100, 1.5, 1))
}
