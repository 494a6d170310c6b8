// Package records orchestrates the create/list/delete operations for the
// three record families and the settings singleton: it validates input,
// derives the computed fields through the pure calculators, and persists
// through the store. Derived fields are computed here, server-side, with the
// same formulas the client uses, so the two never disagree.
package records

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/apperr"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/domain/models"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/repository"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/service/food"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/service/pricing"
)

// Service implements the record operations against a Store.
type Service struct {
	store  repository.Store
	roster map[string]bool
	logger *zap.Logger
}

// NewService wires a new records service instance. The roster lists the
// fixed visitor identities; everyone else logs visits as a guest.
func NewService(store repository.Store, roster []string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	members := make(map[string]bool, len(roster))
	for _, name := range roster {
		members[name] = true
	}
	return &Service{store: store, roster: members, logger: logger}
}

// SessionInput is the create payload for a gaming session. PricePerHour is
// the client-resolved rate; when absent the rate is resolved here from the
// configured settings, honoring the custom-price override fields.
type SessionInput struct {
	Date           string  `json:"date"`
	RoomType       string  `json:"room_type"`
	DurationHours  float64 `json:"duration_hours"`
	NumPeople      int     `json:"num_people"`
	PricePerHour   float64 `json:"price_per_hour"`
	UseCustomPrice bool    `json:"use_custom_price"`
	CustomPrice    string  `json:"custom_price"`
	Notes          string  `json:"notes"`
}

// CreateSession validates, prices and persists one gaming session on behalf
// of the named operator.
func (s *Service) CreateSession(ctx context.Context, in SessionInput, operator string) (models.GamingSession, error) {
	if err := requireOperator(operator); err != nil {
		return models.GamingSession{}, err
	}
	if _, err := models.ParseDate(in.Date); err != nil {
		return models.GamingSession{}, apperr.Invalid("date", "must be a yyyy-mm-dd calendar day")
	}
	roomType, ok := models.ParseRoomType(in.RoomType)
	if !ok {
		return models.GamingSession{}, apperr.Invalid("room_type", "must be private or normal")
	}
	if in.DurationHours < 0 {
		return models.GamingSession{}, apperr.Invalid("duration_hours", "must be positive")
	}
	if in.NumPeople < 0 {
		return models.GamingSession{}, apperr.Invalid("num_people", "must be positive")
	}
	if in.PricePerHour < 0 {
		return models.GamingSession{}, apperr.Invalid("price_per_hour", "must not be negative")
	}

	duration := in.DurationHours
	if duration == 0 {
		duration = 1
	}
	people := in.NumPeople
	if people == 0 {
		people = 1
	}

	rate := in.PricePerHour
	if rate == 0 {
		settings, err := s.store.GetSettings(ctx)
		if err != nil {
			return models.GamingSession{}, apperr.Collaborator("read settings", err)
		}
		rate = pricing.EffectiveRate(settings, pricing.Quote{
			RoomType:       roomType,
			UseCustomPrice: in.UseCustomPrice,
			CustomPrice:    in.CustomPrice,
		})
	}

	session := models.GamingSession{
		Date:          in.Date,
		RoomType:      roomType,
		DurationHours: duration,
		NumPeople:     people,
		PricePerHour:  rate,
		Total:         pricing.SessionTotal(rate, duration, people),
		Notes:         in.Notes,
		CreatedBy:     operator,
	}

	created, err := s.store.CreateSession(ctx, session)
	if err != nil {
		return models.GamingSession{}, apperr.Collaborator("create gaming session", err)
	}

	s.logger.Info("gaming session recorded",
		zap.String("date", created.Date),
		zap.String("room_type", string(created.RoomType)),
		zap.Float64("total", created.Total),
		zap.String("created_by", operator))
	return created, nil
}

// ListSessions fetches all gaming sessions for a calendar day.
func (s *Service) ListSessions(ctx context.Context, date string) ([]models.GamingSession, error) {
	if _, err := models.ParseDate(date); err != nil {
		return nil, apperr.Invalid("date", "must be a yyyy-mm-dd calendar day")
	}
	sessions, err := s.store.ListSessions(ctx, date)
	if err != nil {
		return nil, apperr.Collaborator("list gaming sessions", err)
	}
	return sessions, nil
}

// DeleteSession removes one gaming session by identifier.
func (s *Service) DeleteSession(ctx context.Context, id string) error {
	err := s.store.DeleteSession(ctx, id)
	if err != nil && err != apperr.ErrNotFound {
		return apperr.Collaborator("delete gaming session", err)
	}
	return err
}

// FoodInput is the create payload for a food entry.
type FoodInput struct {
	Date       string            `json:"date"`
	Items      []models.FoodItem `json:"items"`
	VendorCost float64           `json:"vendor_cost"`
	Notes      string            `json:"notes"`
}

// CreateFoodEntry validates and persists one food entry with its derived
// revenue and profit. An entry without items is rejected outright.
func (s *Service) CreateFoodEntry(ctx context.Context, in FoodInput, operator string) (models.FoodEntry, error) {
	if err := requireOperator(operator); err != nil {
		return models.FoodEntry{}, err
	}
	if _, err := models.ParseDate(in.Date); err != nil {
		return models.FoodEntry{}, apperr.Invalid("date", "must be a yyyy-mm-dd calendar day")
	}
	if err := food.Validate(in.Items, in.VendorCost); err != nil {
		return models.FoodEntry{}, err
	}

	revenue, profit := food.Totals(in.Items, in.VendorCost)
	entry := models.FoodEntry{
		Date:         in.Date,
		Items:        in.Items,
		VendorCost:   in.VendorCost,
		TotalRevenue: revenue,
		Profit:       profit,
		Notes:        in.Notes,
		CreatedBy:    operator,
	}

	created, err := s.store.CreateFoodEntry(ctx, entry)
	if err != nil {
		return models.FoodEntry{}, apperr.Collaborator("create food entry", err)
	}

	s.logger.Info("food entry recorded",
		zap.String("date", created.Date),
		zap.Float64("revenue", created.TotalRevenue),
		zap.Float64("profit", created.Profit),
		zap.String("created_by", operator))
	return created, nil
}

// ListFoodEntries fetches all food entries for a calendar day.
func (s *Service) ListFoodEntries(ctx context.Context, date string) ([]models.FoodEntry, error) {
	if _, err := models.ParseDate(date); err != nil {
		return nil, apperr.Invalid("date", "must be a yyyy-mm-dd calendar day")
	}
	entries, err := s.store.ListFoodEntries(ctx, date)
	if err != nil {
		return nil, apperr.Collaborator("list food entries", err)
	}
	return entries, nil
}

// DeleteFoodEntry removes one food entry by identifier. Totals are never
// shared between entries, so removing one cannot disturb the others.
func (s *Service) DeleteFoodEntry(ctx context.Context, id string) error {
	err := s.store.DeleteFoodEntry(ctx, id)
	if err != nil && err != apperr.ErrNotFound {
		return apperr.Collaborator("delete food entry", err)
	}
	return err
}

// VisitInput is the create payload for a visit. DayOfWeek is accepted for
// wire compatibility but recomputed from the date before storing.
type VisitInput struct {
	Date       string `json:"date"`
	User       string `json:"user"`
	FriendName string `json:"friend_name"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	DayOfWeek  string `json:"day_of_week"`
}

// CreateVisit validates and persists one visit record.
func (s *Service) CreateVisit(ctx context.Context, in VisitInput, operator string) (models.Visit, error) {
	if err := requireOperator(operator); err != nil {
		return models.Visit{}, err
	}
	day, err := models.ParseDate(in.Date)
	if err != nil {
		return models.Visit{}, apperr.Invalid("date", "must be a yyyy-mm-dd calendar day")
	}
	if strings.TrimSpace(in.User) == "" {
		return models.Visit{}, apperr.Invalid("user", "is required")
	}
	if in.User == models.GuestCategory {
		if strings.TrimSpace(in.FriendName) == "" {
			return models.Visit{}, apperr.Invalid("friend_name", "is required for guest visits")
		}
	} else if len(s.roster) > 0 && !s.roster[in.User] {
		return models.Visit{}, apperr.Invalid("user", "must be a roster member or the guest category")
	}
	startHour, err := models.ParseHour(in.StartTime)
	if err != nil {
		return models.Visit{}, apperr.Invalid("start_time", "must be an HH:00 hour")
	}
	endHour, err := models.ParseHour(in.EndTime)
	if err != nil {
		return models.Visit{}, apperr.Invalid("end_time", "must be an HH:00 hour")
	}
	if startHour >= endHour {
		return models.Visit{}, apperr.Invalid("start_time", "must be before end_time")
	}

	friendName := in.FriendName
	if in.User != models.GuestCategory {
		friendName = ""
	}

	visit := models.Visit{
		Date:       in.Date,
		User:       in.User,
		FriendName: friendName,
		StartTime:  models.HourLabel(startHour),
		EndTime:    models.HourLabel(endHour),
		// Stored label always derives from the date; a client-sent value
		// that disagrees with the calendar is discarded.
		DayOfWeek: day.Weekday().String(),
		CreatedBy: operator,
	}

	created, err := s.store.CreateVisit(ctx, visit)
	if err != nil {
		return models.Visit{}, apperr.Collaborator("create visit", err)
	}

	s.logger.Info("visit logged",
		zap.String("date", created.Date),
		zap.String("user", created.User),
		zap.String("start", created.StartTime),
		zap.String("end", created.EndTime))
	return created, nil
}

// ListVisits fetches all visits for a calendar day.
func (s *Service) ListVisits(ctx context.Context, date string) ([]models.Visit, error) {
	if _, err := models.ParseDate(date); err != nil {
		return nil, apperr.Invalid("date", "must be a yyyy-mm-dd calendar day")
	}
	visits, err := s.store.ListVisits(ctx, date)
	if err != nil {
		return nil, apperr.Collaborator("list visits", err)
	}
	return visits, nil
}

// DeleteVisit removes one visit by identifier.
func (s *Service) DeleteVisit(ctx context.Context, id string) error {
	err := s.store.DeleteVisit(ctx, id)
	if err != nil && err != apperr.ErrNotFound {
		return apperr.Collaborator("delete visit", err)
	}
	return err
}

// GetSettings reads the pricing configuration singleton.
func (s *Service) GetSettings(ctx context.Context) (models.PricingSettings, error) {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return models.PricingSettings{}, apperr.Collaborator("read settings", err)
	}
	return settings, nil
}

// ReplaceSettings validates and overwrites the pricing configuration.
// Duration choices keep their submitted order with duplicates dropped.
func (s *Service) ReplaceSettings(ctx context.Context, settings models.PricingSettings) (models.PricingSettings, error) {
	if settings.PrivatePrice <= 0 {
		return models.PricingSettings{}, apperr.Invalid("private_price", "must be positive")
	}
	if settings.NormalPrice <= 0 {
		return models.PricingSettings{}, apperr.Invalid("normal_price", "must be positive")
	}
	if len(settings.Durations) == 0 {
		return models.PricingSettings{}, apperr.Invalid("durations", "at least one duration is required")
	}

	seen := map[float64]bool{}
	durations := make([]float64, 0, len(settings.Durations))
	for _, d := range settings.Durations {
		if d <= 0 {
			return models.PricingSettings{}, apperr.Invalid("durations", "every duration must be positive")
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		durations = append(durations, d)
	}
	settings.Durations = durations

	if err := s.store.ReplaceSettings(ctx, settings); err != nil {
		return models.PricingSettings{}, apperr.Collaborator("replace settings", err)
	}

	s.logger.Info("pricing settings replaced",
		zap.Float64("private_price", settings.PrivatePrice),
		zap.Float64("normal_price", settings.NormalPrice),
		zap.Int("durations", len(settings.Durations)))
	return settings, nil
}

func requireOperator(operator string) error {
	if strings.TrimSpace(operator) == "" {
		return apperr.Invalid("operator", "identity is required")
	}
	return nil
}
