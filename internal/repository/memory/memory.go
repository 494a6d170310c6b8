// Package memory provides an in-memory Store implementation for testing.
package memory

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/apperr"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/domain/models"
)

// MemoryStore is an in-memory implementation of the repository.Store
// interface. Records keep insertion order, matching the real store's
// list ordering.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions []models.GamingSession
	entries  []models.FoodEntry
	visits   []models.Visit
	settings *models.PricingSettings
	reports  []models.DailyReport
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// CreateSession stores a gaming session and returns it with a fresh ID.
func (m *MemoryStore) CreateSession(_ context.Context, session models.GamingSession) (models.GamingSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session.ID = primitive.NewObjectID()
	m.sessions = append(m.sessions, session)
	return session, nil
}

// ListSessions returns sessions for one day in insertion order.
func (m *MemoryStore) ListSessions(_ context.Context, date string) ([]models.GamingSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []models.GamingSession{}
	for _, s := range m.sessions {
		if s.Date == date {
			result = append(result, s)
		}
	}
	return result, nil
}

// ListSessionsRange returns sessions in [start, end] sorted by date.
func (m *MemoryStore) ListSessionsRange(_ context.Context, start, end string) ([]models.GamingSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []models.GamingSession{}
	for _, s := range m.sessions {
		if s.Date >= start && s.Date <= end {
			result = append(result, s)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

// DeleteSession removes one session by identifier.
func (m *MemoryStore) DeleteSession(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, s := range m.sessions {
		if s.ID.Hex() == id {
			m.sessions = append(m.sessions[:i], m.sessions[i+1:]...)
			return nil
		}
	}
	return apperr.ErrNotFound
}

// CreateFoodEntry stores a food entry and returns it with a fresh ID.
func (m *MemoryStore) CreateFoodEntry(_ context.Context, entry models.FoodEntry) (models.FoodEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry.ID = primitive.NewObjectID()
	m.entries = append(m.entries, entry)
	return entry, nil
}

// ListFoodEntries returns food entries for one day in insertion order.
func (m *MemoryStore) ListFoodEntries(_ context.Context, date string) ([]models.FoodEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []models.FoodEntry{}
	for _, e := range m.entries {
		if e.Date == date {
			e.Normalize()
			result = append(result, e)
		}
	}
	return result, nil
}

// ListFoodEntriesRange returns food entries in [start, end] sorted by date.
func (m *MemoryStore) ListFoodEntriesRange(_ context.Context, start, end string) ([]models.FoodEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []models.FoodEntry{}
	for _, e := range m.entries {
		if e.Date >= start && e.Date <= end {
			e.Normalize()
			result = append(result, e)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

// DeleteFoodEntry removes one food entry by identifier.
func (m *MemoryStore) DeleteFoodEntry(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, e := range m.entries {
		if e.ID.Hex() == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return apperr.ErrNotFound
}

// CreateVisit stores a visit and returns it with a fresh ID.
func (m *MemoryStore) CreateVisit(_ context.Context, visit models.Visit) (models.Visit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	visit.ID = primitive.NewObjectID()
	m.visits = append(m.visits, visit)
	return visit, nil
}

// ListVisits returns visits for one day in insertion order.
func (m *MemoryStore) ListVisits(_ context.Context, date string) ([]models.Visit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []models.Visit{}
	for _, v := range m.visits {
		if v.Date == date {
			result = append(result, v)
		}
	}
	return result, nil
}

// ListVisitsRange returns visits in [start, end] sorted by date.
func (m *MemoryStore) ListVisitsRange(_ context.Context, start, end string) ([]models.Visit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []models.Visit{}
	for _, v := range m.visits {
		if v.Date >= start && v.Date <= end {
			result = append(result, v)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

// DeleteVisit removes one visit by identifier.
func (m *MemoryStore) DeleteVisit(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, v := range m.visits {
		if v.ID.Hex() == id {
			m.visits = append(m.visits[:i], m.visits[i+1:]...)
			return nil
		}
	}
	return apperr.ErrNotFound
}

// GetSettings returns the stored settings or the defaults.
func (m *MemoryStore) GetSettings(_ context.Context) (models.PricingSettings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.settings == nil {
		return models.DefaultPricingSettings(), nil
	}
	return *m.settings, nil
}

// ReplaceSettings overwrites the settings singleton.
func (m *MemoryStore) ReplaceSettings(_ context.Context, settings models.PricingSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings = &settings
	return nil
}

// SaveDailyReport stores a close-of-day snapshot.
func (m *MemoryStore) SaveDailyReport(_ context.Context, report models.DailyReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reports = append(m.reports, report)
	return nil
}

// Reports exposes stored snapshots for assertions.
func (m *MemoryStore) Reports() []models.DailyReport {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.DailyReport, len(m.reports))
	copy(out, m.reports)
	return out
}
