// Package repository defines the record-store contract the service depends
// on. Creates return the stored record with its assigned identifier so
// handlers can echo derived fields; deletes are by opaque identifier with no
// cascading effects. The store must offer read-after-write consistency for a
// single operator session, nothing stronger.
package repository

import (
	"context"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/domain/models"
)

// Store is the record-store collaborator behind the five resource families.
type Store interface {
	CreateSession(ctx context.Context, session models.GamingSession) (models.GamingSession, error)
	ListSessions(ctx context.Context, date string) ([]models.GamingSession, error)
	ListSessionsRange(ctx context.Context, start, end string) ([]models.GamingSession, error)
	DeleteSession(ctx context.Context, id string) error

	CreateFoodEntry(ctx context.Context, entry models.FoodEntry) (models.FoodEntry, error)
	ListFoodEntries(ctx context.Context, date string) ([]models.FoodEntry, error)
	ListFoodEntriesRange(ctx context.Context, start, end string) ([]models.FoodEntry, error)
	DeleteFoodEntry(ctx context.Context, id string) error

	CreateVisit(ctx context.Context, visit models.Visit) (models.Visit, error)
	ListVisits(ctx context.Context, date string) ([]models.Visit, error)
	ListVisitsRange(ctx context.Context, start, end string) ([]models.Visit, error)
	DeleteVisit(ctx context.Context, id string) error

	GetSettings(ctx context.Context) (models.PricingSettings, error)
	ReplaceSettings(ctx context.Context, settings models.PricingSettings) error

	SaveDailyReport(ctx context.Context, report models.DailyReport) error
}
