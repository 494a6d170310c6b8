package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/apperr"
	"github.com/Mamlesh18/apex-gaming-cafe/internal/domain/models"
)

const (
	sessionsColl = "gaming_sessions"
	foodColl     = "food_entries"
	visitsColl   = "visits"
	settingsColl = "settings"
	reportsColl  = "daily_reports"

	settingsDocID = "pricing"
)

// MongoDBRepository implements the repository.Store interface on MongoDB.
type MongoDBRepository struct {
	client *mongo.Client
	dbName string
}

// NewMongoDBRepository connects to MongoDB and verifies the connection.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{client: client, dbName: dbName}, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoDBRepository) coll(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}

// Records for one day come back in insertion order; ranges sort by date
// first so daily bucketing walks forward.
func listOpts() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})
}

func dateFilter(date string) bson.M {
	return bson.M{"date": date}
}

// Calendar-day strings compare lexicographically in date order, so a plain
// string range query covers [start, end].
func rangeFilter(start, end string) bson.M {
	return bson.M{"date": bson.M{"$gte": start, "$lte": end}}
}

func (r *MongoDBRepository) deleteByID(ctx context.Context, collName, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}

	result, err := r.coll(collName).DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("delete from %s: %w", collName, err)
	}
	if result.DeletedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// CreateSession inserts a gaming session and returns it with its new ID.
func (r *MongoDBRepository) CreateSession(ctx context.Context, session models.GamingSession) (models.GamingSession, error) {
	session.ID = primitive.NewObjectID()
	if _, err := r.coll(sessionsColl).InsertOne(ctx, session); err != nil {
		return models.GamingSession{}, fmt.Errorf("insert gaming session: %w", err)
	}
	return session, nil
}

// ListSessions returns all gaming sessions for one calendar day.
func (r *MongoDBRepository) ListSessions(ctx context.Context, date string) ([]models.GamingSession, error) {
	return r.findSessions(ctx, dateFilter(date))
}

// ListSessionsRange returns all gaming sessions in [start, end].
func (r *MongoDBRepository) ListSessionsRange(ctx context.Context, start, end string) ([]models.GamingSession, error) {
	return r.findSessions(ctx, rangeFilter(start, end))
}

func (r *MongoDBRepository) findSessions(ctx context.Context, filter bson.M) ([]models.GamingSession, error) {
	cursor, err := r.coll(sessionsColl).Find(ctx, filter, listOpts())
	if err != nil {
		return nil, fmt.Errorf("find gaming sessions: %w", err)
	}

	sessions := []models.GamingSession{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("decode gaming sessions: %w", err)
	}
	return sessions, nil
}

// DeleteSession removes one gaming session by identifier.
func (r *MongoDBRepository) DeleteSession(ctx context.Context, id string) error {
	return r.deleteByID(ctx, sessionsColl, id)
}

// CreateFoodEntry inserts a food entry and returns it with its new ID.
func (r *MongoDBRepository) CreateFoodEntry(ctx context.Context, entry models.FoodEntry) (models.FoodEntry, error) {
	entry.ID = primitive.NewObjectID()
	if _, err := r.coll(foodColl).InsertOne(ctx, entry); err != nil {
		return models.FoodEntry{}, fmt.Errorf("insert food entry: %w", err)
	}
	return entry, nil
}

// ListFoodEntries returns all food entries for one calendar day.
func (r *MongoDBRepository) ListFoodEntries(ctx context.Context, date string) ([]models.FoodEntry, error) {
	return r.findFoodEntries(ctx, dateFilter(date))
}

// ListFoodEntriesRange returns all food entries in [start, end].
func (r *MongoDBRepository) ListFoodEntriesRange(ctx context.Context, start, end string) ([]models.FoodEntry, error) {
	return r.findFoodEntries(ctx, rangeFilter(start, end))
}

func (r *MongoDBRepository) findFoodEntries(ctx context.Context, filter bson.M) ([]models.FoodEntry, error) {
	cursor, err := r.coll(foodColl).Find(ctx, filter, listOpts())
	if err != nil {
		return nil, fmt.Errorf("find food entries: %w", err)
	}

	entries := []models.FoodEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode food entries: %w", err)
	}

	for i := range entries {
		entries[i].Normalize()
	}
	return entries, nil
}

// DeleteFoodEntry removes one food entry by identifier.
func (r *MongoDBRepository) DeleteFoodEntry(ctx context.Context, id string) error {
	return r.deleteByID(ctx, foodColl, id)
}

// CreateVisit inserts a visit record and returns it with its new ID.
func (r *MongoDBRepository) CreateVisit(ctx context.Context, visit models.Visit) (models.Visit, error) {
	visit.ID = primitive.NewObjectID()
	if _, err := r.coll(visitsColl).InsertOne(ctx, visit); err != nil {
		return models.Visit{}, fmt.Errorf("insert visit: %w", err)
	}
	return visit, nil
}

// ListVisits returns all visits for one calendar day.
func (r *MongoDBRepository) ListVisits(ctx context.Context, date string) ([]models.Visit, error) {
	return r.findVisits(ctx, dateFilter(date))
}

// ListVisitsRange returns all visits in [start, end].
func (r *MongoDBRepository) ListVisitsRange(ctx context.Context, start, end string) ([]models.Visit, error) {
	return r.findVisits(ctx, rangeFilter(start, end))
}

func (r *MongoDBRepository) findVisits(ctx context.Context, filter bson.M) ([]models.Visit, error) {
	cursor, err := r.coll(visitsColl).Find(ctx, filter, listOpts())
	if err != nil {
		return nil, fmt.Errorf("find visits: %w", err)
	}

	visits := []models.Visit{}
	if err := cursor.All(ctx, &visits); err != nil {
		return nil, fmt.Errorf("decode visits: %w", err)
	}
	return visits, nil
}

// DeleteVisit removes one visit by identifier.
func (r *MongoDBRepository) DeleteVisit(ctx context.Context, id string) error {
	return r.deleteByID(ctx, visitsColl, id)
}

// GetSettings reads the pricing singleton, falling back to defaults when it
// has never been written.
func (r *MongoDBRepository) GetSettings(ctx context.Context) (models.PricingSettings, error) {
	var settings models.PricingSettings
	err := r.coll(settingsColl).FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.DefaultPricingSettings(), nil
	}
	if err != nil {
		return models.PricingSettings{}, fmt.Errorf("read settings: %w", err)
	}
	return settings, nil
}

// ReplaceSettings overwrites the pricing singleton in full.
func (r *MongoDBRepository) ReplaceSettings(ctx context.Context, settings models.PricingSettings) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll(settingsColl).ReplaceOne(ctx, bson.M{"_id": settingsDocID}, settings, opts); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}

// SaveDailyReport stores a close-of-day snapshot.
func (r *MongoDBRepository) SaveDailyReport(ctx context.Context, report models.DailyReport) error {
	if _, err := r.coll(reportsColl).InsertOne(ctx, report); err != nil {
		return fmt.Errorf("insert daily report: %w", err)
	}
	return nil
}
