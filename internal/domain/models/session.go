package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoomType distinguishes the two bookable room categories.
type RoomType string

const (
	RoomPrivate RoomType = "private"
	RoomNormal  RoomType = "normal"
)

// ParseRoomType validates a raw room type value.
func ParseRoomType(value string) (RoomType, bool) {
	switch RoomType(value) {
	case RoomPrivate:
		return RoomPrivate, true
	case RoomNormal:
		return RoomNormal, true
	default:
		return "", false
	}
}

// GamingSession is one billed room rental. Immutable once created.
type GamingSession struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date          string             `bson:"date" json:"date"`
	RoomType      RoomType           `bson:"room_type" json:"room_type"`
	DurationHours float64            `bson:"duration_hours" json:"duration_hours"`
	NumPeople     int                `bson:"num_people" json:"num_people"`
	PricePerHour  float64            `bson:"price_per_hour" json:"price_per_hour"`
	Total         float64            `bson:"total" json:"total"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedBy     string             `bson:"created_by" json:"created_by"`
}
