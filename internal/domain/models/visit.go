package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GuestCategory is the user value marking a free-text guest visit.
const GuestCategory = "Friends"

// Visit is one logged attendance interval for a person on a given day.
// DayOfWeek is accepted on the wire for compatibility, but all read-side
// bucketing derives the weekday from Date instead.
type Visit struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date       string             `bson:"date" json:"date"`
	User       string             `bson:"user" json:"user"`
	FriendName string             `bson:"friend_name,omitempty" json:"friend_name,omitempty"`
	StartTime  string             `bson:"start_time" json:"start_time"`
	EndTime    string             `bson:"end_time" json:"end_time"`
	DayOfWeek  string             `bson:"day_of_week,omitempty" json:"day_of_week,omitempty"`
	CreatedBy  string             `bson:"created_by" json:"created_by"`
}

// VisitorKind tags the two identity categories a visit can carry.
type VisitorKind string

const (
	VisitorRoster VisitorKind = "roster"
	VisitorGuest  VisitorKind = "guest"
)

// Visitor is the resolved identity behind a visit: either a fixed roster
// member or a free-text guest.
type Visitor struct {
	Kind VisitorKind
	Name string
}

// Visitor resolves the tagged identity for this visit.
func (v Visit) Visitor() Visitor {
	if v.User == GuestCategory {
		name := v.FriendName
		if name == "" {
			name = "Friend"
		}
		return Visitor{Kind: VisitorGuest, Name: name}
	}
	return Visitor{Kind: VisitorRoster, Name: v.User}
}

// ColorKey returns the identity used for stable color assignment: guests
// share one color bucket, roster members get their own.
func (v Visitor) ColorKey() string {
	if v.Kind == VisitorGuest {
		return GuestCategory
	}
	return v.Name
}

// Weekday derives the day of week from the visit date.
func (v Visit) Weekday() (time.Weekday, error) {
	day, err := ParseDate(v.Date)
	if err != nil {
		return 0, err
	}
	return day.Weekday(), nil
}
