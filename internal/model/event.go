package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a public event listing stored in the `events` collection.
// Photos holds public URLs on the media host in upload order; the URLs are
// immutable pointers and removing one from the list never deletes the
// remote file.
//
// Fields:
//
//	ID          – document id.
//	Name        – event title (required).
//	Date        – when the event takes place (required).
//	Venue       – where the event takes place (required).
//	Description – free-text description (required).
//	Photos      – ordered list of public photo URLs (may be empty).
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Date        time.Time          `bson:"date" json:"date"`
	Venue       string             `bson:"venue" json:"venue"`
	Description string             `bson:"description" json:"description"`
	Photos      []string           `bson:"photos" json:"photos"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
