package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamMember is a staff/volunteer profile stored in the `team_members`
// collection. Order is a manual sort key (default 0) adjusted through the
// bulk reorder endpoint; listings sort by Order ascending, then Name.
//
// Fields:
//
//	ID          – document id.
//	Name        – member name (required).
//	Position    – role title shown on the site (required).
//	Description – short bio (required).
//	Image       – public URL of the profile image (required at creation).
//	Order       – manual sort key, lower values first.
type TeamMember struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Position    string             `bson:"position" json:"position"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	Order       int                `bson:"order" json:"order"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
