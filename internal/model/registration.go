package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Registration is a volunteer application submitted through the public
// form and stored in the `registrations` collection. Records are
// append-only: the admin surface can list them but there is no update or
// delete endpoint. ResumeURL points at a PDF on the media host.
type Registration struct {
	ID                        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                      string             `bson:"name" json:"name"`
	PhoneNumber               string             `bson:"phone_number" json:"phoneNumber"`
	Email                     string             `bson:"email" json:"email"`
	ResumeURL                 string             `bson:"resume_url" json:"resumeUrl"`
	Address                   string             `bson:"address" json:"address"`
	City                      string             `bson:"city" json:"city"`
	State                     string             `bson:"state" json:"state"`
	WorksDone                 string             `bson:"works_done,omitempty" json:"worksDone,omitempty"`
	ContributionsAchievements string             `bson:"contributions_achievements,omitempty" json:"contributionsAchievements,omitempty"`
	Occupation                string             `bson:"occupation" json:"occupation"`
	CreatedAt                 time.Time          `bson:"created_at" json:"createdAt"`
}
