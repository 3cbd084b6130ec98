package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is a message submitted through the public contact form and
// stored in the `contacts` collection. Creation is public; listing and
// deletion are admin-only.
type Contact struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Subject string             `bson:"subject" json:"subject"`
	Message string             `bson:"message" json:"message"`
	Date    time.Time          `bson:"date" json:"date"`
}
