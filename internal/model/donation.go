package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation is a completed-payment record stored in the `donations`
// collection. It is saved after the external gateway reports success and
// correlates to the earlier order only through the client-supplied amount
// and payment id.
type Donation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Amount    int64              `bson:"amount" json:"amount"` // smallest currency unit (paise)
	PaymentID string             `bson:"payment_id" json:"paymentId"`
	Date      time.Time          `bson:"date" json:"date"`
}
