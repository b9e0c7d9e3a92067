// internal/domain/models/funding.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Funding records a monetary contribution. It is not transactionally linked
// to the payment intent that may have collected it.
type Funding struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID          string             `bson:"userId" json:"userId"`
	UserName        string             `bson:"userName,omitempty" json:"userName,omitempty"`
	UserEmail       string             `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	Amount          float64            `bson:"amount" json:"amount"`
	PaymentIntentID string             `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	Date            time.Time          `bson:"date" json:"date"`
}
