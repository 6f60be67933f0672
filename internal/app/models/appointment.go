package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	CustomerID  primitive.ObjectID `json:"customerId" bson:"customerId"`
	Date        time.Time          `json:"date" bson:"date"`
	Description string             `json:"description" bson:"description"`
	Notes       string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Amount      float64            `json:"amount" bson:"amount"`
	TimeModel   `bson:",inline"`
}
