package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Charge struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	CustomerID primitive.ObjectID `json:"customerId" bson:"customerId"`
	Amount     float64            `json:"amount" bson:"amount"`
	ChargeType string             `json:"chargeType" bson:"chargeType"`
	DueDate    time.Time          `json:"dueDate" bson:"dueDate"`
	Status     string             `json:"status" bson:"status"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}
