package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Payment struct {
	ID            primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	CustomerID    primitive.ObjectID  `json:"customerId" bson:"customerId"`
	AppointmentID *primitive.ObjectID `json:"appointmentId,omitempty" bson:"appointmentId,omitempty"`
	Amount        float64             `json:"amount" bson:"amount"`
	PaymentType   string              `json:"paymentType" bson:"paymentType"`
	PaymentDate   time.Time           `json:"paymentDate" bson:"paymentDate"`
	Status        string              `json:"status" bson:"status"`
	TimeModel     `bson:",inline"`
}
