package models

import (
	"practice-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Customer struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	Phone       string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Password    string             `json:"-" bson:"password,omitempty"`
	Birthday    *time.Time         `json:"birthday,omitempty" bson:"birthday,omitempty"`
	PaymentType string             `json:"paymentType" bson:"paymentType"`
	SessionRate float64            `json:"sessionRate" bson:"sessionRate"`
	MonthlyRate float64            `json:"monthlyRate" bson:"monthlyRate"`
	BalanceDue  float64            `json:"balanceDue" bson:"balanceDue"`
	DoctorID    primitive.ObjectID `json:"doctorId" bson:"doctorId"`
	TimeModel   `bson:",inline"`
}

// ApplyDefaults fills the billing fields that were not supplied on creation.
func (c *Customer) ApplyDefaults() {
	if c.PaymentType == "" {
		c.PaymentType = constvars.PaymentTypePerSession
	}
}

func (c *Customer) IsMonthly() bool {
	return c.PaymentType == constvars.PaymentTypeMonthly
}

// CustomerBirthday is the projection served by the birthday listing.
type CustomerBirthday struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id"`
	Name     string             `json:"name" bson:"name"`
	Birthday *time.Time         `json:"birthday,omitempty" bson:"birthday,omitempty"`
}
