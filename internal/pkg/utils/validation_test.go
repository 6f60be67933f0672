package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyRequiredFields(t *testing.T) {
	t.Run("Nil Values Are Reported In Order", func(t *testing.T) {
		name := "John"
		var age *int

		missing := VerifyRequiredFields(
			RequiredField{Name: "name", Value: &name},
			RequiredField{Name: "age", Value: age},
			RequiredField{Name: "email", Value: nil},
		)

		assert.Equal(t, []string{"age", "email"}, missing)
	})

	t.Run("Zero Values Count As Present", func(t *testing.T) {
		empty := ""
		zero := 0.0
		no := false

		missing := VerifyRequiredFields(
			RequiredField{Name: "name", Value: &empty},
			RequiredField{Name: "amount", Value: &zero},
			RequiredField{Name: "active", Value: &no},
			RequiredField{Name: "raw", Value: ""},
		)

		assert.Empty(t, missing)
	})

	t.Run("All Missing", func(t *testing.T) {
		var name, email *string

		missing := VerifyRequiredFields(
			RequiredField{Name: "name", Value: name},
			RequiredField{Name: "email", Value: email},
			RequiredField{Name: "password", Value: nil},
		)

		assert.Equal(t, []string{"name", "email", "password"}, missing)
	})

	t.Run("No Fields", func(t *testing.T) {
		assert.Empty(t, VerifyRequiredFields())
	})
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		CustomerID  string `json:"customerId" validate:"mongoid"`
		PaymentType string `json:"paymentType" validate:"oneof=monthly per_session"`
	}

	t.Run("Valid Payload", func(t *testing.T) {
		err := ValidateStruct(payload{CustomerID: "65f1c2a3b4d5e6f708192a3b", PaymentType: "monthly"})
		assert.NoError(t, err)
	})

	t.Run("Invalid Enum", func(t *testing.T) {
		err := ValidateStruct(payload{CustomerID: "65f1c2a3b4d5e6f708192a3b", PaymentType: "yearly"})
		assert.Error(t, err)
	})

	t.Run("Invalid Object ID", func(t *testing.T) {
		err := ValidateStruct(payload{CustomerID: "not-an-id", PaymentType: "monthly"})
		assert.Error(t, err)
	})
}
