package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterValidation("mongoid", validateMongoID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateMongoID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

// RequiredField pairs a field name with the value decoded for it.
type RequiredField struct {
	Name  string
	Value interface{}
}

// VerifyRequiredFields returns, in input order, the names of the fields whose
// value is absent. A nil interface or a nil pointer, map or slice is absent;
// zero values such as "", 0 and false are present.
func VerifyRequiredFields(fields ...RequiredField) []string {
	var missing []string
	for _, field := range fields {
		if isAbsent(field.Value) {
			missing = append(missing, field.Name)
		}
	}
	return missing
}

func isAbsent(value interface{}) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
