package validator

import (
	"github.com/go-playground/validator/v10"
)

const (
	MinAllowedMinutes = 0
	MaxAllowedMinutes = 180
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	RegisterCustomValidations(validate)
}

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("allowed_minutes", validateAllowedMinutes)
}

func validateAllowedMinutes(fl validator.FieldLevel) bool {
	m := fl.Field().Int()
	return m >= MinAllowedMinutes && m <= MaxAllowedMinutes
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
