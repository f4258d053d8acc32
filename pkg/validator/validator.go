package validator

import (
	"go-cozypos/internal/model"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// "required" cannot see through the day-precision Date column type, so
	// dates get their own rule.
	validate.RegisterValidation("date_required", func(fl validator.FieldLevel) bool {
		if d, ok := fl.Field().Interface().(model.Date); ok {
			return !d.IsZero()
		}
		return false
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}
