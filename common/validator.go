package common

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct checks payload against its validate tags and converts any
// violation into a ValidationFailure. Validation never reaches the network.
func ValidateStruct(payload interface{}) error {
	if err := validate.Struct(payload); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		return NewAppError(KindValidationFailure, validationErrors.Error(), err)
	}
	return nil
}
