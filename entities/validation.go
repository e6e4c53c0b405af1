package entities

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the validate tags of s and returns the failed fields in declaration order.
// A nil result means s is valid.
func ValidateStruct(s interface{}) validator.ValidationErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok {
		return errs
	}
	return nil
}

// HasFailedTag reports whether any field failed the given validation tag
func HasFailedTag(errs validator.ValidationErrors, tag string) bool {
	for _, fieldErr := range errs {
		if fieldErr.Tag() == tag {
			return true
		}
	}
	return false
}
