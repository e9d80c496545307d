package domain

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks the `validate` tags of a domain value.
func Validate(v any) error {
	return validate.Struct(v)
}
