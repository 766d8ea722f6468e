package models

import (
	"github.com/go-playground/validator/v10"
)

type choice interface {
	Valid() bool
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// "choice" accepts any field whose type reports its own domain through Valid().
	_ = v.RegisterValidation("choice", func(fl validator.FieldLevel) bool {
		c, ok := fl.Field().Interface().(choice)
		return ok && c.Valid()
	})
	return v
}

// Validate checks the struct tags of a model before it is written.
func Validate(m interface{}) error {
	return validate.Struct(m)
}
