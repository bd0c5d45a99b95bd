// Package validator wires go-playground/validator into echo.
package validator

import (
	domainerrors "tiffin/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator over struct tags.
type Validator struct {
	validate *validator.Validate
}

// New creates the request validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks the bound request struct and converts failures into the
// shared validation error so every form reports the same way.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
