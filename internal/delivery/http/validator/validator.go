// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can validate bound request bodies.
package validator

import (
	"github.com/go-playground/validator/v10"

	domainerrors "github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/errors"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the HTTP server.
func New() *echoValidator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags of a bound request body. Failures
// surface as the validation error of the application taxonomy so the
// error handler renders them uniformly.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
