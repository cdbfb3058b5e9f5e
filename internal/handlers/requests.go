package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/nfrund/specboard/internal/domain"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator with the application's custom
// tags registered.
func NewValidator() *CustomValidator {
	v := validator.New()
	// moduleid rejects anything that could reach outside the modules directory.
	_ = v.RegisterValidation("moduleid", func(fl validator.FieldLevel) bool {
		return domain.ValidIdentifier(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ModuleRequest is bound from the /api/:id path.
type ModuleRequest struct {
	ID string `param:"id" validate:"required,moduleid"`
}
