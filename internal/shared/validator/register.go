package validator

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("cannot obtain validator engine")
	}
	return v, nil
}

// RegisterAll registers all common validators defined in this package
// Domain-specific validators should be registered separately by each domain
func RegisterAll() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("get validator engine: %w", err)
	}

	// Register common validators
	if err := v.RegisterValidation("accesscode", ValidateAccessCode); err != nil {
		return fmt.Errorf("register accesscode validator: %w", err)
	}
	if err := v.RegisterValidation("levyyear", ValidateLevyYear); err != nil {
		return fmt.Errorf("register levyyear validator: %w", err)
	}
	if err := v.RegisterValidation("notblank", ValidateNotBlank); err != nil {
		return fmt.Errorf("register notblank validator: %w", err)
	}

	slog.Info("common validators registered", "validators", "accesscode,levyyear,notblank")
	return nil
}
