package validation

import (
	"errors"
	"fmt"
	"strings"

	"grocery/internal/domain/model"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// ValidateRequest checks the struct tags of a request. Field failures come back as an
// INVALID_INPUT business error that still wraps validator.ValidationErrors.
func (v *Validator) ValidateRequest(req any) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}
	var invalidErr *validator.InvalidValidationError
	if errors.As(err, &invalidErr) {
		return err
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation failed: %w", err)
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	be := model.NewBusinessError(model.KindInvalidInput, "Invalid request: "+strings.Join(parts, ", "))
	return fmt.Errorf("%w: %w", be, err)
}
