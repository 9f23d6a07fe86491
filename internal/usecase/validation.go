package usecase

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateSetOfferInput(input SetOfferInput) []ValidationError {
	var errors []ValidationError

	// a blank name is allowed; only an absent one is rejected
	if input.Name == nil {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	if input.ValueProps == nil {
		errors = append(errors, ValidationError{"value_props", "is required"})
	}

	if input.IdealUseCases == nil {
		errors = append(errors, ValidationError{"ideal_use_cases", "is required"})
	}

	return errors
}

func validationFailure(errs []ValidationError) *DomainError {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Error())
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: "validation failed: " + strings.Join(parts, ", "),
	}
}
