// Package emailvalidator checks email address syntax with go-playground's
// validator rules.
package emailvalidator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultRules accept RFC 5322 addresses no longer than the SMTP path limit.
const DefaultRules = "required,email,max=254"

type Validator struct {
	validate *validator.Validate
	rules    string
}

// New returns a Validator using DefaultRules.
func New() *Validator {
	return NewWithRules(DefaultRules)
}

// NewWithRules returns a Validator that applies the given validator tag.
func NewWithRules(rules string) *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		rules:    rules,
	}
}

// IsValid reports whether email satisfies the rules. An error is returned only
// when the rules cannot be evaluated.
func (v *Validator) IsValid(email string) (bool, error) {
	err := v.validate.Var(email, v.rules)
	if err == nil {
		return true, nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return false, nil
	}

	return false, fmt.Errorf("could not validate email: %w", err)
}
