package form

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/OliveiraRafael10/automacao-formulario/internal/domain/phone"
)

// RulePhoneMask is the validator tag accepting a fully masked phone number,
// either "(DD) DDDD-DDDD" or "(DD) DDDDD-DDDD".
const RulePhoneMask = "phone_mask"

// Checker evaluates field rules. It plays the role of the browser's
// constraint validation for declared field rules. Safe for concurrent use.
type Checker struct {
	validate *validator.Validate
}

// NewChecker creates a Checker with the form's custom rules registered.
func NewChecker() (*Checker, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation(RulePhoneMask, func(fl validator.FieldLevel) bool {
		return phone.IsComplete(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("registering %s: %w", RulePhoneMask, err)
	}

	return &Checker{validate: v}, nil
}

// MustChecker is like NewChecker but panics on error. For tests and
// package-level wiring only.
func MustChecker() *Checker {
	c, err := NewChecker()
	if err != nil {
		panic(err)
	}
	return c
}

// Satisfies reports whether value passes rule. An empty rule always passes.
func (c *Checker) Satisfies(value, rule string) bool {
	if rule == "" {
		return true
	}
	return c.validate.Var(value, rule) == nil
}

// CheckRule reports an error if rule is not a usable validator tag. The
// validator panics on unknown tags, so rules are vetted once when a form is
// built rather than on every blur.
func (c *Checker) CheckRule(rule string) (err error) {
	if rule == "" {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid rule %q: %v", rule, r)
		}
	}()
	_ = c.validate.Var("", rule)
	return nil
}
