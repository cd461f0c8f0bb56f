package form

import (
	"errors"
	"fmt"
)

// Names of the fields of the registration form.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
)

// Layout describes a form: its ordered fields and the roles some of them play.
type Layout struct {
	Fields []Definition
	// Password and Confirmation name the pair compared on submission.
	Password     string
	Confirmation string
	// Phone names the field masked on every keystroke. Optional.
	Phone string
}

// Registration returns the layout of the registration form.
func Registration() Layout {
	return Layout{
		Fields: []Definition{
			{Name: FieldName, Label: "Full name", Rule: "required,min=3,max=100"},
			{Name: FieldEmail, Label: "E-mail", Rule: "required,email,max=255"},
			{Name: FieldPhone, Label: "Phone", Rule: "required," + RulePhoneMask},
			{Name: FieldPassword, Label: "Password", Rule: "required,min=6,max=72", Secret: true},
			{Name: FieldConfirmPassword, Label: "Confirm password", Rule: "required,min=6,max=72", Secret: true},
		},
		Password:     FieldPassword,
		Confirmation: FieldConfirmPassword,
		Phone:        FieldPhone,
	}
}

// Validate checks the layout for structural errors.
func (l Layout) Validate() error {
	if len(l.Fields) == 0 {
		return errors.New("form: layout has no fields")
	}

	var errs []error
	seen := make(map[string]bool, len(l.Fields))
	for i, d := range l.Fields {
		if d.Name == "" {
			errs = append(errs, fmt.Errorf("form: field %d has no name", i))
			continue
		}
		if seen[d.Name] {
			errs = append(errs, fmt.Errorf("form: duplicate field %q", d.Name))
		}
		seen[d.Name] = true
	}

	if !seen[l.Password] {
		errs = append(errs, fmt.Errorf("form: password field %q not in layout", l.Password))
	}
	if !seen[l.Confirmation] {
		errs = append(errs, fmt.Errorf("form: confirmation field %q not in layout", l.Confirmation))
	}
	if l.Password == l.Confirmation {
		errs = append(errs, errors.New("form: password and confirmation must be different fields"))
	}
	if l.Phone != "" && !seen[l.Phone] {
		errs = append(errs, fmt.Errorf("form: phone field %q not in layout", l.Phone))
	}

	return errors.Join(errs...)
}
