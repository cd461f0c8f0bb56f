package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// validate reports fields by their koanf key so messages match the YAML.
var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
})

// Validate checks every constraint and returns one error per violation,
// joined.
func (c *Config) Validate() error {
	err := validate().Struct(c)

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, describe(fe))
	}
	return errors.Join(errs...)
}

// describe renders fe as "<key> <problem>, got <value>".
func describe(fe validator.FieldError) error {
	// Namespace is "Config.server.port"; drop the root type.
	_, key, _ := strings.Cut(fe.Namespace(), ".")

	var problem string
	switch fe.Tag() {
	case "required", "required_if", "required_unless":
		problem = "must be set"
	case "oneof":
		problem = "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min", "gte":
		problem = "must be >= " + fe.Param()
	case "max", "lte":
		problem = "must be <= " + fe.Param()
	case "gt":
		problem = "must be > " + fe.Param()
	case "gtefield":
		problem = "must not be less than " + fe.Param()
	case "http_url":
		problem = "must be an http(s) URL"
	default:
		problem = "fails " + fe.Tag()
	}
	return fmt.Errorf("%s %s, got %v", key, problem, fe.Value())
}
