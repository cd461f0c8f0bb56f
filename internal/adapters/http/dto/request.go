package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/OliveiraRafael10/automacao-formulario/internal/domain"
)

// InputRequest is the JSON body of a field input event. Value is the whole
// current text of the field, as a browser input event reports it.
type InputRequest struct {
	Value *string `json:"value" validate:"required,max=1024"`
}

// Validate checks that a value was sent.
// Returns a *domain.ValidationError if any checks fail.
func (r *InputRequest) Validate() error {
	return validateStruct(r)
}

// MaskRequest is the JSON body of a phone mask request.
type MaskRequest struct {
	Value *string `json:"value" validate:"required,max=1024"`
}

// Validate checks that a value was sent.
// Returns a *domain.ValidationError if any checks fail.
func (r *MaskRequest) Validate() error {
	return validateStruct(r)
}

var validate = newValidator()

// newValidator returns a validator that reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct's validate tags and converts failures into a
// *domain.ValidationError keyed by JSON field name.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return domain.MsgRequired
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "failed " + fe.Tag()
	}
}
