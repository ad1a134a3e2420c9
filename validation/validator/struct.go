package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ncobase/taskbridge/validation"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
}

// errorMessages maps validation tags to message templates.
var errorMessages = map[string]string{
	"required": "%s is required",
	"min":      "%s must be at least %s",
	"max":      "%s must be at most %s",
	"gte":      "%s must be greater than or equal to %s",
	"lte":      "%s must be less than or equal to %s",
	"oneof":    "%s must be one of [%s]",
	"datetime": "%s must use the layout %s",
}

// parseMessage builds a readable message for a failed tag.
func parseMessage(field string, e validator.FieldError) string {
	if msg, ok := errorMessages[e.Tag()]; ok {
		switch strings.Count(msg, "%s") {
		case 1:
			return fmt.Sprintf(msg, field)
		case 2:
			return fmt.Sprintf(msg, field, e.Param())
		}
	}
	return fmt.Sprintf("%s is invalid: %s", field, e.Tag())
}

// codeFor maps a failed tag to a validation code.
func codeFor(tag string) validation.Code {
	if tag == "required" {
		return validation.MissingField
	}
	return validation.InvalidValue
}

// fieldPath strips the root struct name from a validator namespace,
// "RepetitionRule.daysOfWeek[2]" becomes "daysOfWeek[2]".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// Struct validates s against its `validate` tags and returns one finding per
// failed constraint, with dotted JSON field paths relative to s.
func Struct(s any) []validation.Error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []validation.Error{{
			Code:    validation.InvalidValue,
			Message: err.Error(),
		}}
	}

	out := make([]validation.Error, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		field := fieldPath(e.Namespace())
		out = append(out, validation.Error{
			Code:    codeFor(e.Tag()),
			Field:   field,
			Message: parseMessage(field, e),
		})
	}
	return out
}

// Var validates a single value against tag, reporting failures on field.
func Var(field string, value any, tag string) []validation.Error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []validation.Error{{Code: validation.InvalidValue, Field: field, Message: err.Error()}}
	}
	out := make([]validation.Error, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		out = append(out, validation.Error{
			Code:    codeFor(e.Tag()),
			Field:   field,
			Message: parseMessage(field, e),
		})
	}
	return out
}
