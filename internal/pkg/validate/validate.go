// Package validate checks API path parameters and request bodies.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// EntityIDMaxLen bounds ids taken from request paths.
const EntityIDMaxLen = 64

var structValidate *validator.Validate

func init() {
	structValidate = validator.New(validator.WithRequiredStructEnabled())
	structValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = structValidate.RegisterValidation("entityid", func(fl validator.FieldLevel) bool {
		return EntityID(fl.Field().String())
	})
}

// EntityID validates a device, link or fault id from a path: alphanumeric,
// hyphen or underscore, 1 to EntityIDMaxLen chars.
func EntityID(id string) bool {
	if id == "" || len(id) > EntityIDMaxLen {
		return false
	}
	for _, r := range id {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			continue
		}
		return false
	}
	return true
}

// FieldError describes one failed rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Error is returned by Struct when one or more fields fail validation.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Param != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", f.Field, f.Rule, f.Param))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Rule))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Details returns the failures keyed by field, for API error bodies.
func (e *Error) Details() map[string]interface{} {
	out := make(map[string]interface{}, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Rule
	}
	return out
}

// Struct validates v against its `validate` tags.
func Struct(v interface{}) error {
	err := structValidate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}
	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}
	return out
}
