package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid wraps every configuration validation failure.
var ErrInvalid = errors.New("invalid configuration")

var validate = validator.New()

// FieldError describes one rejected configuration field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	fieldErrs := validateStruct(cfg)
	if len(fieldErrs) == 0 {
		return nil
	}
	msgs := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		msgs[i] = fe.String()
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func validateStruct(s interface{}) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "config", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		param := fe.Param()

		var message string
		switch fe.Tag() {
		case "required":
			message = "is required"
		case "required_if":
			message = fmt.Sprintf("is required when %s", param)
		case "oneof":
			message = fmt.Sprintf("must be one of [%s]", param)
		case "gt":
			message = fmt.Sprintf("must be greater than %s", param)
		case "gte":
			message = fmt.Sprintf("must be at least %s", param)
		case "lte":
			message = fmt.Sprintf("must be at most %s", param)
		case "ip":
			message = "must be an IP address"
		default:
			message = "is invalid"
		}

		out = append(out, FieldError{Field: field, Message: message})
	}
	return out
}
