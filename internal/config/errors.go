package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError is returned by Load when the file parses but breaks a
// validate:"..." rule.
//
// Error() turns each validator.FieldError into a plain English sentence
// and joins them with ", ":
//
//	invalid config: field Env must be one of [dev staging prod], field Phones[0] must be a 10-digit phone number
//
// The original validator.ValidationErrors stays reachable through
// errors.As for callers that want the raw field list.
type ValidationError struct {
	Errs validator.ValidationErrors
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errs))

	for _, fe := range e.Errs {
		switch fe.ActualTag() {
		// "required" tag — field was missing or empty
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", fe.Field()))
		// "oneof" tag — value outside the allowed set
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("field %s must be one of [%s]", fe.Field(), fe.Param()))
		// "len" and "number" only appear on phone entries
		case "len", "number":
			msgs = append(msgs, fmt.Sprintf("field %s must be a 10-digit phone number", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", fe.Field()))
		}
	}

	return "invalid config: " + strings.Join(msgs, ", ")
}

func (e *ValidationError) Unwrap() error { return e.Errs }
