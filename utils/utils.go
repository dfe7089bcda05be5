package utils

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
)

func ParseIntDefault(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Truncate caps s at n bytes. Store error messages pass through here
// before they reach a response body.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// FieldError names one offending request field and the constraint it broke.
type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

// FieldErrors unpacks a gin binding failure into per-field detail. Returns
// nil when err is not a validator error (e.g. malformed JSON).
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Constraint: fe.Tag()})
	}
	return fields
}
