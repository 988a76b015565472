package usecase

import (
	"errors"
	"strings"
)

var (
	ErrDonationNotFound = errors.New("donation not found")
	// ErrDonationAlreadyProcessed is returned when a settlement targets a
	// donation that has left the PENDING status.
	ErrDonationAlreadyProcessed = errors.New("donation has already been processed")
	ErrGoalNotFound             = errors.New("goal not found")
	ErrMemoNotRecognized        = errors.New("transfer memo does not contain a donation reference")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every rejected input field, in input order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
