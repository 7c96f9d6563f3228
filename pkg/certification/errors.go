package certification

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownField is returned when a patch names a field the record does not
	// carry.
	ErrUnknownField = errors.New("certification: unknown field")
	// ErrInvalidOption is returned when an enumerated field receives a value
	// outside its allowed set.
	ErrInvalidOption = errors.New("certification: value is not an allowed option")
	// ErrInvalidDate is returned when a date field cannot be parsed.
	ErrInvalidDate = errors.New("certification: invalid date")
	// ErrInvalidNumber is returned when a numeric field receives non-digits.
	ErrInvalidNumber = errors.New("certification: invalid number")
)

// FieldError reports a rejected patch value.
type FieldError struct {
	Field Field
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %q value %q", e.Err, e.Field, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Reason is a short message suitable for showing next to the control.
func (e *FieldError) Reason() string {
	switch {
	case errors.Is(e.Err, ErrInvalidOption):
		return "Choose one of: " + strings.Join(Options(e.Field), ", ")
	case errors.Is(e.Err, ErrInvalidDate):
		return "Enter a date as YYYY-MM-DD"
	case errors.Is(e.Err, ErrInvalidNumber):
		return "Enter a whole number"
	case errors.Is(e.Err, ErrUnknownField):
		return "Unknown field"
	default:
		return e.Err.Error()
	}
}
