package geoparse

import (
	"errors"
	"fmt"
)

// FormatName is reported by ParseError for every unrecognized input.
const FormatName = "coordinate"

var (
	ErrUnrecognizedFormat = errors.New("the format of the coordinate could not be determined")
	ErrInvalidPrecision   = errors.New("precision must be a positive finite number")

	errNoMatch = errors.New("input does not match grammar")
)

// ParseError is returned when no grammar accepts the input. Value holds the
// text exactly as the caller passed it.
type ParseError struct {
	Value  string
	Format string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnrecognizedFormat.Error(), e.Value)
}

func (e *ParseError) Unwrap() error {
	return ErrUnrecognizedFormat
}
