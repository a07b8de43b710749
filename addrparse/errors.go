package addrparse

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedText = errors.New("malformed address text")

	ErrFamilyMismatch = errors.New("address family mismatch")

	ErrZoneUnsupported = errors.New("zoned address literal not supported")
)

// ParseError records the input that failed along with the reason. The
// wrapped error always matches one of the package sentinels via errors.Is.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
