package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates the tank has no readings at all.
	ErrNotFound = errors.New("reading not found")

	// ErrInvalidPeriod matches any *InvalidPeriodError via errors.Is.
	ErrInvalidPeriod = errors.New("invalid period")
)

// InvalidPeriodError carries the rejected value and the accepted ones.
type InvalidPeriodError struct {
	Value   string
	Allowed []string
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid period %q (allowed: %s)", e.Value, strings.Join(e.Allowed, ", "))
}

func (e *InvalidPeriodError) Is(target error) bool {
	return target == ErrInvalidPeriod
}
