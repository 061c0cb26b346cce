package postalcode

import (
	"errors"
	"fmt"
)

// ErrUnknownCountry matches any *UnknownCountryError via errors.Is.
var ErrUnknownCountry = errors.New("unknown country")

// UnknownCountryError is returned when a country code is not in the format table.
type UnknownCountryError struct {
	Code string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("invalid country code: %q", e.Code)
}

// Is reports whether target is ErrUnknownCountry.
func (e *UnknownCountryError) Is(target error) bool {
	return target == ErrUnknownCountry
}
