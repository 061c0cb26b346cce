// Package postalcode validates postal codes against per-country format templates
// and reports what each country calls its postal code.
//
// Templates use '#' for a digit and '@' for a letter; every other character is
// literal and the whole input must match. A country with no templates accepts
// any code, including the empty string:
//
//	ok, err := postalcode.IsValid("US", "81301", false) // true, nil
//	ok, err = postalcode.IsValid("CZ", "60200", true)   // true, nil: spaces optional
//	_, err = postalcode.IsValid("XX", "1234", false)    // *UnknownCountryError
//
// All functions are safe for concurrent use.
package postalcode
