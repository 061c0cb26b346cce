package postalcode

// Validator answers postal code queries against the built-in format table.
type Validator struct {
	table    *table
	patterns *patternCache
}

// New returns a Validator backed by the built-in format table.
func New() *Validator {
	return &Validator{
		table:    defaultTable,
		patterns: newPatternCache(),
	}
}

// IsValid reports whether postalCode matches one of the country's templates.
// Countries without templates accept every code. When ignoreSpaces is set, spaces
// in a template become optional in the input; hyphens and other literals stay
// mandatory.
func (v *Validator) IsValid(countryCode, postalCode string, ignoreSpaces bool) (bool, error) {
	templates, ok := v.table.lookup(countryCode)
	if !ok {
		return false, &UnknownCountryError{Code: countryCode}
	}

	if len(templates) == 0 {
		return true, nil
	}

	for _, tpl := range templates {
		if v.patterns.Get(tpl, ignoreSpaces).MatchString(postalCode) {
			return true, nil
		}
	}

	return false, nil
}

// Formats returns a copy of the country's templates in table order. An empty,
// non-nil slice means the country has no known format.
func (v *Validator) Formats(countryCode string) ([]string, error) {
	templates, ok := v.table.lookup(countryCode)
	if !ok {
		return nil, &UnknownCountryError{Code: countryCode}
	}

	result := make([]string, len(templates))
	copy(result, templates)
	return result, nil
}

// HasCountry reports whether the country is in the format table.
func (v *Validator) HasCountry(countryCode string) bool {
	_, ok := v.table.lookup(countryCode)
	return ok
}

// DisplayName returns the local name for postal codes in the country, or
// DefaultDisplayName when none is configured. Unknown countries are not an error.
func (v *Validator) DisplayName(countryCode string) string {
	if name, ok := v.table.names[countryCode]; ok {
		return name.Name
	}
	return DefaultDisplayName
}

// DisplayNameInfo returns the configured name entry for the country, if any.
func (v *Validator) DisplayNameInfo(countryCode string) (NameInfo, bool) {
	name, ok := v.table.names[countryCode]
	return name, ok
}

// Countries returns every country code in the table, sorted.
func (v *Validator) Countries() []string {
	result := make([]string, len(v.table.codes))
	copy(result, v.table.codes)
	return result
}

var std = New()

// IsValid calls IsValid on the package default Validator.
func IsValid(countryCode, postalCode string, ignoreSpaces bool) (bool, error) {
	return std.IsValid(countryCode, postalCode, ignoreSpaces)
}

// Formats calls Formats on the package default Validator.
func Formats(countryCode string) ([]string, error) {
	return std.Formats(countryCode)
}

// HasCountry calls HasCountry on the package default Validator.
func HasCountry(countryCode string) bool {
	return std.HasCountry(countryCode)
}

// DisplayName calls DisplayName on the package default Validator.
func DisplayName(countryCode string) string {
	return std.DisplayName(countryCode)
}

// Countries calls Countries on the package default Validator.
func Countries() []string {
	return std.Countries()
}
