package postalcode

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidKnownCodes(t *testing.T) {
	tests := []struct {
		country string
		code    string
	}{
		{"GB", "TN1 2GE"},
		{"GB", "BD16 3QA"},
		{"GB", "tn1 2ge"},
		{"CH", "3007"},
		{"DE", "50672"},
		{"PT", "2765-073"},
		{"JP", "155-0031"},
		{"US", "81301"},
		{"US", "81301-1234"},
		{"EE", "10123"},
		{"RU", "624800"},
		{"BE", "1620"},
		{"IT", "00146"},
		{"FI", "00160"},
		{"SE", "113 37"},
		{"CZ", "602 00"},
		{"CA", "K1A 0B1"},
		{"NL", "1012 AB"},
		{"BR", "01310-100"},
		{"AR", "C1425ABC"},
		{"IE", "A65 F4E2"},
	}

	v := New()
	for _, tc := range tests {
		t.Run(tc.country+"/"+tc.code, func(t *testing.T) {
			ok, err := v.IsValid(tc.country, tc.code, false)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestIsValidRejects(t *testing.T) {
	tests := []struct {
		country string
		code    string
	}{
		{"DE", "5067"},
		{"DE", "506721"},
		{"DE", "5067a"},
		{"DE", " 50672"},
		{"DE", "50672\n"},
		{"US", "8130"},
		{"US", "81301-123"},
		{"JP", "1550031"},
		{"CZ", "60200"},
		{"GB", "TN1-2GE"},
		{"DE", ""},
	}

	v := New()
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s/%q", tc.country, tc.code), func(t *testing.T) {
			ok, err := v.IsValid(tc.country, tc.code, false)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestIsValidIgnoreSpaces(t *testing.T) {
	v := New()

	ok, err := v.IsValid("CZ", "60200", false)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = v.IsValid("CZ", "60200", true)
	require.NoError(t, err)
	assert.True(t, ok)

	for _, ignore := range []bool{false, true} {
		ok, err = v.IsValid("CZ", "602 00", ignore)
		require.NoError(t, err)
		assert.True(t, ok, "ignoreSpaces=%v", ignore)
	}

	// Hyphens stay mandatory.
	ok, err = v.IsValid("JP", "1550031", true)
	require.NoError(t, err)
	assert.False(t, ok)

	// Only one optional space per template space.
	ok, err = v.IsValid("CZ", "602  00", true)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = v.IsValid("LC", "LC12345", true)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsValidEmptyFormatSetAcceptsAnything(t *testing.T) {
	v := New()
	inputs := []string{"", "anything", "12345", "  ", "!@#$%"}

	var empty int
	for _, code := range v.Countries() {
		formats, err := v.Formats(code)
		require.NoError(t, err)
		if len(formats) != 0 {
			continue
		}
		empty++

		for _, in := range inputs {
			ok, err := v.IsValid(code, in, false)
			require.NoError(t, err)
			assert.True(t, ok, "%s should accept %q", code, in)
		}
	}

	assert.Greater(t, empty, 50)
}

func TestIsValidUnknownCountry(t *testing.T) {
	v := New()

	for _, code := range []string{"XX", "XXXXXX", "", "us"} {
		ok, err := v.IsValid(code, "anything", false)
		assert.False(t, ok)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownCountry))

		var unknown *UnknownCountryError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, code, unknown.Code)
	}
}

func TestCountryPlaceholderExpanded(t *testing.T) {
	v := New()

	formats, err := v.Formats("AD")
	require.NoError(t, err)
	assert.Equal(t, []string{"AD###"}, formats)

	tests := []struct {
		country string
		code    string
		want    bool
	}{
		{"AD", "AD100", true},
		{"AD", "CC100", false},
		{"HN", "HN12345", true},
		{"LT", "LT-12345", true},
		{"LT", "CC-12345", false},
		{"MD", "MD2001", true},
		{"MD", "MD-2001", true},
		{"IM", "IM1 1AA", true},
		{"PE", "PE 1234", true},
	}

	for _, tc := range tests {
		ok, err := v.IsValid(tc.country, tc.code, false)
		require.NoError(t, err)
		assert.Equal(t, tc.want, ok, "%s %q", tc.country, tc.code)
	}

	for _, code := range v.Countries() {
		formats, err := v.Formats(code)
		require.NoError(t, err)
		for _, f := range formats {
			assert.NotContains(t, f, countryPlaceholder, "%s template %q", code, f)
		}
	}
}

func TestFormats(t *testing.T) {
	v := New()

	formats, err := v.Formats("US")
	require.NoError(t, err)
	assert.Equal(t, []string{"#####", "#####-####"}, formats)

	formats, err = v.Formats("AE")
	require.NoError(t, err)
	assert.NotNil(t, formats)
	assert.Empty(t, formats)

	_, err = v.Formats("invalid_country_code")
	assert.ErrorIs(t, err, ErrUnknownCountry)
}

func TestFormatsReturnsCopy(t *testing.T) {
	v := New()

	formats, err := v.Formats("US")
	require.NoError(t, err)
	formats[0] = "changed"

	again, err := v.Formats("US")
	require.NoError(t, err)
	assert.Equal(t, "#####", again[0])
}

func TestIdempotent(t *testing.T) {
	v := New()

	for i := 0; i < 3; i++ {
		ok, err := v.IsValid("GB", "TN1 2GE", false)
		require.NoError(t, err)
		assert.True(t, ok)

		formats, err := v.Formats("GB")
		require.NoError(t, err)
		assert.Len(t, formats, 14)
	}
}

func TestHasCountry(t *testing.T) {
	v := New()

	assert.True(t, v.HasCountry("US"))
	assert.True(t, v.HasCountry("AE"))
	assert.False(t, v.HasCountry("XX"))
	assert.False(t, v.HasCountry("invalid_country_code"))
	assert.False(t, v.HasCountry(""))
}

func TestDisplayName(t *testing.T) {
	v := New()

	assert.Equal(t, "ZIP code", v.DisplayName("US"))
	assert.Equal(t, "PLZ", v.DisplayName("DE"))
	assert.Equal(t, "CEP", v.DisplayName("BR"))
	assert.Equal(t, "Postal Code", v.DisplayName("CA"))
	assert.Equal(t, "Postal Code", v.DisplayName("FR"))
	assert.Equal(t, "Postal Code", v.DisplayName("XX"))
	assert.Equal(t, "Postal Code", v.DisplayName("ZZ"))
	assert.Equal(t, "Postal Code", v.DisplayName("invalid_country_code"))

	info, ok := v.DisplayNameInfo("US")
	require.True(t, ok)
	assert.Equal(t, "Zone Improvement Plan", info.Description)

	_, ok = v.DisplayNameInfo("FR")
	assert.False(t, ok)
}

func TestDisplayNameInfoEntry(t *testing.T) {
	info, ok := New().DisplayNameInfo("DE")
	require.True(t, ok)
	assert.Equal(t, NameInfo{Name: "PLZ", Description: "Postleitzahl (Postal Routing Number)"}, info)
	assert.Equal(t, info.Name, DisplayName("DE"))
}

func TestPackageFunctionsMatchTable(t *testing.T) {
	tests := []struct {
		country      string
		code         string
		ignoreSpaces bool
		want         bool
	}{
		{"DE", "5067", false, false},
		{"DE", "50672", false, true},
		{"DE", "506721", false, false},
		{"CZ", "60200", false, false},
		{"CZ", "60200", true, true},
		{"JP", "1550031", false, false},
		{"JP", "1550031", true, false},
		{"AD", "AD123", false, true},
		{"AE", "", false, true},
	}

	for _, tt := range tests {
		got, err := IsValid(tt.country, tt.code, tt.ignoreSpaces)
		require.NoError(t, err, "%s %q", tt.country, tt.code)
		assert.Equal(t, tt.want, got, "%s %q ignoreSpaces=%v", tt.country, tt.code, tt.ignoreSpaces)
	}

	_, err := IsValid("XX", "1", false)
	assert.EqualError(t, err, `invalid country code: "XX"`)
}

func TestCountries(t *testing.T) {
	codes := Countries()

	assert.Len(t, codes, len(formatData))
	assert.IsNonDecreasing(t, codes)
	assert.Contains(t, codes, "US")
	assert.Contains(t, codes, "XK")

	codes[0] = "changed"
	assert.NotEqual(t, "changed", Countries()[0])
}

func TestPackageFunctions(t *testing.T) {
	ok, err := IsValid("US", "81301", false)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = IsValid("XX", "anything", false)
	assert.ErrorIs(t, err, ErrUnknownCountry)

	formats, err := Formats("US")
	require.NoError(t, err)
	assert.Equal(t, []string{"#####", "#####-####"}, formats)

	assert.True(t, HasCountry("US"))
	assert.False(t, HasCountry("XX"))
	assert.Equal(t, "ZIP code", DisplayName("US"))
	assert.Equal(t, "Postal Code", DisplayName("XX"))
}

func TestConcurrentValidation(t *testing.T) {
	v := New()
	countries := v.Countries()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for j := range countries {
				code := countries[(j+offset)%len(countries)]
				_, err := v.IsValid(code, "12345", offset%2 == 0)
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()

	ok, err := v.IsValid("CZ", "60200", true)
	require.NoError(t, err)
	assert.True(t, ok)
}
