// Package output handles output formatting.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ValidationResult is the outcome of validating one postal code.
type ValidationResult struct {
	Country     string   `json:"country"`
	PostalCode  string   `json:"postal_code"`
	Valid       bool     `json:"valid"`
	DisplayName string   `json:"display_name,omitempty"`
	Formats     []string `json:"formats,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// Verdict is VALID or INVALID, colored when the terminal supports it.
func (r *ValidationResult) Verdict() string {
	if r.Valid {
		return color.GreenString("VALID")
	}
	return color.RedString("INVALID")
}

// FormatText formats result as tab-separated text.
func (r *ValidationResult) FormatText() string {
	if r.Error != "" {
		return fmt.Sprintf("%s\t%s\t-\tERROR: %s", r.Country, r.PostalCode, r.Error)
	}

	return fmt.Sprintf("%s\t%s\t%s\t%s",
		r.Country,
		r.PostalCode,
		r.Verdict(),
		r.DisplayName,
	)
}

// FormatJSON formats result as JSON.
func (r *ValidationResult) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// BatchResult contains results for batch processing.
type BatchResult struct {
	Results []*ValidationResult
}

// FormatText formats batch results as text (one line per result).
func (b *BatchResult) FormatText() string {
	var lines []string
	for _, r := range b.Results {
		lines = append(lines, r.FormatText())
	}
	return strings.Join(lines, "\n")
}

// FormatJSON formats batch results as JSON array.
func (b *BatchResult) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(b.Results, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Valid counts the valid results.
func (b *BatchResult) Valid() int {
	n := 0
	for _, r := range b.Results {
		if r.Valid {
			n++
		}
	}
	return n
}
