package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/hightemp/zipzap/internal/countries"
	"github.com/hightemp/zipzap/postalcode"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats <country>",
	Short: "Show the postal code formats of a country",
	Long: `Shows the postal code formats known for a country. '#' stands for a digit,
'@' for a letter; every other character must appear as written.

A country without formats accepts any postal code.`,
	Args: cobra.ExactArgs(1),
	RunE: runFormats,
}

var nameCmd = &cobra.Command{
	Use:   "name <country>",
	Short: "Show what postal codes are called in a country",
	Args:  cobra.ExactArgs(1),
	RunE:  runName,
}

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List every country in the format table",
	Long: `Lists every country in the format table with its formats. With --missing,
lists the ISO 3166 countries the table has no entry for instead.`,
	Args: cobra.NoArgs,
	RunE: runCountries,
}

var showMissing bool

func init() {
	countriesCmd.Flags().BoolVar(&showMissing, "missing", false, "list ISO 3166 countries absent from the format table")
}

type countryInfo struct {
	Code    string   `json:"code"`
	Name    string   `json:"name,omitempty"`
	Formats []string `json:"formats"`
}

func runFormats(cmd *cobra.Command, args []string) error {
	country := args[0]
	formats, err := validator.Formats(country)
	if err != nil {
		return unknownCountry(err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return writeJSON(cmd, countryInfo{Code: country, Name: countries.GetName(country), Formats: formats})
	}

	if len(formats) == 0 {
		fmt.Fprintf(out, "%s has no known postal code format; any code is accepted\n", country)
		return nil
	}
	for _, f := range formats {
		fmt.Fprintln(out, f)
	}
	return nil
}

func runName(cmd *cobra.Command, args []string) error {
	country := args[0]
	info, ok := validator.DisplayNameInfo(country)
	if !ok {
		info = postalcode.NameInfo{Name: validator.DisplayName(country)}
	}

	if jsonOutput {
		return writeJSON(cmd, info)
	}

	line := info.Name
	if info.Description != "" {
		line += color.New(color.Faint).Sprintf(" (%s)", info.Description)
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}

func runCountries(cmd *cobra.Command, args []string) error {
	if showMissing {
		return runMissingCountries(cmd)
	}

	codes := validator.Countries()
	list := make([]countryInfo, 0, len(codes))
	for _, code := range codes {
		formats, err := validator.Formats(code)
		if err != nil {
			return err
		}
		list = append(list, countryInfo{Code: code, Name: countries.GetName(code), Formats: formats})
	}

	if jsonOutput {
		return writeJSON(cmd, list)
	}

	out := cmd.OutOrStdout()
	for _, c := range list {
		fmt.Fprintf(out, "%s\t%-40s\t%s\n", c.Code, c.Name, strings.Join(c.Formats, ", "))
	}
	return nil
}

func runMissingCountries(cmd *cobra.Command) error {
	missing := missingCountries()

	if jsonOutput {
		list := make([]countries.Country, len(missing))
		for i, code := range missing {
			list[i] = countries.Country{Code: code, Name: countries.GetName(code)}
		}
		return writeJSON(cmd, list)
	}

	out := cmd.OutOrStdout()
	for _, code := range missing {
		fmt.Fprintf(out, "%s\t%s\n", code, countries.GetName(code))
	}
	fmt.Fprintf(out, "%d of %d ISO 3166 countries missing from the format table\n", len(missing), countries.Count())
	return nil
}

// missingCountries returns the embedded ISO 3166 codes without a table entry.
func missingCountries() []string {
	var missing []string
	for _, code := range countries.AllCodes() {
		if !validator.HasCountry(code) {
			missing = append(missing, code)
		}
	}
	return missing
}

func unknownCountry(err error) error {
	if errors.Is(err, postalcode.ErrUnknownCountry) {
		exitWithCode(ExitInvalidInput, fmt.Sprintf("Error: %v", err))
		return nil
	}
	return err
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
