package extract

import "strings"

// noCodes marks a cell saying the country has no codes of that kind.
const noCodes = "- no codes -"

// countryPlaceholder stands for the country's own code in the source notation.
const countryPlaceholder = "CC"

var notation = strings.NewReplacer("N", "#", "A", "@")

// SplitCodes turns a comma-separated area or street cell into templates. The
// source notation's N (digit) and A (letter) become # and @, then CC becomes
// countryCode. Empty parts and the "- no codes -" sentinel are dropped.
func SplitCodes(cell, countryCode string) []string {
	var codes []string
	for _, part := range strings.Split(cell, ",") {
		part = strings.TrimSpace(part)
		if part == "" || part == noCodes {
			continue
		}
		part = notation.Replace(part)
		if countryCode != "" {
			part = strings.ReplaceAll(part, countryPlaceholder, countryCode)
		}
		codes = append(codes, part)
	}
	return codes
}
