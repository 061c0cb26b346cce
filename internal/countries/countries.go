// Package countries provides the canonical ISO-3166 country list used to
// complete extracted format tables.
package countries

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"
)

//go:embed iso3166.txt
var iso3166Data string

// Country is a canonical country code with its display name.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Source supplies the canonical country list.
type Source interface {
	Countries(ctx context.Context) ([]Country, error)
}

var (
	codeToName map[string]string
	embedded   []Country
	once       sync.Once
)

func init() {
	loadData()
}

func loadData() {
	once.Do(func() {
		list, _ := parse(iso3166Data)
		embedded = list
		codeToName = make(map[string]string, len(list))
		for _, c := range list {
			codeToName[c.Code] = c.Name
		}
	})
}

// parse reads "CODE,Name" or bare "CODE" lines. Blank lines and lines starting
// with '#' are skipped, as are codes that are not two characters long.
func parse(content string) ([]Country, error) {
	var result []Country
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		code, name, _ := strings.Cut(line, ",")
		code = strings.ToUpper(strings.TrimSpace(code))
		if len(code) != 2 {
			continue
		}
		result = append(result, Country{Code: code, Name: strings.TrimSpace(name)})
	}
	return result, scanner.Err()
}

// GetName returns the country name for the given ISO-3166 alpha-2 code.
// Returns empty string if not found.
func GetName(code string) string {
	return codeToName[strings.ToUpper(code)]
}

// IsValid checks if the given code is in the embedded list.
func IsValid(code string) bool {
	_, ok := codeToName[strings.ToUpper(code)]
	return ok
}

// AllCodes returns all embedded codes (uppercase).
func AllCodes() []string {
	result := make([]string, len(embedded))
	for i, c := range embedded {
		result[i] = c.Code
	}
	return result
}

// Unknown returns the codes of list that are not in the embedded list, in order.
func Unknown(list []Country) []string {
	var result []string
	for _, c := range list {
		if !IsValid(c.Code) {
			result = append(result, c.Code)
		}
	}
	return result
}

// Count returns the number of embedded countries.
func Count() int {
	return len(embedded)
}

// EmbeddedSource serves the list compiled into the binary.
type EmbeddedSource struct{}

// Countries returns a copy of the embedded list.
func (EmbeddedSource) Countries(ctx context.Context) ([]Country, error) {
	result := make([]Country, len(embedded))
	copy(result, embedded)
	return result, nil
}

// FileSource reads a country list from a file with one "CODE,Name" or "CODE" per line.
// Missing names are filled from the embedded list.
type FileSource struct {
	Path string
}

// Countries reads and parses the file.
func (s FileSource) Countries(ctx context.Context) ([]Country, error) {
	content, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read countries file: %w", err)
	}
	return LoadFromFile(string(content))
}

// LoadFromFile parses country file content.
func LoadFromFile(content string) ([]Country, error) {
	list, err := parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse countries file: %w", err)
	}
	for i := range list {
		if list[i].Name == "" {
			list[i].Name = GetName(list[i].Code)
		}
	}
	return list, nil
}
