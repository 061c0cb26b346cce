// Package batch handles batch postal code validation from stdin.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/hightemp/zipzap/internal/output"
	"github.com/hightemp/zipzap/postalcode"
)

// Processor validates "CC<TAB>code" lines.
type Processor struct {
	validator    *postalcode.Validator
	ignoreSpaces bool
	concurrency  int
}

// NewProcessor creates a new batch processor.
func NewProcessor(v *postalcode.Validator, ignoreSpaces bool, concurrency int) *Processor {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Processor{
		validator:    v,
		ignoreSpaces: ignoreSpaces,
		concurrency:  concurrency,
	}
}

// ProcessInput reads lines from input and writes results to output.
func (p *Processor) ProcessInput(ctx context.Context, r io.Reader, w io.Writer, jsonOutput bool) (*output.BatchResult, error) {
	scanner := bufio.NewScanner(r)
	batch := &output.BatchResult{}

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return batch, err
		}

		line := scanner.Text()
		if skipLine(line) {
			continue
		}

		result := p.processLine(line)
		batch.Results = append(batch.Results, result)

		// Stream text output line by line
		if !jsonOutput {
			fmt.Fprintln(w, result.FormatText())
		}
	}

	if err := scanner.Err(); err != nil {
		return batch, err
	}

	if jsonOutput {
		return batch, writeJSON(w, batch)
	}
	return batch, nil
}

// ProcessInputConcurrent validates lines concurrently, preserving input order.
func (p *Processor) ProcessInputConcurrent(ctx context.Context, r io.Reader, w io.Writer, jsonOutput bool) (*output.BatchResult, error) {
	scanner := bufio.NewScanner(r)
	var lines []string

	for scanner.Scan() {
		if line := scanner.Text(); !skipLine(line) {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	results := make([]*output.ValidationResult, len(lines))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.concurrency)

	for i, line := range lines {
		sem <- struct{}{}
		wg.Add(1)
		go func(idx int, l string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[idx] = p.processLine(l)
		}(i, line)
	}

	wg.Wait()

	batch := &output.BatchResult{Results: results}
	if err := ctx.Err(); err != nil {
		return batch, err
	}

	if jsonOutput {
		return batch, writeJSON(w, batch)
	}
	for _, result := range results {
		fmt.Fprintln(w, result.FormatText())
	}
	return batch, nil
}

func writeJSON(w io.Writer, batch *output.BatchResult) error {
	if batch.Results == nil {
		batch.Results = []*output.ValidationResult{}
	}
	jsonStr, err := batch.FormatJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, jsonStr)
	return err
}

// skipLine reports whether a line is blank or a comment.
func skipLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

// ParseLine splits a line into country code and postal code. The separator is
// a tab, or the first space when the line has no tab. The postal code may be
// empty ("AE\t").
func ParseLine(line string) (country, code string, err error) {
	line = strings.TrimRight(line, "\r\n")
	country, code, ok := strings.Cut(line, "\t")
	if !ok {
		country, code, ok = strings.Cut(strings.TrimSpace(line), " ")
	}
	country = strings.TrimSpace(country)
	if !ok || country == "" {
		return "", "", fmt.Errorf("expected country code and postal code, got %q", strings.TrimSpace(line))
	}
	return country, strings.TrimSpace(code), nil
}

func (p *Processor) processLine(line string) *output.ValidationResult {
	country, code, err := ParseLine(line)
	if err != nil {
		return &output.ValidationResult{PostalCode: strings.TrimSpace(line), Error: err.Error()}
	}

	result := &output.ValidationResult{
		Country:    country,
		PostalCode: code,
	}

	valid, err := p.validator.IsValid(country, code, p.ignoreSpaces)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Valid = valid
	result.DisplayName = p.validator.DisplayName(country)
	return result
}
