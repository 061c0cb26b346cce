package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hightemp/zipzap/internal/batch"
	"github.com/hightemp/zipzap/internal/output"
	"github.com/hightemp/zipzap/postalcode"
	"github.com/spf13/cobra"
)

var (
	ignoreSpaces bool
	concurrent   bool
)

func runValidate(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 2:
		return validateSingle(cmd, args[0], args[1])
	case 1:
		exitWithCode(ExitInvalidInput, "Error: expected a country code and a postal code")
		return nil
	}

	// stdin is a terminal, show help
	if !isBatchMode() {
		return cmd.Help()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	processor := batch.NewProcessor(validator, ignoreSpaces, cfg.Batch.Concurrency)
	var (
		result *output.BatchResult
		err    error
	)
	if concurrent {
		result, err = processor.ProcessInputConcurrent(ctx, os.Stdin, cmd.OutOrStdout(), jsonOutput)
	} else {
		result, err = processor.ProcessInput(ctx, os.Stdin, cmd.OutOrStdout(), jsonOutput)
	}
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	logger.Debug("batch complete", "lines", len(result.Results), "valid", result.Valid())
	return nil
}

func validateSingle(cmd *cobra.Command, country, code string) error {
	valid, err := validator.IsValid(country, code, ignoreSpaces)
	if err != nil {
		if errors.Is(err, postalcode.ErrUnknownCountry) {
			exitWithCode(ExitInvalidInput, fmt.Sprintf("Error: %v", err))
			return nil
		}
		return err
	}

	formats, _ := validator.Formats(country)
	result := &output.ValidationResult{
		Country:     country,
		PostalCode:  code,
		Valid:       valid,
		DisplayName: validator.DisplayName(country),
		Formats:     formats,
	}

	if err := printResult(cmd, result); err != nil {
		return err
	}

	if !valid {
		os.Exit(ExitInvalidCode)
	}
	return nil
}

func printResult(cmd *cobra.Command, result *output.ValidationResult) error {
	if jsonOutput {
		jsonStr, err := result.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), jsonStr)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.FormatText())
	return nil
}

// isBatchMode checks if we're receiving batch input
func isBatchMode() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
