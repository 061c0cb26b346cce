package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hightemp/zipzap/internal/countries"
	"github.com/hightemp/zipzap/internal/extract"
	"github.com/hightemp/zipzap/internal/output"
	"github.com/hightemp/zipzap/internal/snapshot"
	"github.com/hightemp/zipzap/internal/wiki"
	"github.com/spf13/cobra"
)

var (
	sourceURL      string
	sourcePage     string
	countriesFile  string
	countriesDB    string
	countriesQuery string
	tableFormat    string
	outputFile     string
	saveRun        bool
	keepRaw        bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Regenerate the format table from the wiki list of postal codes",
	Long: `Downloads the "List of postal codes" page export, extracts the per-country
formats and completes them with the canonical country list. The result is
printed as map literal rows ready for review, or as JSON / YAML.

Examples:
  zipzap extract                               # Print table rows
  zipzap extract --format yaml -o formats.yaml # Write YAML to a file
  zipzap extract --save --keep-raw             # Keep the run under the cache dir
  zipzap extract --countries-db postgres://localhost/geo`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&sourceURL, "url", "", "wiki base URL (default from config)")
	extractCmd.Flags().StringVar(&sourcePage, "page", "", "page title (default from config)")
	extractCmd.Flags().StringVar(&countriesFile, "countries-file", "", "file with canonical countries (CODE,Name per line)")
	extractCmd.Flags().StringVar(&countriesDB, "countries-db", "", "PostgreSQL URL of the canonical country table")
	extractCmd.Flags().StringVar(&countriesQuery, "countries-query", "", "query returning code and name columns")
	extractCmd.Flags().StringVar(&tableFormat, "format", output.FormatGo, "output format: go, json, or yaml")
	extractCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the table to a file instead of stdout")
	extractCmd.Flags().BoolVar(&saveRun, "save", false, "save the run under the cache directory")
	extractCmd.Flags().BoolVar(&keepRaw, "keep-raw", false, "keep the fetched wikitext with a saved run")
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := output.ParseFormat(tableFormat)
	if err != nil {
		exitWithCode(ExitInvalidInput, err.Error())
		return nil
	}

	srcCfg := cfg.Source
	if sourceURL != "" {
		srcCfg.URL = sourceURL
	}
	if sourcePage != "" {
		srcCfg.Page = sourcePage
	}

	source, sourceName, closeSource, err := openCountrySource(ctx)
	if err != nil {
		exitWithCode(ExitExtractFailed, fmt.Sprintf("Error: %v", err))
		return nil
	}
	defer closeSource()

	client := wiki.NewClientFromConfig(srcCfg)
	source = checkedSource{Source: source, name: sourceName}
	extractor := extract.New(client, source, srcCfg.Page, logger)

	startTime := time.Now()
	result, err := extractor.Run(ctx)
	if err != nil {
		exitWithCode(ExitExtractFailed, fmt.Sprintf("Error: extraction failed: %v", err))
		return nil
	}

	var w io.Writer = cmd.OutOrStdout()
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := output.WriteTable(w, result.Entries, format); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	logger.Info("table written",
		"run_id", result.RunID,
		"entries", result.Stats.Entries,
		"records", result.Stats.Records,
		"skipped", result.Stats.Skipped,
		"filled", result.Stats.Filled,
		"countries", sourceName,
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)

	if saveRun {
		mgr := snapshot.NewManager(cfg.CacheDir)
		dir, _, err := mgr.Save(result, sourceName, keepRaw)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		logger.Info("run saved", "location", dir)
	}

	return nil
}

// openCountrySource picks the canonical country list: a database wins over a
// file, which wins over the embedded list. Flags win over configuration.
func openCountrySource(ctx context.Context) (countries.Source, string, func(), error) {
	dbURL := cfg.Countries.DatabaseURL
	if countriesDB != "" {
		dbURL = countriesDB
	}
	query := cfg.Countries.Query
	if countriesQuery != "" {
		query = countriesQuery
	}
	file := cfg.Countries.File
	if countriesFile != "" {
		file = countriesFile
	}

	switch {
	case dbURL != "":
		src, err := countries.NewPostgresSource(ctx, dbURL, query)
		if err != nil {
			return nil, "", nil, fmt.Errorf("open country database: %w", err)
		}
		return src, "postgres", src.Close, nil
	case file != "":
		return countries.FileSource{Path: file}, "file:" + file, func() {}, nil
	default:
		return countries.EmbeddedSource{}, "embedded", func() {}, nil
	}
}

// checkedSource warns about canonical codes outside ISO 3166, which usually
// means a bad file or query.
type checkedSource struct {
	countries.Source
	name string
}

func (s checkedSource) Countries(ctx context.Context) ([]countries.Country, error) {
	list, err := s.Source.Countries(ctx)
	if err != nil {
		return nil, err
	}
	if unknown := countries.Unknown(list); len(unknown) > 0 {
		logger.Warn("canonical list has codes outside ISO 3166", "source", s.name, "codes", unknown)
	}
	return list, nil
}
