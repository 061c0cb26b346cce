// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hightemp/zipzap/internal/config"
	"github.com/hightemp/zipzap/internal/logging"
	"github.com/hightemp/zipzap/postalcode"
	"github.com/spf13/cobra"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags
var (
	configFile string
	cacheDir   string
	logLevel   string
	logFormat  string
	jsonOutput bool
)

// Loaded by the root PersistentPreRunE for every command.
var (
	cfg       *config.Config
	logger    *slog.Logger
	validator = postalcode.New()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "zipzap [country] [postal-code]",
	Short: "Validate postal codes against per-country formats",
	Long: `zipzap validates postal codes against the known formats of each country.

For a single code:
  zipzap US 90210
  zipzap GB SW1A1AA --ignore-spaces

For batch processing (read "CC<TAB>code" lines from stdin):
  cat codes.tsv | zipzap

The format table itself is regenerated with 'zipzap extract'.`,
	Args:              cobra.MaximumNArgs(2),
	PersistentPreRunE: loadConfig,
	RunE:              runValidate,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./zipzap.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", config.DefaultCacheDir(), "cache directory path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	// Validation flags
	rootCmd.Flags().BoolVar(&ignoreSpaces, "ignore-spaces", false, "treat spaces in formats as optional")
	rootCmd.Flags().BoolVar(&concurrent, "concurrent", false, "validate batch input concurrently")

	// Add subcommands
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(countriesCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration, applies explicitly set global flags on top
// and installs the logger.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configFile)
	if err != nil {
		exitWithCode(ExitInvalidInput, fmt.Sprintf("Error: %v", err))
		return nil
	}

	flags := cmd.Flags()
	if flags.Changed("cache-dir") {
		loaded.CacheDir = cacheDir
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		loaded.LogFormat = logFormat
	}

	cfg = loaded
	logger = logging.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	return nil
}

// ExitCode constants
const (
	ExitSuccess       = 0
	ExitInvalidCode   = 1
	ExitInvalidInput  = 2
	ExitExtractFailed = 3
)

func exitWithCode(code int, msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}
