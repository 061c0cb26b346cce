package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/hightemp/zipzap/internal/config"
	"github.com/hightemp/zipzap/internal/snapshot"
	"github.com/spf13/cobra"
)

var showTable bool

var runsCmd = &cobra.Command{
	Use:   "runs [name]",
	Short: "List saved extraction runs, or show one",
	Long: `Lists extraction runs saved with 'zipzap extract --save'. With a run name
(or "latest") prints that run's metadata, and its table with --table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&showTable, "table", false, "print the saved table of the run")
}

func runRuns(cmd *cobra.Command, args []string) error {
	mgr := snapshot.NewManager(cfg.CacheDir)

	if len(args) == 1 {
		return showRun(cmd, mgr, args[0])
	}

	names, err := mgr.ListRuns()
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	if jsonOutput {
		metas := make([]*snapshot.Metadata, 0, len(names))
		for _, name := range names {
			_, meta, err := mgr.GetRun(name)
			if err != nil {
				return err
			}
			metas = append(metas, meta)
		}
		return writeJSON(cmd, metas)
	}

	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(out, "No saved runs. Run 'zipzap extract --save' first.")
		return nil
	}

	latestName := ""
	if dir, _, err := mgr.GetLatestRun(); err == nil {
		latestName = filepath.Base(dir)
	}

	for _, name := range names {
		_, meta, err := mgr.GetRun(name)
		if err != nil {
			return err
		}
		marker := " "
		if name == latestName {
			marker = color.GreenString("*")
		}
		fmt.Fprintf(out, "%s %s\t%d countries\t%d empty\t%s\n",
			marker, name, meta.CountriesCount, len(meta.EmptyCountries), meta.CountrySource)
	}
	return nil
}

func showRun(cmd *cobra.Command, mgr *snapshot.Manager, name string) error {
	var (
		dir  string
		meta *snapshot.Metadata
		err  error
	)
	if name == config.LatestSymlink {
		dir, meta, err = mgr.GetLatestRun()
	} else {
		dir, meta, err = mgr.GetRun(name)
	}
	if err != nil {
		exitWithCode(ExitInvalidInput, fmt.Sprintf("Error: %v", err))
		return nil
	}

	if showTable {
		table, err := os.ReadFile(config.TablePath(dir))
		if err != nil {
			return fmt.Errorf("read table: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(table)
		return err
	}

	if jsonOutput {
		return writeJSON(cmd, meta)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run:        %s\n", meta.RunID)
	fmt.Fprintf(out, "Created:    %s\n", meta.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(out, "Source:     %s\n", meta.SourceURL)
	fmt.Fprintf(out, "Countries:  %d (%s)\n", meta.CountriesCount, meta.CountrySource)
	fmt.Fprintf(out, "Records:    %d scanned, %d skipped, %d filled\n",
		meta.Stats.Records, meta.Stats.Skipped, meta.Stats.Filled)
	fmt.Fprintf(out, "Location:   %s\n", dir)
	return nil
}
