package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/backmassage/kebab-rename/internal/config"
	"github.com/backmassage/kebab-rename/internal/journal"
)

func newHistoryCmd(flags *config.Flags, stdout io.Writer) *cobra.Command {
	var limit int
	var runID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List runs recorded in the journal",
		Long: `history reads the SQLite journal written by applied runs (--journal or
the journal key of the config file) and lists the most recent runs. With
--run it lists every rename attempted by that run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags, nil)
			if err != nil {
				return err
			}
			if cfg.Journal == "" {
				return errors.New("no journal configured (use --journal or the journal config key)")
			}
			if _, err := os.Stat(cfg.Journal); err != nil {
				fmt.Fprintf(stdout, "No journal at %s\n", cfg.Journal)
				return nil
			}

			store, err := journal.Open(cfg.Journal)
			if err != nil {
				return err
			}
			defer store.Close()

			if runID != "" {
				return printRenames(cmd, store, runID, stdout)
			}
			return printRuns(cmd, store, limit, stdout)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of runs to list (0 for all)")
	cmd.Flags().StringVar(&runID, "run", "", "List the renames of one run")
	return cmd
}

func printRuns(cmd *cobra.Command, store *journal.Store, limit int, out io.Writer) error {
	runs, err := store.Runs(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}
	fmt.Fprintf(out, "%-36s  %-19s  %-5s  %7s  %6s  %s\n", "RUN", "STARTED", "STYLE", "RENAMED", "FAILED", "ROOT")
	for _, r := range runs {
		fmt.Fprintf(out, "%-36s  %-19s  %-5s  %7d  %6d  %s\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.Style, r.Renamed, r.Failed(), r.Root)
	}
	return nil
}

func printRenames(cmd *cobra.Command, store *journal.Store, runID string, out io.Writer) error {
	recs, err := store.Renames(cmd.Context(), runID)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		return fmt.Errorf("no renames recorded for run %s", runID)
	}
	for _, r := range recs {
		status := "ok  "
		if !r.OK {
			status = "FAIL"
		}
		fmt.Fprintf(out, "%s  %s → %s", status, r.OldPath, r.NewPath)
		if r.Error != "" {
			fmt.Fprintf(out, "  (%s)", r.Error)
		}
		fmt.Fprintln(out)
	}
	return nil
}
