package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/kebab-rename/internal/config"
	"github.com/backmassage/kebab-rename/internal/display"
	"github.com/backmassage/kebab-rename/internal/logging"
	"github.com/backmassage/kebab-rename/internal/pipeline"
)

// newRootCmd builds the command tree. Settings flags are persistent so the
// check and history subcommands resolve configuration the same way.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags *config.Flags

	cmd := &cobra.Command{
		Use:   "kebab-rename [directory]",
		Short: "Rename files and directories to kebab-case or camelCase",
		Long: `kebab-rename converts file and directory names under a directory to a
single naming style. Extensions are kept and lowercased, name collisions get
a numeric suffix, and directories are renamed after their contents.

Without --yes the planned renames are only previewed.`,
		Version:       version + " (" + commit + ")",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, flags, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags = config.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(newCheckCmd(flags, stdout, stderr))
	cmd.AddCommand(newHistoryCmd(flags, stdout))
	return cmd
}

// loadConfig resolves defaults, then the YAML file, then flags set on the
// command line, then the positional directory.
func loadConfig(cmd *cobra.Command, flags *config.Flags, args []string) (config.Config, error) {
	cfg := config.DefaultConfig()
	if path := flags.ConfigPath(); path != "" {
		if err := config.LoadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := flags.Apply(cmd.Flags(), &cfg); err != nil {
		return cfg, err
	}
	if len(args) == 1 {
		cfg.TargetDir = config.NormalizeDirArg(args[0])
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runRename(cmd *cobra.Command, flags *config.Flags, args []string, stdout, stderr io.Writer) error {
	// Bootstrap: errors before the logger exists are printed by main.
	cfg, err := loadConfig(cmd, flags, args)
	if err != nil {
		return err
	}

	log, err := logging.New(&cfg, stdout, stderr)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner(stdout)
	if cfg.ConfigFile != "" {
		log.Debug("Loaded settings from %s", cfg.ConfigFile)
	}

	// Cancel on SIGINT/SIGTERM. Only a run still in its preview phase
	// stops; an apply batch finishes.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, stopping before any rename…")
			cancel()
		case <-ctx.Done():
		}
	}()

	stats, err := pipeline.Run(ctx, &cfg, log, stdout)
	if err != nil {
		log.Error("%v", err)
		return errReported
	}
	if !stats.OK() {
		return errReported
	}
	return nil
}
