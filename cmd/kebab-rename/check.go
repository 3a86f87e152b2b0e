package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/backmassage/kebab-rename/internal/check"
	"github.com/backmassage/kebab-rename/internal/config"
	"github.com/backmassage/kebab-rename/internal/logging"
)

func newCheckCmd(flags *config.Flags, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "check [directory]",
		Short: "Show what a run would operate on without scanning",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags, args)
			if err != nil {
				return err
			}
			log, err := logging.New(&cfg, stdout, stderr)
			if err != nil {
				return err
			}
			defer log.Close()

			check.RunCheck(&cfg, log)
			return nil
		},
	}
}
