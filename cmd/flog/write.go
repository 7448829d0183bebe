package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newWriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write MESSAGE...",
		Short: "Append one record and flush",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			l, err := openLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			l.Log(cfg.RecordLevel(), strings.Join(args, " "))
			return l.Flush()
		},
	}
	cmd.Flags().String("level", "info", "Level of the record")
	return cmd
}
