package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/autocaptions/internal/deps"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report whether the external tools are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runCheck(cmd, []deps.Requirement{deps.Downloader(cfg.Downloader.BinaryPath)})
		},
	}
}

func runCheck(cmd *cobra.Command, requirements []deps.Requirement) error {
	statuses := deps.CheckBinaries(requirements)

	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		state := "ok"
		if !s.Available {
			state = "missing"
		}
		rows = append(rows, []string{s.Name, s.Command, state, s.Detail})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Tool", "Command", "Status", "Detail"}, rows, nil))

	if !deps.Ready(statuses) {
		return errors.New("required tools are missing")
	}
	return nil
}
