package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"stratship/internal/preflight"
)

func newPreflightCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preflight",
		Short: "Check tools, paths, and assets before running a release",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.RunAll(cfg)

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			rows := make([][]string, 0, len(results))
			for _, result := range results {
				status := "ok"
				if !result.Passed {
					status = "failed"
				}
				rows = append(rows, []string{result.Name, colorizeCheck(status, result.Passed, colorize), result.Detail})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Check", "Status", "Detail"},
				rows,
				nil,
			))

			if summary := preflight.Summarize(results); summary != "" {
				return errors.New(summary)
			}
			fmt.Fprintln(out, "All preflight checks passed")
			return nil
		},
	}
}
