package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stratship/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show stratship version information",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "stratship %s\n", version.Version)
			fmt.Fprintf(out, "  commit %s\n", version.Commit)
			fmt.Fprintf(out, "  built  %s\n", version.Date)
			return nil
		},
	}
}
