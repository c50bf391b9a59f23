package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stratship/internal/history"
	"stratship/internal/logging"
	"stratship/internal/release"
)

func newReleaseCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var skipPublish bool
	var noPreflight bool

	cmd := &cobra.Command{
		Use:   "release",
		Short: "Run the release pipeline: version, build, verify, archive, publish",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			store, err := history.Open(cfg)
			if err != nil {
				return fmt.Errorf("open release history: %w", err)
			}
			defer store.Close()

			orch, err := release.New(cfg, store, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if dryRun {
				plan, err := orch.Plan(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Field", "Value"},
					[][]string{
						{"Version", plan.Version},
						{"Tag", plan.Tag},
						{"Artifact", plan.ArtifactPath},
						{"Archive", plan.ArchivePath},
						{"Notes", plan.NotesPath},
					},
					nil,
				))
				fmt.Fprintln(out, "Dry run: no build, archive, or publish action performed")
				return nil
			}

			run, err := orch.Run(cmd.Context(), release.RunOptions{
				SkipPreflight: noPreflight,
				SkipPublish:   skipPublish,
			})
			if err != nil {
				if run != nil && run.ErrorMessage != "" {
					fmt.Fprintf(out, "Release failed: %s\n", run.ErrorMessage)
				}
				return err
			}

			fmt.Fprintf(out, "Released %s\n", run.Tag)
			fmt.Fprintf(out, "  artifact  %s\n", run.ArtifactPath)
			fmt.Fprintf(out, "  archive   %s\n", run.ArchivePath)
			if skipPublish || !cfg.Publish.Enabled {
				fmt.Fprintln(out, "  publish   skipped")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve the version and print the release plan without side effects")
	cmd.Flags().BoolVar(&skipPublish, "skip-publish", false, "Stop after the archive step")
	cmd.Flags().BoolVar(&noPreflight, "no-preflight", false, "Skip preflight checks before the pipeline")
	return cmd
}
