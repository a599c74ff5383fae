package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/grovetools/semcommit/cli"
	"github.com/grovetools/semcommit/pkg/watch"
	"github.com/spf13/cobra"
)

func NewWatchCmd() *cobra.Command {
	var (
		opts     changeOptions
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-classify the working tree whenever files change",
		Long: `Watch the working tree and print the classification again after every
burst of file changes. The .git directory and configured ignore patterns
are not watched. Stops on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd)

			root, err := repositoryRoot(cmd, opts.Dir)
			if err != nil {
				return err
			}
			opts.Dir = root

			cfg, err := cli.LoadConfig(cmd, root)
			if err != nil {
				return err
			}
			ignore, err := cfg.IgnoreMatcher()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			jsonOutput := cli.GetOptions(cmd).JSONOutput
			render := func(ctx context.Context) {
				cs, err := collectChanges(cmd, cfg, opts)
				if err != nil {
					logger.WithError(err).Warn("Classification failed")
					return
				}
				if jsonOutput {
					if err := writeJSON(out, newChangeSetView(cs)); err != nil {
						logger.WithError(err).Warn("Failed to write output")
					}
					return
				}
				fmt.Fprintln(out, cli.DefaultTheme.Muted.Render("── "+time.Now().Format("15:04:05")+" ──"))
				renderChangeSet(out, cs)
			}

			w, err := watch.NewTreeWatcher(root, debounce, ignore.Match, render)
			if err != nil {
				return fmt.Errorf("failed to start watcher: %w", err)
			}

			logger.WithField("root", root).Info("Watching for changes")
			render(cmd.Context())
			w.Start(cmd.Context())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Dir, "dir", "d", "", "Repository directory (default: current directory)")
	cmd.Flags().BoolVar(&opts.Staged, "staged", false, "Only classify changes staged in the index")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period before re-classifying")

	return cmd
}
