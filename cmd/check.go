package cmd

import (
	"fmt"
	"os"

	"github.com/grovetools/semcommit/cli"
	"github.com/grovetools/semcommit/conventional"
	"github.com/grovetools/semcommit/errors"
	"github.com/spf13/cobra"
)

// CheckResult is the JSON form of a successful check.
type CheckResult struct {
	Exempt   bool          `json:"exempt"`
	Type     string        `json:"type,omitempty"`
	Scope    string        `json:"scope,omitempty"`
	Breaking bool          `json:"breaking,omitempty"`
	Changes  ChangeSetView `json:"changes"`
}

func NewCheckCmd() *cobra.Command {
	var (
		message string
		file    string
		opts    changeOptions
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that a commit message type matches the changed files",
		Long: `Parse the conventional commit header of a message and compare its type
with the category shared by the changed files. A docs-only change set must
be committed as docs, a test-only one as test, and dependency or config
changes as chore, build or ci. Mixed change sets accept any type.

Merge, revert and autosquash messages are accepted without checks. Exits
with status 2 when the message is rejected.`,
		Example: `semcommit check -m "docs: describe ignore patterns"
semcommit check --staged --file .git/COMMIT_EDITMSG`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd)

			raw, err := readMessage(message, file)
			if err != nil {
				return err
			}

			msg := conventional.StripComments(raw)
			if msg == "" {
				return errors.New(errors.ErrCodeCommitMessage, "empty commit message")
			}

			if conventional.IsExempt(msg) {
				logger.Debug("Commit message is exempt from checks")
				if cli.GetOptions(cmd).JSONOutput {
					return writeJSON(cmd.OutOrStdout(), CheckResult{Exempt: true})
				}
				fmt.Fprintln(cmd.OutOrStdout(), cli.DefaultTheme.Muted.Render("Exempt commit message, skipping checks."))
				return nil
			}

			commit, err := conventional.Parse(msg)
			if err != nil {
				return err
			}

			cfg, err := cli.LoadConfig(cmd, opts.Dir)
			if err != nil {
				return err
			}

			cs, err := collectChanges(cmd, cfg, opts)
			if err != nil {
				return err
			}

			logger.WithFields(map[string]interface{}{
				"type":     commit.Type,
				"category": cs.Category.String(),
				"entries":  len(cs.Entries),
			}).Debug("Checking commit type")

			if len(cs.Entries) > 0 {
				if err := cs.Check(commit); err != nil {
					return err
				}
			}

			if cli.GetOptions(cmd).JSONOutput {
				return writeJSON(cmd.OutOrStdout(), CheckResult{
					Type:     commit.Type,
					Scope:    commit.Scope,
					Breaking: commit.IsBreaking,
					Changes:  newChangeSetView(cs),
				})
			}

			t := cli.DefaultTheme
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s matches %s changes\n",
				t.Success.Render("✓"), commit.Type, t.Category(cs.Category).Render(cs.Category.String()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message to check")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the commit message from a file (as passed to commit-msg hooks)")
	cmd.Flags().StringVarP(&opts.Dir, "dir", "d", "", "Repository directory (default: current directory)")
	cmd.Flags().BoolVar(&opts.Stdin, "stdin", false, "Read git status --short output from stdin")
	cmd.Flags().BoolVar(&opts.Staged, "staged", false, "Only consider changes staged in the index")

	return cmd
}

func readMessage(message, file string) (string, error) {
	switch {
	case message != "" && file != "":
		return "", errors.InvalidInput("use either --message or --file, not both")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrCodeInvalidInput, "failed to read commit message").
				WithDetail("file", file)
		}
		return string(data), nil
	case message != "":
		return message, nil
	default:
		return "", errors.InvalidInput("a commit message is required (--message or --file)")
	}
}
