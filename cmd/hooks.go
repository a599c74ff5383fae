package cmd

import (
	"fmt"

	"github.com/grovetools/semcommit/cli"
	"github.com/grovetools/semcommit/git"
	"github.com/spf13/cobra"
)

func NewHooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "Manage the commit-msg git hook",
	}

	cmd.AddCommand(newHooksInstallCmd())
	cmd.AddCommand(newHooksUninstallCmd())

	return cmd
}

func newHooksInstallCmd() *cobra.Command {
	var dir, binary string

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install a commit-msg hook that runs semcommit check",
		Long: `Install a commit-msg hook in the repository containing --dir. An existing
hook not written by semcommit is kept as commit-msg.pre-semcommit and
restored by uninstall.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := repositoryRoot(cmd, dir)
			if err != nil {
				return err
			}

			if err := git.NewHookManager(binary).InstallHooks(cmd.Context(), root); err != nil {
				return err
			}

			cli.GetLogger(cmd).WithField("repo", root).Info("Installed commit-msg hook")
			fmt.Fprintf(cmd.OutOrStdout(), "%s Installed commit-msg hook in %s\n", cli.DefaultTheme.Success.Render("✓"), root)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Repository directory (default: current directory)")
	cmd.Flags().StringVar(&binary, "binary", "semcommit", "semcommit executable the hook runs")

	return cmd
}

func newHooksUninstallCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the semcommit commit-msg hook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := repositoryRoot(cmd, dir)
			if err != nil {
				return err
			}

			if err := git.NewHookManager("").UninstallHooks(cmd.Context(), root); err != nil {
				return err
			}

			cli.GetLogger(cmd).WithField("repo", root).Info("Removed commit-msg hook")
			fmt.Fprintf(cmd.OutOrStdout(), "%s Removed commit-msg hook from %s\n", cli.DefaultTheme.Success.Render("✓"), root)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Repository directory (default: current directory)")

	return cmd
}

// repositoryRoot returns the top level of the work tree containing dir.
func repositoryRoot(cmd *cobra.Command, dir string) (string, error) {
	abs, err := resolveDir(dir)
	if err != nil {
		return "", err
	}
	var repo git.RepositoryProvider = git.NewCLIRepository()
	return repo.GetGitRoot(cmd.Context(), abs)
}
