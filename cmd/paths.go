package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/semcommit/cli"
	"github.com/grovetools/semcommit/util/pathutil"
	"github.com/spf13/cobra"
)

// PathView describes one argument of the paths command.
type PathView struct {
	Path     string             `json:"path"`
	Relative string             `json:"relative"`
	Split    pathutil.SplitPath `json:"split"`
}

// PathsOutput is the result of the paths command.
type PathsOutput struct {
	CommonPath string     `json:"common_path"`
	Paths      []PathView `json:"paths"`
}

func computePaths(args []string) PathsOutput {
	out := PathsOutput{
		CommonPath: pathutil.CommonPath(args),
		Paths:      make([]PathView, 0, len(args)),
	}
	for _, p := range args {
		rel := p
		if out.CommonPath != pathutil.RepoRoot {
			rel = strings.TrimPrefix(pathutil.RemoveBase(out.CommonPath, p), "/")
		}
		out.Paths = append(out.Paths, PathView{
			Path:     p,
			Relative: rel,
			Split:    pathutil.Split(p),
		})
	}
	return out
}

func NewPathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths PATH...",
		Short: "Show the common path and split metadata of repository paths",
		Long: `Show the longest common directory prefix of the given repository-relative
paths, each path relative to it, and how each path splits into directory,
name and extension.`,
		Example: `semcommit paths docs/api/index.md docs/guide.md
semcommit paths --json src/a.go src/b/c.go`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := computePaths(args)

			if cli.GetOptions(cmd).JSONOutput {
				return writeJSON(cmd.OutOrStdout(), output)
			}

			t := cli.DefaultTheme
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", t.Command.Render("Common path:"), output.CommonPath)

			tbl := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(t.Border).
				Headers("PATH", "RELATIVE", "DIR", "NAME", "EXT").
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return t.Header
					}
					return lipgloss.NewStyle().Padding(0, 1)
				})
			for _, p := range output.Paths {
				tbl.Row(p.Path, p.Relative, p.Split.Dir, p.Split.Name, p.Split.Extension)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
			return nil
		},
	}

	return cmd
}
