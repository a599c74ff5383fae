package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/semcommit/cli"
	"github.com/grovetools/semcommit/conventional"
	"github.com/grovetools/semcommit/git"
	"github.com/spf13/cobra"
)

// FileView is the JSON form of one classified status entry.
type FileView struct {
	Code     string `json:"code"`
	Index    string `json:"index"`
	WorkTree string `json:"work_tree"`
	Path     string `json:"path"`
	From     string `json:"from,omitempty"`
	Relative string `json:"relative"`
	Category string `json:"category"`
}

// ChangeSetView is the JSON form of a classified change set.
type ChangeSetView struct {
	Category  string         `json:"category"`
	CommonDir string         `json:"common_dir"`
	Counts    map[string]int `json:"counts"`
	Files     []FileView     `json:"files"`
}

func newChangeSetView(cs conventional.ChangeSet) ChangeSetView {
	view := ChangeSetView{
		Category:  cs.Category.String(),
		CommonDir: cs.CommonDir,
		Counts:    make(map[string]int),
		Files:     make([]FileView, 0, len(cs.Entries)),
	}
	for category, n := range cs.Counts() {
		view.Counts[category.String()] = n
	}
	for _, e := range cs.Entries {
		view.Files = append(view.Files, FileView{
			Code:     e.Status.Code(),
			Index:    git.Describe(e.Status.X),
			WorkTree: git.Describe(e.Status.Y),
			Path:     e.Status.To,
			From:     e.Status.From,
			Relative: cs.Relative(e),
			Category: e.Category.String(),
		})
	}
	return view
}

func NewClassifyCmd() *cobra.Command {
	var opts changeOptions

	cmd := &cobra.Command{
		Use:   "classify [pathspec...]",
		Short: "Classify changed files into semantic commit categories",
		Long: `Classify every changed file as chore, docs, test or unclassified and
report the category shared by the whole change set.

Status lines are read from stdin when it is a pipe or --stdin is given,
otherwise git status is run in --dir.`,
		Example: `# Classify the working tree of the current repository
semcommit classify

# Only look at staged changes below docs/
semcommit classify --staged docs/

# Classify saved status output
git status --short | semcommit classify --stdin --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Pathspecs = args

			cfg, err := cli.LoadConfig(cmd, opts.Dir)
			if err != nil {
				return err
			}

			cs, err := collectChanges(cmd, cfg, opts)
			if err != nil {
				return err
			}

			if cli.GetOptions(cmd).JSONOutput {
				return writeJSON(cmd.OutOrStdout(), newChangeSetView(cs))
			}
			renderChangeSet(cmd.OutOrStdout(), cs)
			return nil
		},
	}

	opts.AutoStdin = true
	cmd.Flags().StringVarP(&opts.Dir, "dir", "d", "", "Repository directory (default: current directory)")
	cmd.Flags().BoolVar(&opts.Stdin, "stdin", false, "Read git status --short output from stdin")
	cmd.Flags().BoolVar(&opts.Staged, "staged", false, "Only classify changes staged in the index")

	return cmd
}

// renderChangeSet prints a table of entries followed by the summary.
func renderChangeSet(w io.Writer, cs conventional.ChangeSet) {
	t := cli.DefaultTheme

	if len(cs.Entries) == 0 {
		fmt.Fprintln(w, t.Muted.Render("No changes."))
		return
	}

	categories := make([]conventional.Category, 0, len(cs.Entries))
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(t.Border).
		Headers("CODE", "PATH", "FROM", "CATEGORY")
	for _, e := range cs.Entries {
		tbl.Row(e.Status.Code(), e.Status.To, e.Status.From, e.Category.String())
		categories = append(categories, e.Category)
	}
	tbl.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return t.Header
		}
		cell := lipgloss.NewStyle().Padding(0, 1)
		if col == 3 && row >= 0 && row < len(categories) {
			return t.Category(categories[row]).Padding(0, 1)
		}
		return cell
	})
	fmt.Fprintln(w, tbl.Render())

	counts := make([]string, 0, len(cs.Counts()))
	for category, n := range cs.Counts() {
		counts = append(counts, fmt.Sprintf("%s=%d", category, n))
	}
	sort.Strings(counts)

	fmt.Fprintf(w, "%s %s\n", t.Command.Render("Category:"), t.Category(cs.Category).Render(cs.Category.String()))
	fmt.Fprintf(w, "%s %s\n", t.Command.Render("Common dir:"), cs.CommonDir)
	fmt.Fprintln(w, t.Muted.Render("Files: "+strings.Join(counts, " ")))
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
