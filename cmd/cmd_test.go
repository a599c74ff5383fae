package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/grovetools/semcommit/errors"
	"github.com/grovetools/semcommit/git"
	"github.com/grovetools/semcommit/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatus struct {
	statuses  []git.Status
	err       error
	dir       string
	pathspecs []string
}

func (f *fakeStatus) ShortStatus(_ context.Context, dir string, pathspecs ...string) ([]git.Status, error) {
	f.dir = dir
	f.pathspecs = pathspecs
	return f.statuses, f.err
}

func useStatus(t *testing.T, fake *fakeStatus) {
	t.Helper()
	old := statusProvider
	statusProvider = fake
	t.Cleanup(func() { statusProvider = old })
}

// run executes the root command in an isolated configuration environment.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return runContext(context.Background(), t, stdin, args...)
}

func runContext(ctx context.Context, t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SEMCOMMIT_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func TestClassifyStdinJSON(t *testing.T) {
	input := "A  docs/api/index.md\nR  docs/old.md -> docs/guide/new.md\n?? README.md\n"

	out, err := run(t, input, "classify", "--stdin", "--json", "--dir", t.TempDir())
	require.NoError(t, err)

	var view ChangeSetView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "docs", view.Category)
	assert.Equal(t, "repo root", view.CommonDir)
	assert.Equal(t, map[string]int{"docs": 3}, view.Counts)
	require.Len(t, view.Files, 3)
	assert.Equal(t, "R ", view.Files[1].Code)
	assert.Equal(t, "renamed", view.Files[1].Index)
	assert.Equal(t, "docs/old.md", view.Files[1].From)
	assert.Equal(t, "untracked", view.Files[2].WorkTree)
}

func TestClassifyUsesGitStatus(t *testing.T) {
	fake := &fakeStatus{statuses: []git.Status{
		{X: 'M', Y: ' ', To: "package.json"},
		{X: ' ', Y: 'M', To: "config/app.yml"},
	}}
	useStatus(t, fake)
	dir := t.TempDir()

	out, err := run(t, "", "classify", "--json", "--dir", dir, "config/")
	require.NoError(t, err)

	var view ChangeSetView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "chore", view.Category)
	assert.Equal(t, dir, fake.dir)
	assert.Equal(t, []string{"config/"}, fake.pathspecs)
}

func TestClassifyStagedAndIgnored(t *testing.T) {
	fake := &fakeStatus{statuses: []git.Status{
		{X: 'A', Y: ' ', To: "tests/parser.test.js"},
		{X: ' ', Y: 'M', To: "src/main.go"},
		{X: 'M', Y: ' ', To: "vendor/lib/lib.go"},
	}}
	useStatus(t, fake)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".semcommit.yml"), []byte("ignore: [vendor]\n"), 0o644))

	out, err := run(t, "", "classify", "--json", "--staged", "--dir", dir)
	require.NoError(t, err)

	var view ChangeSetView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	require.Len(t, view.Files, 1)
	assert.Equal(t, "tests/parser.test.js", view.Files[0].Path)
	assert.Equal(t, "test", view.Category)
	assert.Equal(t, "tests", view.CommonDir)
	assert.Equal(t, "parser.test.js", view.Files[0].Relative)
}

func TestClassifyTable(t *testing.T) {
	out, err := run(t, " M docs/index.md\n", "classify", "--stdin", "--dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "docs/index.md")
	assert.Contains(t, out, "Category:")
	assert.Contains(t, out, "docs=1")

	out, err = run(t, "", "classify", "--stdin", "--dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No changes.")
}

func TestClassifyMalformedInput(t *testing.T) {
	_, err := run(t, "M  ok.txt\nbroken\n", "classify", "--stdin", "--dir", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeStatusParse))
}

func TestClassifyStdinRejectsPathspecs(t *testing.T) {
	_, err := run(t, "", "classify", "--stdin", "--dir", t.TempDir(), "docs/")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))
}

func TestCheck(t *testing.T) {
	docsOnly := "M  docs/a.md\nA  README.md\n"
	mixed := "M  docs/a.md\nM  main.go\n"

	tests := []struct {
		name     string
		stdin    string
		args     []string
		wantCode errors.ErrorCode
	}{
		{"matching type", docsOnly, []string{"-m", "docs: update guide"}, ""},
		{"mismatched type", docsOnly, []string{"-m", "feat: add guide"}, errors.ErrCodeTypeMismatch},
		{"mixed accepts anything", mixed, []string{"-m", "feat(api): add endpoint"}, ""},
		{"merge is exempt", docsOnly, []string{"-m", "Merge branch 'main'"}, ""},
		{"invalid header", docsOnly, []string{"-m", "updated things"}, errors.ErrCodeCommitMessage},
		{"comments only", docsOnly, []string{"-m", "# nothing"}, errors.ErrCodeCommitMessage},
		{"no message", docsOnly, nil, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"check", "--stdin", "--dir", t.TempDir()}, tt.args...)
			_, err := run(t, tt.stdin, args...)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetCode(err))
		})
	}
}

func TestCheckMessageFile(t *testing.T) {
	msgFile := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	content := "test: cover parser\n\n# Please enter the commit message for your changes.\n"
	require.NoError(t, os.WriteFile(msgFile, []byte(content), 0o644))

	out, err := run(t, "A  test/status.go\n", "check", "--stdin", "--json", "--dir", t.TempDir(), "--file", msgFile)
	require.NoError(t, err)

	var result CheckResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "test", result.Type)
	assert.Equal(t, "test", result.Changes.Category)
}

func TestPaths(t *testing.T) {
	output := computePaths([]string{"docs/api/index.md", "docs/guide.md"})
	assert.Equal(t, "docs", output.CommonPath)
	require.Len(t, output.Paths, 2)
	assert.Equal(t, "api/index.md", output.Paths[0].Relative)
	assert.Equal(t, "index.md", output.Paths[0].Split.Name)
	assert.Equal(t, ".md", output.Paths[0].Split.Extension)

	output = computePaths([]string{"a.txt", "src/b.go"})
	assert.Equal(t, "repo root", output.CommonPath)
	assert.Equal(t, "src/b.go", output.Paths[1].Relative)
	assert.True(t, output.Paths[0].Split.IsAtRepoRoot)
}

func TestPathsCommand(t *testing.T) {
	out, err := run(t, "", "paths", "--json", "src/a/x.go", "src/b.go")
	require.NoError(t, err)

	var output PathsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &output))
	assert.Equal(t, "src", output.CommonPath)

	_, err = run(t, "", "paths")
	assert.Error(t, err)
}

func TestSchemaCommand(t *testing.T) {
	out, err := run(t, "", "schema")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "properties")

	path := filepath.Join(t.TempDir(), "schema.json")
	_, err = run(t, "", "schema", "--output", path)
	require.NoError(t, err)
	assert.FileExists(t, path)

	out, err = run(t, "", "schema", "--logging")
	require.NoError(t, err)
	assert.Contains(t, out, "report_caller")
}

func TestConfigCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".semcommit.yml"),
		[]byte("classify:\n  package_files: [Pipfile]\n"), 0o644))

	out, err := run(t, "", "config", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "# Source: "+filepath.Join(dir, ".semcommit.yml"))
	assert.Contains(t, out, "Pipfile")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version", "--json")
	require.NoError(t, err)

	var info map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "version")
}

func TestHooksInstallAndUninstall(t *testing.T) {
	repo := testutil.NewGitRepo(t)
	hookPath := filepath.Join(repo, ".git", "hooks", "commit-msg")

	out, err := run(t, "", "hooks", "install", "--dir", repo, "--binary", "/usr/local/bin/semcommit")
	require.NoError(t, err)
	assert.Contains(t, out, "Installed commit-msg hook")

	content, err := os.ReadFile(hookPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "/usr/local/bin/semcommit")

	out, err = run(t, "", "hooks", "uninstall", "--dir", repo)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed commit-msg hook")
	assert.NoFileExists(t, hookPath)
}

func TestHooksOutsideRepository(t *testing.T) {
	testutil.RequireGit(t)
	t.Setenv("GIT_CEILING_DIRECTORIES", os.TempDir())

	_, err := run(t, "", "hooks", "install", "--dir", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeNotARepository))
}

func TestWatchPrintsInitialClassification(t *testing.T) {
	repo := testutil.NewGitRepo(t)
	useStatus(t, &fakeStatus{statuses: []git.Status{
		{X: ' ', Y: 'M', To: "docs/guide.md"},
	}})

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	out, err := runContext(ctx, t, "", "watch", "--dir", repo, "--json")
	require.NoError(t, err)

	var view ChangeSetView
	require.NoError(t, json.NewDecoder(strings.NewReader(out)).Decode(&view))
	assert.Equal(t, "docs", view.Category)
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown command", []string{"bogus"}},
		{"unknown flag", []string{"classify", "--no-such-flag"}},
		{"paths without arguments", []string{"paths"}},
		{"check with positional argument", []string{"check", "feat: x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))
		})
	}
}
