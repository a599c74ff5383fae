package command

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultTimeout is the default command execution timeout
	DefaultTimeout = 30 * time.Second

	// MaxTimeout is the maximum allowed timeout
	MaxTimeout = 5 * time.Minute
)

var (
	gitRefPattern     = regexp.MustCompile(`^[a-zA-Z0-9/_.-]+$`)
	commandNameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
)

// SafeBuilder provides secure command execution with validation
type SafeBuilder struct {
	defaultTimeout time.Duration
	validators     map[string]func(string) error
	executor       Executor
}

// NewSafeBuilder creates a new SafeBuilder instance with a RealExecutor
func NewSafeBuilder() *SafeBuilder {
	return NewSafeBuilderWithExecutor(&RealExecutor{})
}

// NewSafeBuilderWithExecutor creates a new SafeBuilder with a custom Executor
func NewSafeBuilderWithExecutor(exec Executor) *SafeBuilder {
	return &SafeBuilder{
		defaultTimeout: DefaultTimeout,
		validators:     makeDefaultValidators(),
		executor:       exec,
	}
}

// makeDefaultValidators returns the default set of validators
func makeDefaultValidators() map[string]func(string) error {
	return map[string]func(string) error{
		"dir":      validateDir,
		"pathspec": validatePathspec,
		"gitRef":   validateGitRef,
	}
}

// validateDir ensures a working directory is usable
func validateDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("directory cannot be empty")
	}
	if strings.ContainsRune(dir, 0) {
		return fmt.Errorf("directory contains a NUL byte")
	}
	return nil
}

// validatePathspec ensures pathspecs passed to git cannot be read as options
func validatePathspec(spec string) error {
	if spec == "" {
		return fmt.Errorf("pathspec cannot be empty")
	}
	if strings.HasPrefix(spec, "-") {
		return fmt.Errorf("pathspec cannot start with '-': %s", spec)
	}
	if strings.ContainsAny(spec, ";|&$`\n") {
		return fmt.Errorf("pathspec contains invalid characters")
	}
	return nil
}

// validateGitRef ensures git references are safe
func validateGitRef(ref string) error {
	if ref == "" {
		return fmt.Errorf("git ref cannot be empty")
	}

	if !gitRefPattern.MatchString(ref) {
		return fmt.Errorf("invalid git ref: %s", ref)
	}

	return nil
}

// Command represents a safe command configuration
type Command struct {
	name     string
	args     []string
	dir      string
	timeout  time.Duration
	executor Executor
}

// Build creates a new command with validation
func (sb *SafeBuilder) Build(name string, args ...string) (*Command, error) {
	if name == "" {
		return nil, fmt.Errorf("command name cannot be empty")
	}
	if !commandNameRegexp.MatchString(name) {
		return nil, fmt.Errorf("invalid command name: %s", name)
	}

	return &Command{
		name:     name,
		args:     args,
		timeout:  sb.defaultTimeout,
		executor: sb.executor,
	}, nil
}

// Validate validates specific arguments
func (sb *SafeBuilder) Validate(argType string, value string) error {
	validator, exists := sb.validators[argType]
	if !exists {
		return fmt.Errorf("no validator for argument type: %s", argType)
	}

	return validator(value)
}

// LookPath reports whether the named binary can be executed
func (sb *SafeBuilder) LookPath(name string) error {
	return sb.executor.LookPath(name)
}

// WithTimeout sets a custom timeout for the command
func (c *Command) WithTimeout(timeout time.Duration) *Command {
	if timeout > MaxTimeout {
		timeout = MaxTimeout
	}
	c.timeout = timeout
	return c
}

// InDir sets the working directory of the command
func (c *Command) InDir(dir string) *Command {
	c.dir = dir
	return c
}

// String renders the command line for logs and error messages
func (c *Command) String() string {
	return strings.TrimSpace(c.name + " " + strings.Join(c.args, " "))
}

// Output runs the command and returns stdout and stderr separately. The timeout
// is applied on top of ctx.
func (c *Command) Output(ctx context.Context) (stdout, stderr []byte, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var outBuf, errBuf bytes.Buffer
	cmd := c.executor.CommandContext(ctx, c.name, c.args...) //nolint:gosec // SafeBuilder provides validation
	cmd.Dir = c.dir
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err = cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		err = fmt.Errorf("%s timed out after %s: %w", c.String(), c.timeout, ctx.Err())
	}
	return outBuf.Bytes(), errBuf.Bytes(), err
}

// Exec creates and returns an exec.Cmd without a timeout applied
func (c *Command) Exec(ctx context.Context) *exec.Cmd {
	cmd := c.executor.CommandContext(ctx, c.name, c.args...) //nolint:gosec // SafeBuilder provides validation
	cmd.Dir = c.dir
	return cmd
}
