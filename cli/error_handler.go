package cli

import (
	"fmt"
	"io"

	"github.com/grovetools/semcommit/errors"
)

// Exit codes returned by Handle.
const (
	ExitOK       = 0
	ExitError    = 1
	ExitMismatch = 2
	ExitUsage    = 64
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Out     io.Writer
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(out io.Writer, verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Out:     out,
		Verbose: verbose,
	}
}

// Handle prints err and returns the process exit code for it.
func (h *ErrorHandler) Handle(err error) int {
	if err == nil {
		return ExitOK
	}

	t := DefaultTheme
	groveErr, _ := errors.As(err)
	code := ExitError

	switch errors.GetCode(err) {
	case errors.ErrCodeGitNotInstalled:
		fmt.Fprintf(h.Out, "%s git is not installed or not on PATH.\n", t.Error.Render("Error:"))

	case errors.ErrCodeNotARepository:
		fmt.Fprintf(h.Out, "%s %s is not inside a git repository.\n", t.Error.Render("Error:"), groveErr.Details["dir"])
		fmt.Fprintln(h.Out, t.Muted.Render("Pipe `git status --short` output in, or pass --stdin."))

	case errors.ErrCodeStatusParse:
		fmt.Fprintf(h.Out, "%s %s\n", t.Error.Render("Error:"), groveErr.Message)
		if line, ok := groveErr.Details["lineNumber"]; ok {
			fmt.Fprintln(h.Out, t.Muted.Render(fmt.Sprintf("at input line %v", line)))
		}

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fmt.Fprintf(h.Out, "%s %s\n", t.Error.Render("Invalid configuration:"), err.Error())
		if path, ok := groveErr.Details["path"]; ok {
			fmt.Fprintln(h.Out, t.Muted.Render(fmt.Sprintf("in %v", path)))
		}

	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "%s configuration file not found: %v\n", t.Error.Render("Error:"), groveErr.Details["path"])

	case errors.ErrCodeCommitMessage:
		fmt.Fprintf(h.Out, "%s %s\n", t.Error.Render("Commit message rejected:"), groveErr.Message)
		code = ExitMismatch

	case errors.ErrCodeTypeMismatch:
		fmt.Fprintf(h.Out, "%s %s\n", t.Error.Render("Commit type mismatch:"), groveErr.Message)
		code = ExitMismatch

	case errors.ErrCodeInvalidInput:
		fmt.Fprintf(h.Out, "%s %s\n", t.Error.Render("Error:"), groveErr.Message)
		if command, ok := groveErr.Details["command"]; ok {
			fmt.Fprintf(h.Out, "%s\n", t.Muted.Render(fmt.Sprintf("Run '%v --help' for usage.", command)))
		}
		code = ExitUsage

	default:
		fmt.Fprintf(h.Out, "%s %v\n", t.Error.Render("Error:"), err)
	}

	if h.Verbose && groveErr != nil {
		fmt.Fprintf(h.Out, "\nError details:\n%s\n", groveErr.ToJSON())
	}

	return code
}
