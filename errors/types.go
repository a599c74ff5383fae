package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Status parsing errors
	ErrCodeStatusParse ErrorCode = "STATUS_PARSE"

	// Command execution errors
	ErrCodeCommandTimeout  ErrorCode = "COMMAND_TIMEOUT"
	ErrCodeCommandNotFound ErrorCode = "COMMAND_NOT_FOUND"
	ErrCodeCommandFailed   ErrorCode = "COMMAND_FAILED"

	// Git errors
	ErrCodeGitNotInstalled ErrorCode = "GIT_NOT_INSTALLED"
	ErrCodeNotARepository  ErrorCode = "NOT_A_REPOSITORY"

	// Commit message errors
	ErrCodeCommitMessage ErrorCode = "COMMIT_MESSAGE_INVALID"
	ErrCodeTypeMismatch  ErrorCode = "COMMIT_TYPE_MISMATCH"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// GroveError represents a structured error with context
type GroveError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *GroveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GroveError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *GroveError) WithDetail(key string, value interface{}) *GroveError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *GroveError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new GroveError
func New(code ErrorCode, message string) *GroveError {
	return &GroveError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a GroveError
func Wrap(err error, code ErrorCode, message string) *GroveError {
	return &GroveError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// As returns the first GroveError in err's chain.
func As(err error) (*GroveError, bool) {
	for err != nil {
		if groveErr, ok := err.(*GroveError); ok {
			return groveErr, true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = unwrapper.Unwrap()
	}
	return nil, false
}

// Is checks if an error is a specific GroveError code
func Is(err error, code ErrorCode) bool {
	groveErr, ok := As(err)
	if !ok {
		return false
	}
	return groveErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	groveErr, ok := As(err)
	if !ok {
		return ""
	}
	return groveErr.Code
}
