// Package apperr defines the coded errors shared by every turbex package.
//
// Every failure that can reach a user carries a short stable code from the
// set below plus a human-readable message. Details is an optional bag of
// structured context (the DestBlocked code uses it to describe the landing
// zone and the first blocking cell).
package apperr

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Stable error codes. Callers branch on these, never on message text.
const (
	CodeBadSpec           = "BadSpec"
	CodeBadSourceStartRow = "BadSourceStartRow"
	CodeSourceReadFailed  = "SourceReadFailed"
	CodeSheetNotFound     = "SheetNotFound"
	CodeInvalidRule       = "InvalidRule"
	CodeFileLocked        = "FileLocked"
	CodeSaveFailed        = "SaveFailed"
	CodeMissingDestPath   = "MissingDestPath"
	CodeMissingSourcePath = "MissingSourcePath"
	CodeDestBlocked       = "DestBlocked"

	// CodeInternal marks errors that escaped without a code of their own.
	CodeInternal = "Internal"
)

// Error is a user-facing error with a stable code and optional structured
// details.
type Error struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

func (e *Error) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %s %v", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with the given code and message.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error that records err as its cause.
func Wrap(code string, err error, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// As extracts a coded *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Convert returns err as a coded *Error. Errors without a code are wrapped
// under CodeInternal so every reported failure has one.
func Convert(err error) *Error {
	if e, ok := As(err); ok {
		return e
	}
	return &Error{Code: CodeInternal, Message: err.Error(), Err: err}
}

// CodeOf returns the code of err, or empty when err carries none.
func CodeOf(err error) string {
	if e, ok := As(err); ok {
		return e.Code
	}
	return ""
}

// IsLockError reports whether err looks like a file lock or permission
// failure. Spreadsheet files held open by desktop applications surface as
// permission or sharing errors, and the wording differs per platform, so
// this checks the message as well as the wrapped cause.
func IsLockError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, os.ErrPermission) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, hint := range []string{
		"permission denied",
		"used by another process",
		"sharing violation",
		"file is locked",
	} {
		if strings.Contains(msg, hint) {
			return true
		}
	}
	return false
}
