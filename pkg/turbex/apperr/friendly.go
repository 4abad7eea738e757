package apperr

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Friendly returns one line of plain-language guidance for err, suitable for
// display to someone who does not read error codes. Falls back to the raw
// message for uncoded errors and never returns an empty string.
func Friendly(err error) string {
	if err == nil {
		return ""
	}
	e, ok := As(err)
	if !ok {
		return fallbackLine(err.Error())
	}

	switch e.Code {
	case CodeFileLocked:
		return lockedAdvice(e)
	case CodeSaveFailed:
		if IsLockError(e) {
			return lockedAdvice(e)
		}
		if name := detailFileName(e); name != "" {
			return fmt.Sprintf("Could not save %s: %s", name, firstLine(e.Message))
		}
		return "Could not save the file: " + firstLine(e.Message)
	case CodeDestBlocked:
		return blockedAdvice(e)
	case CodeSheetNotFound:
		return "That sheet does not exist in the source file. Check the sheet name: " + firstLine(e.Message)
	case CodeSourceReadFailed:
		msg := strings.ToLower(e.Message)
		if strings.Contains(msg, "no such file") || strings.Contains(msg, "not found") || strings.Contains(msg, "cannot find") {
			return "The source file was not found. Check the file path: " + firstLine(e.Message)
		}
		if IsLockError(e) {
			return lockedAdvice(e)
		}
		return "Could not read the source file: " + firstLine(e.Message)
	case CodeBadSpec:
		return "There is a problem with a row or column specification: " + firstLine(e.Message)
	case CodeBadSourceStartRow:
		return "Source Start Row must be a whole number of 1 or higher."
	case CodeInvalidRule:
		return "A filter rule is incomplete or invalid: " + firstLine(e.Message)
	case CodeMissingDestPath:
		return "No destination file is set. Choose a destination file before running."
	case CodeMissingSourcePath:
		return "No source file is set. Choose a source file before running."
	default:
		return fallbackLine(e.Message)
	}
}

func lockedAdvice(e *Error) string {
	if name := detailFileName(e); name != "" {
		return fmt.Sprintf("The file %s is open in another program. Close it and try again.", name)
	}
	return "The file is open in another program. Close it and try again."
}

func blockedAdvice(e *Error) string {
	target, _ := e.Details["targetStart"].(string)
	where := ""
	if fb, ok := e.Details["firstBlocker"].(map[string]any); ok {
		letter, _ := fb["colLetter"].(string)
		if row, ok := fb["row"].(int); ok && letter != "" {
			where = fmt.Sprintf("%s%d", letter, row)
		}
	}
	switch {
	case target != "" && where != "":
		return fmt.Sprintf("The destination area starting at %s already has data (first found at %s). Move the extraction or clear those cells.", target, where)
	case target != "":
		return fmt.Sprintf("The destination area starting at %s already has data. Move the extraction or clear those cells.", target)
	default:
		return "The destination area already has data. Move the extraction or clear those cells."
	}
}

// detailFileName pulls a display name from the path detail, if present.
func detailFileName(e *Error) string {
	for _, key := range []string{"path", "file", "dest"} {
		if p, ok := e.Details[key].(string); ok && p != "" {
			return filepath.Base(p)
		}
	}
	return ""
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func fallbackLine(s string) string {
	line := firstLine(s)
	if line == "" {
		return "Something went wrong. Check the run log for details."
	}
	return line
}
