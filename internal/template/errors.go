package template

import (
	"fmt"
	"strings"
)

// FileError reports a template file that could not be opened or read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cannot open file %s", e.Path)
}

func (e *FileError) Unwrap() error { return e.Err }

// MissingParameterError reports a placeholder whose name has no value.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter %s", repr(e.Name, false))
}

// SyntaxError reports a malformed placeholder or unbalanced brace.
type SyntaxError struct {
	Template string
	Err      error
}

func (e *SyntaxError) Error() string {
	detail := strings.TrimPrefix(e.Err.Error(), "interpol: ")
	if e.Template == "" {
		return fmt.Sprintf("invalid template: %s", detail)
	}
	return fmt.Sprintf("invalid template %s: %s", e.Template, detail)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
