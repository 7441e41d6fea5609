package isb

import (
	"fmt"
	"strings"
)

// SyntaxError reports a stylesheet the compiler could not make sense of.
// File is the file the error points at, which may be an imported file
// rather than the source that was being built.
type SyntaxError struct {
	File    string
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("syntax error in %s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("syntax error in %s: %s", e.File, e.Message)
}

// IOError reports a source that could not be read or an output that could
// not be written.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("error accessing %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// BuildErrors collects every per-file failure of a single build.
type BuildErrors struct {
	Errs []error
}

func (e *BuildErrors) Error() string {
	msgs := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		msgs = append(msgs, err.Error())
	}
	noun := "files"
	if len(e.Errs) == 1 {
		noun = "file"
	}
	return fmt.Sprintf("%d %s failed to build: %s", len(e.Errs), noun, strings.Join(msgs, "; "))
}

func (e *BuildErrors) Unwrap() []error {
	return e.Errs
}
