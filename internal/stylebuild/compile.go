package isb

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bep/golibsass/libsass"
	"github.com/bep/golibsass/libsass/libsasserrors"
)

// libsass names the entry file "stdin" when compiling from a string.
const libsassStdin = "stdin"

// compileFile reads one stylesheet and compiles it to compressed CSS.
// Imports resolve against the file's own directory first.
func (c *Config) compileFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Path: path, Err: err}
	}

	includePaths := append([]string{filepath.Dir(path)}, c.getCleanIncludePaths()...)

	transpiler, err := libsass.New(libsass.Options{
		OutputStyle:  libsass.CompressedStyle,
		IncludePaths: includePaths,
		Precision:    c.getPrecision(),
		SassSyntax:   filepath.Ext(path) == sassExt,
	})
	if err != nil {
		return "", fmt.Errorf("error creating compiler for %s: %w", path, err)
	}

	result, err := transpiler.Execute(string(content))
	if err != nil {
		return "", toSyntaxError(path, err)
	}

	return result.CSS, nil
}

func toSyntaxError(path string, err error) *SyntaxError {
	var sassErr libsasserrors.Error
	if !errors.As(err, &sassErr) {
		return &SyntaxError{File: path, Message: err.Error()}
	}

	file := sassErr.File
	if file == "" || file == libsassStdin {
		file = path
	}
	return &SyntaxError{
		File:    file,
		Line:    sassErr.Line,
		Column:  sassErr.Column,
		Message: sassErr.Message,
	}
}
