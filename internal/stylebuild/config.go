package isb

import (
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/sjc5/kit/pkg/typed"
)

type ErrorPolicy string

const (
	// ContinueOnError logs a failed file and keeps building the rest.
	ContinueOnError ErrorPolicy = "continue"
	// AbortOnError stops the build at the first failed file.
	AbortOnError ErrorPolicy = "abort"
)

type Config struct {
	/*
		SourcePatterns is the ordered list of glob patterns (doublestar syntax,
		so "**" is supported) naming the stylesheets to compile. Patterns are
		resolved relative to RootDir. Order only decides which pattern "owns"
		a file matched by more than one pattern; it has no effect on how the
		files are compiled. Files whose name starts with an underscore are
		partials and are never compiled on their own.
	*/
	SourcePatterns []string `validate:"required,min=1,dive,required"`

	// DestDir is where the compiled CSS files are written, relative to
	// RootDir unless absolute. It is created if it does not exist.
	DestDir string `validate:"required"`

	/*
		RootDir is the directory that SourcePatterns, DestDir and IncludePaths
		are resolved against. It should be set relative to where you run the
		build from. We run filepath.Clean on it, so if you leave it blank, it
		will default to ".".
	*/
	RootDir string

	// Extra directories searched by @import, after the importing file's own
	// directory.
	IncludePaths []string

	// Glob patterns (set relative to RootDir) for files that should be
	// skipped even though a source pattern matched them.
	IgnorePatterns []string

	// Max number of files compiled at once. Defaults to 4.
	Concurrency int `validate:"gte=0,lte=100"`

	// Defaults to ContinueOnError.
	ErrorPolicy ErrorPolicy `validate:"omitempty,oneof=continue abort"`

	// Decimal places kept by the compiler for numbers. Defaults to 10.
	Precision int `validate:"gte=0"`

	Logger Logger

	matchResults typed.SyncMap[string, bool]
}

// DefaultConfig returns the compiled-in build configuration.
func DefaultConfig() *Config {
	return &Config{
		SourcePatterns: []string{
			"src/css/*.scss",
			"bower_components/bootstrap/scss/bootstrap.scss",
		},
		DestDir:     "./assets/css",
		RootDir:     ".",
		ErrorPolicy: ContinueOnError,
	}
}

var configValidator = validator.New()

func (c *Config) validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) getCleanRootDir() string {
	return filepath.Clean(c.RootDir)
}

func (c *Config) resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.getCleanRootDir(), p)
}

func (c *Config) getCleanDestDir() string {
	return c.resolvePath(c.DestDir)
}

func (c *Config) getCleanIncludePaths() []string {
	paths := make([]string, 0, len(c.IncludePaths))
	for _, p := range c.IncludePaths {
		paths = append(paths, c.resolvePath(p))
	}
	return paths
}

func (c *Config) getConcurrency() int {
	if c.Concurrency <= 0 {
		return defaultConcurrency
	}
	return c.Concurrency
}

func (c *Config) getPrecision() int {
	if c.Precision <= 0 {
		return defaultPrecision
	}
	return c.Precision
}

func (c *Config) getErrorPolicy() ErrorPolicy {
	if c.ErrorPolicy == "" {
		return ContinueOnError
	}
	return c.ErrorPolicy
}

func (c *Config) getLogger() Logger {
	if c.Logger == nil {
		return Log
	}
	return c.Logger
}
