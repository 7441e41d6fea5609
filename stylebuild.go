package stylebuild

import (
	"context"

	isb "github.com/sjc5/stylebuild/internal/stylebuild"
)

type Config = isb.Config
type WrittenFile = isb.WrittenFile
type ErrorPolicy = isb.ErrorPolicy
type Logger = isb.Logger

type SyntaxError = isb.SyntaxError
type IOError = isb.IOError
type BuildErrors = isb.BuildErrors

const ContinueOnError = isb.ContinueOnError
const AbortOnError = isb.AbortOnError

var DefaultConfig = isb.DefaultConfig
var NewConsoleLogger = isb.NewConsoleLogger
var NopLogger = isb.NopLogger

type StyleBuild struct {
	Config *isb.Config
}

// Build compiles, minifies and writes every configured stylesheet.
// See Config.Build for how per-file failures are reported.
func (s StyleBuild) Build(ctx context.Context) ([]WrittenFile, error) {
	return s.Config.Build(ctx)
}

func New(config *isb.Config) *StyleBuild {
	if config.Logger == nil {
		config.Logger = isb.Log
	}
	return &StyleBuild{
		Config: config,
	}
}

/*
 * Build is a shortcut for a one-off build of sourcePatterns into destDir,
 * resolved against the current directory, using the default logger and
 * the log-and-continue error policy.
 */
func Build(ctx context.Context, sourcePatterns []string, destDir string) ([]WrittenFile, error) {
	return New(&Config{
		SourcePatterns: sourcePatterns,
		DestDir:        destDir,
		RootDir:        ".",
	}).Build(ctx)
}
