package isb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tdewolff/minify/v2"
	"golang.org/x/sync/semaphore"
)

// Build compiles every stylesheet matched by SourcePatterns, minifies the
// result and writes one CSS file per source into DestDir.
//
// With ContinueOnError, a failed file is logged and the remaining files are
// still built; the written files are returned together with a *BuildErrors
// listing the failures. With AbortOnError, the first failure stops any file
// that has not started yet.
func (c *Config) Build(ctx context.Context) ([]WrittenFile, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	log := c.getLogger()

	sources, err := c.resolveSources()
	if err != nil {
		return nil, err
	}
	if err := c.checkOutputCollisions(sources); err != nil {
		return nil, err
	}

	destDir := c.getCleanDestDir()
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, &IOError{Path: destDir, Err: fmt.Errorf("error creating output directory: %w", err)}
	}

	if len(sources) == 0 {
		log.Warningf("no stylesheets to build")
		return nil, nil
	}

	buildCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	fileSemaphore := semaphore.NewWeighted(int64(c.getConcurrency()))
	m := newMinifier()
	abortOnError := c.getErrorPolicy() == AbortOnError

	results := make([]*WrittenFile, len(sources))
	errs := make([]error, len(sources))

	var wg sync.WaitGroup

	for i, src := range sources {
		if err := fileSemaphore.Acquire(buildCtx, 1); err != nil {
			break
		}
		if buildCtx.Err() != nil {
			fileSemaphore.Release(1)
			break
		}

		wg.Add(1)
		go func(i int, src sourceFile) {
			defer wg.Done()
			defer fileSemaphore.Release(1)

			if buildCtx.Err() != nil {
				return
			}

			written, err := c.buildFile(m, src, destDir)
			if err != nil {
				errs[i] = err
				log.Errorf("%v", err)
				if abortOnError {
					cancel()
				}
				return
			}

			log.Infof("built %s -> %s (%d bytes)", src.path, written.Path, written.Size)
			results[i] = &written
		}(i, src)
	}

	wg.Wait()

	var written []WrittenFile
	for _, r := range results {
		if r != nil {
			written = append(written, *r)
		}
	}

	var failed []error
	for _, e := range errs {
		if e != nil {
			failed = append(failed, e)
		}
	}

	if len(failed) > 0 {
		return written, &BuildErrors{Errs: failed}
	}
	if err := ctx.Err(); err != nil {
		return written, fmt.Errorf("build cancelled: %w", err)
	}

	return written, nil
}

// buildFile runs one source through read, compile, minify and write.
func (c *Config) buildFile(m *minify.M, src sourceFile, destDir string) (WrittenFile, error) {
	c.getLogger().Debugf("compiling %s (pattern %q)", src.path, c.SourcePatterns[src.patternIndex])

	compiled, err := c.compileFile(src.path)
	if err != nil {
		return WrittenFile{}, err
	}

	minified, err := minifyCSS(m, compiled)
	if err != nil {
		return WrittenFile{}, fmt.Errorf("error processing %s: %w", src.path, err)
	}

	outputFile := filepath.Join(destDir, outputFileName(src.path))
	if err := os.WriteFile(outputFile, []byte(minified), 0644); err != nil {
		return WrittenFile{}, &IOError{Path: outputFile, Err: err}
	}

	return WrittenFile{Source: src.path, Path: outputFile, Size: len(minified)}, nil
}
