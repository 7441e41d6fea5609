package isb

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type sourceFile struct {
	path         string
	patternIndex int
}

// resolveSources expands SourcePatterns in order. Matches within a pattern
// are sorted, and a file already claimed by an earlier pattern is skipped.
func (c *Config) resolveSources() ([]sourceFile, error) {
	log := c.getLogger()
	seen := make(map[string]bool)
	var sources []sourceFile

	for i, pattern := range c.SourcePatterns {
		matches, err := c.globSource(pattern)
		if err != nil {
			return nil, fmt.Errorf("error expanding source pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			log.Warningf("source pattern %q matched no files", pattern)
			continue
		}
		sort.Strings(matches)

		for _, match := range matches {
			match = filepath.Clean(match)
			if seen[match] {
				continue
			}
			if isPartial(match) {
				log.Debugf("skipping partial %s", match)
				continue
			}
			if c.getIsIgnored(match) {
				log.Debugf("skipping ignored file %s", match)
				continue
			}
			seen[match] = true
			sources = append(sources, sourceFile{path: match, patternIndex: i})
		}
	}

	return sources, nil
}

// globSource expands one pattern. Relative patterns are matched inside
// RootDir so that meta characters in the root's own name stay literal.
func (c *Config) globSource(pattern string) ([]string, error) {
	if filepath.IsAbs(pattern) {
		return doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	}

	base := c.getCleanRootDir()
	rel := path.Clean(filepath.ToSlash(pattern))
	for rel == ".." || strings.HasPrefix(rel, "../") {
		base = filepath.Join(base, "..")
		rel = strings.TrimPrefix(strings.TrimPrefix(rel, ".."), "/")
	}
	if rel == "" {
		rel = "."
	}

	matches, err := doublestar.Glob(os.DirFS(base), rel, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		matches[i] = filepath.Join(base, filepath.FromSlash(m))
	}
	return matches, nil
}

// checkOutputCollisions rejects two sources that would be written to the
// same output file.
func (c *Config) checkOutputCollisions(sources []sourceFile) error {
	destDir := c.getCleanDestDir()
	owners := make(map[string]string, len(sources))
	for _, src := range sources {
		name := outputFileName(src.path)
		if owner, exists := owners[name]; exists {
			outPath := filepath.Join(destDir, name)
			return &IOError{
				Path: outPath,
				Err:  fmt.Errorf("both %s and %s would be written here", owner, src.path),
			}
		}
		owners[name] = src.path
	}
	return nil
}

func (c *Config) getIsMatch(pattern string, path string) bool {
	combined := pattern + "\x00" + path

	if hit, isCached := c.matchResults.Load(combined); isCached {
		return hit
	}

	matches, err := doublestar.Match(filepath.ToSlash(pattern), filepath.ToSlash(path))
	if err != nil {
		c.getLogger().Errorf("error: failed to match file: %v", err)
		return false
	}

	actualValue, _ := c.matchResults.LoadOrStore(combined, matches)
	return actualValue
}

func (c *Config) getIsIgnored(path string) bool {
	if len(c.IgnorePatterns) == 0 {
		return false
	}
	relPath, err := filepath.Rel(c.getCleanRootDir(), path)
	if err != nil {
		relPath = path
	}
	for _, pattern := range c.IgnorePatterns {
		if c.getIsMatch(pattern, relPath) {
			return true
		}
	}
	return false
}
