package isb

import (
	"path/filepath"
	"strings"
)

const (
	cssExt             = ".css"
	sassExt            = ".sass"
	partialPrefix      = "_"
	defaultConcurrency = 4
	defaultPrecision   = 10
	cssMediaType       = "text/css"
)

// WrittenFile describes one CSS file produced by a build.
type WrittenFile struct {
	Source string // path of the stylesheet it was compiled from
	Path   string // path of the written CSS file
	Size   int    // bytes written
}

// outputFileName maps "src/css/main.scss" to "main.css".
func outputFileName(sourcePath string) string {
	base := filepath.Base(sourcePath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + cssExt
}

func isPartial(sourcePath string) bool {
	return strings.HasPrefix(filepath.Base(sourcePath), partialPrefix)
}
