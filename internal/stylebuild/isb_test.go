package isb

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds our testing environment
type testEnv struct {
	root   string
	config *Config
}

// setupTestEnv creates a fresh root dir and a config pointed at it
func setupTestEnv(t *testing.T, patterns ...string) *testEnv {
	t.Helper()

	root := t.TempDir()
	config := &Config{
		SourcePatterns: patterns,
		DestDir:        "out",
		RootDir:        root,
		Logger:         NopLogger,
	}

	return &testEnv{root: root, config: config}
}

// createTestFile creates a file with given content under the test root
func (env *testEnv) createTestFile(t *testing.T, relativePath, content string) {
	t.Helper()

	fullPath := filepath.Join(env.root, relativePath)
	dir := filepath.Dir(fullPath)

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", fullPath, err)
	}
}

// readOutput returns the content of a file in the output dir
func (env *testEnv) readOutput(t *testing.T, name string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join(env.root, "out", name))
	if err != nil {
		t.Fatalf("Failed to read output %s: %v", name, err)
	}
	return string(content)
}

// outputNames lists the files in the output dir
func (env *testEnv) outputNames(t *testing.T) []string {
	t.Helper()

	entries, err := os.ReadDir(filepath.Join(env.root, "out"))
	if err != nil {
		t.Fatalf("Failed to read output dir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
