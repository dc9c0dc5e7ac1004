package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// CreateSITFolder creates root/category/name with an empty subfolder for
// every language in langs and returns the SIT folder path
func CreateSITFolder(t *testing.T, root, category, name string, langs ...string) string {
	t.Helper()

	sitDir := filepath.Join(root, category, name)
	if err := os.MkdirAll(sitDir, 0755); err != nil {
		t.Fatalf("Failed to create SIT directory: %v", err)
	}

	for _, lang := range langs {
		if err := os.MkdirAll(filepath.Join(sitDir, lang), 0755); err != nil {
			t.Fatalf("Failed to create language directory %s: %v", lang, err)
		}
	}

	return sitDir
}

// CreateTermFiles writes files (name -> content) into sitDir/lang
func CreateTermFiles(t *testing.T, sitDir, lang string, files map[string]string) {
	t.Helper()

	for filename, content := range files {
		CreateTestFile(t, filepath.Join(sitDir, lang, filename), []byte(content))
	}
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContent checks if a file has expected content
func AssertFileContent(t *testing.T, path string, expected []byte) {
	t.Helper()

	actual, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if string(actual) != string(expected) {
		t.Errorf("File content mismatch in %s\nExpected: %q\nActual: %q", path, expected, actual)
	}
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, path string, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}
