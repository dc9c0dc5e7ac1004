package termfile

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// ReadLines reads a term file and returns its lines without terminators.
// "\n", "\r\n" and a lone "\r" all end a line. A terminator at the end of
// the file does not start an extra empty line.
func ReadLines(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read term file: %w", err)
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("failed to decode term file %s: invalid UTF-8", filename)
	}

	return SplitLines(string(content)), nil
}

// SplitLines splits s into lines, normalizing line endings
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if s == "" {
		return nil
	}

	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// WriteLines writes lines joined by "\n" to filename, creating or truncating
// it. No trailing newline is appended and the parent directory must exist.
func WriteLines(filename string, lines []string) error {
	content := strings.Join(lines, "\n")

	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write term file: %w", err)
	}

	return nil
}
