// Package envfile parses .env files for the import command and redacts
// secret-looking values before they are echoed back to the user.
package envfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Entry is a single key-value pair from a .env file.
type Entry struct {
	Key   string
	Value string
}

// Parse reads a .env file and returns its key-value entries. Blank lines
// and lines starting with # are skipped; values keep everything after the
// first "=".
func Parse(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		entries = append(entries, Entry{
			Key:   strings.TrimSpace(key),
			Value: strings.Trim(strings.TrimSpace(value), `"'`),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return entries, nil
}

// sensitivePatterns are substrings that indicate a value should be redacted.
var sensitivePatterns = []string{"TOKEN", "SECRET", "PASSWORD", "KEY", "CREDENTIAL"}

// Redact returns a redacted version of value if the key name contains a
// sensitive pattern (case-insensitive substring match). Values with 4+
// chars show the first 4 chars + "***"; shorter values become "***".
func Redact(key, value string) string {
	upper := strings.ToUpper(key)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(upper, pattern) {
			if len(value) >= 4 {
				return value[:4] + "***"
			}
			return "***"
		}
	}
	return value
}
