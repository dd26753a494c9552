package util

import (
	"errors"
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// SanitizeFileName removes path separators, collapses whitespace runs to
// underscores, and rejects traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = whitespaceRun.ReplaceAllString(s, "_")
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}
