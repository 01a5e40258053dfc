package mcptools

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

var errPathRequired = errors.New("path is required")

// parseDateOr parses an ISO date, returning fallback for an empty string.
func parseDateOr(s string, fallback time.Time) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return fallback, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

func limitTo[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func resolvePath(dir, path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errPathRequired
	}
	if filepath.IsAbs(path) || dir == "" {
		return path, nil
	}
	return filepath.Join(dir, path), nil
}
