package tmdb

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// unknownYear is the placeholder some callers use for a missing year
const unknownYear = "UNKNOWN"

// CompareMovies reports whether m matches title and year. Titles match when
// their Levenshtein distance is at most maxDistance; 0 requires an exact match.
// The year is only considered when both sides carry a usable four digit year.
// A title match without the year is still accepted. Empty titles on m are
// compared like any other, so a query no longer than maxDistance matches them.
func CompareMovies(m *Movie, title, year string, maxDistance int) bool {
	if m == nil || strings.TrimSpace(title) == "" {
		return false
	}

	if y, ok := yearOf(year); ok {
		if my, ok := yearOf(m.ReleaseDate); ok && my == y {
			if titleMatches(m, title, maxDistance) {
				return true
			}
		}
	}

	return titleMatches(m, title, maxDistance)
}

func titleMatches(m *Movie, title string, maxDistance int) bool {
	for _, candidate := range []string{m.OriginalTitle, m.Title} {
		if levenshtein.ComputeDistance(candidate, title) <= maxDistance {
			return true
		}
	}
	return false
}

// yearOf extracts the leading four digit year of s
func yearOf(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == unknownYear || len(s) < 4 {
		return "", false
	}
	y := s[:4]
	for _, r := range y {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return y, true
}
