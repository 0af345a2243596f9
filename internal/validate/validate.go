// Package validate holds the pure field predicates and display helpers used
// by the registration flow and the dashboards.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	emailRe   = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRe   = regexp.MustCompile(`^[0-9]{10}$`)
	aadhaarRe = regexp.MustCompile(`^[0-9]{12}$`)
)

// Email reports whether s has a local@domain.tld shape. Intentionally
// permissive; the backend performs the authoritative check.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Phone reports whether s is exactly 10 decimal digits.
func Phone(s string) bool {
	return phoneRe.MatchString(s)
}

// Aadhaar reports whether s is exactly 12 decimal digits.
func Aadhaar(s string) bool {
	return aadhaarRe.MatchString(s)
}

// Initials returns up to two uppercase initials for a display name.
func Initials(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return strings.ToUpper(string([]rune(parts[0])[0]))
	default:
		first := []rune(parts[0])[0]
		last := []rune(parts[len(parts)-1])[0]
		return strings.ToUpper(string(first) + string(last))
	}
}

// Truncate shortens s to at most max runes, appending an ellipsis when
// anything was cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// TimeAgo renders t relative to now, e.g. "3 hours ago".
func TimeAgo(t, now time.Time) string {
	seconds := int64(now.Sub(t).Seconds())
	if seconds < 0 {
		seconds = 0
	}

	spans := []struct {
		secs int64
		unit string
	}{
		{31536000, "year"},
		{2592000, "month"},
		{86400, "day"},
		{3600, "hour"},
		{60, "minute"},
	}

	for _, span := range spans {
		if n := seconds / span.secs; n >= 1 {
			return pluralize(n, span.unit)
		}
	}
	return pluralize(seconds, "second")
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// Catalogs offered during registration.
var (
	Grades = []string{"LKG", "UKG", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}

	Boards = []string{"CBSE", "ICSE", "State Board", "Other"}

	Subjects = []string{
		"Mathematics",
		"Physics",
		"Chemistry",
		"Biology",
		"English",
		"Hindi",
		"Science",
		"Social Studies",
		"Computer Science",
		"Economics",
		"Accountancy",
		"Business Studies",
		"History",
		"Geography",
		"Political Science",
	}
)
