// Package reldate resolves French and English relative date phrases
package reldate

import (
	"regexp"
	"strings"
	"time"
)

// ISODate is the wire format for resolved dates
const ISODate = "2006-01-02"

var isoRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Resolve maps a relative phrase to an ISO date anchored on today.
// Phrases already in YYYY-MM-DD form pass through unchanged. Anything outside
// the known vocabulary returns ok=false; the caller decides whether to fall
// back to a generic parser or fail.
//
// today is normalized to local midnight first, so the caller's time of day
// never shifts the day arithmetic
func Resolve(phrase string, today time.Time) (string, bool) {
	p := strings.ToLower(strings.TrimSpace(phrase))
	if p == "" {
		return "", false
	}
	if isoRe.MatchString(p) {
		return p, true
	}

	day := Midnight(today)

	switch p {
	case "aujourd'hui", "aujourdhui", "today":
		return day.Format(ISODate), true
	case "demain", "tomorrow":
		return day.AddDate(0, 0, 1).Format(ISODate), true
	case "après-demain", "apres-demain", "day after tomorrow":
		return day.AddDate(0, 0, 2).Format(ISODate), true
	}

	if strings.Contains(p, "semaine pro") || strings.Contains(p, "next week") {
		return day.AddDate(0, 0, 7).Format(ISODate), true
	}

	return "", false
}

// Midnight truncates t to local midnight in its own location
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
