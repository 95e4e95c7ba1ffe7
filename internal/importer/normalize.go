// Package importer turns best-effort parsed resumes into resume data. Dates are
// normalized here, once, so later renders never see free-text dates.
package importer

import (
	"regexp"
	"strings"
	"time"
)

// Present is the canonical value for "current/now/present".
const Present = "PRESENT"

const canonicalLayout = "2006-01"

var (
	yearOnly     = regexp.MustCompile(`^\d{4}$`)
	yearMonth    = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	monthYear    = regexp.MustCompile(`^([A-Za-z]+)\.?,?\s+(\d{4})$`)
	numericTriad = regexp.MustCompile(`^\d{1,2}[/.-]\d{1,2}[/.-]\d{4}$`)
)

var months = map[string]string{
	"jan": "01", "january": "01",
	"feb": "02", "february": "02",
	"mar": "03", "march": "03",
	"apr": "04", "april": "04",
	"may": "05",
	"jun": "06", "june": "06",
	"jul": "07", "july": "07",
	"aug": "08", "august": "08",
	"sep": "09", "sept": "09", "september": "09",
	"oct": "10", "october": "10",
	"nov": "11", "november": "11",
	"dec": "12", "december": "12",
}

// Non-authoritative: these only run after the explicit forms above fail.
var fallbackLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"01/2006",
	"1/2006",
	"2006/01",
	time.RFC3339,
}

// NormalizeDate maps a free-text date to YYYY-MM, or to Present. The second result
// is false when nothing matched. Day/month orderings that cannot be told apart, such
// as "03/04/2022", are reported as absent rather than guessed.
func NormalizeDate(s string) (string, bool) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", false
	}

	switch strings.ToLower(v) {
	case "present", "current", "now":
		return Present, true
	}

	if yearMonth.MatchString(v) {
		return v, true
	}
	if yearOnly.MatchString(v) {
		return v + "-01", true
	}
	if m := monthYear.FindStringSubmatch(v); m != nil {
		if mm, ok := months[strings.ToLower(m[1])]; ok {
			return m[2] + "-" + mm, true
		}
		return "", false
	}
	if numericTriad.MatchString(v) {
		return "", false
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(canonicalLayout), true
		}
	}
	return "", false
}
