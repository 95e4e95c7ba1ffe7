package compose

import (
	"strings"
	"time"
)

const displayLayout = "Jan 2006"

var dateLayouts = []string{
	"2006-01",
	"2006-01-02",
	time.RFC3339,
	"2006",
}

// FormatDate renders a stored date as "Aug 2023". Anything it cannot parse is
// returned unchanged.
func FormatDate(s string) string {
	trimmed := strings.TrimSpace(s)
	if strings.EqualFold(trimmed, "present") {
		return "Present"
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(displayLayout)
		}
	}
	return s
}

// FormatDateRange renders "<start> - Present", "<start> - <end>" or "<start>".
func FormatDateRange(start, end string, current bool) string {
	from := FormatDate(start)
	switch {
	case current:
		if from == "" {
			return "Present"
		}
		return from + " - Present"
	case strings.TrimSpace(end) != "":
		to := FormatDate(end)
		if from == "" {
			return to
		}
		return from + " - " + to
	default:
		return from
	}
}
