package ux

import (
	"fmt"
	"strings"
	"time"
)

// parseWhen accepts the two timestamp layouts the API emits.
func parseWhen(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders "Jan 02, 2006", or "Invalid date" for unparseable input.
func FormatDate(s string) string {
	t, ok := parseWhen(s)
	if !ok {
		return "Invalid date"
	}
	return t.Format("Jan 02, 2006")
}

// FormatDateTime renders "Jan 02, 2006 3:04 PM".
func FormatDateTime(s string) string {
	t, ok := parseWhen(s)
	if !ok {
		return "Invalid date"
	}
	return t.Format("Jan 02, 2006 3:04 PM")
}

// RelativeTime renders a duration relative to now: "3 days ago",
// "in 2 hours", "just now".
func RelativeTime(s string, now time.Time) string {
	t, ok := parseWhen(s)
	if !ok {
		return "Invalid date"
	}
	d := now.Sub(t)
	future := d < 0
	if future {
		d = -d
	}

	var span string
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		span = Pluralize(int(d.Minutes()), "minute", "")
	case d < 24*time.Hour:
		span = Pluralize(int(d.Hours()), "hour", "")
	case d < 30*24*time.Hour:
		span = Pluralize(int(d.Hours()/24), "day", "")
	case d < 365*24*time.Hour:
		span = Pluralize(int(d.Hours()/(24*30)), "month", "")
	default:
		span = Pluralize(int(d.Hours()/(24*365)), "year", "")
	}

	if future {
		return "in " + span
	}
	return span + " ago"
}

// Initials returns up to two uppercased initials of a name.
func Initials(name string) string {
	var b strings.Builder
	count := 0
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		b.WriteString(strings.ToUpper(string(runes[0])))
		count++
		if count == 2 {
			break
		}
	}
	return b.String()
}

// Truncate cuts text to max runes, appending "..." when shortened.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

// Pluralize renders "1 task" / "3 tasks". An empty plural appends "s".
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	if plural == "" {
		plural = singular + "s"
	}
	return fmt.Sprintf("%d %s", count, plural)
}
