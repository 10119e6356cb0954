package ux

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Mar 15, 2026", FormatDate("2026-03-15T10:30:00Z"))
	assert.Equal(t, "Mar 15, 2026", FormatDate("2026-03-15"))
	assert.Equal(t, "Invalid date", FormatDate("not a date"))
	assert.Equal(t, "Invalid date", FormatDate(""))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		when string
		want string
	}{
		{"seconds ago", "2026-03-15T11:59:30Z", "just now"},
		{"minutes ago", "2026-03-15T11:45:00Z", "15 minutes ago"},
		{"one hour ago", "2026-03-15T11:00:00Z", "1 hour ago"},
		{"days ago", "2026-03-12T12:00:00Z", "3 days ago"},
		{"months ago", "2026-01-10T12:00:00Z", "2 months ago"},
		{"years ago", "2024-01-10T12:00:00Z", "2 years ago"},
		{"future", "2026-03-15T14:00:00Z", "in 2 hours"},
		{"garbage", "nope", "Invalid date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(tt.when, now))
		})
	}
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "JD", Initials("jane doe"))
	assert.Equal(t, "JD", Initials("Jane Doe Smith"))
	assert.Equal(t, "J", Initials("jane"))
	assert.Equal(t, "", Initials(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly10!", Truncate("exactly10!", 10))
	assert.Equal(t, "toolongfor...", Truncate("toolongforthis", 10))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 task", Pluralize(1, "task", ""))
	assert.Equal(t, "3 tasks", Pluralize(3, "task", ""))
	assert.Equal(t, "0 tasks", Pluralize(0, "task", ""))
	assert.Equal(t, "2 people", Pluralize(2, "person", "people"))
}
