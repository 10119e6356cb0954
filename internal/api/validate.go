package api

import (
	"regexp"
	"unicode/utf8"

	"github.com/taskzilla/taskzilla-cli/internal/apierr"
)

// Client-side validation mirrors the server's rules so obviously bad input
// fails fast with the same normalized shape a 422 response would produce.

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// fieldErrors accumulates per-field validation messages in insertion order
// per field.
type fieldErrors map[string][]string

func (f fieldErrors) add(field, message string) {
	f[field] = append(f[field], message)
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return apierr.NewValidation("", f)
}

// Validate checks login credentials.
func (in LoginInput) Validate() error {
	errs := fieldErrors{}
	if !ValidEmail(in.Email) {
		errs.add("email", "Invalid email address")
	}
	if utf8.RuneCountInString(in.Password) < 6 {
		errs.add("password", "Password must be at least 6 characters")
	}
	return errs.err()
}

// Validate checks registration input.
func (in RegisterInput) Validate() error {
	errs := fieldErrors{}
	if utf8.RuneCountInString(in.Name) < 2 {
		errs.add("name", "Name must be at least 2 characters")
	}
	if !ValidEmail(in.Email) {
		errs.add("email", "Invalid email address")
	}
	if utf8.RuneCountInString(in.Password) < 6 {
		errs.add("password", "Password must be at least 6 characters")
	}
	if in.Password != in.PasswordConfirmation {
		errs.add("password_confirmation", "Passwords don't match")
	}
	return errs.err()
}

// Validate checks a team create/update payload.
func (in TeamInput) Validate() error {
	errs := fieldErrors{}
	n := utf8.RuneCountInString(in.Name)
	if n < 2 {
		errs.add("name", "Team name must be at least 2 characters")
	} else if n > 100 {
		errs.add("name", "Team name must be at most 100 characters")
	}
	return errs.err()
}

// Validate checks a task creation payload.
func (in CreateTaskInput) Validate() error {
	errs := fieldErrors{}
	n := utf8.RuneCountInString(in.Title)
	if n < 3 {
		errs.add("title", "Title must be at least 3 characters")
	} else if n > 255 {
		errs.add("title", "Title must be at most 255 characters")
	}
	if !in.Priority.Valid() {
		errs.add("priority", "Priority must be one of: low, medium, high")
	}
	if in.Status != "" && !in.Status.Valid() {
		errs.add("status", "Status must be one of: pending, in_progress, completed")
	}
	if in.TeamID == "" {
		errs.add("team_id", "Team is required")
	}
	return errs.err()
}

// Validate checks a task update payload.
func (in UpdateTaskInput) Validate() error {
	errs := fieldErrors{}
	if in.Title != "" {
		n := utf8.RuneCountInString(in.Title)
		if n < 3 {
			errs.add("title", "Title must be at least 3 characters")
		} else if n > 255 {
			errs.add("title", "Title must be at most 255 characters")
		}
	}
	if in.Priority != "" && !in.Priority.Valid() {
		errs.add("priority", "Priority must be one of: low, medium, high")
	}
	if in.Status != "" && !in.Status.Valid() {
		errs.add("status", "Status must be one of: pending, in_progress, completed")
	}
	return errs.err()
}

// Validate checks an invitation payload.
func (in SendInvitesInput) Validate() error {
	errs := fieldErrors{}
	if in.TeamID == "" {
		errs.add("team_id", "Team is required")
	}
	if len(in.Emails) == 0 {
		errs.add("emails", "At least one email is required")
	}
	for _, email := range in.Emails {
		if !ValidEmail(email) {
			errs.add("emails", "Invalid email address: "+email)
		}
	}
	return errs.err()
}
