package api

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskzilla/taskzilla-cli/internal/apierr"
)

func fieldsOf(t *testing.T, err error) map[string][]string {
	t.Helper()
	normalized, ok := apierr.AsError(err)
	require.True(t, ok)
	require.Equal(t, apierr.KindValidation, normalized.Kind)
	return normalized.Fields
}

func TestLoginInputValidate(t *testing.T) {
	assert.NoError(t, LoginInput{Email: "a@b.com", Password: "secret1"}.Validate())

	err := LoginInput{Email: "not-an-email", Password: "short"}.Validate()
	fields := fieldsOf(t, err)
	assert.Equal(t, []string{"Invalid email address"}, fields["email"])
	assert.Equal(t, []string{"Password must be at least 6 characters"}, fields["password"])
}

func TestRegisterInputValidate(t *testing.T) {
	valid := RegisterInput{
		Name:                 "Ada",
		Email:                "ada@example.com",
		Password:             "secret1",
		PasswordConfirmation: "secret1",
	}
	assert.NoError(t, valid.Validate())

	mismatch := valid
	mismatch.PasswordConfirmation = "different"
	fields := fieldsOf(t, mismatch.Validate())
	assert.Equal(t, []string{"Passwords don't match"}, fields["password_confirmation"])

	short := valid
	short.Name = "A"
	fields = fieldsOf(t, short.Validate())
	assert.Contains(t, fields, "name")
}

func TestTeamInputValidate(t *testing.T) {
	assert.NoError(t, TeamInput{Name: "Platform"}.Validate())

	fields := fieldsOf(t, TeamInput{Name: "x"}.Validate())
	assert.Contains(t, fields, "name")

	long := TeamInput{Name: strings.Repeat("n", 101)}
	fields = fieldsOf(t, long.Validate())
	assert.Equal(t, []string{"Team name must be at most 100 characters"}, fields["name"])
}

func TestCreateTaskInputValidate(t *testing.T) {
	valid := CreateTaskInput{Title: "Ship the thing", Priority: TaskPriorityHigh, TeamID: "t-1"}
	assert.NoError(t, valid.Validate())

	bad := CreateTaskInput{Title: "ab", Priority: "urgent"}
	fields := fieldsOf(t, bad.Validate())
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "priority")
	assert.Contains(t, fields, "team_id")
}

func TestSendInvitesInputValidate(t *testing.T) {
	valid := SendInvitesInput{TeamID: "t-1", Emails: []string{"a@b.com", "c@d.com"}}
	assert.NoError(t, valid.Validate())

	bad := SendInvitesInput{Emails: []string{"nope"}}
	fields := fieldsOf(t, bad.Validate())
	assert.Contains(t, fields, "team_id")
	assert.Equal(t, []string{"Invalid email address: nope"}, fields["emails"])

	empty := SendInvitesInput{TeamID: "t-1"}
	fields = fieldsOf(t, empty.Validate())
	assert.Equal(t, []string{"At least one email is required"}, fields["emails"])
}

func TestTaskOverdue(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, Task{DueDate: "2026-08-30", Status: TaskStatusPending}.Overdue(now))
	assert.False(t, Task{DueDate: "2026-09-02", Status: TaskStatusPending}.Overdue(now))
	assert.False(t, Task{DueDate: "2026-08-30", Status: TaskStatusCompleted}.Overdue(now))
	assert.False(t, Task{Status: TaskStatusPending}.Overdue(now))
	assert.False(t, Task{DueDate: "not-a-date", Status: TaskStatusPending}.Overdue(now))
}

func TestTaskFiltersValues(t *testing.T) {
	values := TaskFilters{
		Status:      TaskStatusInProgress,
		Priority:    TaskPriorityLow,
		Search:      "launch",
		DueDateFrom: "2026-01-01",
	}.Values()

	assert.Equal(t, "in_progress", values.Get("status"))
	assert.Equal(t, "low", values.Get("priority"))
	assert.Equal(t, "launch", values.Get("search"))
	assert.Equal(t, "2026-01-01", values.Get("due_date_from"))
	assert.Empty(t, values.Get("due_date_to"))

	assert.Empty(t, TaskFilters{}.Values())
	assert.True(t, TaskFilters{}.IsZero())
}
