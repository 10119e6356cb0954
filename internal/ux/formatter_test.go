package ux

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskzilla/taskzilla-cli/internal/api"
)

func TestNewFormatter(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml", ""} {
		f, err := NewFormatter(format, nil)
		require.NoError(t, err, format)
		require.NotNil(t, f)
	}

	_, err := NewFormatter("xml", nil)
	assert.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("json", &FormatterOptions{Writer: &buf})
	require.NoError(t, err)

	require.NoError(t, f.Format(api.Team{UUID: "T1", Name: "Platform"}))

	var team api.Team
	require.NoError(t, json.Unmarshal(buf.Bytes(), &team))
	assert.Equal(t, "Platform", team.Name)
}

func TestTextFormatter_RendersViews(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("text", &FormatterOptions{Writer: &buf, NoColor: true})
	require.NoError(t, err)

	view := TaskList{
		Now: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Tasks: []api.Task{{
			UUID:     "u1",
			Title:    "Fix the build",
			Status:   api.TaskStatusInProgress,
			Priority: api.TaskPriorityHigh,
			DueDate:  "2026-03-10",
			Assignees: []api.User{
				{Name: "Jane Doe"},
			},
		}},
	}
	require.NoError(t, f.Format(view))

	out := buf.String()
	assert.Contains(t, out, "Fix the build")
	assert.Contains(t, out, "In Progress")
	assert.Contains(t, out, "High")
	assert.Contains(t, out, "overdue")
	assert.Contains(t, out, "JD")
}

func TestTextFormatter_EmptyLists(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("text", &FormatterOptions{Writer: &buf, NoColor: true})
	require.NoError(t, err)

	require.NoError(t, f.Format(TeamList{}))
	assert.Contains(t, buf.String(), "No teams yet.")
}

func TestTextFormatter_RejectsUnknownTypes(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("text", &FormatterOptions{Writer: &buf})
	require.NoError(t, err)

	assert.Error(t, f.Format(struct{ X int }{1}))
}

func TestSessionView(t *testing.T) {
	var buf bytes.Buffer
	view := SessionView{
		User:    &api.User{Name: "Jane Doe", Email: "jane@example.com"},
		BaseURL: "https://tasks.example.com/api",
	}
	require.NoError(t, view.RenderText(&buf, true))
	assert.Contains(t, buf.String(), "Logged in as Jane Doe")

	buf.Reset()
	require.NoError(t, SessionView{BaseURL: "https://tasks.example.com/api"}.RenderText(&buf, true))
	assert.Contains(t, buf.String(), "Not logged in.")
}
