package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeList_Paginated(t *testing.T) {
	server := newTestServer(t, jsonHandler(http.StatusOK,
		`{"data":{"data":[{"uuid":"t-1","name":"Platform","lead_id":"1"}],"meta":{"current_page":1,"last_page":1,"per_page":15,"total":1}}}`))
	client := NewClient(server.URL, Options{})

	teams, err := client.ListTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "t-1", teams[0].UUID)
	assert.Equal(t, "Platform", teams[0].Name)
}

func TestDecodeList_PaginatedEndpointServingBareArray(t *testing.T) {
	// Older backend versions serve the items directly under data.
	server := newTestServer(t, jsonHandler(http.StatusOK,
		`{"data":[{"uuid":"t-1","name":"Platform","lead_id":"1"}]}`))
	client := NewClient(server.URL, Options{})

	teams, err := client.ListTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "Platform", teams[0].Name)
}

func TestDecodeList_Flat(t *testing.T) {
	server := newTestServer(t, jsonHandler(http.StatusOK,
		`{"data":[{"id":"i-1","team_id":"t-1","inviter_id":"1","invitee_email":"b@c.com","role":"member","status":"pending","token":"tok"}]}`))
	client := NewClient(server.URL, Options{})

	invites, err := client.SendInvites(context.Background(), SendInvitesInput{
		TeamID: "t-1",
		Emails: []string{"b@c.com"},
	})
	require.NoError(t, err)
	require.Len(t, invites, 1)
	assert.Equal(t, "i-1", invites[0].ID)
	assert.Equal(t, InviteStatusPending, invites[0].Status)
}

func TestDecodeData_SingleValue(t *testing.T) {
	server := newTestServer(t, jsonHandler(http.StatusOK,
		`{"data":{"uuid":"task-1","title":"Ship it","status":"pending","priority":"high","team_id":"t-1","created_by":"1","assignees":[]}}`))
	client := NewClient(server.URL, Options{})

	task, err := client.GetTask(context.Background(), "task-1")
	require.NoError(t, err)
	assert.Equal(t, "Ship it", task.Title)
	assert.Equal(t, TaskPriorityHigh, task.Priority)
}

func TestDecodeData_MissingData(t *testing.T) {
	server := newTestServer(t, jsonHandler(http.StatusOK, `{"message":"ok"}`))
	client := NewClient(server.URL, Options{})

	_, err := client.GetTask(context.Background(), "task-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "envelope has no data")
}
