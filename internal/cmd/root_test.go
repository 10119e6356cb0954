package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCommand(t *testing.T, path ...string) bool {
	t.Helper()
	current := rootCmd
	for _, name := range path {
		found := false
		for _, sub := range current.Commands() {
			if sub.Name() == name {
				current = sub
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func TestCommandTree(t *testing.T) {
	paths := [][]string{
		{"auth", "login"},
		{"auth", "register"},
		{"auth", "logout"},
		{"auth", "status"},
		{"teams", "list"},
		{"teams", "show"},
		{"teams", "create"},
		{"teams", "update"},
		{"teams", "delete"},
		{"tasks", "list"},
		{"tasks", "show"},
		{"tasks", "create"},
		{"tasks", "update"},
		{"tasks", "move"},
		{"tasks", "delete"},
		{"tasks", "assign"},
		{"tasks", "unassign"},
		{"tasks", "stats"},
		{"invites", "send"},
		{"invites", "list"},
		{"invites", "pending"},
		{"invites", "accept"},
		{"invites", "decline"},
		{"invites", "revoke"},
		{"status"},
		{"config", "show"},
		{"config", "path"},
		{"config", "init"},
		{"version"},
	}
	for _, path := range paths {
		assert.True(t, findCommand(t, path...), "missing command: %v", path)
	}
}

func TestRootHelpExamplesResolve(t *testing.T) {
	for _, line := range strings.Split(rootCmd.Long, "\n") {
		if !strings.HasPrefix(line, "  ") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "taskzilla" {
			continue
		}
		assert.True(t, findCommand(t, fields[1:]...), "help references unknown command: %s", line)
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{"config", "api-url", "output", "no-color", "quiet", "verbose"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing flag --%s", name)
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"version", "--short"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "dev")
}
