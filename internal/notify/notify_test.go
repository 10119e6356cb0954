package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminal(t *testing.T) {
	var buf bytes.Buffer
	n := NewTerminal(&buf)

	n.Success("Welcome back!")
	n.Error("Server error. Please try again later.")

	out := buf.String()
	assert.Contains(t, out, "Welcome back!")
	assert.Contains(t, out, "Server error. Please try again later.")
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Success("a")
	r.Error("b")
	r.Success("c")

	successes, errors := r.Snapshot()
	assert.Equal(t, []string{"a", "c"}, successes)
	assert.Equal(t, []string{"b"}, errors)
}
