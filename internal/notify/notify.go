// Package notify surfaces global user-facing notifications: the terminal
// analog of the web client's toasts. The pipeline emits an error notification
// for every normalized failure except validation; session and service
// mutations emit fixed success messages.
package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Notifier receives global notifications.
type Notifier interface {
	Success(message string)
	Error(message string)
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Terminal writes styled notifications to a writer (stderr by default, so
// command output on stdout stays machine-readable).
type Terminal struct {
	out io.Writer
}

// NewTerminal creates a terminal notifier writing to w.
func NewTerminal(w io.Writer) *Terminal {
	if w == nil {
		w = os.Stderr
	}
	return &Terminal{out: w}
}

// Success prints a success notification.
func (t *Terminal) Success(message string) {
	fmt.Fprintln(t.out, successStyle.Render("✓ "+message))
}

// Error prints an error notification.
func (t *Terminal) Error(message string) {
	fmt.Fprintln(t.out, errorStyle.Render("✗ "+message))
}

// Silent discards all notifications.
type Silent struct{}

func (Silent) Success(string) {}
func (Silent) Error(string)   {}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (r *Recorder) Success(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = append(r.Successes, message)
}

func (r *Recorder) Error(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, message)
}

// Snapshot returns copies of the recorded messages.
func (r *Recorder) Snapshot() (successes, errors []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.Successes...), append([]string(nil), r.Errors...)
}
