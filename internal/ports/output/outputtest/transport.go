// Package outputtest provides in-memory implementations of the output ports
// for tests.
package outputtest

import (
	"sync"

	"tellobot/internal/ports/output"
)

var _ output.Transport = (*RecordingTransport)(nil)

// RecordingTransport records every call it receives.
type RecordingTransport struct {
	mu       sync.Mutex
	connects int
	sent     []string
}

func (t *RecordingTransport) Connect() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.connects++
}

func (t *RecordingTransport) Send(command string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sent = append(t.sent, command)
}

// Connects returns how many times Connect was called.
func (t *RecordingTransport) Connects() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.connects
}

// Sent returns a copy of the commands sent so far.
func (t *RecordingTransport) Sent() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.sent...)
}
