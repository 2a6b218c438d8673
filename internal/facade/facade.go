// Package facade exposes per-resource mutation operations. A façade writes
// through the API client, then asks the store to reconcile the affected
// collections. It is the error boundary of the sync layer: failures come
// back as nil/false sentinels plus a recorded message, never as an error.
package facade

import (
	"errors"
	"sync"
	"time"

	"coaching-app/internal/apiclient"
	"coaching-app/internal/notify"
)

// Notifier is the side channel façades report outcomes on. The view layer
// decides what to do with them; notify.Queue satisfies it.
type Notifier interface {
	Enqueue(message string, kind notify.Kind, duration time.Duration)
}

// opState tracks loading and last error of a façade's own latest operation
// only. It is not a log of past operations.
type opState struct {
	mu      sync.Mutex
	loading bool
	lastErr string
}

// Loading reports whether the façade's own operation is in flight. It is
// true strictly between call start and return.
func (s *opState) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the message recorded by the last failed operation, or empty.
func (s *opState) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *opState) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *opState) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *opState) fail(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}

// failureMessage derives a human-readable message from an API failure,
// falling back when the typed failure carries none.
func failureMessage(err error, fallback string) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func report(n Notifier, msg string, kind notify.Kind) {
	if n != nil {
		n.Enqueue(msg, kind, notify.DefaultDuration)
	}
}
