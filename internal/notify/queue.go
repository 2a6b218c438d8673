// Package notify holds the transient notification queue reporting mutation
// outcomes to the user.
package notify

import (
	"sync"
	"time"
)

// Kind classifies a notification.
type Kind string

const (
	// KindSuccess reports a completed mutation.
	KindSuccess Kind = "success"
	// KindError reports a failed mutation.
	KindError Kind = "error"
	// KindInfo reports anything else.
	KindInfo Kind = "info"
)

// DefaultDuration is how long a notification stays visible unless the caller
// picks another duration.
const DefaultDuration = 3 * time.Second

// Notification is one ephemeral message. It disappears when its own timer
// fires or when it is dismissed, whichever comes first.
type Notification struct {
	ID       int64
	Message  string
	Kind     Kind
	Duration time.Duration
}

type stopFunc func()

// Queue keeps notifications in arrival order. There is no cap and no
// deduplication; stacking is a presentation concern.
type Queue struct {
	mu      sync.Mutex
	nextID  int64
	items   []Notification
	timers  map[int64]stopFunc
	subs    map[int]func([]Notification)
	nextSub int

	// after schedules fn to run once d elapses. Swapped in tests for a
	// simulated clock.
	after func(d time.Duration, fn func()) stopFunc
}

// NewQueue creates an empty queue backed by real timers.
func NewQueue() *Queue {
	return &Queue{
		timers: make(map[int64]stopFunc),
		subs:   make(map[int]func([]Notification)),
		after: func(d time.Duration, fn func()) stopFunc {
			t := time.AfterFunc(d, fn)
			return func() { t.Stop() }
		},
	}
}

// Enqueue appends a notification with a fresh id. Each notification measures
// its own duration independently; a later enqueue never extends an earlier
// timer. Fire and forget.
func (q *Queue) Enqueue(message string, kind Kind, duration time.Duration) {
	if duration <= 0 {
		duration = DefaultDuration
	}

	q.mu.Lock()
	q.nextID++
	id := q.nextID
	q.items = append(q.items, Notification{
		ID:       id,
		Message:  message,
		Kind:     kind,
		Duration: duration,
	})
	q.timers[id] = q.after(duration, func() { q.Dismiss(id) })
	items, subs := q.snapshotLocked()
	q.mu.Unlock()

	publish(items, subs)
}

// Dismiss removes the notification immediately and stops its timer.
// Dismissing an unknown id is a no-op.
func (q *Queue) Dismiss(id int64) {
	q.mu.Lock()
	stop, ok := q.timers[id]
	if !ok {
		q.mu.Unlock()
		return
	}
	delete(q.timers, id)
	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i:i], q.items[i+1:]...)
			break
		}
	}
	items, subs := q.snapshotLocked()
	q.mu.Unlock()

	stop()
	publish(items, subs)
}

// Items returns the current notifications in arrival order.
func (q *Queue) Items() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := make([]Notification, len(q.items))
	copy(items, q.items)
	return items
}

// Subscribe registers fn to receive the queue contents after every change
// and returns an unsubscribe func.
func (q *Queue) Subscribe(fn func([]Notification)) func() {
	q.mu.Lock()
	id := q.nextSub
	q.nextSub++
	q.subs[id] = fn
	q.mu.Unlock()

	return func() {
		q.mu.Lock()
		delete(q.subs, id)
		q.mu.Unlock()
	}
}

func (q *Queue) snapshotLocked() ([]Notification, []func([]Notification)) {
	items := make([]Notification, len(q.items))
	copy(items, q.items)
	subs := make([]func([]Notification), 0, len(q.subs))
	for _, fn := range q.subs {
		subs = append(subs, fn)
	}
	return items, subs
}

func publish(items []Notification, subs []func([]Notification)) {
	for _, fn := range subs {
		fn(items)
	}
}
