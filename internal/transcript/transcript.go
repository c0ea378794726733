// Package transcript holds the in-memory conversation state for the chat UI.
// The store is pure state: it performs no I/O and knows nothing about the
// terminal. Rendering and scrolling are the presentation layer's job.
package transcript

import "time"

// Role identifies who authored a message.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Message is a single transcript entry. Messages are never mutated or
// deleted after Append; they live for the duration of the session.
type Message struct {
	ID      int64
	Role    Role
	Content string
	Time    time.Time
}

// Store is the ordered conversation state: messages in insertion order,
// the current draft, the in-flight flag, and the last error text.
// All operations are synchronous state transitions and cannot fail.
// The store is not safe for concurrent use; the bubbletea event loop is
// the only mutator.
type Store struct {
	messages []Message
	nextID   int64
	draft    string
	loading  bool
	lastErr  string
}

// New returns an empty store.
func New() *Store {
	return &Store{nextID: 1}
}

// Append adds a message to the end of the transcript and returns its id.
// IDs are monotonic within a store and never reused.
func (s *Store) Append(role Role, content string) int64 {
	id := s.nextID
	s.nextID++
	s.messages = append(s.messages, Message{
		ID:      id,
		Role:    role,
		Content: content,
		Time:    time.Now(),
	})
	return id
}

// Messages returns a copy of the transcript in insertion order.
func (s *Store) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages in the transcript.
func (s *Store) Len() int {
	return len(s.messages)
}

// SetDraft records the not-yet-submitted input text.
func (s *Store) SetDraft(text string) {
	s.draft = text
}

// Draft returns the current draft text.
func (s *Store) Draft() string {
	return s.draft
}

// SetLoading sets the in-flight flag. True for the full window between
// submit and settlement; cleared unconditionally on both outcomes.
func (s *Store) SetLoading(v bool) {
	s.loading = v
}

// Loading reports whether a request is in flight.
func (s *Store) Loading() bool {
	return s.loading
}

// SetError records the last error text shown in the error panel.
func (s *Store) SetError(msg string) {
	s.lastErr = msg
}

// ClearError resets the last error.
func (s *Store) ClearError() {
	s.lastErr = ""
}

// LastError returns the most recent error text, or "" if none.
func (s *Store) LastError() string {
	return s.lastErr
}
