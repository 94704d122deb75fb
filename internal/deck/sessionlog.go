package deck

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Role identifies who produced a session log entry.
type Role string

const (
	RoleUser   Role = "user"
	RoleAI     Role = "ai"
	RoleSystem Role = "system"
)

// LogEntry is one line of the session log: who said what, and which slide
// was current at the time.
type LogEntry struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Role       Role      `json:"role"`
	Content    string    `json:"content"`
	SlideIndex int       `json:"slideIndex"`
	SlideTitle string    `json:"slideTitle,omitempty"`
}

// SessionLog is the append-only record of the AI conversation, kept only
// for the diagnostic view. It lives and dies with the process; nothing is
// persisted. Safe for concurrent use so the preview server can read while
// generation appends.
type SessionLog struct {
	mu      sync.Mutex
	entries []LogEntry
	subs    map[chan LogEntry]struct{}
}

// NewSessionLog creates an empty session log.
func NewSessionLog() *SessionLog {
	return &SessionLog{subs: make(map[chan LogEntry]struct{})}
}

// Append records an entry and notifies subscribers. Slow subscribers miss
// entries rather than block the writer.
func (l *SessionLog) Append(role Role, content string, slideIndex int, slideTitle string) LogEntry {
	e := LogEntry{
		ID:         uuid.NewString(),
		Timestamp:  time.Now(),
		Role:       role,
		Content:    content,
		SlideIndex: slideIndex,
		SlideTitle: slideTitle,
	}

	l.mu.Lock()
	l.entries = append(l.entries, e)
	for ch := range l.subs {
		select {
		case ch <- e:
		default:
		}
	}
	l.mu.Unlock()
	return e
}

// Entries returns a copy of the log.
func (l *SessionLog) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]LogEntry(nil), l.entries...)
}

// Subscribe returns a channel receiving future entries and a cancel
// function that must be called when done.
func (l *SessionLog) Subscribe() (<-chan LogEntry, func()) {
	ch := make(chan LogEntry, 16)

	l.mu.Lock()
	l.subs[ch] = struct{}{}
	l.mu.Unlock()

	return ch, func() {
		l.mu.Lock()
		delete(l.subs, ch)
		l.mu.Unlock()
	}
}

// Tail is Subscribe plus the backlog: the channel first yields every entry
// recorded so far, then future entries. Registration and the backlog copy
// happen under the same lock, so no entry is missed or duplicated.
func (l *SessionLog) Tail() (<-chan LogEntry, func()) {
	l.mu.Lock()
	ch := make(chan LogEntry, len(l.entries)+16)
	for _, e := range l.entries {
		ch <- e
	}
	l.subs[ch] = struct{}{}
	l.mu.Unlock()

	return ch, func() {
		l.mu.Lock()
		delete(l.subs, ch)
		l.mu.Unlock()
	}
}
