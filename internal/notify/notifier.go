// Package notify holds transient user-facing messages produced by
// handlers. Messages live in a bounded ring; callers drain them into a
// response payload and the surface resets.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

type Message struct {
	ID       string    `json:"id"`
	Severity Severity  `json:"severity"`
	Text     string    `json:"text"`
	At       time.Time `json:"at"`
}

// DefaultCapacity bounds the buffer when NewNotifier is given a
// non-positive capacity.
const DefaultCapacity = 16

// Notifier is a bounded FIFO of messages. When full, the oldest
// message is evicted to make room. Safe for concurrent use.
type Notifier struct {
	mu       sync.Mutex
	messages []Message
	capacity int
}

func NewNotifier(capacity int) *Notifier {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Notifier{capacity: capacity}
}

func (n *Notifier) Push(severity Severity, text string) Message {
	msg := Message{
		ID:       uuid.NewString(),
		Severity: severity,
		Text:     text,
		At:       time.Now().UTC(),
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.messages = append(n.messages, msg)
	if len(n.messages) > n.capacity {
		n.messages = n.messages[len(n.messages)-n.capacity:]
	}
	return msg
}

func (n *Notifier) Success(text string) Message { return n.Push(SeveritySuccess, text) }
func (n *Notifier) Error(text string) Message   { return n.Push(SeverityError, text) }
func (n *Notifier) Info(text string) Message    { return n.Push(SeverityInfo, text) }
func (n *Notifier) Warning(text string) Message { return n.Push(SeverityWarning, text) }

// Drain returns all pending messages oldest first and clears the
// buffer.
func (n *Notifier) Drain() []Message {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := n.messages
	n.messages = nil
	return out
}

// Peek returns a copy of the pending messages without clearing them.
func (n *Notifier) Peek() []Message {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Message, len(n.messages))
	copy(out, n.messages)
	return out
}

func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.messages)
}
