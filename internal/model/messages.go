package model

import "sort"

// MessageQueue holds error messages waiting to be shown one at a time.
// Messages the user asked not to see again are dropped on Push.
type MessageQueue struct {
	pending    []string
	suppressed map[string]bool
}

// NewMessageQueue creates a queue that already suppresses the given messages.
func NewMessageQueue(suppressed []string) *MessageQueue {
	q := &MessageQueue{suppressed: make(map[string]bool)}
	for _, m := range suppressed {
		q.suppressed[m] = true
	}
	return q
}

// Push appends msg unless it is suppressed. Returns true if it was queued.
func (q *MessageQueue) Push(msg string) bool {
	if q.suppressed[msg] {
		return false
	}
	q.pending = append(q.pending, msg)
	return true
}

// Next pops the oldest pending message.
func (q *MessageQueue) Next() (string, bool) {
	if len(q.pending) == 0 {
		return "", false
	}
	msg := q.pending[0]
	q.pending = q.pending[1:]
	return msg, true
}

// Suppress stops msg from being shown again and drops pending copies of it.
func (q *MessageQueue) Suppress(msg string) {
	q.suppressed[msg] = true
	kept := q.pending[:0]
	for _, m := range q.pending {
		if m != msg {
			kept = append(kept, m)
		}
	}
	q.pending = kept
}

// Suppressed reports whether msg has been suppressed.
func (q *MessageQueue) Suppressed(msg string) bool {
	return q.suppressed[msg]
}

// SuppressedMessages returns the suppressed messages in sorted order,
// suitable for persisting in AppConfig.
func (q *MessageQueue) SuppressedMessages() []string {
	out := make([]string, 0, len(q.suppressed))
	for m := range q.suppressed {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of pending messages.
func (q *MessageQueue) Len() int {
	return len(q.pending)
}
