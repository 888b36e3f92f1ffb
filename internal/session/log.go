package session

import (
	"strconv"
	"time"
)

// Message is one entry of the chat log. Author is a snapshot of the active
// alias at send time and never changes afterwards.
type Message struct {
	Sequence int
	Author   Alias
	Body     string
	SentAt   time.Time
}

// Label renders the header line shown above a message body ("3 bob").
func (m Message) Label() string {
	return strconv.Itoa(m.Sequence) + " " + string(m.Author)
}

// Log is the append-only, ordered sequence of messages.
type Log struct {
	messages []Message
}

// Append stamps a new message with the next sequence number.
func (l *Log) Append(author Alias, body string, at time.Time) Message {
	msg := Message{
		Sequence: len(l.messages) + 1,
		Author:   author,
		Body:     body,
		SentAt:   at,
	}
	l.messages = append(l.messages, msg)
	return msg
}

// Len returns the number of messages.
func (l *Log) Len() int {
	return len(l.messages)
}

// Messages returns a copy of the log in sequence order.
func (l *Log) Messages() []Message {
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Last returns the newest message, if any.
func (l *Log) Last() (Message, bool) {
	if len(l.messages) == 0 {
		return Message{}, false
	}
	return l.messages[len(l.messages)-1], true
}
