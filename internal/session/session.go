package session

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zhubert/chatter/internal/logger"
)

// Session is the single owned state object of one interactive run.
type Session struct {
	id       string
	roster   *Roster
	messages Log
	scroll   ScrollState
	now      func() time.Time
	log      *slog.Logger
}

// Option configures a Session at construction.
type Option func(*sessionOptions)

type sessionOptions struct {
	defaultAlias Alias
	aliases      []string
	now          func() time.Time
}

// WithDefaultAlias replaces DefaultAlias as the starting identity.
// A blank name is ignored.
func WithDefaultAlias(name string) Option {
	return func(o *sessionOptions) {
		if strings.TrimSpace(name) != "" {
			o.defaultAlias = Alias(name)
		}
	}
}

// WithAliases seeds extra roster entries after the default alias.
func WithAliases(names ...string) Option {
	return func(o *sessionOptions) {
		o.aliases = append(o.aliases, names...)
	}
}

// WithClock sets the time source used to stamp messages.
func WithClock(now func() time.Time) Option {
	return func(o *sessionOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// New creates a session: one roster entry equal to the active alias, an
// empty log, and a pinned view.
func New(opts ...Option) *Session {
	o := sessionOptions{
		defaultAlias: DefaultAlias,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	id := uuid.New().String()
	s := &Session{
		id:     id,
		roster: NewRoster(o.defaultAlias),
		now:    o.now,
		log:    logger.WithSession(id),
	}
	s.roster.seed(o.aliases)

	s.log.Debug("Session created", "active", s.roster.Active(), "aliases", s.roster.Len())
	return s
}

// ID returns the session's correlation id.
func (s *Session) ID() string {
	return s.id
}

// SendMessage appends text under the active alias. Whitespace-only text is
// ignored and reported with ok=false.
func (s *Session) SendMessage(text string) (msg Message, ok bool) {
	if strings.TrimSpace(text) == "" {
		s.log.Debug("Ignoring blank message")
		return Message{}, false
	}
	msg = s.messages.Append(s.roster.Active(), text, s.now())
	s.log.Debug("Message sent", "sequence", msg.Sequence, "author", msg.Author, "pinned", s.scroll.Pinned())
	return msg, true
}

// SwitchActiveAlias sets the active alias. The name is not checked against
// the roster.
func (s *Session) SwitchActiveAlias(name Alias) {
	s.roster.SetActive(name)
	s.log.Debug("Active alias switched", "active", name)
}

// AddAlias appends name to the roster and returns the updated entries.
func (s *Session) AddAlias(name string) ([]Alias, error) {
	if err := s.roster.Add(name); err != nil {
		s.log.Info("Add alias rejected", "error", err)
		return nil, err
	}
	s.log.Debug("Alias added", "alias", name, "aliases", s.roster.Len())
	return s.roster.Entries(), nil
}

// RemoveAlias removes the selected roster entry and returns the updated
// entries. The active alias is left alone even if it equals the removed entry.
func (s *Session) RemoveAlias(sel Selection) ([]Alias, error) {
	removed, err := s.roster.RemoveAt(sel)
	if err != nil {
		s.log.Info("Remove alias rejected", "error", err)
		return nil, err
	}
	s.log.Debug("Alias removed", "alias", removed, "index", sel.Index, "active", s.roster.Active())
	return s.roster.Entries(), nil
}

// SelectAlias makes the selected roster entry the active alias.
func (s *Session) SelectAlias(sel Selection) (Alias, error) {
	active, err := s.roster.SelectAt(sel)
	if err != nil {
		s.log.Info("Select alias rejected", "error", err)
		return "", err
	}
	s.log.Debug("Alias selected", "alias", active, "index", sel.Index)
	return active, nil
}

// OnScrollPositionChanged re-derives the pin state from the viewport.
func (s *Session) OnScrollPositionChanged(atBottom bool) {
	if s.scroll.Observe(atBottom) {
		s.log.Debug("Scroll state changed", "pinned", s.scroll.Pinned())
	}
}

// Messages returns a copy of the log.
func (s *Session) Messages() []Message {
	return s.messages.Messages()
}

// LastMessage returns the newest message, if any.
func (s *Session) LastMessage() (Message, bool) {
	return s.messages.Last()
}

// Aliases returns a copy of the roster entries.
func (s *Session) Aliases() []Alias {
	return s.roster.Entries()
}

// Active returns the current active alias.
func (s *Session) Active() Alias {
	return s.roster.Active()
}

// Pinned reports whether the log view follows new messages.
func (s *Session) Pinned() bool {
	return s.scroll.Pinned()
}

// Snapshot is a read-only copy of the session used for rendering.
type Snapshot struct {
	Messages []Message
	Aliases  []Alias
	Active   Alias
	Pinned   bool

	// ActiveListed is false once the active alias's roster entry is removed
	ActiveListed bool
}

// Snapshot returns copies of all state the UI renders.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Messages: s.messages.Messages(),
		Aliases:  s.roster.Entries(),
		Active:   s.roster.Active(),
		Pinned:   s.scroll.Pinned(),

		ActiveListed: s.roster.Contains(s.roster.Active()),
	}
}
