package session

// Event is a user action the shell forwards to a Session.
// The set of variants is closed.
type Event interface {
	isEvent()
}

// SendEvent submits composed text.
type SendEvent struct{ Text string }

// SwitchAliasEvent sets the active alias directly (the roster's on-submit).
type SwitchAliasEvent struct{ Name Alias }

// AddAliasEvent appends a new roster entry.
type AddAliasEvent struct{ Name string }

// RemoveAliasEvent removes the selected roster entry.
type RemoveAliasEvent struct{ Selection Selection }

// SelectAliasEvent activates the selected roster entry.
type SelectAliasEvent struct{ Selection Selection }

// ScrollEvent reports the viewport position after a scroll.
type ScrollEvent struct{ AtBottom bool }

func (SendEvent) isEvent()        {}
func (SwitchAliasEvent) isEvent() {}
func (AddAliasEvent) isEvent()    {}
func (RemoveAliasEvent) isEvent() {}
func (SelectAliasEvent) isEvent() {}
func (ScrollEvent) isEvent()      {}

// Outcome is the result of dispatching one event.
type Outcome struct {
	Snapshot Snapshot
	Appended *Message // set when a SendEvent produced a message
	Err      error    // errors.KindInvalid, KindNoSelection or KindNotFound; state is unchanged
}

// Dispatch applies ev and returns the resulting state.
func (s *Session) Dispatch(ev Event) Outcome {
	var out Outcome
	switch e := ev.(type) {
	case SendEvent:
		if msg, ok := s.SendMessage(e.Text); ok {
			out.Appended = &msg
		}
	case SwitchAliasEvent:
		s.SwitchActiveAlias(e.Name)
	case AddAliasEvent:
		_, out.Err = s.AddAlias(e.Name)
	case RemoveAliasEvent:
		_, out.Err = s.RemoveAlias(e.Selection)
	case SelectAliasEvent:
		_, out.Err = s.SelectAlias(e.Selection)
	case ScrollEvent:
		s.OnScrollPositionChanged(e.AtBottom)
	}
	out.Snapshot = s.Snapshot()
	return out
}
