package session

// ScrollState tracks whether the log view follows the newest message.
//
// Pinned means the view advances to show every appended message. Detached
// means the user scrolled away and the view holds its position. The state is
// re-derived from the viewport position on every scroll event; appending a
// message never changes it.
type ScrollState struct {
	detached bool
}

// Pinned reports whether the view should follow the tail of the log.
func (s *ScrollState) Pinned() bool {
	return !s.detached
}

// Observe records a scroll event. atBottom reports whether the viewport's
// bottom edge coincides with the last message. It returns true when the
// state flipped.
func (s *ScrollState) Observe(atBottom bool) bool {
	was := s.detached
	s.detached = !atBottom
	return was != s.detached
}
