package session

// InputBuffer is the composer the shell owns. *textarea.Model satisfies it.
type InputBuffer interface {
	Value() string
	Reset()
}

// SubmitInput sends the composed text and clears the buffer whether or not
// anything was sent.
func SubmitInput(s *Session, buf InputBuffer) (Message, bool) {
	msg, ok := s.SendMessage(buf.Value())
	buf.Reset()
	return msg, ok
}
