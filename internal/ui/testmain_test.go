package ui

import (
	"os"
	"testing"

	"github.com/zhubert/chatter/internal/logger"
	"github.com/zhubert/chatter/internal/session"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

func aliasOf(s string) session.Alias {
	return session.Alias(s)
}

func messagesOf(n int, author string) []session.Message {
	msgs := make([]session.Message, n)
	for i := range msgs {
		msgs[i] = session.Message{Sequence: i + 1, Author: aliasOf(author), Body: "line"}
	}
	return msgs
}
