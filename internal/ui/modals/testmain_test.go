package modals

import (
	"os"
	"testing"

	"github.com/zhubert/chatter/internal/logger"
)

func TestMain(m *testing.M) {
	// Disable logging during tests to avoid polluting /tmp/chatter-debug.log
	logger.Reset()
	logger.Init(os.DevNull)

	// Initialize overlay constants for tests
	ModalWidth = 60
	ModalInputWidth = 50
	ModalInputCharLimit = 256
	ListMaxVisible = 10

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}
