package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase Y", "Y\n", true},
		{"lowercase yes", "yes\n", true},
		{"mixed case Yes", "Yes\n", true},
		{"lowercase n", "n\n", false},
		{"empty input", "\n", false},
		{"random text", "maybe\n", false},
		{"y with spaces", "  y  \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := confirm(strings.NewReader(tt.input), io.Discard, "Test?")
			if result != tt.expected {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestConfirm_EOF(t *testing.T) {
	if confirm(strings.NewReader(""), io.Discard, "Test?") {
		t.Error("confirm(EOF) = true, want false")
	}
}

func TestConfirm_ErrorReader(t *testing.T) {
	if confirm(&errorReader{}, io.Discard, "Test?") {
		t.Error("confirm(error) = true, want false")
	}
}

// errorReader is a reader that always returns an error
type errorReader struct{}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

// withCleanTarget points clean at a temp file for the test.
func withCleanTarget(t *testing.T, create bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chatter-debug.log")
	if create {
		if err := os.WriteFile(path, []byte("log\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	orig, origSkip := cleanLogPath, skipConfirm
	cleanLogPath = path
	t.Cleanup(func() { cleanLogPath, skipConfirm = orig, origSkip })
	return path
}

func TestRunClean(t *testing.T) {
	tests := []struct {
		name       string
		create     bool
		skip       bool
		input      string
		wantOutput string
		wantExists bool
	}{
		{name: "nothing to clean", create: false, wantOutput: "Nothing to clean."},
		{name: "confirmed", create: true, input: "y\n", wantOutput: "1 log file(s) removed"},
		{name: "declined", create: true, input: "n\n", wantOutput: "Aborted.", wantExists: true},
		{name: "skip confirm", create: true, skip: true, wantOutput: "1 log file(s) removed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := withCleanTarget(t, tt.create)
			skipConfirm = tt.skip

			var out bytes.Buffer
			if err := runCleanWithReader(strings.NewReader(tt.input), &out); err != nil {
				t.Fatalf("runCleanWithReader() error = %v", err)
			}
			if !strings.Contains(out.String(), tt.wantOutput) {
				t.Errorf("output = %q, want it to contain %q", out.String(), tt.wantOutput)
			}
			_, err := os.Stat(path)
			if exists := err == nil; exists != tt.wantExists {
				t.Errorf("file exists = %v, want %v", exists, tt.wantExists)
			}
		})
	}
}
