package scenarios

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zhubert/chatter/internal/demo"
	perrors "github.com/zhubert/chatter/internal/errors"
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

func TestAll(t *testing.T) {
	scenarios := All()

	if len(scenarios) != 2 {
		t.Errorf("All() should return 2 scenarios, got %d", len(scenarios))
	}

	seen := make(map[string]bool)
	for _, s := range scenarios {
		if err := s.Validate(); err != nil {
			t.Errorf("Scenario %q validation failed: %v", s.Name, err)
		}
		if seen[s.Name] {
			t.Errorf("duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		wantFound bool
	}{
		{"basic", true},
		{"scrollback", true},
		{"nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenario := Get(tt.name)
			found := scenario != nil

			if found != tt.wantFound {
				t.Errorf("Get(%q) found = %v, want %v", tt.name, found, tt.wantFound)
			}
		})
	}
}

func TestLookup_NotFound(t *testing.T) {
	_, err := Lookup("nonexistent")
	if err == nil {
		t.Fatal("expected error")
	}
	if perrors.GetKind(err) != perrors.KindNotFound {
		t.Errorf("kind = %v, want KindNotFound", perrors.GetKind(err))
	}
}

func TestBasicScenario(t *testing.T) {
	e := demo.NewExecutor(demo.DefaultExecutorConfig())
	frames, err := e.Run(Basic)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(frames) == 0 {
		t.Fatal("expected frames")
	}

	sess := e.Model().Session()
	if diff := cmp.Diff([]session.Alias{"alice", "bob"}, sess.Aliases()); diff != "" {
		t.Errorf("roster mismatch (-want +got):\n%s", diff)
	}
	if got := sess.Active(); got != "bob" {
		t.Errorf("active = %q, want bob", got)
	}

	var authors []session.Alias
	for _, m := range sess.Messages() {
		authors = append(authors, m.Author)
	}
	if diff := cmp.Diff([]session.Alias{"alice", "bob", "bob"}, authors); diff != "" {
		t.Errorf("authors mismatch (-want +got):\n%s", diff)
	}
	if e.Model().Modal().IsVisible() {
		t.Errorf("no overlay should remain, top is %T", e.Model().Modal().Top())
	}
}

func TestScrollbackScenario(t *testing.T) {
	e := demo.NewExecutor(demo.DefaultExecutorConfig())
	if _, err := e.Run(Scrollback); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	sess := e.Model().Session()
	if n := len(sess.Messages()); n != 31 {
		t.Errorf("message count = %d, want 31", n)
	}
	if !sess.Pinned() {
		t.Error("End should leave the log following the newest message")
	}
	if last, _ := sess.LastMessage(); last.Author != "alice" {
		t.Errorf("last author = %q, want alice", last.Author)
	}
}
