package demo

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
	"github.com/zhubert/chatter/internal/logger"
	"github.com/zhubert/chatter/internal/session"
	"github.com/zhubert/chatter/internal/ui"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

func TestExecutorDefaultConfig(t *testing.T) {
	cfg := DefaultExecutorConfig()

	if cfg.CaptureEveryStep {
		t.Error("CaptureEveryStep should be false by default")
	}
	if cfg.TypeDelay != 50*time.Millisecond {
		t.Errorf("TypeDelay = %v, want 50ms", cfg.TypeDelay)
	}
	if cfg.KeyDelay != 100*time.Millisecond {
		t.Errorf("KeyDelay = %v, want 100ms", cfg.KeyDelay)
	}
}

func TestExecutorRun(t *testing.T) {
	scenario := &Scenario{
		Name:   "test",
		Width:  80,
		Height: 24,
		Steps: []Step{
			Wait(100 * time.Millisecond),
			Key("enter"),
			Wait(100 * time.Millisecond),
		},
	}

	cfg := DefaultExecutorConfig()
	cfg.CaptureEveryStep = true

	frames, err := NewExecutor(cfg).Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Initial frame plus one per step
	if len(frames) != 4 {
		t.Fatalf("expected 4 frames, got %d", len(frames))
	}
	if frames[0].Delay != 500*time.Millisecond {
		t.Errorf("first frame delay = %v, want 500ms", frames[0].Delay)
	}
	for i, f := range frames {
		if f.Content == "" {
			t.Errorf("frame %d is empty", i)
		}
	}
}

func TestExecutorRun_InvalidScenario(t *testing.T) {
	_, err := NewExecutor(DefaultExecutorConfig()).Run(&Scenario{})
	if err == nil {
		t.Fatal("expected error for scenario without a name")
	}
	if !strings.Contains(err.Error(), "invalid scenario") {
		t.Errorf("error = %q, want it to mention invalid scenario", err)
	}
}

func TestExecutorRun_UnknownStep(t *testing.T) {
	scenario := &Scenario{
		Name:  "test",
		Steps: []Step{{Type: StepType(99)}},
	}
	if _, err := NewExecutor(DefaultExecutorConfig()).Run(scenario); err == nil {
		t.Fatal("expected error for unknown step type")
	}
}

func TestExecutorRun_SeedsSetup(t *testing.T) {
	scenario := &Scenario{
		Name: "seeded",
		Setup: &ScenarioSetup{
			DefaultAlias: "alice",
			Aliases:      []string{"bob"},
			Messages: []SeedMessage{
				{Author: "bob", Body: "morning"},
				{Author: "alice", Body: "hi bob"},
			},
		},
	}

	e := NewExecutor(DefaultExecutorConfig())
	if _, err := e.Run(scenario); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	sess := e.Model().Session()
	if got := sess.Active(); got != "alice" {
		t.Errorf("active alias = %q, want alice after seeding", got)
	}
	if diff := cmp.Diff([]session.Alias{"alice", "bob"}, sess.Aliases()); diff != "" {
		t.Errorf("roster mismatch (-want +got):\n%s", diff)
	}

	var got []string
	for _, m := range sess.Messages() {
		got = append(got, m.Label()+": "+m.Body)
	}
	want := []string{"1 bob: morning", "2 alice: hi bob"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestExecutorRun_TypeAndSend(t *testing.T) {
	scenario := &Scenario{
		Name: "send",
		Steps: []Step{
			Type("hello world"),
			Key("shift+enter"),
			Capture(),
		},
	}

	e := NewExecutor(DefaultExecutorConfig())
	frames, err := e.Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	last, ok := e.Model().Session().LastMessage()
	if !ok {
		t.Fatal("expected a message to be sent")
	}
	if last.Body != "hello world" || last.Author != "guest" {
		t.Errorf("last message = %+v", last)
	}
	if e.Model().Chat().GetInput() != "" {
		t.Error("composer should be cleared after send")
	}

	final := ansi.Strip(frames[len(frames)-1].Content)
	if !strings.Contains(final, "hello world") {
		t.Error("final frame should show the sent message")
	}
}

func TestExecutorRun_Annotation(t *testing.T) {
	scenario := &Scenario{
		Name: "annotated",
		Steps: []Step{
			Annotate("Look here"),
			Capture(),
			Capture(),
		},
	}

	frames, err := NewExecutor(DefaultExecutorConfig()).Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(frames))
	}
	if frames[1].Annotation != "Look here" {
		t.Errorf("annotation = %q, want it on the first capture", frames[1].Annotation)
	}
	if frames[2].Annotation != "" {
		t.Error("annotation should apply to one frame only")
	}
	if frames[1].StepIndex != 1 {
		t.Errorf("StepIndex = %d, want 1", frames[1].StepIndex)
	}
}

func TestExecutorRun_WheelDetaches(t *testing.T) {
	setup := &ScenarioSetup{DefaultAlias: "guest"}
	for i := range 60 {
		setup.Messages = append(setup.Messages, SeedMessage{Author: "guest", Body: fmt.Sprintf("line %d", i)})
	}
	scenario := &Scenario{
		Name:   "wheel",
		Width:  80,
		Height: 24,
		Setup:  setup,
		Steps: []Step{
			Wheel(-3),
			Type("while away"),
			Key("ctrl+s"),
		},
	}

	e := NewExecutor(DefaultExecutorConfig())
	if _, err := e.Run(scenario); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if e.Model().Session().Pinned() {
		t.Error("wheel up should leave the log detached")
	}
	if e.Model().Chat().AtBottom() {
		t.Error("a send while detached should not jump to the newest message")
	}
	if n := len(e.Model().Session().Messages()); n != 61 {
		t.Errorf("message count = %d, want 61", n)
	}
}

func TestExecutorRun_Flash(t *testing.T) {
	scenario := &Scenario{
		Name:  "flash",
		Steps: []Step{Flash("Demo flash", ui.FlashSuccess)},
	}

	e := NewExecutor(DefaultExecutorConfig())
	frames, err := e.Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !e.Model().Footer().HasFlash() {
		t.Error("footer should show the flash")
	}
	if !strings.Contains(ansi.Strip(frames[len(frames)-1].Content), "Demo flash") {
		t.Error("flash text should be captured")
	}
}

func TestExecutorRun_QuitStopsScenario(t *testing.T) {
	scenario := &Scenario{
		Name: "quit",
		Steps: []Step{
			Key("ctrl+q"),
			Key("y"),
			Capture(),
		},
	}

	frames, err := NewExecutor(DefaultExecutorConfig()).Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	// Only the initial frame: the capture after quitting never runs
	if len(frames) != 1 {
		t.Errorf("expected 1 frame, got %d", len(frames))
	}
}

func TestKeyPress(t *testing.T) {
	tests := []string{
		"enter", "shift+enter", "tab", "shift+tab", "esc", "backspace",
		"up", "down", "home", "end", "pgup", "pgdown", "space",
		"ctrl+a", "ctrl+c", "ctrl+q", "ctrl+s", "ctrl+y", "ctrl+up", "ctrl+down",
		"a", "?",
	}
	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			if got := keyPress(key).String(); got != key {
				t.Errorf("keyPress(%q).String() = %q", key, got)
			}
		})
	}
}
