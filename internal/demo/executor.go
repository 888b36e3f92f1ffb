package demo

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/chatter/internal/app"
	"github.com/zhubert/chatter/internal/config"
	"github.com/zhubert/chatter/internal/keys"
	"github.com/zhubert/chatter/internal/logger"
	"github.com/zhubert/chatter/internal/session"
	"github.com/zhubert/chatter/internal/ui/modals"
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every key step (default: false)
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
	}
}

// demoEpoch stamps every seeded and sent message so frames are reproducible.
var demoEpoch = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

// discardClipboard keeps demos away from the real clipboard.
type discardClipboard struct{}

func (discardClipboard) WriteText(string) error { return nil }

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config ExecutorConfig
	model  *app.Model
	frames []Frame

	currentAnnotation string
	quit              bool
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config: cfg,
		frames: []Frame{},
	}
}

// Model returns the model driven by the last Run.
func (e *Executor) Model() *app.Model {
	return e.model
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	e.setup(scenario)
	log := logger.WithComponent("demo")
	log.Debug("running scenario", "name", scenario.Name, "steps", len(scenario.Steps))

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if e.quit {
			log.Debug("scenario quit early", "name", scenario.Name, "step", i)
			break
		}
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	return e.frames, nil
}

// setup initializes the model for the scenario.
func (e *Executor) setup(scenario *Scenario) {
	cfg := config.DefaultConfig()
	cfg.DefaultAlias = scenario.Setup.DefaultAlias
	cfg.Aliases = scenario.Setup.Aliases

	clock := func() time.Time { return demoEpoch }
	sess := session.New(
		session.WithDefaultAlias(cfg.DefaultAlias),
		session.WithAliases(cfg.Aliases...),
		session.WithClock(clock),
	)
	for _, m := range scenario.Setup.Messages {
		sess.SwitchActiveAlias(session.Alias(m.Author))
		sess.SendMessage(m.Body)
	}
	sess.SwitchActiveAlias(session.Alias(cfg.DefaultAlias))

	e.model = app.New(cfg, "demo",
		app.WithSession(sess),
		app.WithClipboard(discardClipboard{}),
	)
	e.frames = []Frame{}
	e.quit = false

	e.update(tea.WindowSizeMsg{
		Width:  scenario.Width,
		Height: scenario.Height,
	})
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.sendKey(step.Key)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			e.sendKey(string(ch))
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepWheel:
		button := tea.MouseWheelDown
		n := step.Notches
		if n < 0 {
			button = tea.MouseWheelUp
			n = -n
		}
		for range n {
			e.update(tea.MouseWheelMsg{Button: button})
		}
		e.captureFrame(index, e.config.KeyDelay)

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)

	case StepFlash:
		e.model.ShowFlash(step.FlashText, step.FlashType)
		e.captureFrame(index, 100*time.Millisecond)

	default:
		return fmt.Errorf("unknown step type %d", step.Type)
	}

	return nil
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	frame := Frame{
		Content:    e.model.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

// sendKey sends a key press to the model.
func (e *Executor) sendKey(key string) {
	e.update(keyPress(key))
}

// update feeds msg to the model. Commands are dropped (they are timers and
// cursor blinks) except for a shortcut picked in the help overlay, which is
// replayed before the next step.
func (e *Executor) update(msg tea.Msg) {
	help, fromHelp := e.model.Modal().Top().(*modals.HelpState)
	fromHelp = fromHelp && !help.IsFiltering()

	result, cmd := e.model.Update(msg)
	e.model = result.(*app.Model)
	if e.model.Quitting() {
		e.quit = true
		return
	}
	if !fromHelp || cmd == nil {
		return
	}
	if next, ok := cmd().(app.HelpShortcutTriggeredMsg); ok {
		e.update(next)
	}
}

// keyPress converts a key string to a tea.KeyPressMsg.
// Duplicated from the app tests to avoid an import cycle.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.ShiftEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "escape", keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.Home:
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case keys.End:
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.Space, " ":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case keys.CtrlA:
		return tea.KeyPressMsg{Code: 'a', Mod: tea.ModCtrl}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlQ:
		return tea.KeyPressMsg{Code: 'q', Mod: tea.ModCtrl}
	case keys.CtrlS:
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	case keys.CtrlUp:
		return tea.KeyPressMsg{Code: tea.KeyUp, Mod: tea.ModCtrl}
	case keys.CtrlDown:
		return tea.KeyPressMsg{Code: tea.KeyDown, Mod: tea.ModCtrl}
	default:
		if r := []rune(key); len(r) == 1 {
			return tea.KeyPressMsg{Code: r[0], Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
