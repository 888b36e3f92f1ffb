package demo

import (
	"errors"
	"testing"
	"time"

	"github.com/zhubert/chatter/internal/ui"
)

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name       string
		scenario   *Scenario
		wantErr    bool
		errField   string
		wantWidth  int
		wantHeight int
		wantAlias  string
	}{
		{
			name: "valid scenario",
			scenario: &Scenario{
				Name:        "test",
				Description: "Test scenario",
				Width:       80,
				Height:      24,
				Setup:       DefaultSetup(),
			},
			wantWidth:  80,
			wantHeight: 24,
			wantAlias:  "guest",
		},
		{
			name: "missing name",
			scenario: &Scenario{
				Description: "Test scenario",
			},
			wantErr:  true,
			errField: "Name",
		},
		{
			name: "default width and height",
			scenario: &Scenario{
				Name: "test",
			},
			wantWidth:  100,
			wantHeight: 30,
			wantAlias:  "guest",
		},
		{
			name: "empty default alias falls back to guest",
			scenario: &Scenario{
				Name:  "test",
				Setup: &ScenarioSetup{Aliases: []string{"bob"}},
			},
			wantWidth:  100,
			wantHeight: 30,
			wantAlias:  "guest",
		},
		{
			name: "seeded message without author",
			scenario: &Scenario{
				Name: "test",
				Setup: &ScenarioSetup{
					DefaultAlias: "alice",
					Messages:     []SeedMessage{{Author: "alice", Body: "hi"}, {Body: "orphan"}},
				},
			},
			wantErr:  true,
			errField: "Setup.Messages",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected *ValidationError, got %T", err)
				}
				if verr.Field != tt.errField {
					t.Errorf("Field = %q, want %q", verr.Field, tt.errField)
				}
				return
			}
			if tt.scenario.Width != tt.wantWidth {
				t.Errorf("Width = %d, want %d", tt.scenario.Width, tt.wantWidth)
			}
			if tt.scenario.Height != tt.wantHeight {
				t.Errorf("Height = %d, want %d", tt.scenario.Height, tt.wantHeight)
			}
			if tt.scenario.Setup == nil {
				t.Fatal("Setup should be filled in")
			}
			if tt.scenario.Setup.DefaultAlias != tt.wantAlias {
				t.Errorf("DefaultAlias = %q, want %q", tt.scenario.Setup.DefaultAlias, tt.wantAlias)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "Name", Message: "scenario name is required"}
	want := "validation error: Name: scenario name is required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestStepBuilders(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want StepType
	}{
		{"wait", Wait(time.Second), StepWait},
		{"key", Key("enter"), StepKey},
		{"key with desc", KeyWithDesc("tab", "next control"), StepKey},
		{"type", Type("hello"), StepTypeText},
		{"type with desc", TypeWithDesc("hello", "greeting"), StepTypeText},
		{"wheel", Wheel(-2), StepWheel},
		{"annotate", Annotate("caption"), StepAnnotate},
		{"capture", Capture(), StepCapture},
		{"flash", Flash("Saved", ui.FlashSuccess), StepFlash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.step.Type != tt.want {
				t.Errorf("Type = %v, want %v", tt.step.Type, tt.want)
			}
		})
	}

	if s := Wait(250 * time.Millisecond); s.Duration != 250*time.Millisecond {
		t.Errorf("Wait duration = %v", s.Duration)
	}
	if s := KeyWithDesc("tab", "next control"); s.Key != "tab" || s.Description != "next control" {
		t.Errorf("KeyWithDesc = %+v", s)
	}
	if s := Wheel(-2); s.Notches != -2 {
		t.Errorf("Wheel notches = %d, want -2", s.Notches)
	}
	if s := Flash("Saved", ui.FlashSuccess); s.FlashText != "Saved" || s.FlashType != ui.FlashSuccess {
		t.Errorf("Flash = %+v", s)
	}
}
