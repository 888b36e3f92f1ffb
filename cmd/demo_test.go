package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zhubert/chatter/internal/demo"
	"github.com/zhubert/chatter/internal/demo/scenarios"
)

func TestListScenarios(t *testing.T) {
	var out bytes.Buffer
	listScenarios(&out)

	for _, s := range scenarios.All() {
		if !strings.Contains(out.String(), s.Name) {
			t.Errorf("list output missing %q", s.Name)
		}
	}
}

func TestGetScenario(t *testing.T) {
	origW, origH := demoWidth, demoHeight
	defer func() { demoWidth, demoHeight = origW, origH }()

	demoWidth, demoHeight = 90, 25
	s, err := getScenario("basic")
	if err != nil {
		t.Fatalf("getScenario() error = %v", err)
	}
	if s.Width != 90 || s.Height != 25 {
		t.Errorf("size = %dx%d, want 90x25", s.Width, s.Height)
	}
	if scenarios.Basic.Width == 90 {
		t.Error("overrides should not modify the registered scenario")
	}

	if _, err := getScenario("nope"); err == nil {
		t.Error("expected error for unknown scenario")
	} else if !strings.Contains(err.Error(), "chatter demo list") {
		t.Errorf("error = %q, want a hint to list scenarios", err)
	}
}

func TestPrintFrames(t *testing.T) {
	frames := []demo.Frame{
		{Content: "first"},
		{Content: "second", Annotation: "caption"},
	}

	tests := []struct {
		name    string
		all     bool
		want    []string
		notWant []string
	}{
		{name: "last only", want: []string{"Captured 2 frames", "second", "Annotation: caption"}, notWant: []string{"first"}},
		{name: "all frames", all: true, want: []string{"=== Frame 0", "first", "=== Frame 1", "second"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			printFrames(&out, frames, tt.all)
			for _, w := range tt.want {
				if !strings.Contains(out.String(), w) {
					t.Errorf("output missing %q", w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out.String(), w) {
					t.Errorf("output should not contain %q", w)
				}
			}
		})
	}
}

func TestDemoRun(t *testing.T) {
	var out bytes.Buffer
	demoRunCmd.SetOut(&out)
	defer demoRunCmd.SetOut(nil)

	if err := runDemoRun(demoRunCmd, []string{"basic"}); err != nil {
		t.Fatalf("runDemoRun() error = %v", err)
	}
	if !strings.Contains(out.String(), "Captured") {
		t.Errorf("output = %q", out.String())
	}
}
