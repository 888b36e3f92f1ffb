package ui

import (
	"strings"
	"testing"

	"github.com/zhubert/chatter/internal/session"
	"github.com/zhubert/chatter/internal/ui/modals"
)

func TestNewModal(t *testing.T) {
	modal := NewModal()
	if modal.IsVisible() {
		t.Error("New modal should not be visible")
	}
	if modal.Top() != nil {
		t.Error("New modal should have nil top")
	}
	if modal.Hide() != nil {
		t.Error("Hide() on an empty stack should return nil")
	}
}

func TestModal_StackPopsOnlyTop(t *testing.T) {
	modal := NewModal()

	roster := modals.NewRosterState([]session.Alias{"guest"}, "guest")
	add := modals.NewAddAliasState()
	notice := modals.NewNoticeState("", "Alias name cannot be empty.")

	modal.Show(roster)
	modal.Show(add)
	modal.Show(notice)

	if modal.Depth() != 3 {
		t.Fatalf("Depth() = %d, want 3", modal.Depth())
	}

	want := []ModalState{notice, add, roster}
	for i, w := range want {
		if got := modal.Top(); got != w {
			t.Fatalf("step %d: Top() = %T, want %T", i, got, w)
		}
		if popped := modal.Hide(); popped != w {
			t.Errorf("step %d: Hide() = %T, want %T", i, popped, w)
		}
	}

	if modal.IsVisible() {
		t.Error("stack should be empty after popping every overlay")
	}
}

func TestModal_HideAll(t *testing.T) {
	modal := NewModal()
	modal.Show(modals.NewAboutState("1.0.0"))
	modal.Show(modals.NewConfirmQuitState())
	modal.HideAll()

	if modal.IsVisible() || modal.Depth() != 0 {
		t.Error("HideAll() should empty the stack")
	}
}

func TestModal_Error(t *testing.T) {
	modal := NewModal()
	modal.Show(modals.NewAddAliasState())
	modal.SetError("boom")

	if modal.GetError() != "boom" {
		t.Errorf("GetError() = %q, want boom", modal.GetError())
	}
	if !strings.Contains(modal.View(100, 30), "boom") {
		t.Error("View() should include the error")
	}

	modal.Show(modals.NewNoticeState("", "next"))
	if modal.GetError() != "" {
		t.Error("Show() should clear the error")
	}
}

func TestModal_ViewRendersTopOnly(t *testing.T) {
	modal := NewModal()
	if modal.View(100, 30) != "" {
		t.Error("empty stack should render nothing")
	}

	modal.Show(modals.NewAboutState("2.0.0"))
	modal.Show(modals.NewNoticeState("", "No alias to remove."))

	view := modal.View(100, 30)
	if !strings.Contains(view, "No alias to remove.") {
		t.Error("View() should render the top overlay")
	}
	if strings.Contains(view, "chatter v2.0.0") {
		t.Error("View() should not render overlays beneath the top")
	}
}
