package onboarding

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wannabe/internal/content"
	"github.com/abhisek/wannabe/internal/nav"
	"github.com/abhisek/wannabe/internal/router"
)

func TestStartNavigatesToDashboard(t *testing.T) {
	o := New(content.Default().Onboarding)

	_, cmd := o.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from Start")
	}
	msg, ok := cmd().(router.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", cmd())
	}
	if msg.Screen != nav.Dashboard {
		t.Errorf("expected dashboard, got %s", msg.Screen)
	}
}

func TestViewShowsCopy(t *testing.T) {
	o := New(content.Default().Onboarding)
	view := o.View(160, 40)

	for _, want := range []string{"Welcome!", "Start Your Journey"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
