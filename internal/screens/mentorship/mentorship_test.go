package mentorship

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wannabe/internal/content"
)

func TestApplyMarksMentor(t *testing.T) {
	m := New(content.Default().Mentors)

	m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from Apply")
	}
	m.Update(cmd())

	if m.applied[0] {
		t.Error("first mentor should not be applied")
	}
	if !m.applied[1] {
		t.Error("second mentor should be applied")
	}
	if !strings.Contains(m.View(160, 40), "Application sent!") {
		t.Error("view should confirm the application")
	}

	// Applying twice is a no-op.
	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("applied mentor should not emit again")
	}
}

func TestViewListsMentors(t *testing.T) {
	m := New(content.Default().Mentors)
	view := m.View(160, 40)
	for _, mt := range content.Default().Mentors {
		if !strings.Contains(view, mt.Name) {
			t.Errorf("view missing mentor %q", mt.Name)
		}
	}
}
