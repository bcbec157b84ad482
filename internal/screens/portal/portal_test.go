package portal

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wannabe/internal/content"
)

func TestViewShowsOverview(t *testing.T) {
	c := content.Default()
	p := New(c)
	view := p.View(200, 40)

	for _, want := range []string{"Progress Overview", "Feedback Queue", "Suggestions", "Entrepreneurship 101", "70%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestPortalIgnoresInput(t *testing.T) {
	p := New(content.Default())
	if _, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("portal is read-only")
	}
}
