package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

type pressed struct{ label string }

func itemsFor(labels ...string) []MenuItem {
	items := make([]MenuItem, len(labels))
	for i, l := range labels {
		l := l
		items[i] = MenuItem{Label: l, Action: func() tea.Cmd {
			return func() tea.Msg { return pressed{label: l} }
		}}
	}
	return items
}

func TestMenuSkipsDisabled(t *testing.T) {
	items := itemsFor("a", "b", "c")
	items[0].Disabled = true
	items[1].Disabled = true
	m := NewMenu(items)
	if m.Selected != 2 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 2 {
		t.Errorf("up should not land on disabled items, got %d", m.Selected)
	}
}

func TestMenuSelectRunsAction(t *testing.T) {
	m := NewMenu(itemsFor("a", "b"))
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should run the selected action")
	}
	if got := cmd().(pressed); got.label != "b" {
		t.Errorf("expected action of b, got %q", got.label)
	}
}

func TestHorizontalMenuUsesLeftRight(t *testing.T) {
	m := NewMenu(itemsFor("a", "b"))
	m.Horizontal = true

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 0 {
		t.Errorf("down should not move a horizontal menu")
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if m.Selected != 1 {
		t.Errorf("right should move a horizontal menu, got %d", m.Selected)
	}
}

func TestProgressBarClamps(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{-10, "0%"},
		{42, "42%"},
		{150, "100%"},
	}
	for _, tt := range tests {
		view := FromPercent("", tt.value, 30).View()
		if !strings.Contains(view, tt.want) {
			t.Errorf("FromPercent(%d) view %q missing %q", tt.value, view, tt.want)
		}
	}
}

func TestButtonView(t *testing.T) {
	b := NewButton("u", "Upload")
	if !strings.Contains(b.View(), "[u] Upload") {
		t.Errorf("unexpected button view %q", b.View())
	}
}
