package mentorship

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wannabe/internal/content"
	"github.com/abhisek/wannabe/internal/screen"
	"github.com/abhisek/wannabe/internal/ui/components"
	"github.com/abhisek/wannabe/internal/ui/layout"
	"github.com/abhisek/wannabe/internal/ui/theme"
)

// MentorshipScreen lists mentors kids can apply to shadow.
type MentorshipScreen struct {
	mentors []content.Mentor
	applied map[int]bool
	menu    components.Menu
}

var _ screen.Screen = (*MentorshipScreen)(nil)

type appliedMsg struct{ index int }

// New creates a MentorshipScreen.
func New(mentors []content.Mentor) *MentorshipScreen {
	m := &MentorshipScreen{mentors: mentors, applied: make(map[int]bool)}
	items := make([]components.MenuItem, len(mentors))
	for i := range mentors {
		i := i
		items[i] = components.MenuItem{Label: "Apply to Shadow", Action: func() tea.Cmd {
			return func() tea.Msg { return appliedMsg{index: i} }
		}}
	}
	m.menu = components.NewMenu(items)
	m.menu.Horizontal = true
	return m
}

func (m *MentorshipScreen) Init() tea.Cmd {
	return nil
}

func (m *MentorshipScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if a, ok := msg.(appliedMsg); ok {
		m.applied[a.index] = true
		m.menu.Items[a.index].Disabled = true
		return m, nil
	}
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *MentorshipScreen) View(width, height int) string {
	if len(m.mentors) == 0 {
		return theme.Hint.Render("No mentors available right now.")
	}

	cw := layout.ColumnWidth(width, len(m.mentors), 2)
	cards := make([]string, len(m.mentors))
	for i, mt := range m.mentors {
		var action string
		switch {
		case m.applied[i]:
			action = theme.Done.Render("Application sent!")
		case i == m.menu.Selected:
			action = theme.ButtonActive.Render("▸ Apply to Shadow")
		default:
			action = theme.ButtonInactive.Render("Apply to Shadow")
		}
		body := theme.Subtitle.Render(mt.Role) + "\n" +
			theme.Subtitle.Render("Slots: "+mt.Slots) + "\n" +
			theme.Subtitle.Render("Focus: "+mt.Focus) + "\n" +
			action
		cards[i] = layout.RenderCard(mt.Name, body, cw)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Mentorship Pathway"),
		"",
		layout.Row(width, cards...),
	)
}

func (m *MentorshipScreen) Title() string {
	return "Mentorship Pathway"
}

func (m *MentorshipScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Apply"},
	}
}
