package projects

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wannabe/internal/content"
	"github.com/abhisek/wannabe/internal/screen"
	"github.com/abhisek/wannabe/internal/ui/components"
	"github.com/abhisek/wannabe/internal/ui/layout"
	"github.com/abhisek/wannabe/internal/ui/theme"
)

// ProjectsScreen lists community challenges.
type ProjectsScreen struct {
	projects []content.Project
	joined   map[int]bool
	menu     components.Menu
}

var _ screen.Screen = (*ProjectsScreen)(nil)

type joinedMsg struct{ index int }

// New creates a ProjectsScreen.
func New(projects []content.Project) *ProjectsScreen {
	p := &ProjectsScreen{projects: projects, joined: make(map[int]bool)}
	items := make([]components.MenuItem, len(projects))
	for i := range projects {
		i := i
		items[i] = components.MenuItem{Label: "Join", Action: func() tea.Cmd {
			return func() tea.Msg { return joinedMsg{index: i} }
		}}
	}
	p.menu = components.NewMenu(items)
	p.menu.Horizontal = true
	return p
}

func (p *ProjectsScreen) Init() tea.Cmd {
	return nil
}

func (p *ProjectsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if j, ok := msg.(joinedMsg); ok {
		p.joined[j.index] = true
		p.menu.Items[j.index].Disabled = true
		return p, nil
	}
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *ProjectsScreen) View(width, height int) string {
	if len(p.projects) == 0 {
		return theme.Hint.Render("No open projects.")
	}

	cw := layout.ColumnWidth(width, len(p.projects), 2)
	cards := make([]string, len(p.projects))
	for i, pr := range p.projects {
		var action string
		switch {
		case p.joined[i]:
			action = theme.Done.Render("You're on the team!")
		case i == p.menu.Selected:
			action = theme.ButtonActive.Render("▸ Join")
		default:
			action = theme.ButtonInactive.Render("Join")
		}
		body := theme.Subtitle.Render("Team: "+pr.Team) + "\n" +
			theme.Subtitle.Render("Due: "+pr.Due) + "\n" +
			action
		cards[i] = layout.RenderCard(pr.Title, body, cw)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Community Projects"),
		"",
		layout.Row(width, cards...),
	)
}

func (p *ProjectsScreen) Title() string {
	return "Community Projects"
}

func (p *ProjectsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Join"},
	}
}
