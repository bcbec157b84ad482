package portal

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wannabe/internal/content"
	"github.com/abhisek/wannabe/internal/screen"
	"github.com/abhisek/wannabe/internal/ui/components"
	"github.com/abhisek/wannabe/internal/ui/layout"
	"github.com/abhisek/wannabe/internal/ui/theme"
)

// PortalScreen is the parent/teacher overview. It is read-only.
type PortalScreen struct {
	catalog *content.Catalog
}

var _ screen.Screen = (*PortalScreen)(nil)

// New creates a PortalScreen over catalog.
func New(catalog *content.Catalog) *PortalScreen {
	return &PortalScreen{catalog: catalog}
}

func (p *PortalScreen) Init() tea.Cmd {
	return nil
}

func (p *PortalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PortalScreen) View(width, height int) string {
	cw := layout.ColumnWidth(width, 3, 2)
	data := p.catalog.Portal

	bars := make([]string, 0, len(data.Progress))
	for _, lp := range data.Progress {
		bars = append(bars,
			theme.Body.Render(p.catalog.LessonTitle(lp.Lesson)),
			components.FromPercent("", lp.Percent, layout.CardContentWidth(cw)).View())
	}

	feedback := make([]string, 0, len(data.Feedback))
	for _, f := range data.Feedback {
		feedback = append(feedback, "• "+f)
	}

	suggestion := lipgloss.NewStyle().Foreground(theme.TextDim).Width(layout.CardContentWidth(cw)).Render(data.Suggestion)

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Parent/Teacher Portal"),
		"",
		layout.Row(width,
			layout.RenderCard("Progress Overview", strings.Join(bars, "\n"), cw),
			layout.RenderCard("Feedback Queue", theme.Body.Render(strings.Join(feedback, "\n")), cw),
			layout.RenderCard("Suggestions", suggestion, cw),
		),
	)
}

func (p *PortalScreen) Title() string {
	return "Parent/Teacher Portal"
}
