package hub

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wannabe/internal/content"
	"github.com/abhisek/wannabe/internal/router"
	"github.com/abhisek/wannabe/internal/screen"
	"github.com/abhisek/wannabe/internal/ui/components"
	"github.com/abhisek/wannabe/internal/ui/layout"
	"github.com/abhisek/wannabe/internal/ui/theme"
)

// HubScreen lists the lesson modules.
type HubScreen struct {
	lessons []content.Lesson
	menu    components.Menu
}

var _ screen.Screen = (*HubScreen)(nil)

// New creates a HubScreen for lessons.
func New(lessons []content.Lesson) *HubScreen {
	items := make([]components.MenuItem, len(lessons))
	for i, l := range lessons {
		sel := l.Selection()
		items[i] = components.MenuItem{
			Label: "Start",
			Action: func() tea.Cmd {
				return router.Emit(router.OpenLessonMsg{Lesson: sel})
			},
		}
	}
	menu := components.NewMenu(items)
	menu.Horizontal = true
	return &HubScreen{lessons: lessons, menu: menu}
}

func (h *HubScreen) Init() tea.Cmd {
	return nil
}

func (h *HubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HubScreen) View(width, height int) string {
	if len(h.lessons) == 0 {
		return theme.Hint.Render("No lessons yet.")
	}

	cw := layout.ColumnWidth(width, len(h.lessons), 2)
	cards := make([]string, len(h.lessons))
	for i, l := range h.lessons {
		start := theme.ButtonInactive.Render("Start")
		if i == h.menu.Selected {
			start = theme.ButtonActive.Render("▸ Start")
		}
		body := theme.Subtitle.Render("Approx. "+l.Time) + "\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Width(layout.CardContentWidth(cw)).Render(l.Summary) + "\n" +
			components.FromPercent("", l.Progress, layout.CardContentWidth(cw)).View() + "\n" +
			start
		cards[i] = layout.RenderCard(l.Title, body, cw)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Learning Hub"),
		"",
		layout.Row(width, cards...),
	)
}

func (h *HubScreen) Title() string {
	return "Learning Hub"
}

func (h *HubScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Start"},
	}
}
