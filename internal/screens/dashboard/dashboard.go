package dashboard

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wannabe/internal/content"
	"github.com/abhisek/wannabe/internal/router"
	"github.com/abhisek/wannabe/internal/screen"
	"github.com/abhisek/wannabe/internal/ui/components"
	"github.com/abhisek/wannabe/internal/ui/layout"
	"github.com/abhisek/wannabe/internal/ui/theme"
)

// DashboardScreen is the kid's home: daily picks and the hub cards.
type DashboardScreen struct {
	data content.Dashboard
	menu components.Menu
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates a DashboardScreen. Cards whose target doesn't resolve are
// shown disabled; Parse rejects them, so only hand-built catalogs hit it.
func New(data content.Dashboard) *DashboardScreen {
	items := make([]components.MenuItem, len(data.Cards))
	for i, c := range data.Cards {
		to, err := c.Target()
		items[i] = components.MenuItem{Label: c.Title, Disabled: err != nil, Action: func() tea.Cmd {
			return router.Navigate(to)
		}}
	}
	return &DashboardScreen{data: data, menu: components.NewMenu(items)}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) View(width, height int) string {
	cw := layout.ColumnWidth(width, 3, 2)

	quest := theme.Subtitle.Render(d.data.Quest.Text) + "\n" +
		components.FromPercent("", d.data.Quest.Progress, layout.CardContentWidth(cw)).View()
	picks := layout.Row(width,
		layout.RenderCard(d.data.Quest.Title, quest, cw),
		layout.RenderCard("Speakers Corner", theme.Subtitle.Render(d.data.StudioPick), cw),
		layout.RenderCard("Mentorship Match", theme.Subtitle.Render(d.data.MentorPick), cw),
	)

	var hubs []string
	for i, c := range d.data.Cards {
		line := d.menuLine(i) + "  " + theme.Hint.Render(c.Text)
		hubs = append(hubs, line)
	}

	sections := []string{
		theme.Title.Render("Your Dashboard"),
		theme.Subtitle.Render("Daily picks based on your top values: " + strings.Join(d.data.Values, ", ")),
		"",
		picks,
		"",
		strings.Join(hubs, "\n"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// menuLine renders one menu entry with selection styling.
func (d *DashboardScreen) menuLine(i int) string {
	item := d.menu.Items[i]
	label := item.Label
	if item.Disabled {
		return theme.Disabled.Render("  " + label)
	}
	if i == d.menu.Selected {
		return theme.Selected.Render("▸ " + label)
	}
	return theme.Unselected.Render("  " + label)
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
	}
}
