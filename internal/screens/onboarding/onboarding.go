package onboarding

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wannabe/internal/content"
	"github.com/abhisek/wannabe/internal/nav"
	"github.com/abhisek/wannabe/internal/router"
	"github.com/abhisek/wannabe/internal/screen"
	"github.com/abhisek/wannabe/internal/ui/components"
	"github.com/abhisek/wannabe/internal/ui/layout"
	"github.com/abhisek/wannabe/internal/ui/theme"
)

// OnboardingScreen welcomes a new user and starts the journey.
type OnboardingScreen struct {
	text content.Onboarding
	menu components.Menu
}

var _ screen.Screen = (*OnboardingScreen)(nil)

// New creates an OnboardingScreen from the catalog's onboarding copy.
func New(text content.Onboarding) *OnboardingScreen {
	return &OnboardingScreen{
		text: text,
		menu: components.NewMenu([]components.MenuItem{
			{Label: "Start Your Journey", Action: func() tea.Cmd {
				return router.Navigate(nav.Dashboard)
			}},
		}),
	}
}

func (o *OnboardingScreen) Init() tea.Cmd {
	return nil
}

func (o *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	o.menu, cmd = o.menu.Update(msg)
	return o, cmd
}

func (o *OnboardingScreen) View(width, height int) string {
	cw := layout.ColumnWidth(width, 2, 2)

	step := theme.Subtitle.Render(o.text.StepText) + "\n\n" + o.menu.View()

	bullets := make([]string, 0, len(o.text.Preview))
	for _, p := range o.text.Preview {
		bullets = append(bullets, "• "+p)
	}
	preview := theme.Body.Render(strings.Join(bullets, "\n"))

	row := layout.Row(width,
		layout.RenderCard(o.text.StepTitle, step, cw),
		layout.RenderCard("What you'll see next", preview, cw),
	)

	headline := theme.Title.Render(o.text.Headline)
	intro := lipgloss.NewStyle().Foreground(theme.Text).Width(width - 4).Render(o.text.Intro)

	return lipgloss.JoinVertical(lipgloss.Left, headline, intro, "", row)
}

func (o *OnboardingScreen) Title() string {
	return "Welcome"
}

func (o *OnboardingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Start"}}
}
