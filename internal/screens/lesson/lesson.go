package lesson

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wannabe/internal/nav"
	"github.com/abhisek/wannabe/internal/router"
	"github.com/abhisek/wannabe/internal/screen"
	"github.com/abhisek/wannabe/internal/ui/components"
	"github.com/abhisek/wannabe/internal/ui/layout"
	"github.com/abhisek/wannabe/internal/ui/theme"
)

var (
	backKey = key.NewBinding(
		key.WithKeys("left", "h", "b"),
		key.WithHelp("←/b", "back"),
	)
	nextKey = key.NewBinding(
		key.WithKeys("right", "l", "n"),
		key.WithHelp("→/n", "next"),
	)
)

// LessonScreen renders the lesson wizard. The cursor lives in the
// navigation machine; this screen only reads it and emits intents.
type LessonScreen struct {
	lesson nav.LessonSelection
	state  nav.Reader
}

var _ screen.Screen = (*LessonScreen)(nil)

// New creates a LessonScreen for lesson, reading progress from state.
func New(lesson nav.LessonSelection, state nav.Reader) *LessonScreen {
	return &LessonScreen{lesson: lesson, state: state}
}

func (l *LessonScreen) Init() tea.Cmd {
	return nil
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return l, nil
	}

	switch {
	case key.Matches(kmsg, backKey):
		return l, router.Emit(router.RetreatMsg{})
	case key.Matches(kmsg, nextKey):
		return l, router.Emit(router.AdvanceMsg{})
	case key.Matches(kmsg, components.Keys.Select):
		if l.lesson.Len() == 0 || l.state.AtLastStep() {
			return l, router.Emit(router.FinishMsg{})
		}
		return l, router.Emit(router.AdvanceMsg{})
	}
	return l, nil
}

// current returns the step under the cursor, or the completion card when
// the lesson has none.
func (l *LessonScreen) current() nav.Step {
	c := l.state.Cursor()
	if c >= 0 && c < l.lesson.Len() {
		return l.lesson.Steps[c]
	}
	return nav.Step{Title: "Done!", Body: "You've completed this mini-lesson."}
}

func (l *LessonScreen) View(width, height int) string {
	cursor := l.state.Cursor()
	step := l.current()

	title := l.lesson.Title
	if title == "" {
		title = "Lesson"
	}

	barWidth := width / 2
	if barWidth < 20 {
		barWidth = 20
	}
	progress := components.NewProgressBar("", l.state.Progress(), false, barWidth).View() +
		"  " + theme.Subtitle.Render(nav.StepLabel(cursor, l.lesson.Len()))

	back := components.NewButton("b", "Back")
	back.Disabled = cursor == 0
	next := components.NewButton("n", "Next")
	if l.lesson.Len() == 0 || l.state.AtLastStep() {
		next = components.NewButton("enter", "Finish")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, back.View(), "  ", next.View())

	body := theme.CardTitle.Render(step.Title) + "\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Width(width-8).Render(step.Body) + "\n\n" +
		progress + "\n\n" +
		buttons

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render(title),
		"",
		layout.RenderCard("", body, width),
	)
}

func (l *LessonScreen) Title() string {
	if l.lesson.Title != "" {
		return l.lesson.Title
	}
	return "Lesson"
}

func (l *LessonScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: backKey.Help().Key, Description: "Previous"},
		{Key: nextKey.Help().Key, Description: "Next"},
	}
	if l.state.AtLastStep() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Finish"})
	}
	return hints
}
