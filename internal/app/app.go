package app

import (
	"context"
	"fmt"
	"os"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wannabe/internal/clock"
	"github.com/abhisek/wannabe/internal/content"
	"github.com/abhisek/wannabe/internal/nav"
	"github.com/abhisek/wannabe/internal/router"
	"github.com/abhisek/wannabe/internal/screen"
	"github.com/abhisek/wannabe/internal/studio"
	"github.com/abhisek/wannabe/internal/ui/layout"
	"github.com/abhisek/wannabe/internal/ui/theme"
)

// Options configures the app's dependencies. Zero values fall back to
// the embedded catalog, a fresh machine, the wall clock and a simulated
// uploader.
type Options struct {
	Context  context.Context
	Catalog  *content.Catalog
	Machine  *nav.Machine
	Clock    clock.Clock
	Uploader studio.Uploader
}

func (o Options) withDefaults() Options {
	if o.Context == nil {
		o.Context = context.Background()
	}
	if o.Catalog == nil {
		o.Catalog = content.Default()
	}
	if o.Machine == nil {
		o.Machine = nav.New()
	}
	if o.Clock == nil {
		o.Clock = clock.Real()
	}
	if o.Uploader == nil {
		o.Uploader = studio.NewSimulatedUploader(o.Clock, 0)
	}
	return o
}

var globalKeys = struct {
	Role key.Binding
	Home key.Binding
	Back key.Binding
	Quit key.Binding
}{
	Role: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Switch role")),
	Home: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "Home")),
	Back: key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Back")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit")),
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	catalog *content.Catalog
	width   int
	height  int
}

// newAppModel wires the router to a screen builder over opts.
func newAppModel(opts Options) AppModel {
	opts = opts.withDefaults()
	b := &builder{
		ctx:      opts.Context,
		catalog:  opts.Catalog,
		state:    opts.Machine,
		clock:    opts.Clock,
		uploader: opts.Uploader,
	}
	return AppModel{
		router:  router.New(opts.Machine, b),
		catalog: opts.Catalog,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, globalKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, globalKeys.Role):
			return m, router.Emit(router.SetRoleMsg{Role: m.router.Machine().Role().Other()})
		case key.Matches(msg, globalKeys.Home):
			return m, router.Emit(router.GoHomeMsg{})
		case key.Matches(msg, globalKeys.Back):
			return m, router.Emit(router.BackMsg{})
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	v.SetContent(m.render())
	return v
}

// render lays out header, active screen and footer.
func (m AppModel) render() string {
	machine := m.router.Machine()
	active := m.router.Active()

	roles := []string{nav.Kid.Label(), nav.ParentOrTeacher.Label()}
	selected := 0
	if machine.Role() == nav.ParentOrTeacher {
		selected = 1
	}
	header := layout.RenderHeader(m.catalog.Brand.Name, active.Title(), roles, selected, m.width)

	footer := layout.RenderFooter(footerHints(active), m.width)
	if notice := m.router.Notice(); notice != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, theme.Recording.Render("  "+notice), footer)
	}

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, body, footer, m.width, m.height)
}

// footerHints puts the active screen's hints ahead of the global ones.
func footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	for _, b := range []key.Binding{globalKeys.Role, globalKeys.Home, globalKeys.Back, globalKeys.Quit} {
		hints = append(hints, layout.KeyHint{Key: b.Help().Key, Description: b.Help().Desc})
	}
	return hints
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	opts = opts.withDefaults()
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(opts.Context))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
