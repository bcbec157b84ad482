package router

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/wannabe/internal/logging"
	"github.com/abhisek/wannabe/internal/nav"
	"github.com/abhisek/wannabe/internal/screen"
)

// NavigateMsg asks the router to show a screen.
type NavigateMsg struct {
	Screen nav.Screen
}

// SetRoleMsg switches the viewing role.
type SetRoleMsg struct {
	Role nav.Role
}

// OpenLessonMsg selects a lesson and shows it.
type OpenLessonMsg struct {
	Lesson nav.LessonSelection
}

// AdvanceMsg moves the lesson wizard forward.
type AdvanceMsg struct{}

// RetreatMsg moves the lesson wizard back.
type RetreatMsg struct{}

// FinishMsg leaves a lesson from its last step.
type FinishMsg struct{}

// GoHomeMsg shows the current role's home screen.
type GoHomeMsg struct{}

// BackMsg follows the current screen's back control.
type BackMsg struct{}

// Navigate returns a command emitting NavigateMsg.
func Navigate(s nav.Screen) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Screen: s} }
}

// Emit returns a command emitting msg.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Router applies navigation intents to the state machine and keeps exactly
// one screen model alive, the one for the machine's current screen. A new
// model is built whenever the screen changes, so per-screen state is
// dropped on the way out.
type Router struct {
	machine *nav.Machine
	build   nav.Visitor[screen.Screen]
	active  screen.Screen
	stale   bool
	notice  string
}

// New creates a Router over machine, building screens with build.
func New(machine *nav.Machine, build nav.Visitor[screen.Screen]) *Router {
	r := &Router{machine: machine, build: build}
	machine.Subscribe(r.observe)
	r.active = nav.Dispatch(machine, build)
	return r
}

// Init runs the first screen's Init.
func (r *Router) Init() tea.Cmd {
	return r.active.Init()
}

// Machine returns the underlying state machine.
func (r *Router) Machine() *nav.Machine {
	return r.machine
}

// Active returns the current screen model.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Notice returns the message of the last rejected intent, if any.
func (r *Router) Notice() string {
	return r.notice
}

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NavigateMsg:
		return r.apply(r.machine.Navigate(msg.Screen))
	case SetRoleMsg:
		r.machine.SetRole(msg.Role)
		return r.apply(nil)
	case OpenLessonMsg:
		return r.apply(r.machine.OpenLesson(msg.Lesson))
	case AdvanceMsg:
		r.machine.AdvanceWizard()
		return r.apply(nil)
	case RetreatMsg:
		r.machine.RetreatWizard()
		return r.apply(nil)
	case FinishMsg:
		r.machine.Finish()
		return r.apply(nil)
	case GoHomeMsg:
		r.machine.GoHome()
		return r.apply(nil)
	case BackMsg:
		r.machine.Back()
		return r.apply(nil)
	}

	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.active.View(width, height)
}

func (r *Router) observe(t nav.Transition) {
	logging.Debug("transition",
		zap.String("intent", string(t.Intent)),
		zap.Stringer("from", t.From),
		zap.Stringer("to", t.To),
		zap.Stringer("role", t.Role),
		zap.String("lesson", t.LessonKey),
		zap.Int("cursor", t.Cursor),
	)
	if t.Changed() {
		r.stale = true
	}
}

func (r *Router) apply(err error) tea.Cmd {
	if err != nil {
		r.notice = describe(err)
		logging.Warn("intent rejected", zap.Error(err), zap.Stringer("screen", r.machine.Screen()))
		return nil
	}
	r.notice = ""
	if !r.stale {
		return nil
	}
	r.stale = false
	r.active = nav.Dispatch(r.machine, r.build)
	return r.active.Init()
}

func describe(err error) string {
	switch {
	case errors.Is(err, nav.ErrEmptyLesson):
		return "That lesson has no steps yet."
	case errors.Is(err, nav.ErrNoLessonSelected):
		return "Pick a lesson in the Learning Hub first."
	default:
		return err.Error()
	}
}
