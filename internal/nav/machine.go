package nav

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyLesson is returned when opening a lesson without steps.
	ErrEmptyLesson = errors.New("lesson has no steps")

	// ErrNoLessonSelected is returned when navigating to Lesson before any
	// lesson was opened.
	ErrNoLessonSelected = errors.New("no lesson selected")
)

// Intent names the operation that produced a transition.
type Intent string

const (
	IntentSetRole    Intent = "set-role"
	IntentNavigate   Intent = "navigate"
	IntentOpenLesson Intent = "open-lesson"
	IntentAdvance    Intent = "advance"
	IntentRetreat    Intent = "retreat"
	IntentHome       Intent = "home"
	IntentBack       Intent = "back"
	IntentFinish     Intent = "finish"
)

// Transition describes one applied intent.
type Transition struct {
	Intent    Intent
	From      Screen
	To        Screen
	Role      Role
	LessonKey string
	Cursor    int
}

// Changed reports whether the current screen changed, or a lesson was
// (re)opened, so that the presentation must rebuild its view.
func (t Transition) Changed() bool {
	return t.From != t.To || t.Intent == IntentOpenLesson
}

// State is a read-only copy of the machine state.
type State struct {
	Screen Screen
	Role   Role
	Lesson *LessonSelection
	Cursor int
}

// Machine is the single authority for what is on screen, which role is
// active and how far the current lesson has progressed.
// It is not safe for concurrent use; the UI loop owns it.
type Machine struct {
	screen    Screen
	role      Role
	lesson    *LessonSelection
	cursor    int
	observers []func(Transition)
}

// New returns a machine showing Onboarding as a Kid.
func New() *Machine {
	return &Machine{screen: Onboarding, role: Kid}
}

// NewAt returns a machine starting on screen with role. Lesson can't be a
// start screen because nothing is selected yet; it falls back to
// Onboarding.
func NewAt(screen Screen, role Role) *Machine {
	m := &Machine{screen: screen, role: role}
	if !screen.Valid() || screen == Lesson {
		m.screen = Onboarding
	}
	return m
}

// Subscribe registers fn to receive every applied transition.
func (m *Machine) Subscribe(fn func(Transition)) {
	m.observers = append(m.observers, fn)
}

func (m *Machine) Screen() Screen { return m.screen }
func (m *Machine) Role() Role     { return m.role }
func (m *Machine) Cursor() int    { return m.cursor }

// Selection returns the current lesson, which may be retained after leaving
// the Lesson screen.
func (m *Machine) Selection() (LessonSelection, bool) {
	if m.lesson == nil {
		return LessonSelection{}, false
	}
	return m.lesson.clone(), true
}

// Snapshot returns a copy of the full state.
func (m *Machine) Snapshot() State {
	st := State{Screen: m.screen, Role: m.role, Cursor: m.cursor}
	if m.lesson != nil {
		l := m.lesson.clone()
		st.Lesson = &l
	}
	return st
}

// SetRole switches role and shows that role's home.
func (m *Machine) SetRole(role Role) {
	from := m.screen
	m.role = role
	m.screen = Home(role)
	m.emit(IntentSetRole, from)
}

// Navigate shows screen. Every screen is reachable directly; the Lesson
// screen additionally needs a selection to render.
func (m *Machine) Navigate(screen Screen) error {
	if !screen.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownScreen, int(screen))
	}
	if screen == Lesson && m.lesson == nil {
		return ErrNoLessonSelected
	}
	from := m.screen
	m.screen = screen
	m.emit(IntentNavigate, from)
	return nil
}

// OpenLesson selects lesson, rewinds the wizard and shows the Lesson screen.
func (m *Machine) OpenLesson(lesson LessonSelection) error {
	if lesson.Len() == 0 {
		return fmt.Errorf("open %q: %w", lesson.Key, ErrEmptyLesson)
	}
	from := m.screen
	l := lesson.clone()
	m.lesson = &l
	m.cursor = 0
	m.screen = Lesson
	m.emit(IntentOpenLesson, from)
	return nil
}

// AdvanceWizard moves to the next step, stopping at the last one.
func (m *Machine) AdvanceWizard() {
	if m.lesson == nil {
		return
	}
	if last := m.lesson.Len() - 1; m.cursor < last {
		m.cursor++
	}
	m.emit(IntentAdvance, m.screen)
}

// RetreatWizard moves to the previous step, stopping at the first one.
func (m *Machine) RetreatWizard() {
	if m.lesson == nil {
		return
	}
	if m.cursor > 0 {
		m.cursor--
	}
	m.emit(IntentRetreat, m.screen)
}

// AtLastStep reports whether the wizard shows its final step.
func (m *Machine) AtLastStep() bool {
	return m.lesson != nil && m.cursor == m.lesson.Len()-1
}

// Progress returns the completed fraction of the current lesson in [0, 1].
func (m *Machine) Progress() float64 {
	if m.lesson == nil || m.lesson.Len() == 0 {
		return 0
	}
	p := float64(m.cursor) / float64(m.lesson.Len())
	if p > 1 {
		p = 1
	}
	return p
}

// Finish leaves a lesson from its last step back to the Learning Hub.
// It does nothing before the last step.
func (m *Machine) Finish() {
	if m.screen != Lesson || !m.AtLastStep() {
		return
	}
	from := m.screen
	m.screen = LearningHub
	m.emit(IntentFinish, from)
}

// GoHome shows the current role's home screen.
func (m *Machine) GoHome() {
	from := m.screen
	m.screen = Home(m.role)
	m.emit(IntentHome, from)
}

// Back follows the current screen's back control.
func (m *Machine) Back() {
	from := m.screen
	m.screen = BackTarget(from)
	m.emit(IntentBack, from)
}

func (m *Machine) emit(intent Intent, from Screen) {
	if len(m.observers) == 0 {
		return
	}
	t := Transition{
		Intent: intent,
		From:   from,
		To:     m.screen,
		Role:   m.role,
		Cursor: m.cursor,
	}
	if m.lesson != nil {
		t.LessonKey = m.lesson.Key
	}
	for _, fn := range m.observers {
		fn(t)
	}
}

// Reader is the read-only view of a Machine handed to presentation code.
type Reader interface {
	Screen() Screen
	Role() Role
	Cursor() int
	Selection() (LessonSelection, bool)
	AtLastStep() bool
	Progress() float64
}

var _ Reader = (*Machine)(nil)
