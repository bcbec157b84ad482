package nav

import (
	"errors"
	"fmt"
	"strings"
)

// Screen identifies one mutually exclusive top-level view.
type Screen int

const (
	Onboarding Screen = iota
	Dashboard
	LearningHub
	SpeakersCorner
	Mentorship
	Projects
	ParentPortal
	Lesson

	screenCount // keep last
)

var screenNames = [screenCount]string{
	Onboarding:     "onboarding",
	Dashboard:      "dashboard",
	LearningHub:    "learning-hub",
	SpeakersCorner: "speakers-corner",
	Mentorship:     "mentorship",
	Projects:       "projects",
	ParentPortal:   "parent-portal",
	Lesson:         "lesson",
}

// ErrUnknownScreen is returned for a Screen value outside the closed set.
var ErrUnknownScreen = errors.New("unknown screen")

// Screens returns every screen in declaration order.
func Screens() []Screen {
	out := make([]Screen, 0, screenCount)
	for s := Onboarding; s < screenCount; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is a member of the screen set.
func (s Screen) Valid() bool {
	return s >= Onboarding && s < screenCount
}

func (s Screen) String() string {
	if !s.Valid() {
		return fmt.Sprintf("screen(%d)", int(s))
	}
	return screenNames[s]
}

// ParseScreen parses the name produced by String.
func ParseScreen(name string) (Screen, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range screenNames {
		if n == name {
			return Screen(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScreen, name)
}

// Role selects which screen is considered home.
type Role int

const (
	Kid Role = iota
	ParentOrTeacher
)

func (r Role) String() string {
	if r == ParentOrTeacher {
		return "parent"
	}
	return "kid"
}

// Label is the human-facing role name.
func (r Role) Label() string {
	if r == ParentOrTeacher {
		return "Parent/Teacher"
	}
	return "Kid"
}

// Other returns the opposite role.
func (r Role) Other() Role {
	if r == ParentOrTeacher {
		return Kid
	}
	return ParentOrTeacher
}

// ParseRole accepts "kid", "parent" and "teacher".
func ParseRole(name string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "kid", "":
		return Kid, nil
	case "parent", "teacher", "parent/teacher":
		return ParentOrTeacher, nil
	}
	return Kid, fmt.Errorf("unknown role %q", name)
}

// Home returns the home screen for role.
func Home(role Role) Screen {
	if role == ParentOrTeacher {
		return ParentPortal
	}
	return Dashboard
}

// BackTarget returns where the Back control leads from s. Onboarding has
// no back target and maps to itself.
func BackTarget(s Screen) Screen {
	switch s {
	case Onboarding:
		return Onboarding
	case Lesson:
		return LearningHub
	default:
		return Dashboard
	}
}
