package content

import "github.com/abhisek/wannabe/internal/nav"

// Catalog is the static content the screens render. The state machine
// never looks inside it except to turn a lesson into a nav.LessonSelection.
type Catalog struct {
	Version    string     `yaml:"version"`
	Brand      Brand      `yaml:"brand"`
	Onboarding Onboarding `yaml:"onboarding"`
	Dashboard  Dashboard  `yaml:"dashboard"`
	Lessons    []Lesson   `yaml:"lessons"`
	Studio     Studio     `yaml:"studio"`
	Mentors    []Mentor   `yaml:"mentors"`
	Projects   []Project  `yaml:"projects"`
	Portal     Portal     `yaml:"portal"`
}

type Brand struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Footer  string `yaml:"footer"`
}

type Onboarding struct {
	Headline  string   `yaml:"headline"`
	Intro     string   `yaml:"intro"`
	StepTitle string   `yaml:"step_title"`
	StepText  string   `yaml:"step_text"`
	Preview   []string `yaml:"preview"`
}

type Dashboard struct {
	Values     []string `yaml:"values"`
	Quest      Quest    `yaml:"quest"`
	StudioPick string   `yaml:"studio_pick"`
	MentorPick string   `yaml:"mentor_pick"`
	Cards      []Card   `yaml:"cards"`
}

// Card is a dashboard tile that opens another screen.
type Card struct {
	Title  string `yaml:"title"`
	Text   string `yaml:"text"`
	Screen string `yaml:"screen"`
}

// Target returns the screen the card opens. The Lesson screen is not a
// valid target since it needs a selection.
func (c Card) Target() (nav.Screen, error) {
	s, err := nav.ParseScreen(c.Screen)
	if err != nil {
		return 0, err
	}
	if s == nav.Lesson {
		return 0, nav.ErrNoLessonSelected
	}
	return s, nil
}

// Quest is the dashboard's featured activity.
type Quest struct {
	Title    string `yaml:"title"`
	Text     string `yaml:"text"`
	Progress int    `yaml:"progress"`
}

// Lesson is a Learning Hub module and its wizard script.
type Lesson struct {
	Key      string `yaml:"key"`
	Title    string `yaml:"title"`
	Time     string `yaml:"time"`
	Progress int    `yaml:"progress"`
	Summary  string `yaml:"summary"`
	Steps    []Step `yaml:"steps"`
}

type Step struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Selection converts l into the payload the navigation machine opens.
func (l Lesson) Selection() nav.LessonSelection {
	steps := make([]nav.Step, len(l.Steps))
	for i, s := range l.Steps {
		steps[i] = nav.Step{Title: s.Title, Body: s.Body}
	}
	return nav.LessonSelection{Key: l.Key, Title: l.Title, Steps: steps}
}

type Studio struct {
	Prompt       string   `yaml:"prompt"`
	Topic        string   `yaml:"topic"`
	ReviewNote   string   `yaml:"review_note"`
	JustUploaded string   `yaml:"just_uploaded"`
	Recent       []string `yaml:"recent"`
}

type Mentor struct {
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Slots string `yaml:"slots"`
	Focus string `yaml:"focus"`
}

type Project struct {
	Title string `yaml:"title"`
	Team  string `yaml:"team"`
	Due   string `yaml:"due"`
}

type Portal struct {
	Progress   []LessonProgress `yaml:"progress"`
	Feedback   []string         `yaml:"feedback"`
	Suggestion string           `yaml:"suggestion"`
}

// LessonProgress is a lesson's completion as shown to parents.
type LessonProgress struct {
	Lesson  string `yaml:"lesson"`
	Percent int    `yaml:"percent"`
}
