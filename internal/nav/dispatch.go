package nav

// Visitor has one method per Screen. Implementations are checked by the
// compiler, so a new Screen can't ship without a rendering for it.
type Visitor[T any] interface {
	Onboarding() T
	Dashboard() T
	LearningHub() T
	SpeakersCorner() T
	Mentorship() T
	Projects() T
	ParentPortal() T
	Lesson(lesson LessonSelection) T
}

// Dispatch calls the Visitor method matching the machine's current screen.
func Dispatch[T any](m *Machine, v Visitor[T]) T {
	switch m.screen {
	case Dashboard:
		return v.Dashboard()
	case LearningHub:
		return v.LearningHub()
	case SpeakersCorner:
		return v.SpeakersCorner()
	case Mentorship:
		return v.Mentorship()
	case Projects:
		return v.Projects()
	case ParentPortal:
		return v.ParentPortal()
	case Lesson:
		if m.lesson != nil {
			return v.Lesson(m.lesson.clone())
		}
		return v.Lesson(LessonSelection{})
	default:
		return v.Onboarding()
	}
}
