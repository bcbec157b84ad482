package nav

import "fmt"

// Step is one page of a lesson wizard.
type Step struct {
	Title string
	Body  string
}

// LessonSelection is the content payload opened in the Lesson screen. The machine
// treats it as opaque apart from its step count.
type LessonSelection struct {
	Key   string
	Title string
	Steps []Step
}

// Len returns the number of steps.
func (l LessonSelection) Len() int {
	return len(l.Steps)
}

// clone copies the step slice so callers can't mutate machine state.
func (l LessonSelection) clone() LessonSelection {
	steps := make([]Step, len(l.Steps))
	copy(steps, l.Steps)
	l.Steps = steps
	return l
}

// StepLabel renders "Step i of n" for a zero-based cursor.
func StepLabel(cursor, n int) string {
	if n == 0 {
		return "Step 0 of 0"
	}
	i := cursor + 1
	if i > n {
		i = n
	}
	return fmt.Sprintf("Step %d of %d", i, n)
}
