package app

import (
	"context"

	"github.com/abhisek/wannabe/internal/clock"
	"github.com/abhisek/wannabe/internal/content"
	"github.com/abhisek/wannabe/internal/nav"
	"github.com/abhisek/wannabe/internal/screen"
	"github.com/abhisek/wannabe/internal/screens/dashboard"
	"github.com/abhisek/wannabe/internal/screens/hub"
	"github.com/abhisek/wannabe/internal/screens/lesson"
	"github.com/abhisek/wannabe/internal/screens/mentorship"
	"github.com/abhisek/wannabe/internal/screens/onboarding"
	"github.com/abhisek/wannabe/internal/screens/portal"
	"github.com/abhisek/wannabe/internal/screens/projects"
	studioscreen "github.com/abhisek/wannabe/internal/screens/studio"
	"github.com/abhisek/wannabe/internal/studio"
)

// builder creates a fresh screen model for each navigation state.
type builder struct {
	ctx      context.Context
	catalog  *content.Catalog
	state    nav.Reader
	clock    clock.Clock
	uploader studio.Uploader
}

var _ nav.Visitor[screen.Screen] = (*builder)(nil)

func (b *builder) Onboarding() screen.Screen {
	return onboarding.New(b.catalog.Onboarding)
}

func (b *builder) Dashboard() screen.Screen {
	return dashboard.New(b.catalog.Dashboard)
}

func (b *builder) LearningHub() screen.Screen {
	return hub.New(b.catalog.Lessons)
}

func (b *builder) SpeakersCorner() screen.Screen {
	return studioscreen.New(b.ctx, b.catalog.Studio, b.clock, b.uploader)
}

func (b *builder) Mentorship() screen.Screen {
	return mentorship.New(b.catalog.Mentors)
}

func (b *builder) Projects() screen.Screen {
	return projects.New(b.catalog.Projects)
}

func (b *builder) ParentPortal() screen.Screen {
	return portal.New(b.catalog)
}

func (b *builder) Lesson(sel nav.LessonSelection) screen.Screen {
	return lesson.New(sel, b.state)
}
