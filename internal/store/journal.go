package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/wannabe/internal/logging"
	"github.com/abhisek/wannabe/internal/nav"
)

// Journal records the transitions of one app session.
type Journal struct {
	repo      EventRepo
	sessionID string
	now       func() time.Time
}

// NewJournal starts a journal session writing to repo.
func NewJournal(repo EventRepo) *Journal {
	return &Journal{
		repo:      repo,
		sessionID: uuid.New().String(),
		now:       time.Now,
	}
}

// SessionID identifies this run in the journal.
func (j *Journal) SessionID() string {
	return j.sessionID
}

// Record is a nav.Machine observer. Write failures are logged and dropped;
// the journal never blocks navigation.
func (j *Journal) Record(t nav.Transition) {
	ev := TransitionEvent{
		SessionID: j.sessionID,
		Timestamp: j.now(),
		Intent:    string(t.Intent),
		From:      t.From.String(),
		To:        t.To.String(),
		Role:      t.Role.String(),
		LessonKey: t.LessonKey,
		Cursor:    t.Cursor,
	}
	if err := j.repo.AppendTransition(context.Background(), ev); err != nil {
		logging.Warn("journal append failed", zap.Error(err), zap.String("intent", ev.Intent))
	}
}
