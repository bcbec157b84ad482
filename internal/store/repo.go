package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	SessionID string    // only this session when set
	From      time.Time // timestamp >= From
}

// TransitionEvent is one navigation intent applied by the state machine.
type TransitionEvent struct {
	Sequence  int64
	SessionID string
	Timestamp time.Time
	Intent    string
	From      string
	To        string
	Role      string
	LessonKey string
	Cursor    int
}

// EventRepo provides append and read access to journal events.
type EventRepo interface {
	// AppendTransition records a transition. Sequence is assigned by the store.
	AppendTransition(ctx context.Context, ev TransitionEvent) error

	// Recent returns events newest first.
	Recent(ctx context.Context, opts QueryOpts) ([]TransitionEvent, error)
}
