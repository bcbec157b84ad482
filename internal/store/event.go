package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendTransition(ctx context.Context, ev TransitionEvent) error {
	ts := ev.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transitions (session_id, timestamp, intent, from_screen, to_screen, role, lesson_key, cursor)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.SessionID, ts.UnixMilli(), ev.Intent, ev.From, ev.To, ev.Role, ev.LessonKey, ev.Cursor,
	)
	if err != nil {
		return fmt.Errorf("append transition: %w", err)
	}
	return nil
}

func (r *eventRepo) Recent(ctx context.Context, opts QueryOpts) ([]TransitionEvent, error) {
	var (
		where []string
		args  []any
	)
	if opts.SessionID != "" {
		where = append(where, "session_id = ?")
		args = append(args, opts.SessionID)
	}
	if !opts.From.IsZero() {
		where = append(where, "timestamp >= ?")
		args = append(args, opts.From.UnixMilli())
	}

	q := `SELECT sequence, session_id, timestamp, intent, from_screen, to_screen, role, lesson_key, cursor FROM transitions`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY sequence DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query transitions: %w", err)
	}
	defer rows.Close()

	var out []TransitionEvent
	for rows.Next() {
		var (
			ev TransitionEvent
			ms int64
		)
		if err := rows.Scan(&ev.Sequence, &ev.SessionID, &ms, &ev.Intent, &ev.From, &ev.To, &ev.Role, &ev.LessonKey, &ev.Cursor); err != nil {
			return nil, fmt.Errorf("scan transition: %w", err)
		}
		ev.Timestamp = time.UnixMilli(ms)
		out = append(out, ev)
	}
	return out, rows.Err()
}
