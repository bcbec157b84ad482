package studio

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/wannabe/internal/clock"
	"github.com/abhisek/wannabe/internal/logging"
)

// DefaultUploadDelay is how long the simulated upload takes.
const DefaultUploadDelay = 1200 * time.Millisecond

// Uploader delivers a captured clip.
type Uploader interface {
	Upload(ctx context.Context, clip Clip) error
}

// SimulatedUploader stands in for a media backend. It waits Delay on Clock
// and always succeeds.
type SimulatedUploader struct {
	Clock clock.Clock
	Delay time.Duration
}

// NewSimulatedUploader returns an uploader with the given delay; a zero
// delay uses DefaultUploadDelay.
func NewSimulatedUploader(c clock.Clock, delay time.Duration) *SimulatedUploader {
	if c == nil {
		c = clock.Real()
	}
	if delay <= 0 {
		delay = DefaultUploadDelay
	}
	return &SimulatedUploader{Clock: c, Delay: delay}
}

func (u *SimulatedUploader) Upload(ctx context.Context, clip Clip) error {
	logging.Debug("upload started",
		zap.String("clip_id", clip.ID),
		zap.Duration("clip_duration", clip.Duration),
		zap.Duration("delay", u.Delay),
	)
	select {
	case <-u.Clock.After(u.Delay):
		logging.Debug("upload finished", zap.String("clip_id", clip.ID))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
