// Package studio models the Speakers Corner recorder: record a clip,
// stop it, then upload it once.
package studio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/wannabe/internal/clock"
)

var (
	ErrAlreadyRecording = errors.New("already recording")
	ErrNotRecording     = errors.New("not recording")
	ErrNothingToUpload  = errors.New("no captured clip to upload")
	ErrUploadInFlight   = errors.New("upload in progress")
	ErrAlreadyUploaded  = errors.New("clip already uploaded")
	ErrStaleUpload      = errors.New("upload result for a different clip")
)

// Phase is the combined recorder and upload state.
type Phase int

const (
	Idle Phase = iota
	Recording
	Captured
	Uploading
	Uploaded
)

func (p Phase) String() string {
	switch p {
	case Recording:
		return "recording"
	case Captured:
		return "captured"
	case Uploading:
		return "uploading"
	case Uploaded:
		return "uploaded"
	default:
		return "idle"
	}
}

// RecordState is the recorder half of a Phase.
type RecordState int

const (
	RecordIdle RecordState = iota
	RecordRecording
	RecordCaptured
)

// UploadState is the upload half of a Phase. It only leaves NotStarted
// after a clip was captured.
type UploadState int

const (
	UploadNotStarted UploadState = iota
	UploadInFlight
	UploadDone
)

// Record returns the recorder state for p.
func (p Phase) Record() RecordState {
	switch p {
	case Recording:
		return RecordRecording
	case Captured, Uploading, Uploaded:
		return RecordCaptured
	default:
		return RecordIdle
	}
}

// Upload returns the upload state for p.
func (p Phase) Upload() UploadState {
	switch p {
	case Uploading:
		return UploadInFlight
	case Uploaded:
		return UploadDone
	default:
		return UploadNotStarted
	}
}

// Clip is a captured recording.
type Clip struct {
	ID       string
	Duration time.Duration
}

// Studio is the recorder state machine. It is owned by a single screen and
// is not safe for concurrent use; uploads report back via CompleteUpload.
type Studio struct {
	clock   clock.Clock
	phase   Phase
	started time.Time
	clip    Clip
}

// New returns an idle Studio timed by c.
func New(c clock.Clock) *Studio {
	if c == nil {
		c = clock.Real()
	}
	return &Studio{clock: c}
}

// Phase returns the current state.
func (s *Studio) Phase() Phase { return s.phase }

// Clip returns the captured clip, if any.
func (s *Studio) Clip() (Clip, bool) {
	if s.phase.Record() != RecordCaptured {
		return Clip{}, false
	}
	return s.clip, true
}

// StartRecording begins a new take, discarding any previous clip and its
// uploaded flag.
func (s *Studio) StartRecording() error {
	switch s.phase {
	case Recording:
		return ErrAlreadyRecording
	case Uploading:
		return ErrUploadInFlight
	}
	s.phase = Recording
	s.started = s.clock.Now()
	s.clip = Clip{}
	return nil
}

// StopRecording ends the take and captures it as a clip.
func (s *Studio) StopRecording() (Clip, error) {
	if s.phase != Recording {
		return Clip{}, ErrNotRecording
	}
	s.clip = Clip{
		ID:       uuid.New().String(),
		Duration: s.clock.Now().Sub(s.started),
	}
	s.phase = Captured
	return s.clip, nil
}

// BeginUpload marks the captured clip as in flight and returns it.
func (s *Studio) BeginUpload() (Clip, error) {
	switch s.phase {
	case Captured:
		s.phase = Uploading
		return s.clip, nil
	case Uploading:
		return Clip{}, ErrUploadInFlight
	case Uploaded:
		return Clip{}, ErrAlreadyUploaded
	default:
		return Clip{}, ErrNothingToUpload
	}
}

// CompleteUpload settles the in-flight upload of clipID.
func (s *Studio) CompleteUpload(clipID string) error {
	if s.phase != Uploading || s.clip.ID != clipID {
		return ErrStaleUpload
	}
	s.phase = Uploaded
	return nil
}

// AbortUpload returns the in-flight clip of clipID to Captured so it can be
// uploaded again.
func (s *Studio) AbortUpload(clipID string) error {
	if s.phase != Uploading || s.clip.ID != clipID {
		return ErrStaleUpload
	}
	s.phase = Captured
	return nil
}

// Upload runs a whole upload synchronously through u.
func (s *Studio) Upload(ctx context.Context, u Uploader) error {
	clip, err := s.BeginUpload()
	if err != nil {
		return err
	}
	if err := u.Upload(ctx, clip); err != nil {
		// Leave the clip captured so it can be uploaded again.
		_ = s.AbortUpload(clip.ID)
		return fmt.Errorf("upload %s: %w", clip.ID, err)
	}
	return s.CompleteUpload(clip.ID)
}
