package studio

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wannabe/internal/clock"
	"github.com/abhisek/wannabe/internal/content"
	rec "github.com/abhisek/wannabe/internal/studio"
)

// instantUploader completes every upload immediately.
type instantUploader struct {
	calls int
}

func (u *instantUploader) Upload(context.Context, rec.Clip) error {
	u.calls++
	return nil
}

var epoch = time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)

func newTestStudio() (*StudioScreen, *clock.Fake, *instantUploader) {
	fc := clock.NewFake(epoch)
	u := &instantUploader{}
	return New(context.Background(), content.Default().Studio, fc, u), fc, u
}

func press(s *StudioScreen, r rune) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	return cmd
}

// runUpload executes the batched upload command and feeds the result back.
func runUpload(t *testing.T, s *StudioScreen, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected an upload command")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected BatchMsg, got %T", cmd())
	}
	for _, c := range batch {
		if c == nil {
			continue
		}
		if done, ok := c().(uploadDoneMsg); ok {
			s.Update(done)
			return
		}
	}
	t.Fatal("batch contained no upload")
}

func TestRecordStopUpload(t *testing.T) {
	s, fc, u := newTestStudio()

	if !strings.Contains(s.View(160, 30), "Start Recording") {
		t.Error("idle studio should offer Start Recording")
	}

	press(s, 'r')
	if s.Phase() != rec.Recording {
		t.Fatalf("expected recording, got %s", s.Phase())
	}
	if !strings.Contains(s.View(160, 30), "Recording") {
		t.Error("view should show recording indicator")
	}

	fc.Advance(58 * time.Second)
	press(s, 's')
	if s.Phase() != rec.Captured {
		t.Fatalf("expected captured, got %s", s.Phase())
	}
	if !strings.Contains(s.View(160, 30), "Clip ready (58s)") {
		t.Errorf("view should show the clip length, got:\n%s", s.View(160, 30))
	}

	cmd := press(s, 'u')
	if s.Phase() != rec.Uploading {
		t.Fatalf("expected uploading, got %s", s.Phase())
	}
	if !strings.Contains(s.View(160, 30), "Uploading") {
		t.Error("view should show the upload in flight")
	}
	if again := press(s, 'u'); again != nil {
		t.Error("upload control should be disabled while in flight")
	}

	runUpload(t, s, cmd)
	if s.Phase() != rec.Uploaded {
		t.Fatalf("expected uploaded, got %s", s.Phase())
	}
	if u.calls != 1 {
		t.Errorf("expected one upload, got %d", u.calls)
	}
	view := s.View(160, 30)
	if !strings.Contains(view, "Awaiting teacher review") {
		t.Error("view should confirm the upload")
	}
	if !strings.Contains(view, "uploaded just now") {
		t.Error("recent uploads should list the new clip")
	}

	press(s, 'r')
	if s.Phase() != rec.Recording {
		t.Errorf("record after upload should restart, got %s", s.Phase())
	}
	if strings.Contains(s.View(160, 30), "uploaded just now") {
		t.Error("new take should clear the uploaded flag")
	}
}

func TestUploadWhileIdleRejected(t *testing.T) {
	s, _, u := newTestStudio()
	if cmd := press(s, 'u'); cmd != nil {
		t.Error("upload while idle should not start anything")
	}
	if s.Phase() != rec.Idle {
		t.Errorf("expected idle, got %s", s.Phase())
	}
	if u.calls != 0 {
		t.Error("uploader should not be called")
	}
	if !strings.Contains(s.View(160, 30), "before uploading") {
		t.Error("expected a hint about recording first")
	}
}

func TestStaleUploadIgnored(t *testing.T) {
	fresh, _, _ := newTestStudio()
	press(fresh, 'r')
	press(fresh, 's')

	fresh.Update(uploadDoneMsg{ClipID: "from-another-visit"})
	if fresh.Phase() != rec.Captured {
		t.Errorf("stale completion should be ignored, got %s", fresh.Phase())
	}
}

func TestSpinnerStopsAfterUpload(t *testing.T) {
	s, _, _ := newTestStudio()
	press(s, 'r')
	press(s, 's')
	runUpload(t, s, press(s, 'u'))

	_, cmd := s.Update(s.spinner.Tick())
	if cmd != nil {
		t.Error("spinner should stop ticking once the upload is done")
	}
}

func TestKeyHintsFollowPhase(t *testing.T) {
	s, _, _ := newTestStudio()
	if got := s.KeyHints()[0].Key; got != "r" {
		t.Errorf("idle hint = %q, want r", got)
	}
	press(s, 'r')
	if got := s.KeyHints()[0].Key; got != "s" {
		t.Errorf("recording hint = %q, want s", got)
	}
	press(s, 's')
	if got := s.KeyHints()[0].Key; got != "u" {
		t.Errorf("captured hint = %q, want u", got)
	}
}

func TestFailedUploadCanRetry(t *testing.T) {
	s, _, _ := newTestStudio()
	press(s, 'r')
	press(s, 's')
	press(s, 'u')
	clip, _ := s.recorder.Clip()

	s.Update(uploadDoneMsg{ClipID: clip.ID, Err: context.Canceled})
	if s.Phase() != rec.Captured {
		t.Fatalf("failed upload should return to captured, got %s", s.Phase())
	}
	if !strings.Contains(s.View(160, 40), "try again") {
		t.Error("view should offer a retry")
	}
}

func TestShutdownDuringUploadKeepsClip(t *testing.T) {
	fc := clock.NewFake(epoch)
	ctx, cancel := context.WithCancel(context.Background())
	s := New(ctx, content.Default().Studio, fc, rec.NewSimulatedUploader(fc, time.Second))
	press(s, 'r')
	press(s, 's')

	cmd := press(s, 'u')
	cancel()
	runUpload(t, s, cmd)

	if s.Phase() != rec.Captured {
		t.Fatalf("cancelled upload should leave the clip captured, got %s", s.Phase())
	}
	if !strings.Contains(s.View(160, 40), "try again") {
		t.Error("view should offer a retry")
	}
}
