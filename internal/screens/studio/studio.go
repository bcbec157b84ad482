package studio

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/wannabe/internal/clock"
	"github.com/abhisek/wannabe/internal/content"
	"github.com/abhisek/wannabe/internal/logging"
	"github.com/abhisek/wannabe/internal/screen"
	rec "github.com/abhisek/wannabe/internal/studio"
	"github.com/abhisek/wannabe/internal/ui/components"
	"github.com/abhisek/wannabe/internal/ui/layout"
	"github.com/abhisek/wannabe/internal/ui/theme"
)

var (
	recordKey = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "record"))
	stopKey   = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop"))
	uploadKey = key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upload"))
)

// StudioScreen is Speakers Corner: record a talk and upload it. Each visit
// gets a fresh recorder; nothing survives leaving the screen.
type StudioScreen struct {
	ctx      context.Context
	data     content.Studio
	recorder *rec.Studio
	uploader rec.Uploader
	spinner  spinner.Model
	notice   string
}

var _ screen.Screen = (*StudioScreen)(nil)

// New creates a StudioScreen. ctx bounds in-flight uploads to the program's
// lifetime.
func New(ctx context.Context, data content.Studio, c clock.Clock, uploader rec.Uploader) *StudioScreen {
	if ctx == nil {
		ctx = context.Background()
	}
	return &StudioScreen{
		ctx:      ctx,
		data:     data,
		recorder: rec.New(c),
		uploader: uploader,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
}

// Phase exposes the recorder state.
func (s *StudioScreen) Phase() rec.Phase {
	return s.recorder.Phase()
}

func (s *StudioScreen) Init() tea.Cmd {
	return nil
}

func (s *StudioScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case uploadDoneMsg:
		s.finishUpload(msg)
		return s, nil

	case spinner.TickMsg:
		if s.recorder.Phase() != rec.Uploading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, recordKey):
			s.report(s.recorder.StartRecording())
		case key.Matches(msg, stopKey):
			clip, err := s.recorder.StopRecording()
			s.report(err)
			if err == nil {
				logging.Debug("clip captured", zap.String("clip_id", clip.ID), zap.Duration("duration", clip.Duration))
			}
		case key.Matches(msg, uploadKey):
			return s, s.startUpload()
		}
	}
	return s, nil
}

func (s *StudioScreen) startUpload() tea.Cmd {
	clip, err := s.recorder.BeginUpload()
	if err != nil {
		s.report(err)
		return nil
	}
	s.notice = ""
	ctx, u := s.ctx, s.uploader
	upload := func() tea.Msg {
		return uploadDoneMsg{ClipID: clip.ID, Err: u.Upload(ctx, clip)}
	}
	return tea.Batch(s.spinner.Tick, upload)
}

func (s *StudioScreen) finishUpload(msg uploadDoneMsg) {
	if msg.Err != nil {
		logging.Warn("upload failed", zap.String("clip_id", msg.ClipID), zap.Error(msg.Err))
		if s.recorder.AbortUpload(msg.ClipID) == nil {
			s.notice = "Upload didn't finish. Press u to try again."
		}
		return
	}
	if err := s.recorder.CompleteUpload(msg.ClipID); err != nil {
		logging.Debug("ignoring upload result", zap.String("clip_id", msg.ClipID), zap.Error(err))
	}
}

// report shows a rejected control press.
func (s *StudioScreen) report(err error) {
	if err == nil {
		s.notice = ""
		return
	}
	switch {
	case errors.Is(err, rec.ErrNothingToUpload):
		s.notice = "Record and stop a clip before uploading."
	case errors.Is(err, rec.ErrUploadInFlight):
		s.notice = "Hang on, still uploading…"
	default:
		s.notice = err.Error()
	}
}

func (s *StudioScreen) View(width, height int) string {
	cw := layout.ColumnWidth(width, 2, 2)

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Speakers Corner"),
		"",
		layout.Row(width,
			layout.RenderCard(s.data.Prompt, s.recorderView(), cw),
			layout.RenderCard("Recent Uploads", s.recentView(), cw),
		),
	)
}

func (s *StudioScreen) recorderView() string {
	lines := []string{theme.Subtitle.Render(fmt.Sprintf("Topic: %q", s.data.Topic)), ""}

	switch s.recorder.Phase() {
	case rec.Idle:
		lines = append(lines, components.NewButton("r", "Start Recording").View())
	case rec.Recording:
		lines = append(lines,
			theme.Recording.Render("● Recording…")+"  "+components.NewButton("s", "Stop").View())
	case rec.Captured, rec.Uploading:
		up := components.NewButton("u", "Upload")
		status := ""
		if s.recorder.Phase() == rec.Uploading {
			up = components.NewButton("u", "Uploading…")
			up.Disabled = true
			status = s.spinner.View() + " "
		}
		lines = append(lines, status+theme.Body.Render("Clip ready ("+s.clipLength()+")")+"  "+up.View())
		if s.recorder.Phase() == rec.Captured {
			lines = append(lines, theme.Hint.Render("press r to record again"))
		}
	case rec.Uploaded:
		lines = append(lines,
			theme.Done.Render(s.data.ReviewNote),
			theme.Hint.Render("press r to record a new take"))
	}

	if s.notice != "" {
		lines = append(lines, "", theme.Hint.Render(s.notice))
	}
	return strings.Join(lines, "\n")
}

func (s *StudioScreen) clipLength() string {
	clip, ok := s.recorder.Clip()
	if !ok {
		return "0s"
	}
	return clip.Duration.Round(time.Second).String()
}

func (s *StudioScreen) recentView() string {
	items := make([]string, 0, len(s.data.Recent)+1)
	if len(s.data.Recent) > 0 {
		items = append(items, "• "+s.data.Recent[0])
	}
	if s.recorder.Phase() == rec.Uploaded {
		items = append(items, "• "+s.data.JustUploaded)
	}
	for _, r := range s.data.Recent[min(1, len(s.data.Recent)):] {
		items = append(items, "• "+r)
	}
	return theme.Body.Render(strings.Join(items, "\n"))
}

func (s *StudioScreen) Title() string {
	return "Speakers Corner"
}

func (s *StudioScreen) KeyHints() []layout.KeyHint {
	var b key.Binding
	switch s.recorder.Phase() {
	case rec.Recording:
		b = stopKey
	case rec.Captured:
		b = uploadKey
	default:
		b = recordKey
	}
	return []layout.KeyHint{{Key: b.Help().Key, Description: b.Help().Desc}}
}
