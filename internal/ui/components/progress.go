package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wannabe/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar. percent is a fraction in [0, 1].
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// FromPercent builds a bar from a 0-100 value, clamping out-of-range input.
func FromPercent(label string, value int, width int) ProgressBar {
	return NewProgressBar(label, float64(value)/100, true, width)
}

// Clamped returns Percent limited to [0, 1].
func (p ProgressBar) Clamped() float64 {
	switch {
	case p.Percent < 0:
		return 0
	case p.Percent > 1:
		return 1
	}
	return p.Percent
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	pct := p.Clamped()
	filled := int(float64(barWidth) * pct)
	empty := barWidth - filled

	filledStr := theme.Title.Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", empty))

	result += filledStr + emptyStr

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(pct*100+0.5)))
	}

	return result
}
