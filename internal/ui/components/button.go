package components

import (
	"github.com/abhisek/wannabe/internal/ui/theme"
)

// Button is a styled, keyboard-labelled button.
type Button struct {
	Key      string
	Label    string
	Disabled bool
}

// NewButton creates a new button triggered by key.
func NewButton(key, label string) Button {
	return Button{Key: key, Label: label}
}

// View renders the button.
func (b Button) View() string {
	label := "[" + b.Key + "] " + b.Label
	if b.Disabled {
		return theme.ButtonInactive.Render(label)
	}
	return theme.ButtonActive.Render(label)
}
