// Package tui implements the folio terminal user interface.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// loadingDoneMsg fires once the dismiss delay after a theme pick has elapsed.
type loadingDoneMsg struct{}

// dismissAfter returns a command that reports loadingDoneMsg after delay.
func dismissAfter(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return loadingDoneMsg{} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return loadingDoneMsg{}
	})
}

// target says what a clickable region does.
type target int

const (
	targetNone target = iota
	targetLink
	targetMenu
	targetCloseAbout
	targetCloseInspirations
)
