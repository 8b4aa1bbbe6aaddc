package tui

import "github.com/charmbracelet/bubbles/list"

// refreshDoneMsg carries the outcome of a config list reload. background is
// set for reloads started by the refresh ticker.
type refreshDoneMsg struct {
	items      []list.Item
	err        error
	background bool
}

type refreshTickMsg struct{}

type clearStatusMsg struct{}
