// Package tui provides a Bubble Tea terminal UI for watching a lab converge.
package tui

import "github.com/xlab-si/nuagex/internal/nuagex"

// LabStatusMsg carries the latest observed lab state. Lab is nil when no lab
// with the watched name exists.
type LabStatusMsg struct {
	Lab *nuagex.Lab
	Err error
}

// pollMsg requests the next lab lookup.
type pollMsg struct{}

// spinnerMsg advances the spinner animation.
type spinnerMsg struct{}
