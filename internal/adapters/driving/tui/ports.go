// Package tui is the interactive terminal front end of testgen: one tab
// per pipeline stage, from the requirement document to the test cases.
package tui

import (
	"errors"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
)

var (
	// ErrMissingWorkbenchService is returned by NewApp without a workbench.
	ErrMissingWorkbenchService = errors.New("tui: workbench service is required")

	// ErrNoSession is reported when an export runs before the session opened.
	ErrNoSession = errors.New("tui: session not started")
)

// Ports are the services the App drives.
type Ports struct {
	Workbench driving.WorkbenchService

	// Settings seeds the matching threshold. Optional.
	Settings driving.SettingsService
}

// Validate fails when Workbench is nil.
func (p *Ports) Validate() error {
	if p.Workbench == nil {
		return ErrMissingWorkbenchService
	}
	return nil
}
