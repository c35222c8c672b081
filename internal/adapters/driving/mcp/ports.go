package mcp

import (
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
)

// Ports are the services the tools and resources call.
type Ports struct {
	Workbench driving.WorkbenchService

	// Settings is optional; the session resource omits the configuration
	// summary without it.
	Settings driving.SettingsService
}

// Validate fails when Workbench is nil.
func (p *Ports) Validate() error {
	if p.Workbench == nil {
		return ErrMissingWorkbenchService
	}
	return nil
}
