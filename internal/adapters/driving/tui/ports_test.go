package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driving"
)

// fakeWorkbench implements driving.WorkbenchService. Methods not
// overridden panic through the nil embedded interface.
type fakeWorkbench struct {
	driving.WorkbenchService

	newSessionErr error
	export        *driving.ExportResult
	exportErr     error
	exportedKind  driving.ExportKind
}

func (f *fakeWorkbench) NewSession(_ context.Context) (*domain.Session, error) {
	if f.newSessionErr != nil {
		return nil, f.newSessionErr
	}
	return &domain.Session{ID: "session-1"}, nil
}

func (f *fakeWorkbench) Export(_ context.Context, _ string, kind driving.ExportKind) (*driving.ExportResult, error) {
	f.exportedKind = kind
	return f.export, f.exportErr
}

// fakeSettings implements driving.SettingsService.
type fakeSettings struct {
	driving.SettingsService

	settings *domain.AppSettings
	err      error
}

func (f *fakeSettings) Get() (*domain.AppSettings, error) {
	return f.settings, f.err
}

func TestPorts_Validate(t *testing.T) {
	t.Run("missing workbench", func(t *testing.T) {
		ports := &Ports{}
		assert.ErrorIs(t, ports.Validate(), ErrMissingWorkbenchService)
	})

	t.Run("workbench only", func(t *testing.T) {
		ports := &Ports{Workbench: &fakeWorkbench{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("settings is optional", func(t *testing.T) {
		ports := &Ports{Workbench: &fakeWorkbench{}, Settings: &fakeSettings{err: errors.New("x")}}
		assert.NoError(t, ports.Validate())
	})
}
