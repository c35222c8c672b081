package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewDocument, "document"},
		{ViewAnalysis, "analysis"},
		{ViewRules, "rules"},
		{ViewControlPoints, "control_points"},
		{ViewTestCases, "test_cases"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.String())
		})
	}
}

func TestViewType_Title(t *testing.T) {
	assert.Equal(t, "Règles", ViewRules.Title())
	assert.Equal(t, "PDC", ViewControlPoints.Title())
	assert.Equal(t, "Cas de test", ViewTestCases.Title())
	assert.Equal(t, "?", ViewType(-1).Title())
}

func TestTabs_FollowPipelineOrder(t *testing.T) {
	require.Len(t, Tabs, 5)
	assert.Equal(t, ViewDocument, Tabs[0])
	assert.Equal(t, ViewTestCases, Tabs[len(Tabs)-1])
	assert.NotContains(t, Tabs, ViewHelp)
}

func TestStart(t *testing.T) {
	cmd := Start("Extraction des règles")
	require.NotNil(t, cmd)

	msg := cmd()
	started, ok := msg.(WorkStarted)
	require.True(t, ok)
	assert.Equal(t, "Extraction des règles", started.Label)
}
