package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/taskmate/internal/analytics"
	"github.com/alexanderramin/taskmate/internal/conversation"
	"github.com/alexanderramin/taskmate/internal/dispatch"
	"github.com/alexanderramin/taskmate/internal/domain"
	"github.com/alexanderramin/taskmate/internal/recommend"
)

func testApp() *App {
	source := analytics.NewStaticSource(
		analytics.WithTeam("team1", []domain.Member{
			{UserID: "u1", Username: "sarah"},
			{UserID: "u2", Username: "marcus"},
		}),
		analytics.WithSnapshot("u1", domain.AnalyticsSnapshot{
			Workload: 1,
			Capacity: 5,
			Expertise: domain.ExpertiseProfile{
				"backend": {ExpertiseScore: 85, SuccessRatePercentage: 90},
			},
		}),
		analytics.WithSnapshot("u2", domain.AnalyticsSnapshot{
			Workload: 4,
			Capacity: 4,
			Expertise: domain.ExpertiseProfile{
				"backend": {ExpertiseScore: 55, SuccessRatePercentage: 70},
			},
		}),
	)
	service := recommend.NewService(source, recommend.NewEnhancer(nil, nil), nil)
	return &App{
		Service:       service,
		Orchestrator:  conversation.NewOrchestrator(nil, nil),
		Sessions:      conversation.NewStore(),
		Handler:       dispatch.NewHandler(service),
		IsInteractive: func() bool { return false },
	}
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRecommendCmd(t *testing.T) {
	out, err := execute(t, testApp(), "recommend", "--group-id", "team1", "--task-category", "backend")

	require.NoError(t, err)
	assert.Contains(t, out, "sarah")
	assert.Contains(t, out, "marcus")
	assert.Contains(t, out, "SUGGESTED PLAN")
	assert.Contains(t, out, "analytics-only")
}

func TestRecommendCmd_MissingGroupNonInteractive(t *testing.T) {
	_, err := execute(t, testApp(), "recommend")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--group-id is required")
}

func TestRecommendCmd_UnknownGroup(t *testing.T) {
	_, err := execute(t, testApp(), "recommend", "--group-id", "ghosts")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no team members found")
}

func TestTeamSummaryCmd(t *testing.T) {
	out, err := execute(t, testApp(), "team", "summary", "--group-id", "team1")

	require.NoError(t, err)
	assert.Contains(t, out, "sarah")
	assert.Contains(t, out, "1/5")
	assert.Contains(t, out, "20.0%")
}

func TestTeamWorkloadCmd(t *testing.T) {
	out, err := execute(t, testApp(), "team", "workload", "--group-id", "team1")

	require.NoError(t, err)
	// marcus is at 100% and must rank first with the overloaded badge.
	marcusIdx := strings.Index(out, "marcus")
	sarahIdx := strings.Index(out, "sarah")
	require.Greater(t, marcusIdx, -1)
	require.Greater(t, sarahIdx, -1)
	assert.Less(t, marcusIdx, sarahIdx)
	assert.Contains(t, out, "OVERLOADED")
}

func TestTeamExpertiseCmd_SingleCategory(t *testing.T) {
	out, err := execute(t, testApp(), "team", "expertise", "--group-id", "team1", "--category", "backend")

	require.NoError(t, err)
	assert.Contains(t, out, "EXPERTISE · BACKEND")
	assert.Contains(t, out, "sarah")
	assert.NotContains(t, out, "FRONTEND")
}

func TestTeamExpertiseCmd_AllCategories(t *testing.T) {
	out, err := execute(t, testApp(), "team", "expertise", "--group-id", "team1")

	require.NoError(t, err)
	for _, cat := range domain.DefaultCategories {
		assert.Contains(t, out, strings.ToUpper(cat))
	}
}

func TestFlagUnderscoreSpelling(t *testing.T) {
	out, err := execute(t, testApp(), "team", "summary", "--group_id", "team1")

	require.NoError(t, err)
	assert.Contains(t, out, "sarah")
}

func TestChatCmd_RequiresTerminal(t *testing.T) {
	_, err := execute(t, testApp(), "chat")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
