package dispatch

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/taskmate/internal/analytics"
	"github.com/alexanderramin/taskmate/internal/domain"
	"github.com/alexanderramin/taskmate/internal/recommend"
)

func testHandler() *Handler {
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
	)
	service := recommend.NewService(source, recommend.NewEnhancer(nil, nil), nil)
	return NewHandler(service)
}

func request(t *testing.T, reqType string, data any) Request {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	return Request{Type: reqType, Data: raw}
}

func TestHandle_AssignmentRecommendations(t *testing.T) {
	h := testHandler()

	resp := h.Handle(context.Background(), request(t, "get_task_assignment_recommendations", map[string]any{
		"group_id":      "team1",
		"task_category": "backend",
	}))

	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "backend", resp["task_category"])
	assert.NotNil(t, resp["recommendations"])
	assert.NotNil(t, resp["suggested_plan"])
	assert.NotNil(t, resp["base_scores"])
}

func TestHandle_AssignmentRecommendations_MissingGroupID(t *testing.T) {
	h := testHandler()

	resp := h.Handle(context.Background(), request(t, "get_task_assignment_recommendations", map[string]any{
		"task_category": "backend",
	}))

	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "group_id is required", resp["error"])
}

func TestHandle_AssignmentRecommendations_EmptyRoster(t *testing.T) {
	h := testHandler()

	resp := h.Handle(context.Background(), request(t, "get_task_assignment_recommendations", map[string]any{
		"group_id": "ghosts",
	}))

	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["error"], "no team members found")
}

func TestHandle_RecordAssignment(t *testing.T) {
	h := testHandler()

	resp := h.Handle(context.Background(), request(t, "record_task_assignment", map[string]any{
		"task_id":       "t1",
		"user_id":       "u1",
		"group_id":      "team1",
		"task_category": "backend",
	}))

	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Task assignment recorded", resp["message"])
	assert.Equal(t, "mock", resp["method"])
}

func TestHandle_RecordAssignment_MissingFields(t *testing.T) {
	h := testHandler()

	resp := h.Handle(context.Background(), request(t, "record_task_assignment", map[string]any{
		"task_id": "t1",
	}))

	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["error"], "required")
}

func TestHandle_RecordCompletion_DefaultsSuccessTrue(t *testing.T) {
	h := testHandler()

	resp := h.Handle(context.Background(), request(t, "record_task_completion", map[string]any{
		"task_id": "t1",
	}))

	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Task completion recorded", resp["message"])
}

func TestHandle_UserAnalytics(t *testing.T) {
	h := testHandler()

	resp := h.Handle(context.Background(), request(t, "get_user_analytics", map[string]any{
		"user_id": "u1",
	}))

	assert.Equal(t, true, resp["success"])
	summary, ok := resp["analytics"].(*recommend.UserAnalytics)
	require.True(t, ok)
	assert.Equal(t, 1, summary.CurrentWorkload)
}

func TestHandle_UserAnalytics_MissingUserID(t *testing.T) {
	h := testHandler()

	resp := h.Handle(context.Background(), request(t, "get_user_analytics", map[string]any{}))

	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "user_id is required", resp["error"])
}

func TestHandle_TeamAnalytics(t *testing.T) {
	h := testHandler()

	resp := h.Handle(context.Background(), request(t, "get_team_analytics", map[string]any{
		"group_id": "team1",
	}))

	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "team1", resp["group_id"])
	summaries, ok := resp["team_analytics"].([]recommend.MemberSummary)
	require.True(t, ok)
	assert.Len(t, summaries, 2)
}

func TestHandle_WorkloadDistribution(t *testing.T) {
	h := testHandler()

	resp := h.Handle(context.Background(), request(t, "get_workload_distribution", map[string]any{
		"group_id": "team1",
	}))

	assert.Equal(t, true, resp["success"])
	entries, ok := resp["workload_distribution"].([]recommend.WorkloadEntry)
	require.True(t, ok)
	assert.Len(t, entries, 2)
}

func TestHandle_ExpertiseRankings_SingleCategory(t *testing.T) {
	h := testHandler()

	resp := h.Handle(context.Background(), request(t, "get_expertise_rankings", map[string]any{
		"group_id": "team1",
		"category": "backend",
	}))

	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "backend", resp["category"])
	rows, ok := resp["rankings"].([]recommend.CategoryRanking)
	require.True(t, ok)
	assert.Len(t, rows, 2)
	assert.Equal(t, "sarah", rows[0].Username)
}

func TestHandle_ExpertiseRankings_AllCategories(t *testing.T) {
	h := testHandler()

	resp := h.Handle(context.Background(), request(t, "get_expertise_rankings", map[string]any{
		"group_id": "team1",
	}))

	assert.Equal(t, true, resp["success"])
	rankings, ok := resp["rankings"].(map[string][]recommend.CategoryRanking)
	require.True(t, ok)
	assert.Len(t, rankings, len(domain.DefaultCategories))
}

func TestHandle_UnknownRequestType(t *testing.T) {
	h := testHandler()

	resp := h.Handle(context.Background(), Request{Type: "get_coffee"})

	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Unknown request type: get_coffee", resp["error"])
}

func TestHandle_MalformedData(t *testing.T) {
	h := testHandler()

	resp := h.Handle(context.Background(), Request{
		Type: "get_user_analytics",
		Data: json.RawMessage(`{"user_id": 42}`),
	})

	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["error"], "invalid request data")
}

func TestResponse_RoundTripsAsJSON(t *testing.T) {
	h := testHandler()

	resp := h.Handle(context.Background(), request(t, "get_task_assignment_recommendations", map[string]any{
		"group_id": "team1",
	}))

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, true, decoded["success"])
	plan, ok := decoded["suggested_plan"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, plan["fallback_used"])
}
