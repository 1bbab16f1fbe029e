// Package dispatch routes transport-agnostic requests to the recommendation
// service. Each request is a typed envelope with a JSON payload; each
// response is a success flag plus the operation's result fields.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/taskmate/internal/analytics"
	"github.com/alexanderramin/taskmate/internal/recommend"
)

// Request is the caller-facing envelope.
type Request struct {
	Type string          `json:"request_type"`
	Data json.RawMessage `json:"data"`
}

// Response carries success or a caller-visible error. Result fields are
// flattened next to the success flag.
type Response map[string]any

func errorResponse(format string, args ...any) Response {
	return Response{"success": false, "error": fmt.Sprintf(format, args...)}
}

// Handler routes requests to the recommendation service.
type Handler struct {
	service *recommend.Service
}

// NewHandler creates a Handler over the given service.
func NewHandler(service *recommend.Service) *Handler {
	return &Handler{service: service}
}

// Handle dispatches one request. Validation failures and unknown request
// types come back as error responses; internal degrade paths never do.
func (h *Handler) Handle(ctx context.Context, req Request) Response {
	switch req.Type {
	case "get_task_assignment_recommendations":
		return h.assignmentRecommendations(ctx, req.Data)
	case "record_task_assignment":
		return h.recordAssignment(ctx, req.Data)
	case "record_task_completion":
		return h.recordCompletion(ctx, req.Data)
	case "get_user_analytics":
		return h.userAnalytics(ctx, req.Data)
	case "get_team_analytics":
		return h.teamAnalytics(ctx, req.Data)
	case "get_workload_distribution":
		return h.workloadDistribution(ctx, req.Data)
	case "get_expertise_rankings":
		return h.expertiseRankings(ctx, req.Data)
	default:
		return errorResponse("Unknown request type: %s", req.Type)
	}
}

type assignmentParams struct {
	GroupID           string `json:"group_id"`
	TaskCategory      string `json:"task_category"`
	TaskDescription   string `json:"task_description"`
	Priority          string `json:"priority"`
	Deadline          string `json:"deadline"`
	AdditionalContext string `json:"additional_context"`
}

func (h *Handler) assignmentRecommendations(ctx context.Context, data json.RawMessage) Response {
	var params assignmentParams
	if err := decodeParams(data, &params); err != nil {
		return errorResponse("invalid request data: %v", err)
	}
	if params.GroupID == "" {
		return errorResponse("group_id is required")
	}

	result, err := h.service.Recommend(ctx, recommend.AssignmentRequest{
		GroupID:           params.GroupID,
		TaskCategory:      params.TaskCategory,
		TaskDescription:   params.TaskDescription,
		Priority:          params.Priority,
		Deadline:          params.Deadline,
		AdditionalContext: params.AdditionalContext,
	})
	if err != nil {
		return errorResponse("Failed to get recommendations: %v", err)
	}

	return Response{
		"success":         true,
		"recommendations": result.Recommendations,
		"suggested_plan":  result.SuggestedPlan,
		"task_category":   result.TaskCategory,
		"base_scores":     result.BaseScores,
	}
}

type recordAssignmentParams struct {
	TaskID       string `json:"task_id"`
	UserID       string `json:"user_id"`
	GroupID      string `json:"group_id"`
	TaskCategory string `json:"task_category"`
}

func (h *Handler) recordAssignment(ctx context.Context, data json.RawMessage) Response {
	var params recordAssignmentParams
	if err := decodeParams(data, &params); err != nil {
		return errorResponse("invalid request data: %v", err)
	}
	if params.TaskID == "" || params.UserID == "" {
		return errorResponse("task_id and user_id are required")
	}

	source, err := h.service.RecordAssignment(ctx, analytics.AssignmentRecord{
		TaskID:   params.TaskID,
		UserID:   params.UserID,
		GroupID:  params.GroupID,
		Category: params.TaskCategory,
	})
	if err != nil {
		return errorResponse("Failed to record assignment: %v", err)
	}
	return Response{"success": true, "message": "Task assignment recorded", "method": string(source)}
}

type recordCompletionParams struct {
	TaskID  string `json:"task_id"`
	Success *bool  `json:"success"`
}

func (h *Handler) recordCompletion(ctx context.Context, data json.RawMessage) Response {
	var params recordCompletionParams
	if err := decodeParams(data, &params); err != nil {
		return errorResponse("invalid request data: %v", err)
	}
	if params.TaskID == "" {
		return errorResponse("task_id is required")
	}

	completed := true
	if params.Success != nil {
		completed = *params.Success
	}
	source, err := h.service.RecordCompletion(ctx, analytics.CompletionRecord{
		TaskID:  params.TaskID,
		Success: completed,
	})
	if err != nil {
		return errorResponse("Failed to record completion: %v", err)
	}
	return Response{"success": true, "message": "Task completion recorded", "method": string(source)}
}

type userParams struct {
	UserID string `json:"user_id"`
}

func (h *Handler) userAnalytics(ctx context.Context, data json.RawMessage) Response {
	var params userParams
	if err := decodeParams(data, &params); err != nil {
		return errorResponse("invalid request data: %v", err)
	}
	if params.UserID == "" {
		return errorResponse("user_id is required")
	}

	summary, err := h.service.UserAnalytics(ctx, params.UserID)
	if err != nil {
		return errorResponse("Failed to get analytics: %v", err)
	}
	return Response{"success": true, "analytics": summary}
}

type groupParams struct {
	GroupID string `json:"group_id"`
}

func (h *Handler) teamAnalytics(ctx context.Context, data json.RawMessage) Response {
	var params groupParams
	if err := decodeParams(data, &params); err != nil {
		return errorResponse("invalid request data: %v", err)
	}
	if params.GroupID == "" {
		return errorResponse("group_id is required")
	}

	summaries, err := h.service.TeamSummary(ctx, params.GroupID)
	if err != nil {
		return errorResponse("Failed to get team analytics: %v", err)
	}
	return Response{"success": true, "group_id": params.GroupID, "team_analytics": summaries}
}

func (h *Handler) workloadDistribution(ctx context.Context, data json.RawMessage) Response {
	var params groupParams
	if err := decodeParams(data, &params); err != nil {
		return errorResponse("invalid request data: %v", err)
	}
	if params.GroupID == "" {
		return errorResponse("group_id is required")
	}

	entries, err := h.service.WorkloadDistribution(ctx, params.GroupID)
	if err != nil {
		return errorResponse("Failed to get workload distribution: %v", err)
	}
	return Response{"success": true, "group_id": params.GroupID, "workload_distribution": entries}
}

type rankingParams struct {
	GroupID  string `json:"group_id"`
	Category string `json:"category"`
}

func (h *Handler) expertiseRankings(ctx context.Context, data json.RawMessage) Response {
	var params rankingParams
	if err := decodeParams(data, &params); err != nil {
		return errorResponse("invalid request data: %v", err)
	}
	if params.GroupID == "" {
		return errorResponse("group_id is required")
	}

	rankings, err := h.service.ExpertiseRankings(ctx, params.GroupID, params.Category)
	if err != nil {
		return errorResponse("Failed to get expertise rankings: %v", err)
	}

	resp := Response{"success": true, "group_id": params.GroupID}
	if params.Category != "" {
		resp["category"] = params.Category
		resp["rankings"] = rankings[params.Category]
	} else {
		resp["rankings"] = rankings
	}
	return resp
}

func decodeParams(data json.RawMessage, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
