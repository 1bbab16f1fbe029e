package recommend

import "github.com/alexanderramin/taskmate/internal/domain"

// AssignmentRequest describes one task that needs an assignee.
type AssignmentRequest struct {
	GroupID           string `json:"group_id"`
	TaskCategory      string `json:"task_category"`
	TaskDescription   string `json:"task_description"`
	Priority          string `json:"priority,omitempty"`
	Deadline          string `json:"deadline,omitempty"`
	AdditionalContext string `json:"additional_context,omitempty"`
}

// AssignmentResult is the caller-facing recommendation payload: the top
// ranked recommendations, the suggested plan, and the full base-score list
// for auditability.
type AssignmentResult struct {
	Recommendations []domain.EnhancedRecommendation `json:"recommendations"`
	SuggestedPlan   domain.SuggestedPlan            `json:"suggested_plan"`
	TaskCategory    string                          `json:"task_category"`
	BaseScores      []domain.BaseScoreEntry         `json:"base_scores"`
}

// MemberSummary is one row of the team summary view.
type MemberSummary struct {
	UserID                string                  `json:"user_id"`
	Username              string                  `json:"username"`
	CurrentWorkload       int                     `json:"current_workload"`
	Capacity              int                     `json:"capacity"`
	UtilizationPercentage float64                 `json:"utilization_percentage"`
	AverageExpertise      float64                 `json:"average_expertise"`
	ExpertiseByCategory   domain.ExpertiseProfile `json:"expertise_by_category"`
	DataSource            domain.DataSource       `json:"data_source"`
}

// WorkloadEntry is one row of the workload distribution view.
type WorkloadEntry struct {
	UserID                string                `json:"user_id"`
	Username              string                `json:"username"`
	CurrentWorkload       int                   `json:"current_workload"`
	Capacity              int                   `json:"capacity"`
	UtilizationPercentage float64               `json:"utilization_percentage"`
	Status                domain.WorkloadStatus `json:"status"`
}

// CategoryRanking is one row of an expertise ranking for a single category.
type CategoryRanking struct {
	UserID            string  `json:"user_id"`
	Username          string  `json:"username"`
	ExpertiseScore    float64 `json:"expertise_score"`
	SuccessRate       float64 `json:"success_rate"`
	CurrentWorkload   int     `json:"current_workload"`
	AvailabilityScore float64 `json:"availability_score"`
}

// UserAnalytics is the per-member analytics summary view.
type UserAnalytics struct {
	CurrentWorkload     int                     `json:"current_workload"`
	ExpertiseByCategory domain.ExpertiseProfile `json:"expertise_by_category"`
	HistoricalCapacity  int                     `json:"historical_capacity"`
	DataSource          domain.DataSource       `json:"data_source"`
	UpdatedAt           string                  `json:"updated_at"`
}
