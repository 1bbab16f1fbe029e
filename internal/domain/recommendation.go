package domain

// CandidateMetrics carries the analytics slice relevant to one scored
// candidate: workload, capacity, and expertise in the requested category only.
type CandidateMetrics struct {
	Workload   int               `json:"workload"`
	Expertise  CategoryExpertise `json:"expertise"`
	Capacity   int               `json:"capacity"`
	DataSource DataSource        `json:"data_source"`
}

// ScoredCandidate is the deterministic scoring result for one member.
// BaseScore never mutates once computed; enhancement produces a separate
// Score on EnhancedRecommendation and carries BaseScore forward.
type ScoredCandidate struct {
	UserID    string           `json:"user_id"`
	Username  string           `json:"username"`
	BaseScore float64          `json:"base_score"`
	Metrics   CandidateMetrics `json:"metrics"`
}

// EnhancedRecommendation is one ranked assignment recommendation, either
// model-adjusted or carrying the deterministic base score.
type EnhancedRecommendation struct {
	UserID                 string           `json:"user_id"`
	Username               string           `json:"username"`
	Score                  float64          `json:"score"`
	BaseScore              float64          `json:"base_score"`
	ConfidenceLevel        ConfidenceLevel  `json:"confidence_level,omitempty"`
	Reasoning              string           `json:"reasoning"`
	DevelopmentOpportunity string           `json:"development_opportunity,omitempty"`
	Metrics                CandidateMetrics `json:"metrics"`
}

// SuggestedPlan is the assignment plan accompanying a recommendation list.
type SuggestedPlan struct {
	PrimaryAssignee     string   `json:"primary_assignee"`
	PlanType            PlanType `json:"plan_type"`
	Rationale           string   `json:"rationale"`
	AlternativeApproach string   `json:"alternative_approach,omitempty"`
	StrategicValue      string   `json:"strategic_value,omitempty"`
	FallbackUsed        bool     `json:"fallback_used"`
}

// BaseScoreEntry is the audit record returned alongside truncated
// recommendations so callers can see the full deterministic ranking input.
type BaseScoreEntry struct {
	Username  string  `json:"username"`
	BaseScore float64 `json:"base_score"`
}
