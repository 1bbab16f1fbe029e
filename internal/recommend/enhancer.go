package recommend

import (
	"context"
	"fmt"

	"github.com/alexanderramin/taskmate/internal/domain"
	"github.com/alexanderramin/taskmate/internal/llm"
)

// Enhancer layers model-driven score adjustments on top of deterministic
// base scores. It never fails: every degrade path converges on the
// deterministic ranking with fallback_used set on the plan.
type Enhancer interface {
	Enhance(ctx context.Context, candidates []domain.ScoredCandidate, req AssignmentRequest) ([]domain.EnhancedRecommendation, domain.SuggestedPlan)
}

type llmEnhancer struct {
	client   llm.Client // nil when generation is disabled
	observer llm.Observer
}

// NewEnhancer creates an Enhancer backed by a model client. A nil client is
// valid and yields the deterministic path for every request.
func NewEnhancer(client llm.Client, observer llm.Observer) Enhancer {
	if observer == nil {
		observer = llm.NoopObserver{}
	}
	return &llmEnhancer{client: client, observer: observer}
}

// memberAdjustment is one per-member entry in the model's JSON response.
type memberAdjustment struct {
	Username               string  `json:"username"`
	AdjustedScore          float64 `json:"adjusted_score"`
	ConfidenceLevel        string  `json:"confidence_level"`
	Reasoning              string  `json:"reasoning"`
	DevelopmentOpportunity string  `json:"development_opportunity"`
	RiskFactors            string  `json:"risk_factors"`
}

// planPayload is the model's suggested plan.
type planPayload struct {
	PrimaryAssignee     string `json:"primary_assignee"`
	PlanType            string `json:"plan_type"`
	Rationale           string `json:"rationale"`
	AlternativeApproach string `json:"alternative_approach"`
	StrategicValue      string `json:"strategic_value"`
}

// enhanceResponse is the full JSON structure expected from the model.
type enhanceResponse struct {
	Recommendations []memberAdjustment `json:"recommendations"`
	SuggestedPlan   *planPayload       `json:"suggested_plan"`
}

func (e *llmEnhancer) Enhance(ctx context.Context, candidates []domain.ScoredCandidate, req AssignmentRequest) ([]domain.EnhancedRecommendation, domain.SuggestedPlan) {
	if e.client == nil {
		return DeterministicRecommendations(candidates, req.TaskCategory)
	}

	parsed, err := e.generate(ctx, candidates, req)
	if err != nil {
		// Transport, empty-response, parse, and schema failures all land
		// here: abandon the model path for the whole batch, never partially.
		e.observer.OnFallback(llm.FallbackEvent{
			Component: "enhancer",
			Subject:   req.GroupID,
			Reason:    err.Error(),
		})
		return DeterministicRecommendations(candidates, req.TaskCategory)
	}

	return e.merge(candidates, parsed)
}

func (e *llmEnhancer) generate(ctx context.Context, candidates []domain.ScoredCandidate, req AssignmentRequest) (*enhanceResponse, error) {
	resp, err := e.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskEnhance,
		SystemPrompt: enhanceSystemPrompt,
		UserPrompt:   buildEnhanceUserPrompt(candidates, req),
		JSON:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("enhancement generation failed: %w", err)
	}

	parsed, err := llm.ExtractJSON[enhanceResponse](resp.Text, validateEnhanceResponse)
	if err != nil {
		return nil, fmt.Errorf("extracting enhancement response: %w", err)
	}
	return &parsed, nil
}

// merge joins model adjustments onto the base candidates by exact username.
// A candidate without an adjustment keeps its base score (per-member degrade);
// an adjustment without a candidate is dropped (members are never invented).
func (e *llmEnhancer) merge(candidates []domain.ScoredCandidate, parsed *enhanceResponse) ([]domain.EnhancedRecommendation, domain.SuggestedPlan) {
	byUsername := make(map[string]memberAdjustment, len(parsed.Recommendations))
	for _, adj := range parsed.Recommendations {
		byUsername[adj.Username] = adj
	}

	recs := make([]domain.EnhancedRecommendation, 0, len(candidates))
	for _, c := range candidates {
		rec := domain.EnhancedRecommendation{
			UserID:    c.UserID,
			Username:  c.Username,
			BaseScore: c.BaseScore,
			Metrics:   c.Metrics,
		}
		if adj, ok := byUsername[c.Username]; ok {
			rec.Score = adj.AdjustedScore
			rec.ConfidenceLevel = domain.ConfidenceLevel(adj.ConfidenceLevel)
			rec.Reasoning = adj.Reasoning
			rec.DevelopmentOpportunity = adj.DevelopmentOpportunity
		} else {
			rec.Score = c.BaseScore
			rec.Reasoning = "Based on analytics data only"
		}
		recs = append(recs, rec)
	}
	sortByScore(recs)

	plan := domain.SuggestedPlan{
		PrimaryAssignee: "N/A",
		PlanType:        domain.PlanSolo,
		Rationale:       "Default assignment to highest scoring team member",
	}
	if len(recs) > 0 {
		plan.PrimaryAssignee = recs[0].Username
	}
	if p := parsed.SuggestedPlan; p != nil {
		plan = domain.SuggestedPlan{
			PrimaryAssignee:     p.PrimaryAssignee,
			PlanType:            domain.PlanType(p.PlanType),
			Rationale:           p.Rationale,
			AlternativeApproach: p.AlternativeApproach,
			StrategicValue:      p.StrategicValue,
		}
	}
	return recs, plan
}

// validateEnhanceResponse is the schema validator applied before any part of
// the model payload is trusted; a violation fails the whole response.
func validateEnhanceResponse(resp enhanceResponse) error {
	for i, adj := range resp.Recommendations {
		if adj.Username == "" {
			return fmt.Errorf("recommendation %d: username is required", i)
		}
		if adj.AdjustedScore < 0 || adj.AdjustedScore > 100 {
			return fmt.Errorf("recommendation %d: adjusted_score must be in [0,100], got %g", i, adj.AdjustedScore)
		}
		if adj.ConfidenceLevel != "" && !domain.ValidConfidenceLevels[adj.ConfidenceLevel] {
			return fmt.Errorf("recommendation %d: invalid confidence_level %q", i, adj.ConfidenceLevel)
		}
	}
	if p := resp.SuggestedPlan; p != nil {
		if p.PrimaryAssignee == "" {
			return fmt.Errorf("suggested_plan: primary_assignee is required")
		}
		if !domain.ValidPlanTypes[p.PlanType] {
			return fmt.Errorf("suggested_plan: invalid plan_type %q", p.PlanType)
		}
	}
	return nil
}
