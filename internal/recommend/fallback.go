package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/taskmate/internal/domain"
)

// Reasoning thresholds for the deterministic fallback text.
const (
	highExpertise     = 70.0
	moderateExpertise = 40.0
	highSuccessRate   = 80.0
	capacityHeadroom  = 0.8
)

// fallbackRationale is the plan note attached whenever the model path was
// abandoned and the ranking is purely analytics-based.
const fallbackRationale = "Analytics-based assignment (model enhancement unavailable). " +
	"Assigned to team member with highest expertise and capacity."

// DeterministicRecommendations converts scored candidates into ranked
// recommendations without any model involvement: every score equals its base
// score and the reasoning is synthesized from fixed thresholds. Used whenever
// the model path fails or is disabled.
func DeterministicRecommendations(candidates []domain.ScoredCandidate, category string) ([]domain.EnhancedRecommendation, domain.SuggestedPlan) {
	recs := make([]domain.EnhancedRecommendation, 0, len(candidates))
	for _, c := range candidates {
		recs = append(recs, domain.EnhancedRecommendation{
			UserID:    c.UserID,
			Username:  c.Username,
			Score:     c.BaseScore,
			BaseScore: c.BaseScore,
			Reasoning: synthesizeReasoning(c.Metrics, category),
			Metrics:   c.Metrics,
		})
	}
	sortByScore(recs)

	plan := domain.SuggestedPlan{
		PrimaryAssignee: "N/A",
		PlanType:        domain.PlanSolo,
		Rationale:       fallbackRationale,
		FallbackUsed:    true,
	}
	if len(recs) > 0 {
		plan.PrimaryAssignee = recs[0].Username
	}
	return recs, plan
}

// synthesizeReasoning builds the human-readable explanation for one candidate
// from threshold rules over its metrics.
func synthesizeReasoning(m domain.CandidateMetrics, category string) string {
	var reasons []string

	switch {
	case m.Expertise.ExpertiseScore > highExpertise:
		reasons = append(reasons, fmt.Sprintf("High expertise in %s (%.0f%%)", category, m.Expertise.ExpertiseScore))
	case m.Expertise.ExpertiseScore > moderateExpertise:
		reasons = append(reasons, fmt.Sprintf("Moderate expertise in %s (%.0f%%)", category, m.Expertise.ExpertiseScore))
	default:
		reasons = append(reasons, fmt.Sprintf("Learning opportunity in %s", category))
	}

	switch {
	case m.Workload == 0:
		reasons = append(reasons, "Currently available")
	case m.Capacity > 0 && float64(m.Workload) < float64(m.Capacity)*capacityHeadroom:
		reasons = append(reasons, "Has capacity for more work")
	default:
		reasons = append(reasons, "Currently at capacity")
	}

	if m.Expertise.SuccessRatePercentage > highSuccessRate {
		reasons = append(reasons, fmt.Sprintf("High success rate (%.0f%%)", m.Expertise.SuccessRatePercentage))
	}

	return strings.Join(reasons, "; ")
}

// sortByScore orders recommendations descending by score. The sort is stable:
// equal scores keep their original relative order.
func sortByScore(recs []domain.EnhancedRecommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
}
