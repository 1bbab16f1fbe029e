package recommend

import (
	"encoding/json"
	"strings"

	"github.com/alexanderramin/taskmate/internal/domain"
)

// enhanceSystemPrompt instructs the model to adjust deterministic assignment
// scores with contextual judgment and return a strict JSON structure.
const enhanceSystemPrompt = `You are a task assignment advisor for a team planning tool called Taskmate.
You will receive a task description and per-member analytics with deterministic base scores.
Your task is to adjust the scores with contextual judgment and propose an assignment plan.

The base scores are computed from five deterministic metrics:
1. Task completion time patterns (via expertise scores)
2. Historical success rates in the task's category
3. Current workload vs capacity analysis
4. Category-specific expertise levels
5. Historical capacity and performance data

When adjusting, weigh:
- Task complexity vs member experience level
- Skill development opportunity vs need for reliable delivery
- Workload distribution and burnout prevention
- Cross-training and knowledge sharing opportunities

You must output ONLY a JSON object with these exact fields:
- recommendations: array with one object per team member:
  - username: the member's name EXACTLY as given in the input
  - adjusted_score: number 0 to 100 (may differ from base_score)
  - confidence_level: "low", "medium", or "high"
  - reasoning: 2-3 sentences explaining the score
  - development_opportunity: optional, how this task could help them grow
  - risk_factors: optional, any concerns about this assignment
- suggested_plan: object with:
  - primary_assignee: username of the recommended assignee
  - plan_type: "solo", "pair", or "swarm"
  - rationale: why this assignment minimizes risk
  - alternative_approach: optional alternative
  - strategic_value: optional longer-term benefit

CRITICAL RULES:
1. Never invent team members; use only the usernames given
2. Keep adjusted_score within 0-100
3. Use strict JSON numeric literals (e.g., 0.85, never .85)
4. Output ONLY the JSON object, no markdown, no explanation`

// promptCandidate is the compact per-member record serialized into the
// prompt: identity plus base metrics, no other personal data.
type promptCandidate struct {
	Username           string  `json:"username"`
	BaseScore          float64 `json:"base_score"`
	CurrentWorkload    int     `json:"current_workload"`
	ExpertiseScore     float64 `json:"expertise_score"`
	SuccessRate        float64 `json:"success_rate"`
	HistoricalCapacity int     `json:"historical_capacity"`
}

// buildEnhanceUserPrompt serializes the task metadata and scored candidates
// for the model.
func buildEnhanceUserPrompt(candidates []domain.ScoredCandidate, req AssignmentRequest) string {
	team := make([]promptCandidate, 0, len(candidates))
	for _, c := range candidates {
		team = append(team, promptCandidate{
			Username:           c.Username,
			BaseScore:          c.BaseScore,
			CurrentWorkload:    c.Metrics.Workload,
			ExpertiseScore:     c.Metrics.Expertise.ExpertiseScore,
			SuccessRate:        c.Metrics.Expertise.SuccessRatePercentage,
			HistoricalCapacity: c.Metrics.Capacity,
		})
	}
	teamJSON, _ := json.MarshalIndent(team, "", "  ")

	var b strings.Builder
	b.WriteString("## Task\n")
	b.WriteString("- Category: ")
	b.WriteString(req.TaskCategory)
	b.WriteString("\n- Description: ")
	b.WriteString(req.TaskDescription)
	b.WriteString("\n- Priority: ")
	b.WriteString(orDefault(req.Priority, "normal"))
	b.WriteString("\n- Deadline: ")
	b.WriteString(orDefault(req.Deadline, "flexible"))
	b.WriteString("\n- Additional context: ")
	b.WriteString(orDefault(req.AdditionalContext, "none provided"))
	b.WriteString("\n\n## Team analytics (with deterministic base scores)\n")
	b.Write(teamJSON)
	return b.String()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
