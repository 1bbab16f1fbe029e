package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/taskmate/internal/recommend"
)

// FormatRecommendations renders an assignment result: the ranked top
// recommendations, the suggested plan, and the full base-score audit list.
func FormatRecommendations(result *recommend.AssignmentResult) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Recommendations (%s)", result.TaskCategory)))
	b.WriteString("\n\n")

	if len(result.Recommendations) == 0 {
		b.WriteString(Dim("No recommendations available."))
		b.WriteString("\n")
	}
	for i, rec := range result.Recommendations {
		num := fmt.Sprintf("%d.", i+1)
		score := ScoreColor(rec.Score).Render(fmt.Sprintf("%.1f", rec.Score))
		line := fmt.Sprintf("%s %s  %s", Bold(num), StyleFg.Render(rec.Username), score)
		if rec.ConfidenceLevel != "" {
			line += "  " + StylePurple.Render(string(rec.ConfidenceLevel)+" confidence")
		}
		b.WriteString(line + "\n")
		b.WriteString(fmt.Sprintf("   %s\n", Dim(rec.Reasoning)))
		if rec.DevelopmentOpportunity != "" {
			b.WriteString(fmt.Sprintf("   %s %s\n", Dim("Growth:"), StyleFg.Render(rec.DevelopmentOpportunity)))
		}
		b.WriteString(fmt.Sprintf("   %s\n", Dim(fmt.Sprintf(
			"base %.1f · workload %d/%d · source %s",
			rec.BaseScore, rec.Metrics.Workload, rec.Metrics.Capacity, rec.Metrics.DataSource))))
	}

	b.WriteString("\n")
	b.WriteString(formatPlan(result))

	if len(result.BaseScores) > len(result.Recommendations) {
		b.WriteString("\n")
		b.WriteString(Header("All base scores"))
		b.WriteString("\n")
		rows := make([][]string, 0, len(result.BaseScores))
		for _, entry := range result.BaseScores {
			rows = append(rows, []string{entry.Username, fmt.Sprintf("%.1f", entry.BaseScore)})
		}
		b.WriteString(RenderTable([]string{"Member", "Base Score"}, rows))
	}

	return b.String()
}

func formatPlan(result *recommend.AssignmentResult) string {
	var b strings.Builder
	plan := result.SuggestedPlan

	b.WriteString(Header("Suggested plan"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		Dim("Assign to:"),
		Bold(plan.PrimaryAssignee),
		StyleBlue.Render(fmt.Sprintf("(%s)", plan.PlanType))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Rationale:"), StyleFg.Render(plan.Rationale)))
	if plan.AlternativeApproach != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Alternative:"), StyleFg.Render(plan.AlternativeApproach)))
	}
	if plan.FallbackUsed {
		b.WriteString(StyleYellow.Render("Model enhancement unavailable; ranking is analytics-only.") + "\n")
	}
	return b.String()
}
