package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/taskmate/internal/recommend"
)

// FormatTeamSummary renders the per-member team analytics table.
func FormatTeamSummary(groupID string, summaries []recommend.MemberSummary) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Team %s", groupID)))
	b.WriteString("\n")

	if len(summaries) == 0 {
		b.WriteString(Dim("No team members found.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Username,
			fmt.Sprintf("%d/%d", s.CurrentWorkload, s.Capacity),
			fmt.Sprintf("%.1f%%", s.UtilizationPercentage),
			fmt.Sprintf("%.1f", s.AverageExpertise),
			string(s.DataSource),
		})
	}
	b.WriteString(RenderTable(
		[]string{"Member", "Workload", "Utilization", "Avg Expertise", "Source"},
		rows,
	))
	return b.String()
}

// FormatWorkload renders the workload distribution with status indicators.
func FormatWorkload(groupID string, entries []recommend.WorkloadEntry) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Workload · %s", groupID)))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(Dim("No team members found.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Username,
			fmt.Sprintf("%d/%d", e.CurrentWorkload, e.Capacity),
			fmt.Sprintf("%.1f%%", e.UtilizationPercentage),
			StatusIndicator(e.Status),
		})
	}
	b.WriteString(RenderTable([]string{"Member", "Workload", "Utilization", "Status"}, rows))
	return b.String()
}

// FormatRankings renders expertise rankings per category.
func FormatRankings(rankings map[string][]recommend.CategoryRanking, categories []string) string {
	var b strings.Builder
	for _, cat := range categories {
		rows, ok := rankings[cat]
		if !ok {
			continue
		}
		b.WriteString(Header(fmt.Sprintf("Expertise · %s", cat)))
		b.WriteString("\n")

		table := make([][]string, 0, len(rows))
		for _, r := range rows {
			table = append(table, []string{
				r.Username,
				ScoreColor(r.ExpertiseScore).Render(fmt.Sprintf("%.0f", r.ExpertiseScore)),
				fmt.Sprintf("%.0f%%", r.SuccessRate),
				fmt.Sprintf("%.0f", r.AvailabilityScore),
			})
		}
		b.WriteString(RenderTable([]string{"Member", "Expertise", "Success", "Availability"}, table))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
