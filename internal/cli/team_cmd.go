package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/taskmate/internal/cli/formatter"
	"github.com/alexanderramin/taskmate/internal/domain"
)

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Inspect team analytics",
	}

	cmd.AddCommand(
		newTeamSummaryCmd(app),
		newTeamWorkloadCmd(app),
		newTeamExpertiseCmd(app),
	)

	return cmd
}

func newTeamSummaryCmd(app *App) *cobra.Command {
	var groupID string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Per-member workload and expertise summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := app.Service.TeamSummary(context.Background(), groupID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTeamSummary(groupID, summaries))
			return nil
		},
	}

	cmd.Flags().StringVar(&groupID, "group-id", "", "Team group ID")
	cmd.MarkFlagRequired("group-id")
	return cmd
}

func newTeamWorkloadCmd(app *App) *cobra.Command {
	var groupID string

	cmd := &cobra.Command{
		Use:   "workload",
		Short: "Workload distribution with status labels",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Service.WorkloadDistribution(context.Background(), groupID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWorkload(groupID, entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&groupID, "group-id", "", "Team group ID")
	cmd.MarkFlagRequired("group-id")
	return cmd
}

func newTeamExpertiseCmd(app *App) *cobra.Command {
	var groupID, category string

	cmd := &cobra.Command{
		Use:   "expertise",
		Short: "Expertise rankings per category",
		RunE: func(cmd *cobra.Command, args []string) error {
			rankings, err := app.Service.ExpertiseRankings(context.Background(), groupID, category)
			if err != nil {
				return err
			}
			categories := []string{category}
			if category == "" {
				categories = domain.DefaultCategories
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRankings(rankings, categories))
			return nil
		},
	}

	cmd.Flags().StringVar(&groupID, "group-id", "", "Team group ID")
	cmd.Flags().StringVar(&category, "category", "", "Category to rank (all when empty)")
	cmd.MarkFlagRequired("group-id")
	return cmd
}
