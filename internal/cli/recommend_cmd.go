package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/taskmate/internal/cli/formatter"
	"github.com/alexanderramin/taskmate/internal/domain"
	"github.com/alexanderramin/taskmate/internal/recommend"
)

func newRecommendCmd(app *App) *cobra.Command {
	var req recommend.AssignmentRequest

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend team members for a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.GroupID == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("--group-id is required")
				}
				if err := runRecommendForm(&req); err != nil {
					return err
				}
			}
			return runRecommend(cmd, app, req)
		},
	}

	cmd.Flags().StringVar(&req.GroupID, "group-id", "", "Team group ID")
	cmd.Flags().StringVar(&req.TaskCategory, "task-category", "general", "Task category")
	cmd.Flags().StringVar(&req.TaskDescription, "task-description", "", "Task description")
	cmd.Flags().StringVar(&req.Priority, "priority", "", "Task priority")
	cmd.Flags().StringVar(&req.Deadline, "deadline", "", "Task deadline")
	return cmd
}

// runRecommendForm collects the request interactively when --group is absent.
func runRecommendForm(req *recommend.AssignmentRequest) error {
	categories := make([]huh.Option[string], len(domain.DefaultCategories))
	for i, cat := range domain.DefaultCategories {
		categories[i] = huh.NewOption(cat, cat)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Team group ID").
				Placeholder("team1").
				Value(&req.GroupID).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("group ID is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Task category").
				Options(categories...).
				Value(&req.TaskCategory),
			huh.NewInput().
				Title("Task description (optional)").
				Value(&req.TaskDescription),
		),
	).WithTheme(taskmateHuhTheme()).WithShowHelp(false)

	return form.Run()
}

func runRecommend(cmd *cobra.Command, app *App, req recommend.AssignmentRequest) error {
	result, err := app.Service.Recommend(context.Background(), req)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecommendations(result))
	return nil
}
