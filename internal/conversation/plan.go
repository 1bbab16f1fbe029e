package conversation

import "fmt"

// ProjectPlan is the structured output of plan generation: a milestone-driven
// breakdown of the project discussed in the conversation.
type ProjectPlan struct {
	ProjectName        string          `json:"project_name"`
	ProjectDescription string          `json:"project_description"`
	ProjectType        string          `json:"project_type"`
	EstimatedDuration  string          `json:"estimated_duration"`
	DifficultyLevel    string          `json:"difficulty_level"`
	TechnologyStack    TechnologyStack `json:"technology_stack"`
	Milestones         []Milestone     `json:"milestones"`
	Tasks              []PlanTask      `json:"tasks"`
}

// TechnologyStack groups recommended technologies by layer.
type TechnologyStack struct {
	Frontend []string `json:"frontend"`
	Backend  []string `json:"backend"`
	Database []string `json:"database"`
	Tools    []string `json:"tools"`
}

// Milestone is one major project phase with a target date.
type Milestone struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// PlanTask is one unit of work supporting a milestone.
type PlanTask struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MilestoneID string `json:"milestone_id"`
	Category    string `json:"category"`
	DueDate     string `json:"due_date"`
}

// validatePlan rejects structurally empty plans before they reach the user.
func validatePlan(plan ProjectPlan) error {
	if plan.ProjectName == "" {
		return fmt.Errorf("project_name is required")
	}
	if len(plan.Milestones) == 0 {
		return fmt.Errorf("plan has no milestones")
	}
	for i, m := range plan.Milestones {
		if m.Name == "" {
			return fmt.Errorf("milestone %d: name is required", i)
		}
	}
	for i, t := range plan.Tasks {
		if t.Name == "" {
			return fmt.Errorf("task %d: name is required", i)
		}
	}
	return nil
}
