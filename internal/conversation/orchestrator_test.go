package conversation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/taskmate/internal/llm"
)

// taskClient answers each task type with a scripted response.
type taskClient struct {
	responses map[llm.TaskType]string
	errs      map[llm.TaskType]error
}

func (c *taskClient) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	if err, ok := c.errs[req.Task]; ok {
		return nil, err
	}
	return &llm.GenerateResponse{Text: c.responses[req.Task], Model: "test"}, nil
}

func (c *taskClient) Available(ctx context.Context) bool { return true }

const validPlanJSON = `{
	"project_name": "Todo App",
	"project_description": "A simple task tracker.",
	"project_type": "web_app",
	"estimated_duration": "2-4 weeks",
	"difficulty_level": "beginner",
	"technology_stack": {"frontend": ["React"], "backend": ["Go"], "database": ["Postgres"], "tools": ["Git"]},
	"milestones": [{"id": "milestone_1", "name": "Setup Complete", "description": "Repo and CI ready", "date": "2026-10-01"}],
	"tasks": [{"name": "Setup Git Repo", "description": "Initialize the repository", "milestone_id": "milestone_1", "category": "planning", "due_date": "2026-09-15"}]
}`

func TestOrchestrator_DialogueTurn(t *testing.T) {
	client := &taskClient{responses: map[llm.TaskType]string{
		llm.TaskReadiness: "NO",
		llm.TaskChat:      "What would the app do?",
	}}
	o := NewOrchestrator(client, nil)
	s := &Session{ID: "s1"}

	reply := o.HandleMessage(context.Background(), s, "I want to build an app")

	assert.Equal(t, ReplyDialogue, reply.Kind)
	assert.Equal(t, "What would the app do?", reply.Content)
	assert.Nil(t, reply.Plan)
	assert.Contains(t, s.Context(), "Assistant: What would the app do?")
	assert.Equal(t, "I want to build an app", s.ProjectInfo())
}

func TestOrchestrator_NonProjectMessageNotAccumulated(t *testing.T) {
	client := &taskClient{responses: map[llm.TaskType]string{
		llm.TaskReadiness: "NO",
		llm.TaskChat:      "Hello!",
	}}
	o := NewOrchestrator(client, nil)
	s := &Session{ID: "s1"}

	o.HandleMessage(context.Background(), s, "good morning")

	assert.Empty(t, s.ProjectInfo())
}

func TestOrchestrator_ReadyGeneratesPlan(t *testing.T) {
	client := &taskClient{responses: map[llm.TaskType]string{
		llm.TaskReadiness: "YES",
		llm.TaskPlan:      validPlanJSON,
	}}
	o := NewOrchestrator(client, nil)
	s := &Session{ID: "s1"}

	reply := o.HandleMessage(context.Background(), s, "build a todo app with React and Go, 4 weeks")

	assert.Equal(t, ReplyPlanProposed, reply.Kind)
	require.NotNil(t, reply.Plan)
	assert.Equal(t, "Todo App", reply.Plan.ProjectName)
	assert.Contains(t, reply.Content, "Would you like me to save this plan?")
	assert.True(t, s.AwaitingConfirmation())
}

func TestOrchestrator_ConfirmationAccepts(t *testing.T) {
	o := NewOrchestrator(nil, nil)
	s := &Session{ID: "s1"}
	s.ProposePlan(&ProjectPlan{ProjectName: "Todo App"})

	reply := o.HandleMessage(context.Background(), s, "yes please")

	assert.Equal(t, ReplyPlanSaved, reply.Kind)
	require.NotNil(t, reply.Plan)
	assert.Equal(t, "Todo App", reply.Plan.ProjectName)
	assert.False(t, s.AwaitingConfirmation())
}

func TestOrchestrator_ConfirmationVariants(t *testing.T) {
	for _, answer := range []string{"yes", "OK, go ahead", "Sure thing"} {
		t.Run(answer, func(t *testing.T) {
			o := NewOrchestrator(nil, nil)
			s := &Session{ID: "s1"}
			s.ProposePlan(&ProjectPlan{ProjectName: "Todo App"})

			reply := o.HandleMessage(context.Background(), s, answer)

			assert.Equal(t, ReplyPlanSaved, reply.Kind)
		})
	}
}

func TestOrchestrator_ConfirmationDeclines(t *testing.T) {
	o := NewOrchestrator(nil, nil)
	s := &Session{ID: "s1"}
	s.ProposePlan(&ProjectPlan{ProjectName: "Todo App"})

	reply := o.HandleMessage(context.Background(), s, "no, change the stack")

	assert.Equal(t, ReplyPlanDeclined, reply.Kind)
	assert.Equal(t, planDeclinedReply, reply.Content)
	assert.False(t, s.AwaitingConfirmation())
}

func TestOrchestrator_ReadinessProbeFailureStaysInDialogue(t *testing.T) {
	client := &taskClient{
		responses: map[llm.TaskType]string{llm.TaskChat: "Tell me about the features."},
		errs:      map[llm.TaskType]error{llm.TaskReadiness: llm.ErrUnavailable},
	}
	o := NewOrchestrator(client, nil)
	s := &Session{ID: "s1"}

	reply := o.HandleMessage(context.Background(), s, "build a chat app")

	assert.Equal(t, ReplyDialogue, reply.Kind)
	assert.Equal(t, "Tell me about the features.", reply.Content)
}

func TestOrchestrator_PlanGenerationFailureApologizes(t *testing.T) {
	tests := []struct {
		name   string
		client *taskClient
	}{
		{"generation error", &taskClient{
			responses: map[llm.TaskType]string{llm.TaskReadiness: "YES"},
			errs:      map[llm.TaskType]error{llm.TaskPlan: llm.ErrTimeout},
		}},
		{"unparseable plan", &taskClient{
			responses: map[llm.TaskType]string{llm.TaskReadiness: "YES", llm.TaskPlan: "I cannot produce JSON"},
		}},
		{"empty plan", &taskClient{
			responses: map[llm.TaskType]string{llm.TaskReadiness: "YES", llm.TaskPlan: `{"project_name": ""}`},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrchestrator(tt.client, nil)
			s := &Session{ID: "s1"}

			reply := o.HandleMessage(context.Background(), s, "build a chat app")

			assert.Equal(t, ReplyDialogue, reply.Kind)
			assert.Equal(t, planParseApology, reply.Content)
			assert.False(t, s.AwaitingConfirmation())
		})
	}
}

func TestOrchestrator_DialogueFailureUsesCannedReply(t *testing.T) {
	client := &taskClient{errs: map[llm.TaskType]error{
		llm.TaskReadiness: llm.ErrUnavailable,
		llm.TaskChat:      llm.ErrUnavailable,
	}}
	o := NewOrchestrator(client, nil)
	s := &Session{ID: "s1"}

	reply := o.HandleMessage(context.Background(), s, "build something")

	assert.Equal(t, ReplyDialogue, reply.Kind)
	assert.Equal(t, fallbackDialogue, reply.Content)
}

func TestOrchestrator_NilClientDialogue(t *testing.T) {
	o := NewOrchestrator(nil, nil)
	s := &Session{ID: "s1"}

	reply := o.HandleMessage(context.Background(), s, "build an app")

	assert.Equal(t, ReplyDialogue, reply.Kind)
	assert.Equal(t, fallbackDialogue, reply.Content)
}

func TestOrchestrator_FencedPlanStillParses(t *testing.T) {
	client := &taskClient{responses: map[llm.TaskType]string{
		llm.TaskReadiness: "YES",
		llm.TaskPlan:      "```json\n" + validPlanJSON + "\n```",
	}}
	o := NewOrchestrator(client, nil)
	s := &Session{ID: "s1"}

	reply := o.HandleMessage(context.Background(), s, "build a todo app")

	assert.Equal(t, ReplyPlanProposed, reply.Kind)
	require.NotNil(t, reply.Plan)
	assert.Len(t, reply.Plan.Milestones, 1)
}
