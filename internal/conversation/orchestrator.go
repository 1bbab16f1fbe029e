package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/taskmate/internal/llm"
)

// ReplyKind classifies what a conversation turn produced.
type ReplyKind string

const (
	// ReplyDialogue is an ordinary conversational turn.
	ReplyDialogue ReplyKind = "dialogue"
	// ReplyPlanProposed carries a generated plan awaiting confirmation.
	ReplyPlanProposed ReplyKind = "plan_proposed"
	// ReplyPlanSaved confirms a proposed plan.
	ReplyPlanSaved ReplyKind = "plan_saved"
	// ReplyPlanDeclined rejects a proposed plan.
	ReplyPlanDeclined ReplyKind = "plan_declined"
)

// Reply is the orchestrator's answer to one user message.
type Reply struct {
	Kind    ReplyKind    `json:"kind"`
	Content string       `json:"content"`
	Plan    *ProjectPlan `json:"plan,omitempty"`
}

// Orchestrator drives the dialogue-to-plan conversation flow. Model failures
// on any path degrade to canned replies; HandleMessage never returns an error
// for a model problem.
type Orchestrator struct {
	client   llm.Client // nil disables all model paths
	observer llm.Observer
}

// NewOrchestrator creates an Orchestrator over a model client. A nil client
// is valid: every turn then takes the degraded dialogue path.
func NewOrchestrator(client llm.Client, observer llm.Observer) *Orchestrator {
	if observer == nil {
		observer = llm.NoopObserver{}
	}
	return &Orchestrator{client: client, observer: observer}
}

// HandleMessage processes one user message against the session state.
func (o *Orchestrator) HandleMessage(ctx context.Context, session *Session, message string) Reply {
	session.AddUserTurn(message)

	var reply Reply
	switch {
	case session.AwaitingConfirmation():
		reply = o.resolveConfirmation(session, message)
	default:
		reply = o.converse(ctx, session, message)
	}

	session.AddAssistantTurn(reply.Content)
	return reply
}

// resolveConfirmation interprets the user's answer to a pending plan
// proposal. Anything that is not an affirmative counts as a decline.
func (o *Orchestrator) resolveConfirmation(session *Session, message string) Reply {
	plan := session.ResolveConfirmation()
	if isAffirmative(message) && plan != nil {
		return Reply{
			Kind:    ReplyPlanSaved,
			Content: fmt.Sprintf("Saved the plan for %q.", plan.ProjectName),
			Plan:    plan,
		}
	}
	return Reply{Kind: ReplyPlanDeclined, Content: planDeclinedReply}
}

func isAffirmative(message string) bool {
	lower := strings.ToLower(message)
	for _, word := range []string{"yes", "ok", "sure"} {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// converse is the main dialogue path: probe readiness, generate a plan when
// ready, otherwise produce a conversational turn.
func (o *Orchestrator) converse(ctx context.Context, session *Session, message string) Reply {
	if isProjectRelated(message) {
		session.AccumulateProjectInfo(message)
	}

	if o.client != nil && o.planReady(ctx, session, message) {
		if reply, ok := o.generatePlan(ctx, session); ok {
			return reply
		}
		return Reply{Kind: ReplyDialogue, Content: planParseApology}
	}

	return o.dialogueTurn(ctx, session, message)
}

// planReady asks the model whether the conversation carries enough detail to
// plan. A probe failure means not ready, never an error.
func (o *Orchestrator) planReady(ctx context.Context, session *Session, message string) bool {
	resp, err := o.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskReadiness,
		SystemPrompt: readinessSystemPrompt,
		UserPrompt:   buildReadinessUserPrompt(session.Context(), message, session.ProjectInfo()),
	})
	if err != nil {
		o.observer.OnFallback(llm.FallbackEvent{
			Component: "orchestrator",
			Subject:   session.ID,
			Reason:    fmt.Sprintf("readiness probe failed, staying in dialogue: %v", err),
		})
		return false
	}
	return strings.Contains(strings.ToUpper(resp.Text), "YES")
}

// generatePlan builds a ProjectPlan from the accumulated project info and
// moves the session into the confirmation state.
func (o *Orchestrator) generatePlan(ctx context.Context, session *Session) (Reply, bool) {
	resp, err := o.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPlan,
		SystemPrompt: planSystemPrompt,
		UserPrompt:   buildPlanUserPrompt(session.ProjectInfo()),
		JSON:         true,
	})
	if err != nil {
		o.observer.OnFallback(llm.FallbackEvent{
			Component: "orchestrator",
			Subject:   session.ID,
			Reason:    fmt.Sprintf("plan generation failed: %v", err),
		})
		return Reply{}, false
	}

	plan, err := llm.ExtractJSON[ProjectPlan](resp.Text, validatePlan)
	if err != nil {
		o.observer.OnFallback(llm.FallbackEvent{
			Component: "orchestrator",
			Subject:   session.ID,
			Reason:    fmt.Sprintf("plan response unparseable: %v", err),
		})
		return Reply{}, false
	}

	session.ProposePlan(&plan)

	rendered, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		rendered = []byte(plan.ProjectName)
	}
	content := fmt.Sprintf("Based on our conversation, I've created a detailed project plan for you:\n\n%s\n\nWould you like me to save this plan?", rendered)
	return Reply{Kind: ReplyPlanProposed, Content: content, Plan: &plan}, true
}

// dialogueTurn produces an ordinary conversational response, degrading to a
// canned re-prompt when the model is unreachable.
func (o *Orchestrator) dialogueTurn(ctx context.Context, session *Session, message string) Reply {
	if o.client == nil {
		return Reply{Kind: ReplyDialogue, Content: fallbackDialogue}
	}

	resp, err := o.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskChat,
		SystemPrompt: chatSystemPrompt,
		UserPrompt:   buildChatUserPrompt(session.Context(), message),
	})
	if err != nil {
		o.observer.OnFallback(llm.FallbackEvent{
			Component: "orchestrator",
			Subject:   session.ID,
			Reason:    fmt.Sprintf("dialogue generation failed: %v", err),
		})
		return Reply{Kind: ReplyDialogue, Content: fallbackDialogue}
	}
	return Reply{Kind: ReplyDialogue, Content: strings.TrimSpace(resp.Text)}
}
