package conversation

import (
	"fmt"
	"strings"
)

const chatSystemPrompt = `You are a helpful project planning assistant. Guide users through a natural conversation to gather comprehensive project information before creating detailed plans.

Work through three stages:
1. PROJECT BASICS - what they want to build, main purpose, target audience
2. FEATURES & REQUIREMENTS - specific functionality, user interactions, key features
3. TECHNICAL DETAILS - platform preferences, complexity, timeline, technology choices

Have a friendly conversation, ask follow-up questions, and only suggest creating a plan once all three areas are well covered or the user asks for one.`

const readinessSystemPrompt = `You decide whether a project planning conversation contains enough information to generate a detailed plan. Respond with ONLY the single word YES or NO.

Respond YES only if project basics, features and requirements, and technical preferences have all been discussed with sufficient detail. Respond NO if any of those areas is missing or the conversation is still in early stages.`

const planSystemPrompt = `You are an expert project manager and technical architect. Create a comprehensive milestone-driven project plan as a single JSON object with this structure:

{
  "project_name": "Short name",
  "project_description": "Clear 2-3 sentence description",
  "project_type": "web_app|mobile_app|desktop_app|api|game|other",
  "estimated_duration": "2-4 weeks|1-2 months|3-6 months|6+ months",
  "difficulty_level": "beginner|intermediate|advanced",
  "technology_stack": {"frontend": [], "backend": [], "database": [], "tools": []},
  "milestones": [{"id": "milestone_1", "name": "...", "description": "...", "date": "YYYY-MM-DD"}],
  "tasks": [{"name": "...", "description": "...", "milestone_id": "milestone_1", "category": "planning|design|development|testing|deployment", "due_date": "YYYY-MM-DD"}]
}

Create 4-6 milestones representing major phases, with 3-5 tasks each. All dates must be in the future in YYYY-MM-DD format. Respond with ONLY the JSON object, no additional text.`

// fallbackDialogue is the canned turn used when the dialogue model is
// unreachable. Keeps the conversation moving instead of surfacing an error.
const fallbackDialogue = "Tell me more about what you would like to build - " +
	"what is the main goal, and who will use it?"

// planParseApology replaces a plan that failed generation or parsing.
const planParseApology = "I had trouble generating the project plan. " +
	"Could you provide a bit more detail about what you want to build?"

// planDeclinedReply acknowledges a rejected plan proposal.
const planDeclinedReply = "No problem! What would you like to change about " +
	"the project plan, or would you like to start over?"

func buildChatUserPrompt(context, message string) string {
	var b strings.Builder
	if context != "" {
		fmt.Fprintf(&b, "CONVERSATION CONTEXT:\n%s\n\n", context)
	}
	fmt.Fprintf(&b, "USER'S CURRENT MESSAGE: %q", message)
	return b.String()
}

func buildReadinessUserPrompt(context, message, projectInfo string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CONVERSATION CONTEXT:\n%s\n\n", context)
	fmt.Fprintf(&b, "CURRENT MESSAGE: %q\n\n", message)
	fmt.Fprintf(&b, "ACCUMULATED PROJECT INFO: %q", projectInfo)
	return b.String()
}

func buildPlanUserPrompt(projectInfo string) string {
	return fmt.Sprintf("PROJECT DESCRIPTION: %s", projectInfo)
}

// projectKeywords marks a message as carrying project information worth
// folding into the accumulated description.
var projectKeywords = []string{
	"app", "website", "build", "create", "develop", "project",
	"feature", "user", "system", "platform", "tool", "application",
}

func isProjectRelated(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range projectKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
