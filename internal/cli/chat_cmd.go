package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/taskmate/internal/cli/formatter"
	"github.com/alexanderramin/taskmate/internal/conversation"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Plan a project through conversation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("chat requires an interactive terminal")
			}

			session := app.Sessions.Create()
			defer app.Sessions.Destroy(session.ID)

			model := newChatModel(app.Orchestrator, session)
			program := tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout()))
			_, err := program.Run()
			return err
		},
	}
}

// chatModel is the conversational planning view: a message log above a
// single-line prompt, one orchestrator turn per Enter.
type chatModel struct {
	orchestrator *conversation.Orchestrator
	session      *conversation.Session

	input    textinput.Model
	messages []string
	quitting bool
}

func newChatModel(orchestrator *conversation.Orchestrator, session *conversation.Session) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	m := &chatModel{
		orchestrator: orchestrator,
		session:      session,
		input:        ti,
	}
	m.messages = append(m.messages,
		formatter.Header("Project planning chat"),
		formatter.Dim("Describe what you want to build. Type /quit to leave."),
	)
	return m
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			input := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if input == "" {
				return m, nil
			}
			return m.handleInput(input)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) handleInput(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/quit", "/exit", "/q", "quit", "exit":
		m.quitting = true
		return m, tea.Quit
	}

	m.messages = append(m.messages, formatter.Dim("You: ")+input)

	reply := m.orchestrator.HandleMessage(context.Background(), m.session, input)
	m.messages = append(m.messages, renderReply(reply))

	if reply.Kind == conversation.ReplyPlanSaved {
		m.messages = append(m.messages, formatter.Dim("Plan saved. Type /quit to leave or keep refining."))
	}
	return m, nil
}

func renderReply(reply conversation.Reply) string {
	content := formatter.StyleFg.Render(reply.Content)
	switch reply.Kind {
	case conversation.ReplyPlanProposed:
		return formatter.StylePurple.Render("Plan proposal") + "\n" + content
	case conversation.ReplyPlanSaved:
		return formatter.StyleGreen.Render("✓ ") + content
	default:
		return content
	}
}

func (m *chatModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}
	prompt := formatter.StylePurple.Render("chat") + formatter.Dim("> ")
	b.WriteString(prompt)
	b.WriteString(m.input.View())
	return b.String()
}
