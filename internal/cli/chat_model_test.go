package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/taskmate/internal/conversation"
	"github.com/alexanderramin/taskmate/internal/teatest"
)

func newChatDriver(t *testing.T) (*teatest.Driver, *conversation.Session) {
	t.Helper()
	store := conversation.NewStore()
	session := store.Create()
	model := newChatModel(conversation.NewOrchestrator(nil, nil), session)
	d := teatest.New(t, model)
	d.DrainInit()
	return d, session
}

func TestChatModel_ShowsWelcome(t *testing.T) {
	d, _ := newChatDriver(t)

	view := d.View()
	assert.Contains(t, view, "PROJECT PLANNING CHAT")
	assert.Contains(t, view, "chat>")
}

func TestChatModel_TurnRoundTrip(t *testing.T) {
	d, session := newChatDriver(t)

	d.Type("I want to build a todo app")
	d.PressEnter()

	view := d.View()
	assert.Contains(t, view, "You: I want to build a todo app")
	// Nil model client degrades to the canned dialogue reply.
	assert.Contains(t, view, "Tell me more about what you would like to build")
	assert.Contains(t, session.Context(), "User: I want to build a todo app")
}

func TestChatModel_EmptyInputIgnored(t *testing.T) {
	d, session := newChatDriver(t)

	d.PressEnter()

	assert.Empty(t, session.Context())
}

func TestChatModel_QuitCommands(t *testing.T) {
	for _, quit := range []string{"/quit", "/exit", "quit"} {
		t.Run(quit, func(t *testing.T) {
			d, _ := newChatDriver(t)

			d.Type(quit)
			d.PressEnter()

			assert.True(t, d.Quitting)
		})
	}
}

func TestChatModel_EscQuits(t *testing.T) {
	d, _ := newChatDriver(t)

	d.PressEsc()

	require.True(t, d.Quitting)
	assert.Empty(t, d.View())
}
