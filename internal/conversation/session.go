package conversation

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// maxHistoryTurns bounds the conversation memory carried into prompts.
const maxHistoryTurns = 20

// Session holds the transient state of one conversation. A session belongs to
// the connection that created it and is destroyed when that connection ends.
type Session struct {
	ID string

	mu                     sync.Mutex
	history                []string
	projectInfo            string
	waitingForConfirmation bool
	pendingPlan            *ProjectPlan
}

// AddUserTurn appends a user message to the history.
func (s *Session) AddUserTurn(message string) {
	s.addTurn("User", message)
}

// AddAssistantTurn appends an assistant message to the history.
func (s *Session) AddAssistantTurn(message string) {
	s.addTurn("Assistant", message)
}

func (s *Session) addTurn(speaker, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, speaker+": "+message)
	if len(s.history) > maxHistoryTurns {
		s.history = s.history[len(s.history)-maxHistoryTurns:]
	}
}

// Context returns the recent history as one prompt-ready block.
func (s *Session) Context() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.history, "\n")
}

// AccumulateProjectInfo folds a project-related message into the running
// project description used for plan generation.
func (s *Session) AccumulateProjectInfo(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.projectInfo == "" {
		s.projectInfo = message
	} else {
		s.projectInfo += " " + message
	}
}

// ProjectInfo returns the accumulated project description.
func (s *Session) ProjectInfo() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projectInfo
}

// ProposePlan records a generated plan and flips the session into the
// confirmation state.
func (s *Session) ProposePlan(plan *ProjectPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingPlan = plan
	s.waitingForConfirmation = true
}

// AwaitingConfirmation reports whether a plan proposal is pending.
func (s *Session) AwaitingConfirmation() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.waitingForConfirmation
}

// ResolveConfirmation clears the confirmation state and returns the pending
// plan. The plan is only meaningful when the user accepted it.
func (s *Session) ResolveConfirmation() *ProjectPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	plan := s.pendingPlan
	s.pendingPlan = nil
	s.waitingForConfirmation = false
	return plan
}

// Store is a concurrent session registry keyed by session id.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a new session with a fresh id.
func (st *Store) Create() *Session {
	s := &Session{ID: uuid.NewString()}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns the session with the given id, if it exists.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// GetOrCreate returns the session with the given id, registering a new
// session under that id when none exists.
func (st *Store) GetOrCreate(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[id]; ok {
		return s
	}
	s := &Session{ID: id}
	st.sessions[id] = s
	return s
}

// Destroy removes a session. Called when the owning connection ends.
func (st *Store) Destroy(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
