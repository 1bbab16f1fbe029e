// Package analytics provides member and workload data for recommendation
// scoring. A Source either talks to the real analytics backend over HTTP or
// serves a static in-memory table; Resilient composes the two so backend
// failures degrade silently to the static data.
package analytics

import (
	"context"
	"errors"

	"github.com/alexanderramin/taskmate/internal/domain"
)

// ErrBackendUnavailable indicates the real analytics backend call failed:
// timeout, transport error, malformed payload, or a missing success flag.
// Consumers recover from it locally; it never reaches callers.
var ErrBackendUnavailable = errors.New("analytics backend unavailable")

// AssignmentRecord captures one task being assigned to a member.
type AssignmentRecord struct {
	TaskID   string
	UserID   string
	GroupID  string
	Category string
}

// CompletionRecord captures the outcome of a previously assigned task.
type CompletionRecord struct {
	TaskID  string
	Success bool
}

// Source is the narrow capability interface for team and workload data.
// Record methods report which path served them (real or mock) so callers can
// surface the provenance.
type Source interface {
	TeamMembers(ctx context.Context, groupID string) ([]domain.Member, error)
	Snapshot(ctx context.Context, userID string) (domain.AnalyticsSnapshot, error)
	RecordAssignment(ctx context.Context, rec AssignmentRecord) (domain.DataSource, error)
	RecordCompletion(ctx context.Context, rec CompletionRecord) (domain.DataSource, error)
}
