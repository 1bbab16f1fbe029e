package analytics

import (
	"context"

	"github.com/alexanderramin/taskmate/internal/domain"
)

// StaticSource serves rosters and snapshots from an in-memory table. It never
// fails: unknown groups resolve to the (possibly empty) default roster and
// unknown members resolve to the documented default snapshot. It ships empty;
// deployments seed it through options, tests seed it with fixtures.
type StaticSource struct {
	teams       map[string][]domain.Member
	snapshots   map[string]domain.AnalyticsSnapshot
	defaultTeam []domain.Member
}

// StaticOption configures a StaticSource.
type StaticOption func(*StaticSource)

// WithTeam seeds the roster for one group.
func WithTeam(groupID string, members []domain.Member) StaticOption {
	return func(s *StaticSource) {
		s.teams[groupID] = members
	}
}

// WithDefaultTeam sets the roster returned for unknown group ids.
func WithDefaultTeam(members []domain.Member) StaticOption {
	return func(s *StaticSource) {
		s.defaultTeam = members
	}
}

// WithSnapshot seeds one member's analytics snapshot. The snapshot is tagged
// as mock data regardless of the seed's tag.
func WithSnapshot(userID string, snap domain.AnalyticsSnapshot) StaticOption {
	return func(s *StaticSource) {
		snap.DataSource = domain.SourceMock
		s.snapshots[userID] = snap
	}
}

// NewStaticSource creates a StaticSource with the given seeds.
func NewStaticSource(opts ...StaticOption) *StaticSource {
	s := &StaticSource{
		teams:     make(map[string][]domain.Member),
		snapshots: make(map[string]domain.AnalyticsSnapshot),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *StaticSource) TeamMembers(_ context.Context, groupID string) ([]domain.Member, error) {
	if members, ok := s.teams[groupID]; ok {
		return members, nil
	}
	return s.defaultTeam, nil
}

func (s *StaticSource) Snapshot(_ context.Context, userID string) (domain.AnalyticsSnapshot, error) {
	if snap, ok := s.snapshots[userID]; ok {
		return snap, nil
	}
	return domain.DefaultSnapshot(), nil
}

// RecordAssignment is a no-op on static data; it only reports the mock path
// so callers can tell the record was not persisted anywhere real.
func (s *StaticSource) RecordAssignment(context.Context, AssignmentRecord) (domain.DataSource, error) {
	return domain.SourceMock, nil
}

func (s *StaticSource) RecordCompletion(context.Context, CompletionRecord) (domain.DataSource, error) {
	return domain.SourceMock, nil
}
