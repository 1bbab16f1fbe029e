package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/taskmate/internal/analytics"
	"github.com/alexanderramin/taskmate/internal/domain"
	"github.com/alexanderramin/taskmate/internal/llm"
	"github.com/alexanderramin/taskmate/internal/scoring"
)

// ErrNoTeamMembers indicates the group resolved to an empty roster.
var ErrNoTeamMembers = errors.New("no team members found")

// topRecommendations is how many ranked entries the caller-facing result
// carries; the full base-score list is returned alongside for audit.
const topRecommendations = 3

// Service orchestrates scoring, enhancement, and the analytics read views
// for one member data source. The views never invoke the model.
type Service struct {
	source   analytics.Source
	enhancer Enhancer
	observer llm.Observer
	now      func() time.Time
}

// NewService creates a Service over the given data source and enhancer.
func NewService(source analytics.Source, enhancer Enhancer, observer llm.Observer) *Service {
	if observer == nil {
		observer = llm.NoopObserver{}
	}
	return &Service{
		source:   source,
		enhancer: enhancer,
		observer: observer,
		now:      time.Now,
	}
}

// Recommend ranks the group's members for the requested task.
func (s *Service) Recommend(ctx context.Context, req AssignmentRequest) (*AssignmentResult, error) {
	if req.TaskCategory == "" {
		req.TaskCategory = "general"
	}

	members, err := s.source.TeamMembers(ctx, req.GroupID)
	if err != nil {
		return nil, fmt.Errorf("getting team members: %w", err)
	}
	if len(members) == 0 {
		return nil, ErrNoTeamMembers
	}

	candidates := make([]domain.ScoredCandidate, 0, len(members))
	baseScores := make([]domain.BaseScoreEntry, 0, len(members))
	for _, m := range members {
		c := s.scoreMember(ctx, m, req.TaskCategory)
		candidates = append(candidates, c)
		baseScores = append(baseScores, domain.BaseScoreEntry{Username: c.Username, BaseScore: c.BaseScore})
	}

	recs, plan := s.enhancer.Enhance(ctx, candidates, req)
	if len(recs) > topRecommendations {
		recs = recs[:topRecommendations]
	}

	return &AssignmentResult{
		Recommendations: recs,
		SuggestedPlan:   plan,
		TaskCategory:    req.TaskCategory,
		BaseScores:      baseScores,
	}, nil
}

// scoreMember reads one member's snapshot and computes the base score. A
// failed read is isolated to this member: it scores the neutral default
// instead of aborting the batch.
func (s *Service) scoreMember(ctx context.Context, m domain.Member, category string) domain.ScoredCandidate {
	snap, err := s.source.Snapshot(ctx, m.UserID)
	if err != nil {
		s.observer.OnFallback(llm.FallbackEvent{
			Component: "analytics",
			Subject:   m.UserID,
			Reason:    fmt.Sprintf("snapshot failed, using neutral default: %v", err),
		})
		return domain.ScoredCandidate{
			UserID:    m.UserID,
			Username:  m.Username,
			BaseScore: scoring.NeutralScore,
			Metrics: domain.CandidateMetrics{
				Workload:   0,
				Capacity:   3,
				DataSource: domain.SourceDefault,
			},
		}
	}

	return domain.ScoredCandidate{
		UserID:    m.UserID,
		Username:  m.Username,
		BaseScore: scoring.BaseScore(snap.Workload, snap.Expertise, snap.Capacity, category),
		Metrics: domain.CandidateMetrics{
			Workload:   snap.Workload,
			Expertise:  snap.Expertise.Category(category),
			Capacity:   snap.Capacity,
			DataSource: snap.DataSource,
		},
	}
}

// RecordAssignment forwards an assignment record to the data source and
// reports which path (real or mock) served it.
func (s *Service) RecordAssignment(ctx context.Context, rec analytics.AssignmentRecord) (domain.DataSource, error) {
	return s.source.RecordAssignment(ctx, rec)
}

// RecordCompletion forwards a completion record to the data source.
func (s *Service) RecordCompletion(ctx context.Context, rec analytics.CompletionRecord) (domain.DataSource, error) {
	return s.source.RecordCompletion(ctx, rec)
}

// UserAnalytics returns one member's current snapshot.
func (s *Service) UserAnalytics(ctx context.Context, userID string) (*UserAnalytics, error) {
	snap, err := s.source.Snapshot(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting analytics for %s: %w", userID, err)
	}
	return &UserAnalytics{
		CurrentWorkload:     snap.Workload,
		ExpertiseByCategory: snap.Expertise,
		HistoricalCapacity:  snap.Capacity,
		DataSource:          snap.DataSource,
		UpdatedAt:           s.now().UTC().Format(time.RFC3339),
	}, nil
}

// TeamSummary returns per-member workload, capacity, utilization, and average
// expertise for the whole group.
func (s *Service) TeamSummary(ctx context.Context, groupID string) ([]MemberSummary, error) {
	members, err := s.source.TeamMembers(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("getting team members: %w", err)
	}

	summaries := make([]MemberSummary, 0, len(members))
	for _, m := range members {
		snap, err := s.source.Snapshot(ctx, m.UserID)
		if err != nil {
			snap = domain.DefaultSnapshot()
		}
		summaries = append(summaries, MemberSummary{
			UserID:                m.UserID,
			Username:              m.Username,
			CurrentWorkload:       snap.Workload,
			Capacity:              snap.Capacity,
			UtilizationPercentage: round1(utilization(snap.Workload, snap.Capacity)),
			AverageExpertise:      round1(snap.Expertise.AverageExpertise()),
			ExpertiseByCategory:   snap.Expertise,
			DataSource:            snap.DataSource,
		})
	}
	return summaries, nil
}

// WorkloadDistribution returns the group's utilization rows with status
// labels, sorted descending by utilization.
func (s *Service) WorkloadDistribution(ctx context.Context, groupID string) ([]WorkloadEntry, error) {
	members, err := s.source.TeamMembers(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("getting team members: %w", err)
	}

	entries := make([]WorkloadEntry, 0, len(members))
	for _, m := range members {
		snap, err := s.source.Snapshot(ctx, m.UserID)
		if err != nil {
			snap = domain.DefaultSnapshot()
		}
		util := utilization(snap.Workload, snap.Capacity)
		entries = append(entries, WorkloadEntry{
			UserID:                m.UserID,
			Username:              m.Username,
			CurrentWorkload:       snap.Workload,
			Capacity:              snap.Capacity,
			UtilizationPercentage: round1(util),
			Status:                domain.StatusForUtilization(util),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].UtilizationPercentage > entries[j].UtilizationPercentage
	})
	return entries, nil
}

// ExpertiseRankings returns per-category rankings sorted descending by
// expertise score. An empty category covers all default categories.
func (s *Service) ExpertiseRankings(ctx context.Context, groupID, category string) (map[string][]CategoryRanking, error) {
	members, err := s.source.TeamMembers(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("getting team members: %w", err)
	}

	categories := []string{category}
	if category == "" {
		categories = domain.DefaultCategories
	}

	snapshots := make([]domain.AnalyticsSnapshot, len(members))
	for i, m := range members {
		snap, err := s.source.Snapshot(ctx, m.UserID)
		if err != nil {
			snap = domain.DefaultSnapshot()
		}
		snapshots[i] = snap
	}

	rankings := make(map[string][]CategoryRanking, len(categories))
	for _, cat := range categories {
		rows := make([]CategoryRanking, 0, len(members))
		for i, m := range members {
			snap := snapshots[i]
			exp := snap.Expertise.Category(cat)
			rows = append(rows, CategoryRanking{
				UserID:            m.UserID,
				Username:          m.Username,
				ExpertiseScore:    exp.ExpertiseScore,
				SuccessRate:       exp.SuccessRatePercentage,
				CurrentWorkload:   snap.Workload,
				AvailabilityScore: availabilityScore(snap.Workload, snap.Capacity),
			})
		}
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].ExpertiseScore > rows[j].ExpertiseScore
		})
		rankings[cat] = rows
	}
	return rankings, nil
}

func utilization(workload, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return float64(workload) / float64(capacity) * 100
}

func availabilityScore(workload, capacity int) float64 {
	if capacity <= 0 {
		return 100
	}
	return math.Max(0, 100-utilization(workload, capacity))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
