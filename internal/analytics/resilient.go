package analytics

import (
	"context"

	"github.com/alexanderramin/taskmate/internal/domain"
	"github.com/alexanderramin/taskmate/internal/llm"
)

// Resilient is the production Source: it always attempts the real backend
// first and falls through silently to the static table on any failure. The
// fallback is logged through the observer and visible to consumers only via
// each snapshot's data_source tag.
type Resilient struct {
	real     Source // nil when the real backend is disabled
	static   *StaticSource
	observer llm.Observer
}

// NewResilient composes a real backend client with a static fallback.
// real may be nil, in which case every call serves static data.
func NewResilient(real Source, static *StaticSource, observer llm.Observer) *Resilient {
	if observer == nil {
		observer = llm.NoopObserver{}
	}
	return &Resilient{real: real, static: static, observer: observer}
}

func (r *Resilient) TeamMembers(ctx context.Context, groupID string) ([]domain.Member, error) {
	if r.real != nil {
		members, err := r.real.TeamMembers(ctx, groupID)
		if err == nil {
			return members, nil
		}
		r.fellBack(groupID, err)
	}
	return r.static.TeamMembers(ctx, groupID)
}

func (r *Resilient) Snapshot(ctx context.Context, userID string) (domain.AnalyticsSnapshot, error) {
	if r.real != nil {
		snap, err := r.real.Snapshot(ctx, userID)
		if err == nil {
			snap.DataSource = domain.SourceReal
			return snap, nil
		}
		r.fellBack(userID, err)
	}
	return r.static.Snapshot(ctx, userID)
}

func (r *Resilient) RecordAssignment(ctx context.Context, rec AssignmentRecord) (domain.DataSource, error) {
	if r.real != nil {
		method, err := r.real.RecordAssignment(ctx, rec)
		if err == nil {
			return method, nil
		}
		r.fellBack(rec.TaskID, err)
	}
	return r.static.RecordAssignment(ctx, rec)
}

func (r *Resilient) RecordCompletion(ctx context.Context, rec CompletionRecord) (domain.DataSource, error) {
	if r.real != nil {
		method, err := r.real.RecordCompletion(ctx, rec)
		if err == nil {
			return method, nil
		}
		r.fellBack(rec.TaskID, err)
	}
	return r.static.RecordCompletion(ctx, rec)
}

func (r *Resilient) fellBack(subject string, err error) {
	r.observer.OnFallback(llm.FallbackEvent{
		Component: "analytics",
		Subject:   subject,
		Reason:    err.Error(),
	})
}
