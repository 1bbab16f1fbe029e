package llm

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single model invocation.
type CallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// FallbackEvent records a recovered degradation: a component abandoned its
// primary path (model call or real data source) and used its deterministic
// substitute. These never surface as caller errors, so the observer is the
// only place they are visible.
type FallbackEvent struct {
	Component string // "enhancer", "analytics", "orchestrator"
	Subject   string // user id, group id, or session id
	Reason    string
}

// Observer receives events about model calls and fallbacks for logging.
type Observer interface {
	OnCallComplete(event CallEvent)
	OnFallback(event FallbackEvent)
}

// LogObserver writes events to an io.Writer, one line per event.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] llm_call task=%s model=%s latency_ms=%d status=%s\n",
		ts, event.Task, event.Model, event.LatencyMs, status)
}

func (o *LogObserver) OnFallback(event FallbackEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	fmt.Fprintf(o.w, "[%s] fallback component=%s subject=%s reason=%q\n",
		ts, event.Component, event.Subject, event.Reason)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
func (NoopObserver) OnFallback(FallbackEvent) {}
