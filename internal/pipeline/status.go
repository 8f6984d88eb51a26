package pipeline

import (
	"sync"
	"time"
)

// Status is the observable state of one turn as it moves through the pipeline.
type Status string

const (
	// StatusIdle means no turn stage is in flight.
	StatusIdle Status = "idle"
	// StatusPlanning spans the relevance gate, rewriter, and expander.
	StatusPlanning Status = "planning"
	// StatusSearching spans the concurrent retrieval fan-out and merge.
	StatusSearching Status = "searching"
	// StatusSummarizing spans the reranker and context assembly.
	StatusSummarizing Status = "summarizing"
	// StatusSearchFailed is the transient signal raised when every retrieval
	// branch failed. It auto-reverts to idle after a bounded display window.
	StatusSearchFailed Status = "search_failed"
)

// searchFailedDisplayWindow bounds how long the search_failed signal stays
// visible before reverting to idle.
const searchFailedDisplayWindow = 5 * time.Second

// StatusTracker publishes turn status transitions to an observer. Each turn
// owns its own tracker; the mutex guards against the auto-revert timer racing
// a later transition and serializes observer calls, so the observer must not
// call back into the tracker.
type StatusTracker struct {
	mu       sync.Mutex
	status   Status
	onChange func(Status)
	window   time.Duration
	revert   *time.Timer
}

// NewStatusTracker creates a tracker starting at idle. onChange may be nil.
func NewStatusTracker(onChange func(Status)) *StatusTracker {
	return &StatusTracker{
		status:   StatusIdle,
		onChange: onChange,
		window:   searchFailedDisplayWindow,
	}
}

// Set transitions to the given status and notifies the observer.
func (t *StatusTracker) Set(status Status) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = status
	if t.onChange != nil {
		t.onChange(status)
	}
}

// Fail raises search_failed and schedules the revert to idle. It is a display
// signal, not a fatal state; the turn keeps going.
func (t *StatusTracker) Fail() {
	if t == nil {
		return
	}
	t.Set(StatusSearchFailed)
	t.mu.Lock()
	defer t.mu.Unlock()
	t.revert = time.AfterFunc(t.window, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.status != StatusSearchFailed {
			return
		}
		t.status = StatusIdle
		if t.onChange != nil {
			t.onChange(StatusIdle)
		}
	})
}

// Stop detaches the observer and cancels a pending auto-revert. Transitions
// after Stop only mutate internal state. A streaming observer must be stopped
// before its writer goes away.
func (t *StatusTracker) Stop() {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onChange = nil
	if t.revert != nil {
		t.revert.Stop()
		t.revert = nil
	}
}

// Status returns the current status.
func (t *StatusTracker) Status() Status {
	if t == nil {
		return StatusIdle
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}
