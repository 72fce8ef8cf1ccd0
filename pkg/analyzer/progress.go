package analyzer

import (
	"context"
	"sync/atomic"
)

// ProgressFunc is called after each file completes. current counts finished
// files (successful or failed), total is the number expected.
type ProgressFunc func(current, total int, path string)

// Tracker counts processed and failed files. It is safe for concurrent use.
type Tracker struct {
	total    atomic.Int64
	current  atomic.Int64
	failed   atomic.Int64
	callback ProgressFunc
}

// NewTracker creates a tracker that invokes callback on every Tick and Fail.
// callback may be nil.
func NewTracker(callback ProgressFunc) *Tracker {
	return &Tracker{callback: callback}
}

// Add grows the expected total by n.
func (t *Tracker) Add(n int) {
	t.total.Add(int64(n))
}

// SetTotal replaces the expected total.
func (t *Tracker) SetTotal(n int) {
	t.total.Store(int64(n))
}

// Tick marks path as processed.
func (t *Tracker) Tick(path string) {
	t.advance(path)
}

// Fail marks path as processed without a usable result.
func (t *Tracker) Fail(path string) {
	t.failed.Add(1)
	t.advance(path)
}

func (t *Tracker) advance(path string) {
	current := int(t.current.Add(1))
	if t.callback != nil {
		t.callback(current, int(t.total.Load()), path)
	}
}

// Current returns the number of files processed so far.
func (t *Tracker) Current() int {
	return int(t.current.Load())
}

// Failed returns the number of files that failed.
func (t *Tracker) Failed() int {
	return int(t.failed.Load())
}

// Total returns the expected total.
func (t *Tracker) Total() int {
	return int(t.total.Load())
}

type trackerKey struct{}

// WithTracker returns a context that carries a progress tracker.
func WithTracker(ctx context.Context, t *Tracker) context.Context {
	return context.WithValue(ctx, trackerKey{}, t)
}

// TrackerFromContext extracts the progress tracker from the context.
// Returns nil if no tracker was set.
func TrackerFromContext(ctx context.Context) *Tracker {
	if t, ok := ctx.Value(trackerKey{}).(*Tracker); ok {
		return t
	}
	return nil
}
