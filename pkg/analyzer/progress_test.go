package analyzer

import (
	"context"
	"sync"
	"testing"
)

func TestTracker_AddAndTick(t *testing.T) {
	type call struct {
		current, total int
		path           string
	}
	var calls []call
	var mu sync.Mutex

	tracker := NewTracker(func(current, total int, path string) {
		mu.Lock()
		calls = append(calls, call{current, total, path})
		mu.Unlock()
	})

	tracker.Add(3)
	tracker.Tick("A.java")
	tracker.Fail("B.java")
	tracker.Tick("C.java")

	if got := tracker.Total(); got != 3 {
		t.Errorf("Total() = %d, want 3", got)
	}
	if got := tracker.Current(); got != 3 {
		t.Errorf("Current() = %d, want 3", got)
	}
	if got := tracker.Failed(); got != 1 {
		t.Errorf("Failed() = %d, want 1", got)
	}

	if len(calls) != 3 {
		t.Fatalf("expected 3 callback calls, got %d", len(calls))
	}
	if calls[1] != (call{2, 3, "B.java"}) {
		t.Errorf("call 2: got %+v, want {2 3 B.java}", calls[1])
	}
}

func TestTracker_SetTotal(t *testing.T) {
	tracker := NewTracker(nil)
	tracker.Add(5)
	if got := tracker.Total(); got != 5 {
		t.Errorf("after Add(5): Total() = %d, want 5", got)
	}

	tracker.SetTotal(10)
	if got := tracker.Total(); got != 10 {
		t.Errorf("after SetTotal(10): Total() = %d, want 10", got)
	}
}

func TestTracker_ConcurrentTicks(t *testing.T) {
	tracker := NewTracker(nil)
	tracker.Add(100)

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Tick("Dog.java")
		}()
	}
	wg.Wait()

	if got := tracker.Current(); got != 100 {
		t.Errorf("Current() = %d, want 100", got)
	}
}

func TestTrackerContext(t *testing.T) {
	if TrackerFromContext(context.Background()) != nil {
		t.Error("TrackerFromContext on empty context should be nil")
	}

	tracker := NewTracker(nil)
	ctx := WithTracker(context.Background(), tracker)
	if TrackerFromContext(ctx) != tracker {
		t.Error("TrackerFromContext did not return the stored tracker")
	}
}
