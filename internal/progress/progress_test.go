package progress

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/panbanda/mood/pkg/analyzer"
)

func TestTrackerTick(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewTrackerTo(&buf, "Parsing", 3)

	tracker.Tick()
	tracker.Tick()

	if got := tracker.Current(); got != 2 {
		t.Errorf("Current() = %d, want 2", got)
	}
	tracker.FinishSuccess()
}

func TestTrackerUpdateFromAnalyzer(t *testing.T) {
	var buf bytes.Buffer
	bar := NewTrackerTo(&buf, "Parsing", 1)

	tracker := analyzer.NewTracker(bar.Update)
	tracker.Add(4)
	tracker.Tick("A.java")
	tracker.Fail("B.java")
	tracker.Tick("C.java")

	if got := bar.Current(); got != 3 {
		t.Errorf("Current() = %d, want 3", got)
	}
	bar.FinishSuccess()
}

func TestTrackerFinishMessages(t *testing.T) {
	tests := []struct {
		name   string
		finish func(*Tracker)
		want   string
	}{
		{"skipped", func(tr *Tracker) { tr.FinishSkipped("no java files") }, "Parsing skipped (no java files)"},
		{"error", func(tr *Tracker) { tr.FinishError(errors.New("boom")) }, "Parsing error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.finish(NewTrackerTo(&buf, "Parsing", 1))
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}
