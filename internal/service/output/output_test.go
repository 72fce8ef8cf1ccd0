package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/panbanda/mood/internal/output"
	"github.com/panbanda/mood/pkg/analyzer/mood"
	"github.com/panbanda/mood/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func sampleAnalysis() *mood.Analysis {
	return &mood.Analysis{
		Metrics: mood.Metrics{
			MHF: ptr(0.25),
			AHF: nil,
			MIF: ptr(0.5),
			AIF: ptr(0),
			POF: ptr(0.25),
			Counts: mood.Counts{
				PublicMethods:         3,
				PrivateMethods:        1,
				InheritedMethods:      3,
				AvailableMethods:      6,
				OverriddenMethods:     1,
				OverrideOpportunities: 4,
			},
		},
		Classes: []mood.ClassStats{
			{FQN: "zoo.Animal", Name: "Animal", NOC: 6, Descendants: 6, DIT: 0, OwnMethods: 2},
			{FQN: "zoo.Dog", Name: "Dog", Parent: "zoo.Animal", DeclaredParent: "Animal", ParentResolved: true, DIT: 5, InheritedMethods: 2},
			{FQN: "zoo.Ghost", Name: "Ghost", DeclaredParent: "Spirit"},
		},
		Summary: mood.Summary{
			TotalClasses:      3,
			Roots:             2,
			UnresolvedParents: 1,
			MaxDIT:            5,
			SkippedFiles:      1,
		},
		Skipped: []mood.SkippedFile{{Path: "zoo/Broken.java", Reason: "syntax error at line 3"}},
	}
}

func thresholds() config.ThresholdConfig {
	return config.DefaultConfig().Thresholds
}

func TestFormatRatio(t *testing.T) {
	tests := []struct {
		in   *float64
		want string
	}{
		{nil, "n/a"},
		{ptr(0), "0.0000"},
		{ptr(0.5), "0.5000"},
		{ptr(1), "1.0000"},
		{ptr(1.0 / 3), "0.3333"},
	}
	for _, tt := range tests {
		if got := FormatRatio(tt.in); got != tt.want {
			t.Errorf("FormatRatio() = %q, want %q", got, tt.want)
		}
	}
}

func TestMetricsTable(t *testing.T) {
	table := MetricsTable(sampleAnalysis())

	require.Len(t, table.Rows, 5)
	assert.Equal(t, []string{"MHF", "Method Hiding Factor", "0.2500", "1/4"}, table.Rows[0])
	assert.Equal(t, []string{"AHF", "Attribute Hiding Factor", "n/a", "0/0"}, table.Rows[1])
	assert.Equal(t, []string{"MIF", "Method Inheritance Factor", "0.5000", "3/6"}, table.Rows[2])
	assert.Equal(t, []string{"POF", "Polymorphism Factor", "0.2500", "1/4"}, table.Rows[4])
}

func TestHierarchyTable(t *testing.T) {
	a := sampleAnalysis()

	t.Run("all classes", func(t *testing.T) {
		table := HierarchyTable(a, ReportOptions{Thresholds: thresholds()})
		require.Len(t, table.Rows, 3)
		assert.Equal(t, "Class Hierarchy", table.Title)
		assert.Equal(t, "-", table.Rows[0][1])
		assert.Equal(t, "zoo.Animal", table.Rows[1][1])
		assert.Equal(t, "Spirit (unresolved)", table.Rows[2][1])
		assert.Contains(t, table.Footer, "Unresolved Parents: 1")
		assert.Contains(t, table.Footer, "Max DIT: 5")
	})

	t.Run("top", func(t *testing.T) {
		table := HierarchyTable(a, ReportOptions{Top: 2, Thresholds: thresholds()})
		assert.Len(t, table.Rows, 2)
		assert.Equal(t, "Class Hierarchy (Top 2 by descendants)", table.Title)

		table = HierarchyTable(a, ReportOptions{Top: 2, Sort: mood.SortDIT, Thresholds: thresholds()})
		assert.Equal(t, "Class Hierarchy (Top 2 by dit)", table.Title)
	})

	t.Run("threshold colors", func(t *testing.T) {
		table := HierarchyTable(a, ReportOptions{Thresholds: thresholds(), Colored: true})
		// NOC 6 and DIT 5 both reach the critical threshold.
		assert.Contains(t, table.Rows[0][2], "\x1b[")
		assert.Equal(t, "6", output.StripANSI(table.Rows[0][2]))
		assert.Contains(t, table.Rows[1][4], "\x1b[")
		assert.Equal(t, "0", table.Rows[0][4])
	})
}

func TestNewReport(t *testing.T) {
	a := sampleAnalysis()
	report := NewReport(a, ReportOptions{Thresholds: thresholds()})

	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, output.NewWriterFormatter(output.FormatMarkdown, &buf, false).Output(report))
		out := buf.String()
		for _, want := range []string{
			"# MOOD Analysis",
			"## MOOD Metrics",
			"## Class Hierarchy",
			"## Skipped Files",
			"zoo/Broken.java: syntax error at line 3",
			"| AHF | Attribute Hiding Factor | n/a | 0/0 |",
		} {
			assert.Contains(t, out, want)
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, output.NewWriterFormatter(output.FormatText, &buf, false).Output(report))
		out := buf.String()
		assert.Contains(t, out, "MOOD Analysis")
		assert.Contains(t, out, "zoo.Ghost")
		assert.False(t, strings.Contains(out, "\x1b["), "uncolored text should not contain escapes")
	})

	t.Run("json emits analysis", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, output.NewWriterFormatter(output.FormatJSON, &buf, false).Output(report))

		var decoded mood.Analysis
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Len(t, decoded.Classes, 3)
		assert.Nil(t, decoded.Metrics.AHF)
		require.NotNil(t, decoded.Metrics.MIF)
		assert.InDelta(t, 0.5, *decoded.Metrics.MIF, 1e-9)
	})

	t.Run("no skipped section", func(t *testing.T) {
		clean := sampleAnalysis()
		clean.Skipped = nil
		assert.Len(t, NewReport(clean, ReportOptions{}).Sections, 2)
	})
}
