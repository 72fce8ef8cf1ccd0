package output

import (
	"fmt"
	"strings"

	"github.com/panbanda/mood/internal/output"
	"github.com/panbanda/mood/pkg/analyzer/mood"
	"github.com/panbanda/mood/pkg/config"
)

// ReportOptions controls the text and markdown report of an analysis.
type ReportOptions struct {
	// Top limits the hierarchy table to the first N classes (0 = all).
	Top int
	// Sort is the order the classes were sorted in, named in the title of a
	// truncated hierarchy table.
	Sort       mood.SortOrder
	Thresholds config.ThresholdConfig
	Colored    bool
}

// NewReport builds the report for a. Structured formats render the full
// analysis instead of the tables.
func NewReport(a *mood.Analysis, opts ReportOptions) *output.Report {
	sections := []output.Renderable{
		MetricsTable(a),
		HierarchyTable(a, opts),
	}
	if len(a.Skipped) > 0 {
		sections = append(sections, SkippedSection(a))
	}
	return &output.Report{
		Title:    "MOOD Analysis",
		Sections: sections,
		Data:     a,
	}
}

// MetricsTable lists the five MOOD ratios with their numerator and denominator.
func MetricsTable(a *mood.Analysis) *output.Table {
	m := a.Metrics
	c := m.Counts
	rows := [][]string{
		metricRow("MHF", "Method Hiding Factor", m.MHF, c.PrivateMethods, c.PublicMethods+c.PrivateMethods),
		metricRow("AHF", "Attribute Hiding Factor", m.AHF, c.PrivateFields, c.PublicFields+c.PrivateFields),
		metricRow("MIF", "Method Inheritance Factor", m.MIF, c.InheritedMethods, c.AvailableMethods),
		metricRow("AIF", "Attribute Inheritance Factor", m.AIF, c.InheritedFields, c.AvailableFields),
		metricRow("POF", "Polymorphism Factor", m.POF, c.OverriddenMethods, c.OverrideOpportunities),
	}
	return output.NewTable(
		"MOOD Metrics",
		[]string{"Metric", "Name", "Value", "Ratio"},
		rows,
		nil,
		m,
	)
}

func metricRow(short, name string, value *float64, num, den int) []string {
	return []string{short, name, FormatRatio(value), fmt.Sprintf("%d/%d", num, den)}
}

// FormatRatio renders a ratio with four decimals, or "n/a" when undefined.
func FormatRatio(r *float64) string {
	if r == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", *r)
}

// HierarchyTable lists classes in the order of a.Classes, truncated to
// opts.Top, with DIT and NOC graded against the thresholds.
func HierarchyTable(a *mood.Analysis, opts ReportOptions) *output.Table {
	classes := a.Classes
	if opts.Top > 0 && len(classes) > opts.Top {
		classes = classes[:opts.Top]
	}
	th := opts.Thresholds

	rows := make([][]string, 0, len(classes))
	for _, cls := range classes {
		dit := output.Grade(cls.DIT, th.DITWarn, th.DITCritical)
		noc := output.Grade(cls.NOC, th.NOCWarn, th.NOCCritical)
		rows = append(rows, []string{
			cls.FQN,
			parentLabel(cls),
			output.LevelColor(noc, fmt.Sprintf("%d", cls.NOC), opts.Colored),
			fmt.Sprintf("%d", cls.Descendants),
			output.LevelColor(dit, fmt.Sprintf("%d", cls.DIT), opts.Colored),
			fmt.Sprintf("%d", cls.OwnMethods),
			fmt.Sprintf("%d", cls.OwnFields),
			fmt.Sprintf("%d", cls.InheritedMethods),
			fmt.Sprintf("%d", cls.InheritedFields),
		})
	}

	title := "Class Hierarchy"
	if len(classes) < len(a.Classes) {
		order := opts.Sort
		if order == "" {
			order = mood.SortDescendants
		}
		title = fmt.Sprintf("Class Hierarchy (Top %d by %s)", len(classes), order)
	}

	s := a.Summary
	return output.NewTable(
		title,
		[]string{"Class", "Parent", "NOC", "Descendants", "DIT", "Methods", "Fields", "Inh. Methods", "Inh. Fields"},
		rows,
		[]string{
			fmt.Sprintf("Total Classes: %d", s.TotalClasses),
			fmt.Sprintf("Roots: %d", s.Roots),
			fmt.Sprintf("Unresolved Parents: %d", s.UnresolvedParents),
			fmt.Sprintf("Max DIT: %d", s.MaxDIT),
			fmt.Sprintf("Skipped Files: %d", s.SkippedFiles),
		},
		a.Classes,
	)
}

func parentLabel(cls mood.ClassStats) string {
	switch {
	case cls.ParentResolved:
		return cls.Parent
	case cls.DeclaredParent != "":
		return cls.DeclaredParent + " (unresolved)"
	default:
		return "-"
	}
}

// SkippedSection lists the files left out of the analysis with the reason.
func SkippedSection(a *mood.Analysis) *output.Section {
	var b strings.Builder
	for i, f := range a.Skipped {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %s", f.Path, f.Reason)
	}
	return &output.Section{
		Title:   "Skipped Files",
		Content: b.String(),
		Data:    a.Skipped,
	}
}
