package mood

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Counts holds the running totals the MOOD ratios are computed from.
type Counts struct {
	PublicMethods  int `json:"public_methods" toon:"public_methods" yaml:"public_methods"`
	PrivateMethods int `json:"private_methods" toon:"private_methods" yaml:"private_methods"`
	PublicFields   int `json:"public_fields" toon:"public_fields" yaml:"public_fields"`
	PrivateFields  int `json:"private_fields" toon:"private_fields" yaml:"private_fields"`

	// Inherited members for which the class declares no matching member.
	InheritedMethods int `json:"inherited_methods" toon:"inherited_methods" yaml:"inherited_methods"`
	InheritedFields  int `json:"inherited_fields" toon:"inherited_fields" yaml:"inherited_fields"`

	// Inherited methods the class redeclares (POF numerator).
	OverriddenMethods int `json:"overridden_methods" toon:"overridden_methods" yaml:"overridden_methods"`

	// Own members plus every inherited member (MIF and AIF denominators).
	AvailableMethods int `json:"available_methods" toon:"available_methods" yaml:"available_methods"`
	AvailableFields  int `json:"available_fields" toon:"available_fields" yaml:"available_fields"`

	// Sum over classes of descendants x own methods (POF denominator).
	OverrideOpportunities int `json:"override_opportunities" toon:"override_opportunities" yaml:"override_opportunities"`
}

func (c *Counts) add(o Counts) {
	c.PublicMethods += o.PublicMethods
	c.PrivateMethods += o.PrivateMethods
	c.PublicFields += o.PublicFields
	c.PrivateFields += o.PrivateFields
	c.InheritedMethods += o.InheritedMethods
	c.InheritedFields += o.InheritedFields
	c.OverriddenMethods += o.OverriddenMethods
	c.AvailableMethods += o.AvailableMethods
	c.AvailableFields += o.AvailableFields
	c.OverrideOpportunities += o.OverrideOpportunities
}

// Metrics are the five MOOD ratios. A nil ratio is undefined because its
// denominator is zero; it serializes as null.
type Metrics struct {
	MHF    *float64 `json:"mhf" toon:"mhf" yaml:"mhf"`
	AHF    *float64 `json:"ahf" toon:"ahf" yaml:"ahf"`
	MIF    *float64 `json:"mif" toon:"mif" yaml:"mif"`
	AIF    *float64 `json:"aif" toon:"aif" yaml:"aif"`
	POF    *float64 `json:"pof" toon:"pof" yaml:"pof"`
	Counts Counts   `json:"counts" toon:"counts" yaml:"counts"`
}

// ClassStats is the per-class view of the inheritance graph.
type ClassStats struct {
	FQN            string `json:"fqn" toon:"fqn" yaml:"fqn"`
	Name           string `json:"name" toon:"name" yaml:"name"`
	Package        string `json:"package,omitempty" toon:"package,omitempty" yaml:"package,omitempty"`
	Path           string `json:"path" toon:"path" yaml:"path"`
	DeclaredParent string `json:"declared_parent,omitempty" toon:"declared_parent,omitempty" yaml:"declared_parent,omitempty"`
	Parent         string `json:"parent,omitempty" toon:"parent,omitempty" yaml:"parent,omitempty"`
	ParentResolved bool   `json:"parent_resolved" toon:"parent_resolved" yaml:"parent_resolved"`

	// Number of Children (direct subclasses)
	NOC      int      `json:"noc" toon:"noc" yaml:"noc"`
	Children []string `json:"children,omitempty" toon:"children,omitempty" yaml:"children,omitempty"`

	// Number of transitive subclasses
	Descendants     int      `json:"descendants" toon:"descendants" yaml:"descendants"`
	DescendantNames []string `json:"descendant_names,omitempty" toon:"descendant_names,omitempty" yaml:"descendant_names,omitempty"`

	// Depth of Inheritance Tree
	DIT int `json:"dit" toon:"dit" yaml:"dit"`

	OwnMethods        int `json:"own_methods" toon:"own_methods" yaml:"own_methods"`
	OwnFields         int `json:"own_fields" toon:"own_fields" yaml:"own_fields"`
	InheritedMethods  int `json:"inherited_methods" toon:"inherited_methods" yaml:"inherited_methods"`
	InheritedFields   int `json:"inherited_fields" toon:"inherited_fields" yaml:"inherited_fields"`
	OverriddenMethods int `json:"overridden_methods" toon:"overridden_methods" yaml:"overridden_methods"`
}

// SkippedFile records a file that contributed no declarations.
type SkippedFile struct {
	Path   string `json:"path" toon:"path" yaml:"path"`
	Reason string `json:"reason" toon:"reason" yaml:"reason"`
}

// Summary provides corpus-level statistics.
type Summary struct {
	TotalFiles        int    `json:"total_files" toon:"total_files" yaml:"total_files"`
	ParsedFiles       int    `json:"parsed_files" toon:"parsed_files" yaml:"parsed_files"`
	SkippedFiles      int    `json:"skipped_files" toon:"skipped_files" yaml:"skipped_files"`
	TotalClasses      int    `json:"total_classes" toon:"total_classes" yaml:"total_classes"`
	Roots             int    `json:"roots" toon:"roots" yaml:"roots"`
	UnresolvedParents int    `json:"unresolved_parents" toon:"unresolved_parents" yaml:"unresolved_parents"`
	DuplicateClasses  int    `json:"duplicate_classes" toon:"duplicate_classes" yaml:"duplicate_classes"`
	MaxDIT            int    `json:"max_dit" toon:"max_dit" yaml:"max_dit"`
	MaxNOC            int    `json:"max_noc" toon:"max_noc" yaml:"max_noc"`
	Fingerprint       string `json:"fingerprint,omitempty" toon:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
}

// Analysis represents the full MOOD analysis result.
type Analysis struct {
	GeneratedAt time.Time     `json:"generated_at" toon:"generated_at" yaml:"generated_at"`
	Metrics     Metrics       `json:"metrics" toon:"metrics" yaml:"metrics"`
	Classes     []ClassStats  `json:"classes" toon:"classes" yaml:"classes"`
	Summary     Summary       `json:"summary" toon:"summary" yaml:"summary"`
	Skipped     []SkippedFile `json:"skipped,omitempty" toon:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// CalculateSummary fills the class-derived summary fields.
func (a *Analysis) CalculateSummary() {
	a.Summary.TotalClasses = len(a.Classes)
	a.Summary.Roots = 0
	a.Summary.UnresolvedParents = 0
	a.Summary.MaxDIT = 0
	a.Summary.MaxNOC = 0

	for _, cls := range a.Classes {
		if !cls.ParentResolved {
			a.Summary.Roots++
			if cls.DeclaredParent != "" {
				a.Summary.UnresolvedParents++
			}
		}
		a.Summary.MaxDIT = max(a.Summary.MaxDIT, cls.DIT)
		a.Summary.MaxNOC = max(a.Summary.MaxNOC, cls.NOC)
	}
}

// SortOrder names an ordering of Analysis.Classes.
type SortOrder string

// Sort orders accepted by Analysis.Sort.
const (
	SortDescendants SortOrder = "descendants"
	SortDIT         SortOrder = "dit"
	SortNOC         SortOrder = "noc"
	SortName        SortOrder = "name"
)

// SortOrders lists every sort order, default first.
var SortOrders = []SortOrder{SortDescendants, SortDIT, SortNOC, SortName}

// ParseSortOrder parses a case-insensitive sort order. An empty string
// selects SortDescendants.
func ParseSortOrder(s string) (SortOrder, error) {
	if s == "" {
		return SortDescendants, nil
	}
	order := SortOrder(strings.ToLower(s))
	if !slices.Contains(SortOrders, order) {
		names := make([]string, len(SortOrders))
		for i, o := range SortOrders {
			names[i] = string(o)
		}
		return "", fmt.Errorf("unknown sort order %q (want one of: %s)", s, strings.Join(names, ", "))
	}
	return order, nil
}

// Sort orders classes by order. Numeric orders put the largest first and
// break ties by name.
func (a *Analysis) Sort(order SortOrder) {
	switch order {
	case SortDIT:
		a.SortByDIT()
	case SortNOC:
		a.SortByNOC()
	case SortName:
		a.SortByName()
	default:
		a.SortByDescendants()
	}
}

// SortByDescendants sorts classes by descendant count, most first.
func (a *Analysis) SortByDescendants() {
	a.sortBy(func(c ClassStats) int { return c.Descendants })
}

// SortByDIT sorts classes by DIT in descending order (deepest inheritance first).
func (a *Analysis) SortByDIT() {
	a.sortBy(func(c ClassStats) int { return c.DIT })
}

// SortByNOC sorts classes by NOC in descending order.
func (a *Analysis) SortByNOC() {
	a.sortBy(func(c ClassStats) int { return c.NOC })
}

// SortByName sorts classes by fully-qualified name.
func (a *Analysis) SortByName() {
	slices.SortStableFunc(a.Classes, func(x, y ClassStats) int {
		return cmp.Compare(x.FQN, y.FQN)
	})
}

func (a *Analysis) sortBy(key func(ClassStats) int) {
	slices.SortStableFunc(a.Classes, func(x, y ClassStats) int {
		if c := cmp.Compare(key(y), key(x)); c != 0 {
			return c
		}
		return cmp.Compare(x.FQN, y.FQN)
	})
}
