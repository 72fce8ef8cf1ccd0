package mood

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// BuildTree derives direct children, descendant sets and inheritance depth
// from the resolved parent links. Derived state from an earlier call is
// discarded first. It returns a *CycleError if the parent links are cyclic.
func BuildTree(reg *Registry) error {
	for _, c := range reg.Classes() {
		c.Children = nil
		c.Descendants = roaring.New()
		c.Depth = 0
	}

	if err := checkCycles(reg); err != nil {
		return err
	}

	for _, c := range reg.Classes() {
		parent, ok := reg.ParentOf(c)
		if !ok {
			continue
		}
		parent.Children = append(parent.Children, c.FQN)

		depth := 0
		for cur := c; ; {
			p, ok := reg.ParentOf(cur)
			if !ok {
				break
			}
			p.Descendants.Add(c.ID)
			depth++
			cur = p
		}
		c.Depth = depth
	}

	return nil
}

// checkCycles looks for strongly connected components in the child -> parent
// graph. Every class has at most one parent, so any component with more than
// one member, or a class naming itself, is an inheritance cycle.
func checkCycles(reg *Registry) error {
	g := simple.NewDirectedGraph()
	for _, c := range reg.Classes() {
		g.AddNode(simple.Node(c.ID))
	}

	for _, c := range reg.Classes() {
		parent, ok := reg.ParentOf(c)
		if !ok {
			continue
		}
		if parent.ID == c.ID {
			return &CycleError{Classes: []string{c.FQN}}
		}
		g.SetEdge(simple.Edge{F: simple.Node(c.ID), T: simple.Node(parent.ID)})
	}

	for _, component := range topo.TarjanSCC(g) {
		if len(component) < 2 {
			continue
		}
		ids := make([]int64, len(component))
		for i, n := range component {
			ids[i] = n.ID()
		}
		slices.Sort(ids)
		names := make([]string, len(ids))
		for i, id := range ids {
			names[i] = reg.ByID(uint32(id)).FQN
		}
		return &CycleError{Classes: names}
	}

	return nil
}

// Roots returns every class without a resolved parent, in registration order.
func Roots(reg *Registry) []*ClassData {
	var roots []*ClassData
	for _, c := range reg.Classes() {
		if _, ok := reg.ParentOf(c); !ok {
			roots = append(roots, c)
		}
	}
	return roots
}
