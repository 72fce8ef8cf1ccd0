package mood

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zoo builds Animal <- Mammal <- {Dog, Cat}, Animal <- Bird, plus a
// standalone Rock and a Ghost whose parent is missing.
func zoo() *Registry {
	return registryOf(
		class("zoo", "Animal", "", nil, nil),
		class("zoo", "Mammal", "zoo.Animal", nil, nil),
		class("zoo", "Dog", "zoo.Mammal", nil, nil),
		class("zoo", "Cat", "zoo.Mammal", nil, nil),
		class("zoo", "Bird", "zoo.Animal", nil, nil),
		class("zoo", "Rock", "", nil, nil),
		class("zoo", "Ghost", "Spirit", nil, nil),
	)
}

func lookup(t *testing.T, reg *Registry, fqn string) *ClassData {
	t.Helper()
	c, ok := reg.Lookup(fqn)
	require.True(t, ok, "class %s not registered", fqn)
	return c
}

func TestBuildTree(t *testing.T) {
	reg := zoo()
	require.NoError(t, BuildTree(reg))

	animal := lookup(t, reg, "zoo.Animal")
	assert.Equal(t, []string{"zoo.Mammal", "zoo.Bird"}, animal.Children)
	assert.ElementsMatch(t, []string{"zoo.Mammal", "zoo.Dog", "zoo.Cat", "zoo.Bird"}, reg.DescendantNames(animal))
	assert.Equal(t, 0, animal.Depth)

	mammal := lookup(t, reg, "zoo.Mammal")
	assert.Equal(t, []string{"zoo.Dog", "zoo.Cat"}, mammal.Children)
	assert.Equal(t, []string{"zoo.Dog", "zoo.Cat"}, reg.DescendantNames(mammal))
	assert.Equal(t, 1, mammal.Depth)

	assert.Equal(t, 2, lookup(t, reg, "zoo.Dog").Depth)
	assert.Equal(t, 1, lookup(t, reg, "zoo.Bird").Depth)
	assert.Equal(t, 0, lookup(t, reg, "zoo.Rock").Depth)
	assert.Equal(t, 0, lookup(t, reg, "zoo.Ghost").Depth)

	var roots []string
	for _, r := range Roots(reg) {
		roots = append(roots, r.FQN)
	}
	assert.Equal(t, []string{"zoo.Animal", "zoo.Rock", "zoo.Ghost"}, roots)
}

func TestBuildTree_DepthProperty(t *testing.T) {
	reg := zoo()
	require.NoError(t, BuildTree(reg))

	for _, c := range reg.Classes() {
		parent, ok := reg.ParentOf(c)
		if !ok {
			assert.Equal(t, 0, c.Depth, c.FQN)
			continue
		}
		assert.Equal(t, parent.Depth+1, c.Depth, c.FQN)
	}
}

func TestBuildTree_DescendantProperty(t *testing.T) {
	reg := zoo()
	require.NoError(t, BuildTree(reg))

	for _, c := range reg.Classes() {
		ancestors := map[uint32]bool{}
		for cur := c; ; {
			p, ok := reg.ParentOf(cur)
			if !ok {
				break
			}
			ancestors[p.ID] = true
			cur = p
		}
		for _, other := range reg.Classes() {
			assert.Equal(t, ancestors[other.ID], other.Descendants.Contains(c.ID),
				"%s in descendants of %s", c.FQN, other.FQN)
		}
	}
}

func TestBuildTree_Idempotent(t *testing.T) {
	reg := zoo()
	require.NoError(t, BuildTree(reg))
	animal := lookup(t, reg, "zoo.Animal")
	children := append([]string(nil), animal.Children...)
	descendants := animal.Descendants.GetCardinality()

	require.NoError(t, BuildTree(reg))
	assert.Equal(t, children, animal.Children)
	assert.Equal(t, descendants, animal.Descendants.GetCardinality())
	assert.Equal(t, 2, lookup(t, reg, "zoo.Cat").Depth)
}

func TestBuildTree_Cycle(t *testing.T) {
	reg := registryOf(
		class("zoo", "A", "zoo.C", nil, nil),
		class("zoo", "B", "zoo.A", nil, nil),
		class("zoo", "C", "zoo.B", nil, nil),
		class("zoo", "D", "", nil, nil),
	)

	err := BuildTree(reg)
	var cycle *CycleError
	require.True(t, errors.As(err, &cycle))
	assert.Equal(t, []string{"zoo.A", "zoo.B", "zoo.C"}, cycle.Classes)
	assert.Contains(t, err.Error(), "zoo.A -> zoo.B -> zoo.C")
}

func TestBuildTree_SelfParent(t *testing.T) {
	reg := registryOf(class("zoo", "Ouroboros", "zoo.Ouroboros", nil, nil))

	var cycle *CycleError
	require.ErrorAs(t, BuildTree(reg), &cycle)
	assert.Equal(t, []string{"zoo.Ouroboros"}, cycle.Classes)
}
