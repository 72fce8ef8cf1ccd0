package mood

import (
	"testing"

	"github.com/panbanda/mood/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var override = []string{"Override"}

func methodNames(ms []models.MethodDeclaration) []string {
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.Name
	}
	return names
}

func fieldNames(fs []models.FieldDeclaration) []string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.Name()
	}
	return names
}

func TestPropagate_Chain(t *testing.T) {
	reg := registryOf(
		class("zoo", "Animal", "",
			[]models.MethodDeclaration{method("speak", []string{"public"}, nil), method("breathe", []string{"private"}, nil)},
			[]models.FieldDeclaration{field("age", "int", "private")}),
		class("zoo", "Dog", "zoo.Animal",
			[]models.MethodDeclaration{method("fetch", []string{"public"}, nil)},
			[]models.FieldDeclaration{field("breed", "String")}),
		class("zoo", "Puppy", "zoo.Dog", nil, nil),
	)
	require.NoError(t, BuildTree(reg))
	require.NoError(t, Propagate(reg, nil))

	dog := lookup(t, reg, "zoo.Dog")
	assert.Equal(t, []string{"speak", "breathe"}, methodNames(dog.InheritedMethods))
	assert.Equal(t, []string{"age"}, fieldNames(dog.InheritedFields))

	// Own members first, then what the parent itself inherited.
	puppy := lookup(t, reg, "zoo.Puppy")
	assert.Equal(t, []string{"fetch", "speak", "breathe"}, methodNames(puppy.InheritedMethods))
	assert.Equal(t, []string{"breed", "age"}, fieldNames(puppy.InheritedFields))

	assert.Empty(t, lookup(t, reg, "zoo.Animal").InheritedMethods)
}

func TestPropagate_OverrideSuppression(t *testing.T) {
	foo := method("foo", []string{"public"}, nil, param("x", "int"))
	fooOverride := method("foo", []string{"public"}, override, param("x", "int"))
	bar := method("bar", []string{"public"}, nil)

	reg := registryOf(
		class("p", "A", "", []models.MethodDeclaration{foo, bar}, nil),
		class("p", "B", "p.A", []models.MethodDeclaration{fooOverride}, nil),
		class("p", "C", "p.B", nil, nil),
	)
	require.NoError(t, BuildTree(reg))
	require.NoError(t, Propagate(reg, nil))

	b := lookup(t, reg, "p.B")
	require.Equal(t, []string{"foo", "bar"}, methodNames(b.InheritedMethods))

	var notOverridden []string
	for _, m := range b.InheritedMethods {
		if !MethodOverridden(m, b.Methods) {
			notOverridden = append(notOverridden, m.Name)
		}
	}
	assert.Equal(t, []string{"bar"}, notOverridden)

	// B's annotated foo is not forwarded; A's foo still reaches C through B.
	c := lookup(t, reg, "p.C")
	assert.Equal(t, []string{"foo", "bar"}, methodNames(c.InheritedMethods))
	assert.Empty(t, c.InheritedMethods[0].Annotations)

	counts := ClassCounts(b)
	assert.Equal(t, 1, counts.OverriddenMethods)
	assert.Equal(t, 1, counts.InheritedMethods)
}

func TestPropagate_CustomAnnotations(t *testing.T) {
	reg := registryOf(
		class("p", "A", "", []models.MethodDeclaration{method("run", nil, []string{"Replaces"})}, nil),
		class("p", "B", "p.A", nil, nil),
	)
	require.NoError(t, BuildTree(reg))

	require.NoError(t, Propagate(reg, []string{"Replaces"}))
	assert.Empty(t, lookup(t, reg, "p.B").InheritedMethods)

	require.NoError(t, Propagate(reg, nil))
	assert.Len(t, lookup(t, reg, "p.B").InheritedMethods, 1)
}

func TestPropagate_Idempotent(t *testing.T) {
	reg := registryOf(
		class("zoo", "Animal", "", []models.MethodDeclaration{method("speak", nil, nil)}, []models.FieldDeclaration{field("age", "int")}),
		class("zoo", "Dog", "Animal", nil, nil),
		class("zoo", "Puppy", "Dog", nil, nil),
	)

	_, err := Compute(reg, nil)
	require.NoError(t, err)
	puppy := lookup(t, reg, "zoo.Puppy")
	methods := methodNames(puppy.InheritedMethods)
	fields := fieldNames(puppy.InheritedFields)

	_, err = Compute(reg, nil)
	require.NoError(t, err)
	assert.Equal(t, methods, methodNames(puppy.InheritedMethods))
	assert.Equal(t, fields, fieldNames(puppy.InheritedFields))
	assert.Equal(t, 2, puppy.Depth)
	assert.Equal(t, []string{"zoo.Dog"}, lookup(t, reg, "zoo.Animal").Children)
}

func TestHasAnnotation(t *testing.T) {
	assert.True(t, HasAnnotation([]string{"Deprecated", "Override"}, DefaultOverrideAnnotations))
	assert.True(t, HasAnnotation([]string{"java.lang.Override"}, DefaultOverrideAnnotations))
	assert.False(t, HasAnnotation([]string{"Deprecated"}, DefaultOverrideAnnotations))
	assert.False(t, HasAnnotation(nil, DefaultOverrideAnnotations))
}
