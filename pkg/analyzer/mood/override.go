package mood

import (
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/panbanda/mood/pkg/models"
)

// MethodsMatch reports whether two methods have the same name and the same
// parameter list, compared pairwise by parameter name and base type name.
// Return types and modifiers are not compared.
func MethodsMatch(a, b models.MethodDeclaration) bool {
	if a.Name != b.Name || len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if a.Params[i].Name != b.Params[i].Name || a.Params[i].Type.Name != b.Params[i].Type.Name {
			return false
		}
	}
	return true
}

// FieldsMatch reports whether two field declarations share their first
// declared name and have structurally equal declared types.
func FieldsMatch(a, b models.FieldDeclaration) bool {
	return a.Name() == b.Name() && a.Type.Equal(b.Type)
}

// IsPrivate reports whether a modifier set marks a member private. Every
// other visibility, including package-private and protected, counts as public.
func IsPrivate(modifiers []string) bool {
	return slices.Contains(modifiers, "private")
}

// MethodOverridden reports whether some method in own matches m.
func MethodOverridden(m models.MethodDeclaration, own []models.MethodDeclaration) bool {
	return slices.ContainsFunc(own, func(o models.MethodDeclaration) bool { return MethodsMatch(m, o) })
}

// FieldOverridden reports whether some field in own matches f.
func FieldOverridden(f models.FieldDeclaration, own []models.FieldDeclaration) bool {
	return slices.ContainsFunc(own, func(o models.FieldDeclaration) bool { return FieldsMatch(f, o) })
}

// methodIndex buckets a class's own methods by a hash of their match key so
// that classifying long inherited lists stays linear. Bucket hits are
// confirmed with MethodsMatch.
type methodIndex map[uint64][]models.MethodDeclaration

func newMethodIndex(own []models.MethodDeclaration) methodIndex {
	idx := make(methodIndex, len(own))
	for _, m := range own {
		k := methodKey(m)
		idx[k] = append(idx[k], m)
	}
	return idx
}

func (idx methodIndex) overrides(m models.MethodDeclaration) bool {
	return MethodOverridden(m, idx[methodKey(m)])
}

func methodKey(m models.MethodDeclaration) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(m.Name)
	for _, p := range m.Params {
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(p.Name)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(p.Type.Name)
	}
	return d.Sum64()
}

type fieldIndex map[uint64][]models.FieldDeclaration

func newFieldIndex(own []models.FieldDeclaration) fieldIndex {
	idx := make(fieldIndex, len(own))
	for _, f := range own {
		k := fieldKey(f)
		idx[k] = append(idx[k], f)
	}
	return idx
}

func (idx fieldIndex) overrides(f models.FieldDeclaration) bool {
	return FieldOverridden(f, idx[fieldKey(f)])
}

func fieldKey(f models.FieldDeclaration) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(f.Name())
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(f.Type.String())
	return d.Sum64()
}
