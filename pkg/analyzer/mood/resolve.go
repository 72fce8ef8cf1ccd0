package mood

import "strings"

// IsQualified is the resolver's "already qualified" test. A reference that
// contains a dot is assumed to be fully qualified, and a reference that is
// already a registry key needs no rewriting. The dot test is a heuristic: a
// dotted reference that names no registered class is left unresolved rather
// than re-qualified.
func IsQualified(reg *Registry, ref string) bool {
	return strings.Contains(ref, ".") || reg.Has(ref)
}

// ResolveParents qualifies simple parent references against the declaring
// class's own package. When package + "." + parent is a registry key the
// reference is rewritten to it; otherwise it is left alone and the class will
// be treated as a root. It returns the number of references rewritten.
//
// Running it again is a no-op because rewritten references are dotted.
func ResolveParents(reg *Registry) int {
	rewritten := 0
	for _, c := range reg.Classes() {
		if c.Parent == "" || c.Package == "" || IsQualified(reg, c.Parent) {
			continue
		}
		candidate := c.Package + "." + c.Parent
		if reg.Has(candidate) {
			c.Parent = candidate
			rewritten++
		}
	}
	return rewritten
}
