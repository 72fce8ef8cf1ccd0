package mood

import (
	"slices"
	"strings"
)

// QualifyOutcome describes what QualifyParent did with a parent reference.
type QualifyOutcome string

const (
	// QualifyKept means the reference needed no import lookup: it is empty,
	// already dotted, or names a type declared in the same file.
	QualifyKept QualifyOutcome = "kept"
	// QualifyImported means exactly one import supplied the qualified name.
	QualifyImported QualifyOutcome = "imported"
	// QualifyUnresolved means no import names the parent.
	QualifyUnresolved QualifyOutcome = "unresolved"
	// QualifyAmbiguous means several distinct imports name the parent.
	QualifyAmbiguous QualifyOutcome = "ambiguous"
)

func (q QualifyOutcome) String() string { return string(q) }

// Qualification is the result of QualifyParent. Name is the reference to
// register; Candidates lists the matching imports when the outcome is
// ambiguous.
type Qualification struct {
	Name       string
	Outcome    QualifyOutcome
	Candidates []string
}

// QualifyParent is the best-effort import qualifier applied at ingestion.
// A simple parent name that is not a type of the same file is looked up among
// the file's imports: an import whose last segment equals the name supplies
// the qualified name. Unresolved and ambiguous references are returned as
// written so that the package-relative resolver can still try them.
func QualifyParent(parent string, typeNames, imports []string) Qualification {
	if parent == "" || strings.Contains(parent, ".") || slices.Contains(typeNames, parent) {
		return Qualification{Name: parent, Outcome: QualifyKept}
	}

	suffix := "." + parent
	var candidates []string
	for _, imp := range imports {
		if strings.HasSuffix(imp, suffix) && !slices.Contains(candidates, imp) {
			candidates = append(candidates, imp)
		}
	}

	switch len(candidates) {
	case 0:
		return Qualification{Name: parent, Outcome: QualifyUnresolved}
	case 1:
		return Qualification{Name: candidates[0], Outcome: QualifyImported}
	default:
		return Qualification{Name: parent, Outcome: QualifyAmbiguous, Candidates: candidates}
	}
}
