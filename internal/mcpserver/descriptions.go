package mcpserver

// Tool descriptions with interpretation guidance for LLMs.

func describeMood() string {
	return `Computes the MOOD object-oriented design metrics and inheritance tree statistics for the Java classes under a directory.

USE WHEN:
- Judging how a Java codebase uses encapsulation and inheritance
- Finding deep or wide class hierarchies before a refactoring
- Comparing design quality between modules or over time

INTERPRETING RESULTS:
- MHF (Method Hiding Factor): share of private methods. Very low values mean little encapsulation
- AHF (Attribute Hiding Factor): share of private fields. Values well below 1 mean exposed state
- MIF (Method Inheritance Factor): share of available methods that are inherited without redefinition
- AIF (Attribute Inheritance Factor): share of available fields that are inherited
- POF (Polymorphism Factor): overridden methods over the possible overrides (descendants x methods)
- A null ratio is undefined because its denominator is zero (e.g. no fields at all)
- DIT >= 5 or NOC >= 6 are flagged as critical by default; deep trees are hard to reason about
- Parents outside the analyzed sources become roots and are counted as unresolved

METRICS RETURNED:
- metrics: mhf, ahf, mif, aif, pof and the raw counts behind them
- classes: fqn, parent, noc, descendants, dit, descendant names, own and inherited member counts,
  ordered by the sort input (descendants, dit, noc or name)
- summary: totals, roots, unresolved parents, max DIT and NOC, skipped files, content fingerprint`
}
