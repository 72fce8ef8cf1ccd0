package mood

// ClassCounts computes one class's contribution to the global totals.
// Propagate must have run so that inherited members are populated.
func ClassCounts(c *ClassData) Counts {
	var n Counts

	for _, m := range c.Methods {
		if IsPrivate(m.Modifiers) {
			n.PrivateMethods++
		} else {
			n.PublicMethods++
		}
	}
	for _, f := range c.Fields {
		if IsPrivate(f.Modifiers) {
			n.PrivateFields++
		} else {
			n.PublicFields++
		}
	}

	methods := newMethodIndex(c.Methods)
	for _, m := range c.InheritedMethods {
		if methods.overrides(m) {
			n.OverriddenMethods++
		} else {
			n.InheritedMethods++
		}
	}

	fields := newFieldIndex(c.Fields)
	for _, f := range c.InheritedFields {
		if !fields.overrides(f) {
			n.InheritedFields++
		}
	}

	n.AvailableMethods = n.PublicMethods + n.PrivateMethods + len(c.InheritedMethods)
	n.AvailableFields = n.PublicFields + n.PrivateFields + len(c.InheritedFields)

	descendants := 0
	if c.Descendants != nil {
		descendants = int(c.Descendants.GetCardinality())
	}
	n.OverrideOpportunities = descendants * len(c.Methods)

	return n
}

// Aggregate sums the per-class counts over the registry and computes the five
// MOOD ratios. It returns a *ComputationError, and no metrics, when no class
// has both descendants and methods, since POF is then meaningless.
func Aggregate(reg *Registry) (*Metrics, error) {
	var total Counts
	for _, c := range reg.Classes() {
		total.add(ClassCounts(c))
	}

	if total.OverrideOpportunities == 0 {
		return nil, &ComputationError{Reason: "polymorphism factor denominator is zero (no class has both descendants and methods)"}
	}

	return &Metrics{
		MHF:    ratio(total.PrivateMethods, total.PublicMethods+total.PrivateMethods),
		AHF:    ratio(total.PrivateFields, total.PublicFields+total.PrivateFields),
		MIF:    ratio(total.InheritedMethods, total.AvailableMethods),
		AIF:    ratio(total.InheritedFields, total.AvailableFields),
		POF:    ratio(total.OverriddenMethods, total.OverrideOpportunities),
		Counts: total,
	}, nil
}

// ratio divides num by den, returning nil when the quotient is undefined.
func ratio(num, den int) *float64 {
	if den == 0 {
		return nil
	}
	r := float64(num) / float64(den)
	return &r
}

// Compute runs the resolution, tree, propagation and aggregation stages over
// reg, in that order.
func Compute(reg *Registry, overrideAnnotations []string) (*Metrics, error) {
	ResolveParents(reg)
	if err := BuildTree(reg); err != nil {
		return nil, err
	}
	if err := Propagate(reg, overrideAnnotations); err != nil {
		return nil, err
	}
	return Aggregate(reg)
}
