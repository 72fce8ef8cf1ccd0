package mood

import (
	"fmt"
	"slices"

	"github.com/panbanda/mood/pkg/models"
)

// DefaultOverrideAnnotations are the annotation names that mark a member as
// overriding an inherited one.
var DefaultOverrideAnnotations = []string{"Override", "java.lang.Override"}

// Propagate pushes members down every inheritance chain, starting from the
// roots. Each class forwards its own members that carry none of the given
// override annotations, followed by everything it inherited itself; every
// direct child appends that sequence to its inherited members.
//
// Inherited members from an earlier call are discarded first. BuildTree must
// have completed successfully before Propagate is called.
func Propagate(reg *Registry, overrideAnnotations []string) error {
	if overrideAnnotations == nil {
		overrideAnnotations = DefaultOverrideAnnotations
	}

	for _, c := range reg.Classes() {
		c.InheritedMethods = nil
		c.InheritedFields = nil
	}

	p := &propagator{
		reg:         reg,
		annotations: overrideAnnotations,
		visited:     make([]bool, reg.Len()),
	}
	for _, root := range Roots(reg) {
		if err := p.visit(root); err != nil {
			return err
		}
	}
	return nil
}

type propagator struct {
	reg         *Registry
	annotations []string
	visited     []bool
}

func (p *propagator) visit(c *ClassData) error {
	if p.visited[c.ID] {
		return &CycleError{Classes: []string{c.FQN}}
	}
	p.visited[c.ID] = true

	methods, fields := p.forwarded(c)
	for _, name := range c.Children {
		child, ok := p.reg.Lookup(name)
		if !ok {
			return fmt.Errorf("child %q of %q is not registered", name, c.FQN)
		}
		child.InheritedMethods = append(child.InheritedMethods, methods...)
		child.InheritedFields = append(child.InheritedFields, fields...)
		if err := p.visit(child); err != nil {
			return err
		}
	}
	return nil
}

// forwarded computes the members c hands to each of its children.
func (p *propagator) forwarded(c *ClassData) ([]models.MethodDeclaration, []models.FieldDeclaration) {
	methods := make([]models.MethodDeclaration, 0, len(c.Methods)+len(c.InheritedMethods))
	for _, m := range c.Methods {
		if !HasAnnotation(m.Annotations, p.annotations) {
			methods = append(methods, m)
		}
	}
	methods = append(methods, c.InheritedMethods...)

	fields := make([]models.FieldDeclaration, 0, len(c.Fields)+len(c.InheritedFields))
	for _, f := range c.Fields {
		if !HasAnnotation(f.Annotations, p.annotations) {
			fields = append(fields, f)
		}
	}
	fields = append(fields, c.InheritedFields...)

	return methods, fields
}

// HasAnnotation reports whether any of annotations is in names.
func HasAnnotation(annotations, names []string) bool {
	for _, a := range annotations {
		if slices.Contains(names, a) {
			return true
		}
	}
	return false
}
