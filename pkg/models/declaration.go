package models

import "strings"

// TypeRef describes a declared type as written in source.
// Name is the base type text without type arguments or array brackets,
// e.g. "int", "String" or "java.util.List".
type TypeRef struct {
	Name       string    `json:"name" toon:"name" yaml:"name"`
	Dimensions int       `json:"dimensions,omitempty" toon:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	Arguments  []TypeRef `json:"arguments,omitempty" toon:"arguments,omitempty" yaml:"arguments,omitempty"`
}

// Equal reports whether two type descriptors are structurally identical.
func (t TypeRef) Equal(o TypeRef) bool {
	if t.Name != o.Name || t.Dimensions != o.Dimensions || len(t.Arguments) != len(o.Arguments) {
		return false
	}
	for i := range t.Arguments {
		if !t.Arguments[i].Equal(o.Arguments[i]) {
			return false
		}
	}
	return true
}

// String renders the type the way it would appear in Java source.
func (t TypeRef) String() string {
	var b strings.Builder
	b.WriteString(t.Name)
	if len(t.Arguments) > 0 {
		b.WriteByte('<')
		for i, arg := range t.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.String())
		}
		b.WriteByte('>')
	}
	for range t.Dimensions {
		b.WriteString("[]")
	}
	return b.String()
}

// Parameter is a single formal parameter of a method.
type Parameter struct {
	Name string  `json:"name" toon:"name" yaml:"name"`
	Type TypeRef `json:"type" toon:"type" yaml:"type"`
}

// MethodDeclaration is a method declared directly in a class body.
// Constructors are not methods.
type MethodDeclaration struct {
	Name        string      `json:"name" toon:"name" yaml:"name"`
	Params      []Parameter `json:"params,omitempty" toon:"params,omitempty" yaml:"params,omitempty"`
	ReturnType  TypeRef     `json:"return_type" toon:"return_type" yaml:"return_type"`
	Modifiers   []string    `json:"modifiers,omitempty" toon:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Annotations []string    `json:"annotations,omitempty" toon:"annotations,omitempty" yaml:"annotations,omitempty"`
	Line        uint32      `json:"line,omitempty" toon:"line,omitempty" yaml:"line,omitempty"`
}

// Signature renders name(type, type) for display.
func (m MethodDeclaration) Signature() string {
	parts := make([]string, len(m.Params))
	for i, p := range m.Params {
		parts[i] = p.Type.String()
	}
	return m.Name + "(" + strings.Join(parts, ", ") + ")"
}

// FieldDeclaration is one field declaration statement. A statement such as
// "int a, b;" carries several declarators sharing one type.
type FieldDeclaration struct {
	Type        TypeRef  `json:"type" toon:"type" yaml:"type"`
	Declarators []string `json:"declarators" toon:"declarators" yaml:"declarators"`
	Modifiers   []string `json:"modifiers,omitempty" toon:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Annotations []string `json:"annotations,omitempty" toon:"annotations,omitempty" yaml:"annotations,omitempty"`
	Line        uint32   `json:"line,omitempty" toon:"line,omitempty" yaml:"line,omitempty"`
}

// Name returns the first declared variable name, or "" for a malformed declaration.
func (f FieldDeclaration) Name() string {
	if len(f.Declarators) == 0 {
		return ""
	}
	return f.Declarators[0]
}

// ClassDeclaration is a top-level class as extracted from a source file.
type ClassDeclaration struct {
	Name    string              `json:"name" toon:"name" yaml:"name"`
	Parent  string              `json:"parent,omitempty" toon:"parent,omitempty" yaml:"parent,omitempty"`
	Methods []MethodDeclaration `json:"methods,omitempty" toon:"methods,omitempty" yaml:"methods,omitempty"`
	Fields  []FieldDeclaration  `json:"fields,omitempty" toon:"fields,omitempty" yaml:"fields,omitempty"`
	Line    uint32              `json:"line,omitempty" toon:"line,omitempty" yaml:"line,omitempty"`
}

// FileDeclaration holds everything ingestion extracts from one source file.
type FileDeclaration struct {
	Path    string             `json:"path" toon:"path" yaml:"path"`
	Package string             `json:"package,omitempty" toon:"package,omitempty" yaml:"package,omitempty"`
	Imports []string           `json:"imports,omitempty" toon:"imports,omitempty" yaml:"imports,omitempty"`
	// Types lists the simple names of every top-level type (classes,
	// interfaces, enums, records) declared in the file.
	Types   []string           `json:"types,omitempty" toon:"types,omitempty" yaml:"types,omitempty"`
	Classes []ClassDeclaration `json:"classes,omitempty" toon:"classes,omitempty" yaml:"classes,omitempty"`
}
