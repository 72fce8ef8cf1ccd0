package mood

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/panbanda/mood/pkg/models"
)

// ClassData is one class node in the inheritance graph.
//
// Methods and Fields are the class's own members as supplied by ingestion and
// are never modified. Children, Descendants and Depth are derived by
// BuildTree; InheritedMethods and InheritedFields are derived by Propagate.
type ClassData struct {
	// ID is a dense index assigned on first registration of the FQN.
	ID      uint32
	Name    string
	Package string
	FQN     string
	Path    string

	Methods []models.MethodDeclaration
	Fields  []models.FieldDeclaration

	// DeclaredParent is the parent reference as written in source. Parent is
	// the reference after import qualification and may be rewritten once
	// more by ResolveParents.
	DeclaredParent string
	Parent         string

	Children    []string
	Descendants *roaring.Bitmap
	Depth       int

	InheritedMethods []models.MethodDeclaration
	InheritedFields  []models.FieldDeclaration
}

// NewClassData builds a class node from an ingested declaration.
func NewClassData(pkg, path string, decl models.ClassDeclaration) *ClassData {
	return &ClassData{
		Name:           decl.Name,
		Package:        pkg,
		FQN:            QualifiedName(pkg, decl.Name),
		Path:           path,
		Methods:        decl.Methods,
		Fields:         decl.Fields,
		DeclaredParent: decl.Parent,
		Parent:         decl.Parent,
		Descendants:    roaring.New(),
	}
}

// QualifiedName joins a package and a simple name. Classes in the default
// package are keyed by their simple name.
func QualifiedName(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}

// Registry maps fully-qualified class names to class nodes. It is owned by a
// single analysis run and is not safe for concurrent mutation.
type Registry struct {
	classes []*ClassData
	index   map[string]uint32
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]uint32)}
}

// Register inserts c under c.FQN. Registering an FQN that already exists
// replaces the earlier class but keeps its position and ID. It reports
// whether an earlier entry was replaced.
func (r *Registry) Register(c *ClassData) bool {
	if c.Descendants == nil {
		c.Descendants = roaring.New()
	}
	if id, ok := r.index[c.FQN]; ok {
		c.ID = id
		r.classes[id] = c
		return true
	}
	c.ID = uint32(len(r.classes))
	r.index[c.FQN] = c.ID
	r.classes = append(r.classes, c)
	return false
}

// Lookup returns the class registered under fqn.
func (r *Registry) Lookup(fqn string) (*ClassData, bool) {
	id, ok := r.index[fqn]
	if !ok {
		return nil, false
	}
	return r.classes[id], true
}

// Has reports whether fqn is a registry key.
func (r *Registry) Has(fqn string) bool {
	_, ok := r.index[fqn]
	return ok
}

// ByID returns the class with the given dense ID, or nil.
func (r *Registry) ByID(id uint32) *ClassData {
	if int(id) >= len(r.classes) {
		return nil
	}
	return r.classes[id]
}

// Len returns the number of registered classes.
func (r *Registry) Len() int {
	return len(r.classes)
}

// Classes returns all classes in first-registration order. The slice is
// shared; callers must not modify it.
func (r *Registry) Classes() []*ClassData {
	return r.classes
}

// ParentOf returns the registered parent of c. A parent reference that is
// empty or not a registry key is unresolved.
func (r *Registry) ParentOf(c *ClassData) (*ClassData, bool) {
	if c.Parent == "" {
		return nil, false
	}
	return r.Lookup(c.Parent)
}

// DescendantNames returns the FQNs of every transitive descendant of c,
// in registration order.
func (r *Registry) DescendantNames(c *ClassData) []string {
	if c.Descendants == nil || c.Descendants.IsEmpty() {
		return nil
	}
	names := make([]string, 0, c.Descendants.GetCardinality())
	it := c.Descendants.Iterator()
	for it.HasNext() {
		names = append(names, r.classes[it.Next()].FQN)
	}
	return names
}
