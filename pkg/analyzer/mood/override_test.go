package mood

import (
	"testing"

	"github.com/panbanda/mood/pkg/models"
)

func TestMethodsMatch(t *testing.T) {
	tests := []struct {
		name string
		a, b models.MethodDeclaration
		want bool
	}{
		{
			name: "same name and params",
			a:    method("foo", nil, nil, param("x", "int")),
			b:    method("foo", []string{"private"}, []string{"Override"}, param("x", "int")),
			want: true,
		},
		{
			name: "different name",
			a:    method("foo", nil, nil),
			b:    method("bar", nil, nil),
		},
		{
			name: "different arity",
			a:    method("foo", nil, nil, param("x", "int")),
			b:    method("foo", nil, nil),
		},
		{
			name: "parameter name differs",
			a:    method("foo", nil, nil, param("x", "int")),
			b:    method("foo", nil, nil, param("y", "int")),
		},
		{
			name: "parameter type differs",
			a:    method("foo", nil, nil, param("x", "int")),
			b:    method("foo", nil, nil, param("x", "long")),
		},
		{
			name: "return type ignored",
			a:    models.MethodDeclaration{Name: "get", ReturnType: models.TypeRef{Name: "Object"}},
			b:    models.MethodDeclaration{Name: "get", ReturnType: models.TypeRef{Name: "String"}},
			want: true,
		},
		{
			name: "type arguments ignored",
			a: models.MethodDeclaration{Name: "put", Params: []models.Parameter{
				{Name: "items", Type: models.TypeRef{Name: "List", Arguments: []models.TypeRef{{Name: "String"}}}},
			}},
			b: models.MethodDeclaration{Name: "put", Params: []models.Parameter{
				{Name: "items", Type: models.TypeRef{Name: "List"}},
			}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MethodsMatch(tt.a, tt.b); got != tt.want {
				t.Errorf("MethodsMatch() = %v, want %v", got, tt.want)
			}
			if got := MethodsMatch(tt.b, tt.a); got != tt.want {
				t.Errorf("MethodsMatch() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFieldsMatch(t *testing.T) {
	list := func(arg string) models.TypeRef {
		return models.TypeRef{Name: "List", Arguments: []models.TypeRef{{Name: arg}}}
	}

	tests := []struct {
		name string
		a, b models.FieldDeclaration
		want bool
	}{
		{"same", field("x", "int"), field("x", "int", "private"), true},
		{"different name", field("x", "int"), field("y", "int"), false},
		{"different type", field("x", "int"), field("x", "long"), false},
		{
			name: "array dimensions",
			a:    models.FieldDeclaration{Type: models.TypeRef{Name: "int", Dimensions: 1}, Declarators: []string{"x"}},
			b:    models.FieldDeclaration{Type: models.TypeRef{Name: "int"}, Declarators: []string{"x"}},
		},
		{
			name: "type arguments compared",
			a:    models.FieldDeclaration{Type: list("String"), Declarators: []string{"xs"}},
			b:    models.FieldDeclaration{Type: list("Integer"), Declarators: []string{"xs"}},
		},
		{
			name: "first declarator only",
			a:    models.FieldDeclaration{Type: models.TypeRef{Name: "int"}, Declarators: []string{"a", "b"}},
			b:    models.FieldDeclaration{Type: models.TypeRef{Name: "int"}, Declarators: []string{"a"}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FieldsMatch(tt.a, tt.b); got != tt.want {
				t.Errorf("FieldsMatch() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsPrivate(t *testing.T) {
	tests := []struct {
		modifiers []string
		want      bool
	}{
		{[]string{"private"}, true},
		{[]string{"private", "static", "final"}, true},
		{[]string{"public"}, false},
		{[]string{"protected"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsPrivate(tt.modifiers); got != tt.want {
			t.Errorf("IsPrivate(%v) = %v, want %v", tt.modifiers, got, tt.want)
		}
	}
}

func TestMethodIndex(t *testing.T) {
	own := []models.MethodDeclaration{
		method("foo", nil, nil, param("x", "int")),
		method("foo", nil, nil, param("x", "String")),
		method("bar", nil, nil),
	}
	idx := newMethodIndex(own)

	for _, m := range []models.MethodDeclaration{
		method("foo", nil, nil, param("x", "int")),
		method("foo", nil, nil, param("x", "long")),
		method("bar", nil, nil),
		method("baz", nil, nil),
	} {
		if got, want := idx.overrides(m), MethodOverridden(m, own); got != want {
			t.Errorf("index disagrees for %s: got %v, want %v", m.Signature(), got, want)
		}
	}
}
