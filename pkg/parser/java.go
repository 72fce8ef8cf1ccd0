package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/panbanda/mood/pkg/models"
	sitter "github.com/smacker/go-tree-sitter"
)

// ErrSyntax is returned when a file contains syntax errors. Partial trees are
// never turned into declarations.
var ErrSyntax = errors.New("syntax error")

// topLevelTypeNodes are the Java declarations that introduce a type name at
// compilation-unit level.
var topLevelTypeNodes = map[string]bool{
	"class_declaration":           true,
	"interface_declaration":       true,
	"enum_declaration":            true,
	"record_declaration":          true,
	"annotation_type_declaration": true,
}

// ExtractJavaDeclarations converts a parsed Java compilation unit into the
// package, imports and top-level class declarations it contains. Only
// class_declaration nodes become classes; nested types are ignored.
func ExtractJavaDeclarations(result *ParseResult) (*models.FileDeclaration, error) {
	if result == nil || result.Tree == nil {
		return nil, errors.New("no parse tree")
	}
	if result.Language != LangJava {
		return nil, fmt.Errorf("unsupported language: %s", result.Language)
	}

	root := result.Tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%w at line %d", ErrSyntax, firstErrorLine(root))
	}

	src := result.Source
	decl := &models.FileDeclaration{Path: result.Path}

	for i := range int(root.NamedChildCount()) {
		child := root.NamedChild(i)
		nodeType := child.Type()

		switch {
		case nodeType == "package_declaration":
			decl.Package = qualifiedName(child, src)
		case nodeType == "import_declaration":
			if imp := importPath(child, src); imp != "" {
				decl.Imports = append(decl.Imports, imp)
			}
		case topLevelTypeNodes[nodeType]:
			name := GetNodeText(child.ChildByFieldName("name"), src)
			if name == "" {
				continue
			}
			decl.Types = append(decl.Types, name)
			if nodeType == "class_declaration" {
				decl.Classes = append(decl.Classes, extractClass(child, name, src))
			}
		}
	}

	return decl, nil
}

// firstErrorLine returns the 1-based line of the first ERROR or MISSING node.
func firstErrorLine(root *sitter.Node) uint32 {
	line := root.StartPoint().Row + 1
	found := false
	WalkTyped(root, nil, func(n *sitter.Node, nodeType string, _ []byte) bool {
		if found {
			return false
		}
		if nodeType == "ERROR" || n.IsMissing() {
			line = n.StartPoint().Row + 1
			found = true
			return false
		}
		return n.HasError()
	})
	return line
}

// qualifiedName returns the dotted name of a package declaration.
func qualifiedName(node *sitter.Node, src []byte) string {
	for i := range int(node.NamedChildCount()) {
		child := node.NamedChild(i)
		switch child.Type() {
		case "scoped_identifier", "identifier":
			return compact(GetNodeText(child, src))
		}
	}
	return ""
}

// importPath returns the imported name, with ".*" appended for on-demand imports.
func importPath(node *sitter.Node, src []byte) string {
	var path string
	wildcard := false
	for i := range int(node.NamedChildCount()) {
		child := node.NamedChild(i)
		switch child.Type() {
		case "scoped_identifier", "identifier":
			path = compact(GetNodeText(child, src))
		case "asterisk":
			wildcard = true
		}
	}
	if path != "" && wildcard {
		path += ".*"
	}
	return path
}

func extractClass(node *sitter.Node, name string, src []byte) models.ClassDeclaration {
	cls := models.ClassDeclaration{
		Name: name,
		Line: node.StartPoint().Row + 1,
	}

	if superclass := node.ChildByFieldName("superclass"); superclass != nil && superclass.NamedChildCount() > 0 {
		cls.Parent = typeRef(superclass.NamedChild(0), src).Name
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return cls
	}

	for i := range int(body.NamedChildCount()) {
		member := body.NamedChild(i)
		switch member.Type() {
		case "method_declaration":
			cls.Methods = append(cls.Methods, extractMethod(member, src))
		case "field_declaration":
			cls.Fields = append(cls.Fields, extractField(member, src))
		}
	}

	return cls
}

func extractMethod(node *sitter.Node, src []byte) models.MethodDeclaration {
	m := models.MethodDeclaration{
		Name:       GetNodeText(node.ChildByFieldName("name"), src),
		ReturnType: typeRef(node.ChildByFieldName("type"), src),
		Line:       node.StartPoint().Row + 1,
	}
	m.Modifiers, m.Annotations = modifiers(node, src)

	// Legacy "int f()[]" syntax puts dimensions after the parameter list.
	if dims := node.ChildByFieldName("dimensions"); dims != nil {
		m.ReturnType.Dimensions += countDimensions(dims, src)
	}

	params := node.ChildByFieldName("parameters")
	if params == nil {
		return m
	}
	for i := range int(params.NamedChildCount()) {
		p := params.NamedChild(i)
		switch p.Type() {
		case "formal_parameter":
			m.Params = append(m.Params, formalParameter(p, src))
		case "spread_parameter":
			m.Params = append(m.Params, spreadParameter(p, src))
		}
	}
	return m
}

func formalParameter(node *sitter.Node, src []byte) models.Parameter {
	param := models.Parameter{
		Name: GetNodeText(node.ChildByFieldName("name"), src),
		Type: typeRef(node.ChildByFieldName("type"), src),
	}
	if dims := node.ChildByFieldName("dimensions"); dims != nil {
		param.Type.Dimensions += countDimensions(dims, src)
	}
	return param
}

// spreadParameter handles varargs. The grammar exposes no field names here,
// so the type is the first named child that is not a modifier list.
func spreadParameter(node *sitter.Node, src []byte) models.Parameter {
	var param models.Parameter
	for i := range int(node.NamedChildCount()) {
		child := node.NamedChild(i)
		switch child.Type() {
		case "modifiers":
		case "variable_declarator":
			param.Name = GetNodeText(child.ChildByFieldName("name"), src)
		default:
			if param.Type.Name == "" {
				param.Type = typeRef(child, src)
			}
		}
	}
	param.Type.Dimensions++
	return param
}

func extractField(node *sitter.Node, src []byte) models.FieldDeclaration {
	f := models.FieldDeclaration{
		Type: typeRef(node.ChildByFieldName("type"), src),
		Line: node.StartPoint().Row + 1,
	}
	f.Modifiers, f.Annotations = modifiers(node, src)

	for i := range int(node.NamedChildCount()) {
		child := node.NamedChild(i)
		if child.Type() != "variable_declarator" {
			continue
		}
		f.Declarators = append(f.Declarators, GetNodeText(child.ChildByFieldName("name"), src))
		// "int a[]" declares an array; fold the brackets into the type
		// of the first declarator, which is the one used for matching.
		if len(f.Declarators) == 1 {
			if dims := child.ChildByFieldName("dimensions"); dims != nil {
				f.Type.Dimensions += countDimensions(dims, src)
			}
		}
	}
	return f
}

// modifiers collects keyword modifiers and annotation names of a declaration.
func modifiers(node *sitter.Node, src []byte) (mods, annotations []string) {
	var list *sitter.Node
	for i := range int(node.NamedChildCount()) {
		if child := node.NamedChild(i); child.Type() == "modifiers" {
			list = child
			break
		}
	}
	if list == nil {
		return nil, nil
	}

	for i := range int(list.ChildCount()) {
		child := list.Child(i)
		switch child.Type() {
		case "marker_annotation", "annotation":
			annotations = append(annotations, compact(GetNodeText(child.ChildByFieldName("name"), src)))
		default:
			if !child.IsNamed() {
				mods = append(mods, GetNodeText(child, src))
			}
		}
	}
	return mods, annotations
}

// typeRef converts a type node into a structural descriptor.
func typeRef(node *sitter.Node, src []byte) models.TypeRef {
	if node == nil {
		return models.TypeRef{}
	}

	switch node.Type() {
	case "generic_type":
		var ref models.TypeRef
		for i := range int(node.NamedChildCount()) {
			child := node.NamedChild(i)
			switch child.Type() {
			case "type_arguments":
				for j := range int(child.NamedChildCount()) {
					ref.Arguments = append(ref.Arguments, typeRef(child.NamedChild(j), src))
				}
			default:
				if ref.Name == "" {
					ref.Name = stripTypeArguments(compact(GetNodeText(child, src)))
				}
			}
		}
		return ref
	case "array_type":
		ref := typeRef(node.ChildByFieldName("element"), src)
		ref.Dimensions += countDimensions(node.ChildByFieldName("dimensions"), src)
		return ref
	case "annotated_type":
		// Type annotations do not change the declared type.
		if n := node.NamedChildCount(); n > 0 {
			return typeRef(node.NamedChild(int(n)-1), src)
		}
	case "scoped_type_identifier":
		return models.TypeRef{Name: stripTypeArguments(compact(GetNodeText(node, src)))}
	case "wildcard":
		return models.TypeRef{Name: strings.Join(strings.Fields(GetNodeText(node, src)), " ")}
	}

	return models.TypeRef{Name: compact(GetNodeText(node, src))}
}

func countDimensions(node *sitter.Node, src []byte) int {
	return strings.Count(GetNodeText(node, src), "[")
}

// stripTypeArguments removes every <...> group, e.g. "Outer<T>.Inner" -> "Outer.Inner".
func stripTypeArguments(name string) string {
	if !strings.Contains(name, "<") {
		return name
	}
	var b strings.Builder
	depth := 0
	for _, r := range name {
		switch {
		case r == '<':
			depth++
		case r == '>':
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// compact drops whitespace so that "java . util . List" and "java.util.List" agree.
func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}
