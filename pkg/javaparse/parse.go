// Package javaparse extracts the package, imports and type declarations of
// Java compilation units with tree-sitter.  Method bodies are not visited:
// local and anonymous classes are invisible to name resolution outside of
// their body.
package javaparse

import (
	"fmt"
	"os"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	"github.com/stackb/javaresolve/pkg/hir"
	"github.com/stackb/javaresolve/pkg/javaname"
	"github.com/stackb/javaresolve/pkg/resolver"
)

var javaLanguage = sitter.NewLanguage(tree_sitter_java.Language())

var typeDeclKinds = map[string]hir.TypeKind{
	"class_declaration":           hir.KindClass,
	"interface_declaration":       hir.KindInterface,
	"enum_declaration":            hir.KindEnum,
	"record_declaration":          hir.KindRecord,
	"annotation_type_declaration": hir.KindAnnotation,
}

// File is the declaration summary of one compilation unit.
type File struct {
	ID       hir.FileID
	Filename string
	// Package is the declared package, or the root package when the file has
	// no package declaration.  It is never nil.
	Package *javaname.PackageName
	Imports *resolver.ImportMap
	// Types lists every member and top-level type declaration in source
	// order, enclosing types first.
	Types []*TypeDecl
	// HasErrors is set when the source has syntax errors.  Whatever could be
	// recovered is still reported.
	HasErrors bool
}

// TypeDecl is one type declaration of a file.
type TypeDecl struct {
	Item hir.ItemID
	Def  *hir.TypeDef
	Span resolver.Span
}

// Parser parses Java source files.  A Parser is not safe for concurrent use;
// create one per goroutine.
type Parser struct {
	parser *sitter.Parser
}

// NewParser returns a parser for the Java grammar.  Close it when done.
func NewParser() (*Parser, error) {
	p := sitter.NewParser()
	if err := p.SetLanguage(javaLanguage); err != nil {
		p.Close()
		return nil, fmt.Errorf("set java language: %w", err)
	}
	return &Parser{parser: p}, nil
}

// Close releases the underlying tree-sitter parser.
func (p *Parser) Close() {
	p.parser.Close()
}

// ParseFile reads and parses filename.
func (p *Parser) ParseFile(id hir.FileID, filename string) (*File, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	return p.Parse(id, filename, src)
}

// Parse parses the given source.  Item, field and method ids are numbered
// within the file in declaration order.
func (p *Parser) Parse(id hir.FileID, filename string, src []byte) (*File, error) {
	tree := p.parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("%s: parse failed", filename)
	}
	defer tree.Close()

	root := tree.RootNode()
	x := &extractor{
		src: src,
		file: &File{
			ID:        id,
			Filename:  filename,
			Imports:   resolver.NewImportMap(),
			HasErrors: root.HasError(),
		},
	}
	x.program(root)
	return x.file, nil
}

type extractor struct {
	src     []byte
	file    *File
	pkg     javaname.PackageName
	items   uint32
	fields  uint32
	methods uint32
}

func (x *extractor) program(root *sitter.Node) {
	x.pkg = javaname.PackageName{}
	for i := uint(0); i < root.NamedChildCount(); i++ {
		child := root.NamedChild(i)
		switch child.Kind() {
		case "package_declaration":
			if name := x.nameOf(child); len(name) > 0 {
				x.pkg = name.Package()
			}
		case "import_declaration":
			x.importDecl(child)
		default:
			if kind, ok := typeDeclKinds[child.Kind()]; ok {
				x.typeDecl(child, kind, nil)
			}
		}
	}
	pkg := x.pkg
	x.file.Package = &pkg
}

func (x *extractor) importDecl(n *sitter.Node) {
	var static, star bool
	var path javaname.QualifiedName
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		switch child.Kind() {
		case "static":
			static = true
		case "asterisk":
			star = true
		case "identifier", "scoped_identifier":
			path = x.qualifiedName(child)
		}
	}
	if len(path) == 0 {
		return
	}
	span := spanOf(n)
	imports := x.file.Imports
	switch {
	case static && star:
		imports.AddStaticStar(path, span)
	case static:
		imports.AddStaticSingle(path, span)
	case star:
		imports.AddTypeStar(path, span)
	default:
		imports.AddTypeSingle(path, span)
	}
}

func (x *extractor) typeDecl(n *sitter.Node, kind hir.TypeKind, enclosing *TypeDecl) {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := javaname.Name(nameNode.Utf8Text(x.src))

	var binary javaname.TypeName
	if enclosing == nil {
		binary = javaname.TypeName(x.pkg.Qualify(name))
	} else {
		binary = enclosing.Def.BinaryName.Nested(name)
	}

	decl := &TypeDecl{
		Item: hir.ItemID{File: x.file.ID, Index: x.items},
		Def: &hir.TypeDef{
			Name:       name,
			BinaryName: binary,
			Kind:       kind,
			IsStatic:   hasModifier(n, "static"),
			Fields:     make(map[javaname.Name]hir.FieldDef),
			Methods:    make(map[javaname.Name][]hir.MethodDef),
		},
		Span: spanOf(n),
	}
	x.items++
	if enclosing != nil {
		item := enclosing.Item
		decl.Def.Enclosing = &item
	}
	x.file.Types = append(x.file.Types, decl)

	// record components are fields of the record
	if params := n.ChildByFieldName("parameters"); params != nil && kind == hir.KindRecord {
		for i := uint(0); i < params.NamedChildCount(); i++ {
			if param := params.NamedChild(i); param.Kind() == "formal_parameter" {
				x.addField(decl, param.ChildByFieldName("name"), false)
			}
		}
	}
	if body := n.ChildByFieldName("body"); body != nil {
		x.body(body, decl)
	}
}

func (x *extractor) body(body *sitter.Node, decl *TypeDecl) {
	implicitlyStatic := decl.Def.Kind == hir.KindInterface || decl.Def.Kind == hir.KindAnnotation
	for i := uint(0); i < body.NamedChildCount(); i++ {
		child := body.NamedChild(i)
		switch child.Kind() {
		case "field_declaration", "constant_declaration":
			static := implicitlyStatic || child.Kind() == "constant_declaration" || hasModifier(child, "static")
			for j := uint(0); j < child.NamedChildCount(); j++ {
				if declarator := child.NamedChild(j); declarator.Kind() == "variable_declarator" {
					x.addField(decl, declarator.ChildByFieldName("name"), static)
				}
			}
		case "enum_constant":
			x.addField(decl, child.ChildByFieldName("name"), true)
		case "enum_body_declarations":
			x.body(child, decl)
		case "method_declaration":
			x.addMethod(decl, child.ChildByFieldName("name"), hasModifier(child, "static"))
		case "annotation_type_element_declaration":
			x.addMethod(decl, child.ChildByFieldName("name"), false)
		default:
			if kind, ok := typeDeclKinds[child.Kind()]; ok {
				x.typeDecl(child, kind, decl)
			}
		}
	}
}

func (x *extractor) addField(decl *TypeDecl, nameNode *sitter.Node, static bool) {
	if nameNode == nil {
		return
	}
	name := javaname.Name(nameNode.Utf8Text(x.src))
	id := hir.FieldID{File: x.file.ID, Index: x.fields}
	x.fields++
	if _, ok := decl.Def.Fields[name]; ok {
		return
	}
	decl.Def.Fields[name] = hir.FieldDef{ID: id, Name: name, IsStatic: static}
}

func (x *extractor) addMethod(decl *TypeDecl, nameNode *sitter.Node, static bool) {
	if nameNode == nil {
		return
	}
	name := javaname.Name(nameNode.Utf8Text(x.src))
	id := hir.MethodID{File: x.file.ID, Index: x.methods}
	x.methods++
	decl.Def.Methods[name] = append(decl.Def.Methods[name], hir.MethodDef{ID: id, Name: name, IsStatic: static})
}

// nameOf returns the first (possibly scoped) identifier child of n.
func (x *extractor) nameOf(n *sitter.Node) javaname.QualifiedName {
	for i := uint(0); i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		switch child.Kind() {
		case "identifier", "scoped_identifier":
			return x.qualifiedName(child)
		}
	}
	return nil
}

func (x *extractor) qualifiedName(n *sitter.Node) javaname.QualifiedName {
	switch n.Kind() {
	case "identifier":
		return javaname.QualifiedName{javaname.Name(n.Utf8Text(x.src))}
	case "scoped_identifier":
		scope := n.ChildByFieldName("scope")
		name := n.ChildByFieldName("name")
		if scope == nil || name == nil {
			return nil
		}
		prefix := x.qualifiedName(scope)
		if len(prefix) == 0 {
			return nil
		}
		return prefix.Append(javaname.Name(name.Utf8Text(x.src)))
	}
	return nil
}

func hasModifier(n *sitter.Node, modifier string) bool {
	for i := uint(0); i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		if child.Kind() != "modifiers" {
			continue
		}
		for j := uint(0); j < child.ChildCount(); j++ {
			if child.Child(j).Kind() == modifier {
				return true
			}
		}
	}
	return false
}

func spanOf(n *sitter.Node) resolver.Span {
	return resolver.Span{Start: int(n.StartByte()), End: int(n.EndByte())}
}
