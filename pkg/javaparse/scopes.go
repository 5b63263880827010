package javaparse

import (
	"fmt"
	"sort"

	"github.com/bazelbuild/bazel-gazelle/label"

	"github.com/stackb/javaresolve/pkg/hir"
	"github.com/stackb/javaresolve/pkg/javaname"
	"github.com/stackb/javaresolve/pkg/resolver"
	"github.com/stackb/javaresolve/pkg/workspace"
)

// Scopes is the scope graph of one file.
type Scopes struct {
	Graph *resolver.ScopeGraph
	File  resolver.FileScopes
	// Classes maps the binary name of each type declared in the file to its
	// body scope.
	Classes map[javaname.TypeName]resolver.ScopeID
}

// Scopes builds the scope graph of the file.  Top-level types are declared in
// the file scope, member types in the body scope of their enclosing type.
// Fields and methods are bound in the body scope of their type.
func (f *File) Scopes() *Scopes {
	b := resolver.NewScopeBuilder()
	s := &Scopes{
		File:    b.FileScopes(f.Package, f.Imports),
		Classes: make(map[javaname.TypeName]resolver.ScopeID),
	}

	bodies := make(map[hir.ItemID]resolver.ScopeID, len(f.Types))
	for _, decl := range f.Types {
		def := decl.Def
		parent := s.File.File
		if def.Enclosing != nil {
			enclosing, ok := bodies[*def.Enclosing]
			if !ok {
				continue
			}
			parent = enclosing
		}
		b.DeclareType(parent, def.Name, decl.Item, def.BinaryName)

		body := b.ClassScope(parent, def.BinaryName)
		bodies[decl.Item] = body
		if _, ok := s.Classes[def.BinaryName]; !ok {
			s.Classes[def.BinaryName] = body
		}

		for _, name := range sortedFieldNames(def) {
			b.BindValue(body, name, resolver.Field{ID: def.Fields[name].ID})
		}
		for _, name := range sortedMethodNames(def) {
			for _, m := range def.Methods[name] {
				b.BindMethod(body, name, m.ID)
			}
		}
	}

	s.Graph = b.Build()
	return s
}

// Register adds the types of the file to the workspace definition map.  It
// returns the binary names that were already taken by an earlier file.
func (f *File) Register(defs *workspace.DefMap, from label.Label) ([]javaname.TypeName, error) {
	var shadowed []javaname.TypeName
	for _, decl := range f.Types {
		added, err := defs.Add(decl.Item, decl.Def, from)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Filename, err)
		}
		if !added {
			shadowed = append(shadowed, decl.Def.BinaryName)
		}
	}
	return shadowed, nil
}

func sortedFieldNames(def *hir.TypeDef) []javaname.Name {
	names := make([]javaname.Name, 0, len(def.Fields))
	for name := range def.Fields {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return names[i] < names[j]
	})
	return names
}

func sortedMethodNames(def *hir.TypeDef) []javaname.Name {
	names := make([]javaname.Name, 0, len(def.Methods))
	for name := range def.Methods {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return names[i] < names[j]
	})
	return names
}
