package resolver

import (
	"fmt"

	"github.com/stackb/javaresolve/pkg/hir"
	"github.com/stackb/javaresolve/pkg/javaname"
)

// primitiveTypes are bound in the universe scope.
var primitiveTypes = []javaname.Name{
	"boolean", "byte", "short", "int", "long", "char", "float", "double", "void",
}

// FileScopes are the scopes every compilation unit starts with, outermost
// first.
type FileScopes struct {
	Universe ScopeID
	Package  ScopeID
	Import   ScopeID
	File     ScopeID
}

// ScopeBuilder assembles a ScopeGraph.  Scopes can only be attached to
// parents that already exist, so the result is always a tree.
type ScopeBuilder struct {
	graph *ScopeGraph
}

// NewScopeBuilder returns an empty builder.
func NewScopeBuilder() *ScopeBuilder {
	return &ScopeBuilder{
		graph: &ScopeGraph{
			typeNames:       make(map[hir.ItemID]javaname.TypeName),
			itemsByTypeName: make(map[javaname.TypeName]hir.ItemID),
		},
	}
}

// Alloc adds a scope under parent.  Pass NoScope for a root.
func (b *ScopeBuilder) Alloc(parent ScopeID, kind ScopeKind) (ScopeID, error) {
	if parent != NoScope {
		if _, ok := b.graph.Scope(parent); !ok {
			return NoScope, fmt.Errorf("alloc %v scope: unknown parent scope %d", kind, parent)
		}
	}
	id := ScopeID(len(b.graph.scopes))
	b.graph.scopes = append(b.graph.scopes, ScopeData{
		Parent:  parent,
		Kind:    kind,
		Values:  make(map[javaname.Name]Resolution),
		Types:   make(map[javaname.Name]TypeResolution),
		Methods: make(map[javaname.Name][]hir.MethodID),
	})
	return id, nil
}

// MustAlloc is like Alloc but panics on an unknown parent.
func (b *ScopeBuilder) MustAlloc(parent ScopeID, kind ScopeKind) ScopeID {
	id, err := b.Alloc(parent, kind)
	if err != nil {
		panic(err)
	}
	return id
}

// FileScopes allocates the universe, package, import and file scopes of a
// compilation unit.  The universe binds the primitive types.  pkg may be nil
// when the package is unknown.
func (b *ScopeBuilder) FileScopes(pkg *javaname.PackageName, imports *ImportMap) FileScopes {
	var fs FileScopes
	fs.Universe = b.MustAlloc(NoScope, UniverseScope)
	for _, prim := range primitiveTypes {
		b.BindType(fs.Universe, prim, ExternalType{Name: javaname.TypeName(prim)})
	}
	fs.Package = b.MustAlloc(fs.Universe, PackageScope)
	b.graph.scopes[fs.Package].Package = pkg
	fs.Import = b.MustAlloc(fs.Package, ImportScope)
	b.graph.scopes[fs.Import].Package = pkg
	b.graph.scopes[fs.Import].Imports = imports
	fs.File = b.MustAlloc(fs.Import, FileScope)
	return fs
}

// DeclareType binds a source type in the type namespace of scope and records
// its binary name for file-local lookups.
func (b *ScopeBuilder) DeclareType(scope ScopeID, name javaname.Name, item hir.ItemID, binary javaname.TypeName) {
	b.BindType(scope, name, SourceType{Item: item})
	b.graph.typeNames[item] = binary
	if _, ok := b.graph.itemsByTypeName[binary]; !ok {
		b.graph.itemsByTypeName[binary] = item
	}
}

// ClassScope allocates the body scope of a type.
func (b *ScopeBuilder) ClassScope(parent ScopeID, binary javaname.TypeName) ScopeID {
	id := b.MustAlloc(parent, ClassScope)
	b.graph.scopes[id].Class = binary
	return id
}

// BindValue binds name in the value namespace of scope.  A later binding of
// the same name replaces the earlier one.
func (b *ScopeBuilder) BindValue(scope ScopeID, name javaname.Name, res Resolution) {
	if data, ok := b.graph.Scope(scope); ok {
		data.Values[name] = res
	}
}

// BindType binds name in the type namespace of scope.
func (b *ScopeBuilder) BindType(scope ScopeID, name javaname.Name, res TypeResolution) {
	if data, ok := b.graph.Scope(scope); ok {
		data.Types[name] = res
	}
}

// BindMethod adds overloads to the method namespace of scope.
func (b *ScopeBuilder) BindMethod(scope ScopeID, name javaname.Name, ids ...hir.MethodID) {
	if data, ok := b.graph.Scope(scope); ok {
		data.Methods[name] = append(data.Methods[name], ids...)
	}
}

// Build returns the graph.  The builder must not be used afterwards.
func (b *ScopeBuilder) Build() *ScopeGraph {
	g := b.graph
	b.graph = nil
	return g
}
