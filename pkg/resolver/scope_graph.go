package resolver

import (
	"fmt"

	"github.com/stackb/javaresolve/pkg/hir"
	"github.com/stackb/javaresolve/pkg/javaname"
)

// ScopeID indexes a scope in its ScopeGraph.
type ScopeID int

// NoScope is the parent of a root scope.
const NoScope ScopeID = -1

// ScopeKind tags a scope with the resolution rules that apply to it beyond
// its own bindings.
type ScopeKind int

const (
	BlockScope ScopeKind = iota
	UniverseScope
	PackageScope
	ImportScope
	FileScope
	ClassScope
	MethodScope
)

var scopeKindNames = map[ScopeKind]string{
	BlockScope:    "block",
	UniverseScope: "universe",
	PackageScope:  "package",
	ImportScope:   "import",
	FileScope:     "file",
	ClassScope:    "class",
	MethodScope:   "method",
}

// String implements fmt.Stringer
func (k ScopeKind) String() string {
	if s, ok := scopeKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ScopeKind(%d)", int(k))
}

// ScopeData is one lexical scope.
type ScopeData struct {
	Parent ScopeID
	Kind   ScopeKind
	// Package is the file's package on package and import scopes.  nil means
	// no package information; the root package is empty but non-nil.
	Package *javaname.PackageName
	// Imports is set on import scopes.
	Imports *ImportMap
	// Class is the binary name of the type owning a class scope.
	Class   javaname.TypeName
	Values  map[javaname.Name]Resolution
	Types   map[javaname.Name]TypeResolution
	Methods map[javaname.Name][]hir.MethodID
}

// ScopeGraph is a parent-linked tree of scopes stored in an arena.  A parent
// always has a lower id than its children.
type ScopeGraph struct {
	scopes          []ScopeData
	typeNames       map[hir.ItemID]javaname.TypeName
	itemsByTypeName map[javaname.TypeName]hir.ItemID
}

// Len returns the number of scopes.
func (g *ScopeGraph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.scopes)
}

// Scope returns the scope with the given id.  Unknown ids report false.
func (g *ScopeGraph) Scope(id ScopeID) (*ScopeData, bool) {
	if g == nil || id < 0 || int(id) >= len(g.scopes) {
		return nil, false
	}
	return &g.scopes[id], true
}

// TypeName returns the binary name of a type declared in this file.
func (g *ScopeGraph) TypeName(item hir.ItemID) (javaname.TypeName, bool) {
	if g == nil {
		return "", false
	}
	name, ok := g.typeNames[item]
	return name, ok
}

// ItemByTypeName returns the item of a type declared in this file.
func (g *ScopeGraph) ItemByTypeName(name javaname.TypeName) (hir.ItemID, bool) {
	if g == nil {
		return hir.ItemID{}, false
	}
	item, ok := g.itemsByTypeName[name]
	return item, ok
}

// walk calls visit on id and each of its ancestors until visit returns
// true or the chain ends.
func (g *ScopeGraph) walk(id ScopeID, visit func(*ScopeData) bool) {
	for {
		data, ok := g.Scope(id)
		if !ok {
			return
		}
		if visit(data) {
			return
		}
		if data.Parent >= id {
			return
		}
		id = data.Parent
	}
}
