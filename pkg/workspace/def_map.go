// Package workspace indexes the types declared in workspace source files.
package workspace

import (
	"fmt"
	"sort"

	"github.com/bazelbuild/bazel-gazelle/label"

	"github.com/stackb/javaresolve/pkg/hir"
	"github.com/stackb/javaresolve/pkg/javaname"
	"github.com/stackb/javaresolve/pkg/typeindex"
)

// Provider is the provider name recorded on workspace symbols.
const Provider = "workspace"

// DefMap maps binary type names to the source items that declare them.  It
// doubles as a TypeIndex so that workspace types take part in same-package
// and on-demand lookups.
//
// The first definition of a binary name wins; later duplicates are ignored.
// A DefMap is built once and then only read.
type DefMap struct {
	index *typeindex.TrieIndex
	items map[javaname.TypeName]hir.ItemID
	names map[hir.ItemID]javaname.TypeName
	defs  map[hir.ItemID]*hir.TypeDef
}

// NewDefMap constructs a new empty DefMap.
func NewDefMap() *DefMap {
	return &DefMap{
		index: typeindex.NewTrieIndex(Provider),
		items: make(map[javaname.TypeName]hir.ItemID),
		names: make(map[hir.ItemID]javaname.TypeName),
		defs:  make(map[hir.ItemID]*hir.TypeDef),
	}
}

// Add registers a type declaration, with its static members, under its
// binary name.  from is the rule or file the declaration comes from.  Add
// reports false when the name was already taken by another item.
func (m *DefMap) Add(item hir.ItemID, def *hir.TypeDef, from label.Label) (bool, error) {
	if def == nil || def.BinaryName == "" {
		return false, fmt.Errorf("%v: type definition has no binary name", item)
	}
	if _, ok := m.items[def.BinaryName]; ok {
		return false, nil
	}
	if _, ok := m.defs[item]; ok {
		return false, fmt.Errorf("%v: already registered as %s", item, m.names[item])
	}
	if err := m.index.PutType(def.BinaryName, from); err != nil {
		return false, err
	}
	m.items[def.BinaryName] = item
	m.names[item] = def.BinaryName
	m.defs[item] = def

	for _, name := range sortedNames(def) {
		if _, ok := def.StaticField(name); !ok {
			if _, ok := def.FirstStaticMethod(name); !ok {
				continue
			}
		}
		if _, err := m.index.PutStaticMember(def.BinaryName, name, from); err != nil {
			return false, err
		}
	}
	return true, nil
}

// Len returns the number of registered types.
func (m *DefMap) Len() int {
	return len(m.items)
}

// TypeNames returns every registered binary name, sorted.
func (m *DefMap) TypeNames() []javaname.TypeName {
	names := make([]javaname.TypeName, 0, len(m.items))
	for name := range m.items {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return names[i] < names[j]
	})
	return names
}

// ItemByTypeName implements part of the resolver.WorkspaceDefMap interface.
func (m *DefMap) ItemByTypeName(name javaname.TypeName) (hir.ItemID, bool) {
	item, ok := m.items[name]
	return item, ok
}

// TypeName implements part of the resolver.WorkspaceDefMap interface.
func (m *DefMap) TypeName(item hir.ItemID) (javaname.TypeName, bool) {
	name, ok := m.names[item]
	return name, ok
}

// TypeDef implements part of the resolver.WorkspaceDefMap interface.
func (m *DefMap) TypeDef(item hir.ItemID) (*hir.TypeDef, bool) {
	def, ok := m.defs[item]
	return def, ok
}

// ResolveType implements part of the typeindex.TypeIndex interface.
func (m *DefMap) ResolveType(name javaname.QualifiedName) (javaname.TypeName, bool) {
	return m.index.ResolveType(name)
}

// ResolveTypeInPackage implements part of the typeindex.TypeIndex interface.
func (m *DefMap) ResolveTypeInPackage(pkg javaname.PackageName, name javaname.Name) (javaname.TypeName, bool) {
	return m.index.ResolveTypeInPackage(pkg, name)
}

// PackageExists implements part of the typeindex.TypeIndex interface.
func (m *DefMap) PackageExists(pkg javaname.PackageName) bool {
	return m.index.PackageExists(pkg)
}

// ResolveStaticMember implements part of the typeindex.TypeIndex interface.
func (m *DefMap) ResolveStaticMember(owner javaname.TypeName, name javaname.Name) (javaname.StaticMemberID, bool) {
	return m.index.ResolveStaticMember(owner, name)
}

// Label returns the label recorded for a workspace type.
func (m *DefMap) Label(name javaname.TypeName) (label.Label, bool) {
	return m.index.Label(name)
}

// String implements fmt.Stringer
func (m *DefMap) String() string {
	return m.index.String()
}

// sortedNames returns the field and method names of def in a stable order.
func sortedNames(def *hir.TypeDef) []javaname.Name {
	seen := make(map[javaname.Name]bool, len(def.Fields)+len(def.Methods))
	var names []javaname.Name
	for name := range def.Fields {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for name := range def.Methods {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return names[i] < names[j]
	})
	return names
}
