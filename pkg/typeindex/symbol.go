package typeindex

import (
	"fmt"

	"github.com/bazelbuild/bazel-gazelle/label"

	"github.com/stackb/javaresolve/pkg/javaname"
)

// SymbolKind classifies an indexed symbol.
type SymbolKind int

const (
	SymbolType SymbolKind = iota
	SymbolPackage
	SymbolStaticMember
)

var symbolKindNames = map[SymbolKind]string{
	SymbolType:         "TYPE",
	SymbolPackage:      "PACKAGE",
	SymbolStaticMember: "STATIC_MEMBER",
}

// String implements fmt.Stringer
func (k SymbolKind) String() string {
	return symbolKindNames[k]
}

// Symbol associates an indexed name with the label that provides it.
type Symbol struct {
	// Kind is the kind of symbol this is.
	Kind SymbolKind
	// Name is the canonical name (type binary name, package name or member
	// id).
	Name string
	// Label is the bazel label of the jar or rule the symbol comes from.
	Label label.Label
	// Provider is the name of the index that supplied the symbol.
	Provider string
}

// NewSymbol constructs a new symbol pointer with the given arguments.
func NewSymbol(kind SymbolKind, name, provider string, from label.Label) *Symbol {
	return &Symbol{
		Kind:     kind,
		Name:     name,
		Provider: provider,
		Label:    from,
	}
}

// TypeName returns the symbol name as a type name.
func (s *Symbol) TypeName() javaname.TypeName {
	return javaname.TypeName(s.Name)
}

// String implements fmt.Stringer
func (s *Symbol) String() string {
	return fmt.Sprintf("(%s<%v> %s<%v>)", s.Name, s.Kind, s.Label, s.Provider)
}
