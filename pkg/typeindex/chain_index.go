package typeindex

import (
	"strings"

	"github.com/bazelbuild/bazel-gazelle/label"

	"github.com/stackb/javaresolve/pkg/javaname"
)

// ChainIndex implements TypeIndex over an ordered chain of indices.  Earlier
// entries shadow later ones, the way earlier classpath entries win at runtime.
type ChainIndex struct {
	chain []TypeIndex
}

func NewChainIndex(chain ...TypeIndex) *ChainIndex {
	return &ChainIndex{
		chain: chain,
	}
}

// Len returns the number of indices in the chain.
func (r *ChainIndex) Len() int {
	return len(r.chain)
}

// ResolveType implements part of the TypeIndex interface
func (r *ChainIndex) ResolveType(name javaname.QualifiedName) (javaname.TypeName, bool) {
	for _, next := range r.chain {
		if ty, ok := next.ResolveType(name); ok {
			return ty, true
		}
	}
	return "", false
}

// ResolveTypeInPackage implements part of the TypeIndex interface
func (r *ChainIndex) ResolveTypeInPackage(pkg javaname.PackageName, name javaname.Name) (javaname.TypeName, bool) {
	for _, next := range r.chain {
		if ty, ok := next.ResolveTypeInPackage(pkg, name); ok {
			return ty, true
		}
	}
	return "", false
}

// PackageExists implements part of the TypeIndex interface
func (r *ChainIndex) PackageExists(pkg javaname.PackageName) bool {
	for _, next := range r.chain {
		if next.PackageExists(pkg) {
			return true
		}
	}
	return false
}

// ResolveStaticMember implements part of the TypeIndex interface
func (r *ChainIndex) ResolveStaticMember(owner javaname.TypeName, name javaname.Name) (javaname.StaticMemberID, bool) {
	for _, next := range r.chain {
		if id, ok := next.ResolveStaticMember(owner, name); ok {
			return id, true
		}
	}
	return "", false
}

// Label returns the label of the first chained index that provides the type
// and records provenance.
func (r *ChainIndex) Label(name javaname.TypeName) (label.Label, bool) {
	for _, next := range r.chain {
		lp, ok := next.(LabelProvider)
		if !ok {
			continue
		}
		if from, ok := lp.Label(name); ok {
			return from, true
		}
	}
	return label.NoLabel, false
}

// String implements the fmt.Stringer interface
func (r *ChainIndex) String() string {
	var buf strings.Builder
	for _, next := range r.chain {
		if s, ok := next.(interface{ String() string }); ok {
			buf.WriteString(s.String())
			buf.WriteRune('\n')
		}
	}
	return buf.String()
}

// LabelProvider is implemented by indices that know which label provides a
// type.
type LabelProvider interface {
	Label(name javaname.TypeName) (label.Label, bool)
}
