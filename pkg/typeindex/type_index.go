// Package typeindex provides the type lookup capability consumed by the
// resolver, together with in-memory implementations loaded from index specs
// and jar files.
package typeindex

import (
	"github.com/stackb/javaresolve/pkg/javaname"
)

// TypeIndex answers type and package questions for one backing store (the
// JDK, the classpath or the workspace).  Implementations must be safe for
// concurrent readers and must not change while queries are in flight.
type TypeIndex interface {
	// ResolveType looks up the type denoted by the given fully-qualified
	// name.  Nested types are addressed by their binary name ("a.B$C").
	ResolveType(name javaname.QualifiedName) (javaname.TypeName, bool)

	// ResolveTypeInPackage looks up the top-level type with the given simple
	// name declared in pkg.
	ResolveTypeInPackage(pkg javaname.PackageName, name javaname.Name) (javaname.TypeName, bool)

	// PackageExists reports whether pkg (or any subpackage of it) holds types.
	PackageExists(pkg javaname.PackageName) bool

	// ResolveStaticMember looks up a static field or method of owner.
	ResolveStaticMember(owner javaname.TypeName, name javaname.Name) (javaname.StaticMemberID, bool)
}
