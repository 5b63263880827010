package resolver

import (
	"github.com/stackb/javaresolve/pkg/javaname"
)

// ResolveQualifiedName resolves a fully-qualified type name against the
// indices, with nested-type fallback.
func (r *Resolver) ResolveQualifiedName(path javaname.QualifiedName) (javaname.TypeName, bool) {
	return r.resolveTypeInIndex(path)
}

// ResolveQualifiedTypeInScope resolves a qualified type name where the first
// segment may be a simple name visible in scope (e.g. `Map.Entry` after
// `import java.util.Map;`).
func (r *Resolver) ResolveQualifiedTypeInScope(scopes *ScopeGraph, scope ScopeID, path javaname.QualifiedName) (javaname.TypeName, bool) {
	res, ok := r.ResolveQualifiedTypeResolutionInScope(scopes, scope, path)
	if !ok {
		return "", false
	}
	return r.TypeNameForResolution(scopes, res)
}

// ResolveQualifiedTypeResolutionInScope is ResolveQualifiedTypeInScope but
// keeps whether the type is declared in source.
//
// The path is first tried as a fully-qualified name.  Otherwise the first
// segment is resolved as a simple type name in scope and the remaining
// segments are taken as a chain of member types of it.
func (r *Resolver) ResolveQualifiedTypeResolutionInScope(scopes *ScopeGraph, scope ScopeID, path javaname.QualifiedName) (TypeResolution, bool) {
	if len(path) == 0 {
		return nil, false
	}
	if ty, ok := r.resolveTypeInIndex(path); ok {
		return r.typeResolutionFromName(ty), true
	}

	owner, ok := r.ResolveTypeName(scopes, scope, path[0])
	if !ok || len(path) == 1 {
		return owner, ok
	}
	ownerName, ok := r.TypeNameForResolution(scopes, owner)
	if !ok {
		return nil, false
	}

	rest := path[1:]
	binary := ownerName.Nested(rest...)
	if !binary.IsJava() {
		if item, ok := scopes.ItemByTypeName(binary); ok {
			return SourceType{Item: item}, true
		}
	}

	// prefer the binary form so a subpackage type is not mistaken for a
	// member type
	if ty, ok := r.resolveTypeInIndexExact(binary.QualifiedName()); ok {
		return r.typeResolutionFromName(ty), true
	}

	dotted := javaname.ParseQualifiedName(ownerName.SourceDotted()).Append(rest...)
	ty, ok := r.resolveTypeInIndex(dotted)
	if !ok || ty != binary {
		return nil, false
	}
	return r.typeResolutionFromName(ty), true
}
