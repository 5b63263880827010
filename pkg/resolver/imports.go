package resolver

import (
	"github.com/stackb/javaresolve/pkg/hir"
	"github.com/stackb/javaresolve/pkg/javaname"
)

// ResolveImportDetailed resolves a simple type name through the imports and
// package of a file, in precedence order:
//
//  1. single-type imports (including statically imported member types)
//  2. types of the same package
//  3. on-demand imports, then the implicit java.lang.*
//
// A found or ambiguous result at one tier hides every later tier.  pkg may
// be nil when the file's package is unknown.
func (r *Resolver) ResolveImportDetailed(imports *ImportMap, pkg *javaname.PackageName, name javaname.Name) TypeLookup {
	if imports == nil {
		imports = emptyImports
	}
	if single := r.resolveSingleTypeImports(imports, name); !single.NotFound() {
		return single
	}
	if pkg != nil {
		if ty, ok := r.resolveTypeInPackageIndex(*pkg, name); ok {
			return TypeLookup{Candidates: []javaname.TypeName{ty}}
		}
	}
	return r.resolveOnDemandTypeImports(imports, name)
}

// ResolveImport is ResolveImportDetailed with ambiguity discarded.
func (r *Resolver) ResolveImport(imports *ImportMap, pkg *javaname.PackageName, name javaname.Name) (javaname.TypeName, bool) {
	return r.ResolveImportDetailed(imports, pkg, name).Found()
}

func (r *Resolver) resolveSingleTypeImports(imports *ImportMap, name javaname.Name) TypeLookup {
	var lookup TypeLookup
	for _, imp := range imports.TypeSingle {
		if imp.Imported != name {
			continue
		}
		if ty, ok := r.resolveTypeInIndex(imp.Path); ok {
			lookup.add(ty)
		}
	}
	for _, imp := range imports.StaticSingle {
		if imp.Imported != name {
			continue
		}
		if ty, ok := r.resolveStaticImportedMemberType(imp.Owner, imp.Member); ok {
			lookup.add(ty)
		}
	}
	if lookup.Ambiguous() {
		r.logger.Trace().Str("name", string(name)).Msgf("ambiguous single-type import: %v", lookup.Candidates)
	}
	return lookup.sorted()
}

// resolveExplicitOnDemandTypeImports collects the candidates of every
// `import p.*;` and the member types of every `import static T.*;`.
func (r *Resolver) resolveExplicitOnDemandTypeImports(imports *ImportMap, name javaname.Name) TypeLookup {
	var lookup TypeLookup
	for _, imp := range imports.TypeStar {
		// `import X.*;` imports the member types of X when X names a type,
		// even if a package of the same name exists.
		if owner, ok := r.resolveTypeInIndex(imp.Path); ok {
			if ty, ok := r.resolveMemberType(owner, imp.Path, name); ok {
				lookup.add(ty)
			}
			continue
		}
		if ty, ok := r.resolveTypeInPackageIndex(imp.Path.Package(), name); ok {
			lookup.add(ty)
		}
	}
	for _, imp := range imports.StaticStar {
		if ty, ok := r.resolveStaticImportedMemberType(imp.Owner, name); ok {
			lookup.add(ty)
		}
	}
	return lookup.sorted()
}

// resolveOnDemandTypeImports folds the implicit java.lang.* into the
// on-demand tier.  Ambiguity among explicit imports is reported without
// consulting java.lang; otherwise a java.lang type distinct from the
// explicit match makes the name ambiguous.
func (r *Resolver) resolveOnDemandTypeImports(imports *ImportMap, name javaname.Name) TypeLookup {
	lookup := r.resolveExplicitOnDemandTypeImports(imports, name)
	if lookup.Ambiguous() {
		r.logger.Trace().Str("name", string(name)).Msgf("ambiguous on-demand import: %v", lookup.Candidates)
		return lookup
	}
	if ty, ok := r.resolveTypeInJavaLang(name); ok {
		lookup.add(ty)
		if lookup.Ambiguous() {
			r.logger.Trace().Str("name", string(name)).Msgf("on-demand import conflicts with java.lang: %v", lookup.Candidates)
		}
	}
	return lookup
}

// resolveMemberType finds the member type name of owner, where path is the
// source spelling of owner.  The binary form owner$name is preferred so a
// subpackage type is never mistaken for a member; a dotted hit is accepted
// only when it is nested under owner.
func (r *Resolver) resolveMemberType(owner javaname.TypeName, path javaname.QualifiedName, name javaname.Name) (javaname.TypeName, bool) {
	if ty, ok := r.resolveTypeInIndexExact(owner.Nested(name).QualifiedName()); ok {
		return ty, true
	}
	ty, ok := r.resolveTypeInIndex(path.Append(name))
	if !ok || !ty.IsNestedIn(owner) {
		return "", false
	}
	return ty, true
}

// resolveStaticImportedMemberType resolves owner.member as a member type
// brought in by a static import.  The owner must resolve as a type, and a
// workspace member type must be static.
func (r *Resolver) resolveStaticImportedMemberType(owner javaname.QualifiedName, member javaname.Name) (javaname.TypeName, bool) {
	ownerType, ok := r.resolveTypeInIndex(owner)
	if !ok {
		return "", false
	}
	ty, ok := r.resolveMemberType(ownerType, owner, member)
	if !ok || !r.workspaceAllowsStaticImportOfMemberType(ty) {
		return "", false
	}
	return ty, true
}

// workspaceAllowsStaticImportOfMemberType reports whether ty may be imported
// statically.  External indices do not record staticness of member types, so
// anything not declared in the workspace is allowed.
func (r *Resolver) workspaceAllowsStaticImportOfMemberType(ty javaname.TypeName) bool {
	if r.workspace == nil || ty.IsJava() {
		return true
	}
	item, ok := r.workspace.ItemByTypeName(ty)
	if !ok {
		return true
	}
	def, ok := r.workspace.TypeDef(item)
	if !ok {
		return true
	}
	// only member types can be imported statically
	if def.Enclosing == nil {
		return false
	}
	if def.IsStatic || def.Kind.ImplicitlyStatic() {
		return true
	}
	// member types of interfaces and annotations are implicitly static
	enclosing, ok := r.workspace.TypeDef(*def.Enclosing)
	if !ok {
		return false
	}
	return enclosing.Kind == hir.KindInterface || enclosing.Kind == hir.KindAnnotation
}
