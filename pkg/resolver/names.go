package resolver

import (
	"github.com/stackb/javaresolve/pkg/javaname"
)

// ResolveNameDetailed resolves a simple name from scope outwards across the
// value, type and package namespaces.  At each scope values win over types;
// import, package and universe scopes then apply their own rules before the
// parent is tried.  Method names are resolved by ResolveMethodNameDetailed.
func (r *Resolver) ResolveNameDetailed(scopes *ScopeGraph, scope ScopeID, name javaname.Name) NameResolution {
	var result NameResolution = Unresolved{}
	scopes.walk(scope, func(data *ScopeData) bool {
		if v, ok := data.Values[name]; ok {
			result = Resolved{v}
			return true
		}
		if t, ok := data.Types[name]; ok {
			result = Resolved{Type{t}}
			return true
		}
		switch data.Kind {
		case ImportScope:
			result = r.resolveInImportScope(data, name)
		case PackageScope:
			if data.Package == nil {
				break
			}
			next := data.Package.Child(name)
			if r.packageExists(next) {
				result = Resolved{Package{javaname.PackageID(next.Dotted())}}
			}
		case UniverseScope:
			if ty, ok := r.resolveTypeInJavaLang(name); ok {
				result = Resolved{Type{r.typeResolutionFromName(ty)}}
			}
		}
		return !IsUnresolved(result)
	})
	return result
}

// ResolveName is ResolveNameDetailed with ambiguity discarded.
func (r *Resolver) ResolveName(scopes *ScopeGraph, scope ScopeID, name javaname.Name) (Resolution, bool) {
	return r.ResolveNameDetailed(scopes, scope, name).Option()
}

func (r *Resolver) resolveInImportScope(data *ScopeData, name javaname.Name) NameResolution {
	imports := data.Imports
	if imports == nil {
		imports = emptyImports
	}
	if nr := r.resolveStaticImports(imports, name); !IsUnresolved(nr) {
		return nr
	}
	return r.typeResolutions(r.ResolveImportDetailed(imports, data.Package, name))
}

// ResolveTypeNameDetailed resolves a simple name in the type namespace only,
// as in a type context where locals and fields cannot appear.
func (r *Resolver) ResolveTypeNameDetailed(scopes *ScopeGraph, scope ScopeID, name javaname.Name) NameResolution {
	var result NameResolution = Unresolved{}
	scopes.walk(scope, func(data *ScopeData) bool {
		if t, ok := data.Types[name]; ok {
			result = Resolved{Type{t}}
			return true
		}
		switch data.Kind {
		case ImportScope:
			imports := data.Imports
			if imports == nil {
				imports = emptyImports
			}
			result = r.typeResolutions(r.ResolveImportDetailed(imports, data.Package, name))
		case UniverseScope:
			if ty, ok := r.resolveTypeInJavaLang(name); ok {
				result = Resolved{Type{r.typeResolutionFromName(ty)}}
			}
		}
		return !IsUnresolved(result)
	})
	return result
}

// ResolveTypeName is ResolveTypeNameDetailed with ambiguity discarded.
func (r *Resolver) ResolveTypeName(scopes *ScopeGraph, scope ScopeID, name javaname.Name) (TypeResolution, bool) {
	res, ok := r.ResolveTypeNameDetailed(scopes, scope, name).Option()
	if !ok {
		return nil, false
	}
	t, ok := res.(Type)
	if !ok {
		return nil, false
	}
	return t.Type, true
}

// ResolveValueNameDetailed resolves a simple name in the value namespace,
// plus static imports.
func (r *Resolver) ResolveValueNameDetailed(scopes *ScopeGraph, scope ScopeID, name javaname.Name) NameResolution {
	var result NameResolution = Unresolved{}
	scopes.walk(scope, func(data *ScopeData) bool {
		if v, ok := data.Values[name]; ok {
			result = Resolved{v}
			return true
		}
		if data.Kind == ImportScope {
			result = r.resolveStaticImports(data.Imports, name)
		}
		return !IsUnresolved(result)
	})
	return result
}

// ResolveValueName is ResolveValueNameDetailed with ambiguity discarded.
func (r *Resolver) ResolveValueName(scopes *ScopeGraph, scope ScopeID, name javaname.Name) (Resolution, bool) {
	return r.ResolveValueNameDetailed(scopes, scope, name).Option()
}

// ResolveMethodNameDetailed resolves the callee of an unqualified method
// invocation: method bindings in scope, plus static imports.
func (r *Resolver) ResolveMethodNameDetailed(scopes *ScopeGraph, scope ScopeID, name javaname.Name) NameResolution {
	var result NameResolution = Unresolved{}
	scopes.walk(scope, func(data *ScopeData) bool {
		if ids, ok := data.Methods[name]; ok && len(ids) > 0 {
			result = Resolved{Methods{IDs: append(ids[:0:0], ids...)}}
			return true
		}
		if data.Kind == ImportScope {
			result = r.resolveStaticImports(data.Imports, name)
		}
		return !IsUnresolved(result)
	})
	return result
}

// ResolveMethodName is ResolveMethodNameDetailed with ambiguity discarded.
func (r *Resolver) ResolveMethodName(scopes *ScopeGraph, scope ScopeID, name javaname.Name) (Resolution, bool) {
	return r.ResolveMethodNameDetailed(scopes, scope, name).Option()
}
