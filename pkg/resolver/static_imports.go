package resolver

import (
	"github.com/stackb/javaresolve/pkg/javaname"
)

// ResolveStaticImportsDetailed resolves a simple name against the static
// imports of a file.  Single static imports shadow static-on-demand imports;
// several distinct members within one tier make the name ambiguous.
func (r *Resolver) ResolveStaticImportsDetailed(imports *ImportMap, name javaname.Name) StaticLookup {
	if imports == nil {
		return StaticLookup{}
	}

	var single StaticLookup
	for _, imp := range imports.StaticSingle {
		if imp.Imported != name {
			continue
		}
		owner, ok := r.resolveTypeInIndex(imp.Owner)
		if !ok {
			continue
		}
		if id, ok := r.resolveStaticMemberInIndex(owner, imp.Member); ok {
			single.add(id)
		}
	}
	if !single.NotFound() {
		return single.sorted()
	}

	var star StaticLookup
	for _, imp := range imports.StaticStar {
		owner, ok := r.resolveTypeInIndex(imp.Owner)
		if !ok {
			continue
		}
		if id, ok := r.resolveStaticMemberInIndex(owner, name); ok {
			star.add(id)
		}
	}
	if star.Ambiguous() {
		r.logger.Trace().Str("name", string(name)).Msgf("ambiguous static import: %v", star.Candidates)
	}
	return star.sorted()
}

func (r *Resolver) resolveStaticImports(imports *ImportMap, name javaname.Name) NameResolution {
	return r.staticResolutions(r.ResolveStaticImportsDetailed(imports, name))
}
