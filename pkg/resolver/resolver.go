// Package resolver implements Java simple- and qualified-name resolution over
// a scope graph, an import map and a set of type indices.
package resolver

import (
	"github.com/rs/zerolog"

	"github.com/stackb/javaresolve/pkg/hir"
	"github.com/stackb/javaresolve/pkg/javaname"
	"github.com/stackb/javaresolve/pkg/typeindex"
)

// WorkspaceDefMap describes the types declared in workspace source.
type WorkspaceDefMap interface {
	// ItemByTypeName returns the item declaring the given binary name.
	ItemByTypeName(name javaname.TypeName) (hir.ItemID, bool)
	// TypeName returns the binary name of an item.
	TypeName(item hir.ItemID) (javaname.TypeName, bool)
	// TypeDef returns the member summary of an item.
	TypeDef(item hir.ItemID) (*hir.TypeDef, bool)
}

// ResolverOption configures a Resolver.
type ResolverOption func(r *Resolver) *Resolver

// WithClasspath attaches the index of dependency types.  It is consulted
// before the JDK for every name outside java.*.
func WithClasspath(classpath typeindex.TypeIndex) ResolverOption {
	return func(r *Resolver) *Resolver {
		r.classpath = classpath
		return r
	}
}

// WithWorkspace attaches the workspace definitions so that index hits can
// be reported as source types.
func WithWorkspace(workspace WorkspaceDefMap) ResolverOption {
	return func(r *Resolver) *Resolver {
		r.workspace = workspace
		return r
	}
}

// WithLogger sets the logger for trace events.  The default discards them.
func WithLogger(logger zerolog.Logger) ResolverOption {
	return func(r *Resolver) *Resolver {
		r.logger = logger
		return r
	}
}

// New creates a Resolver over the given JDK index.  A Resolver holds only
// references to its indices and can be used from many goroutines as long as
// the indices are not mutated.
func New(jdk typeindex.TypeIndex, options ...ResolverOption) *Resolver {
	r := &Resolver{
		jdk:    jdk,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		r = opt(r)
	}
	r.stores = []typeindex.TypeIndex{jdk}
	if r.classpath != nil {
		r.stores = []typeindex.TypeIndex{r.classpath, jdk}
	}
	return r
}

// Resolver answers what a name denotes.  All methods are pure functions of
// their inputs and the attached indices.
type Resolver struct {
	logger zerolog.Logger

	jdk       typeindex.TypeIndex
	classpath typeindex.TypeIndex
	workspace WorkspaceDefMap

	// stores are the indices consulted for names outside java.*, in
	// precedence order.  The JDK is always last.
	stores []typeindex.TypeIndex
}

// indicesFor returns the indices that may answer for a name.  Only the JDK
// may define java.* types.
func (r *Resolver) indicesFor(java bool) []typeindex.TypeIndex {
	if java {
		return r.stores[len(r.stores)-1:]
	}
	return r.stores
}

// resolveTypeInIndex resolves a qualified name, retrying trailing segments as
// nested types in each index before moving to the next.
func (r *Resolver) resolveTypeInIndex(name javaname.QualifiedName) (javaname.TypeName, bool) {
	if len(name) == 0 {
		return "", false
	}
	for _, ix := range r.indicesFor(name.IsJava()) {
		if ty, ok := resolveTypeWithNesting(ix, name); ok {
			return ty, true
		}
	}
	return "", false
}

// resolveTypeInIndexExact resolves a name without the nesting heuristic.
// Callers use it for binary names they have built themselves.
func (r *Resolver) resolveTypeInIndexExact(name javaname.QualifiedName) (javaname.TypeName, bool) {
	if len(name) == 0 {
		return "", false
	}
	for _, ix := range r.indicesFor(name.IsJava()) {
		if ty, ok := ix.ResolveType(name); ok {
			return ty, true
		}
	}
	return "", false
}

func (r *Resolver) resolveTypeInPackageIndex(pkg javaname.PackageName, name javaname.Name) (javaname.TypeName, bool) {
	for _, ix := range r.indicesFor(pkg.IsJava()) {
		if ty, ok := ix.ResolveTypeInPackage(pkg, name); ok {
			return ty, true
		}
	}
	return "", false
}

// resolveTypeInJavaLang consults the JDK only.  Classpath types claiming
// java.lang are not part of the implicit import.
func (r *Resolver) resolveTypeInJavaLang(name javaname.Name) (javaname.TypeName, bool) {
	return r.jdk.ResolveTypeInPackage(javaname.JavaLang, name)
}

func (r *Resolver) packageExists(pkg javaname.PackageName) bool {
	for _, ix := range r.indicesFor(pkg.IsJava()) {
		if ix.PackageExists(pkg) {
			return true
		}
	}
	return false
}

func (r *Resolver) resolveStaticMemberInIndex(owner javaname.TypeName, name javaname.Name) (javaname.StaticMemberID, bool) {
	for _, ix := range r.indicesFor(owner.IsJava()) {
		if id, ok := ix.ResolveStaticMember(owner, name); ok {
			return id, true
		}
	}
	return "", false
}

// typeResolutionFromName wraps an index hit, preferring the workspace
// definition when there is one.  java.* types are always external.
func (r *Resolver) typeResolutionFromName(ty javaname.TypeName) TypeResolution {
	if ty.IsJava() || r.workspace == nil {
		return ExternalType{Name: ty}
	}
	if item, ok := r.workspace.ItemByTypeName(ty); ok {
		return SourceType{Item: item}
	}
	return ExternalType{Name: ty}
}

// staticMemberResolutionFromID maps an index member id onto a workspace
// field or method when the owner is declared in source.
func (r *Resolver) staticMemberResolutionFromID(id javaname.StaticMemberID) StaticMemberResolution {
	external := ExternalMember{ID: id}
	if r.workspace == nil {
		return external
	}
	owner, member, ok := id.Split()
	if !ok || owner.IsJava() {
		return external
	}
	item, ok := r.workspace.ItemByTypeName(owner)
	if !ok {
		return external
	}
	def, ok := r.workspace.TypeDef(item)
	if !ok {
		return external
	}
	if field, ok := def.StaticField(member); ok {
		return SourceField{ID: field.ID}
	}
	if method, ok := def.FirstStaticMethod(member); ok {
		return SourceMethod{ID: method.ID}
	}
	return external
}

// typeNameForSource reports the binary name of a source item, from the file
// first and then the workspace.
func (r *Resolver) typeNameForSource(scopes *ScopeGraph, item hir.ItemID) (javaname.TypeName, bool) {
	if scopes != nil {
		if name, ok := scopes.TypeName(item); ok {
			return name, true
		}
	}
	if r.workspace != nil {
		return r.workspace.TypeName(item)
	}
	return "", false
}

// TypeNameForResolution returns the canonical name of a resolved type.  It
// reports false for a source item neither the file nor the workspace knows.
func (r *Resolver) TypeNameForResolution(scopes *ScopeGraph, res TypeResolution) (javaname.TypeName, bool) {
	switch res := res.(type) {
	case ExternalType:
		return res.Name, true
	case SourceType:
		return r.typeNameForSource(scopes, res.Item)
	}
	return "", false
}

func (r *Resolver) typeResolutions(l TypeLookup) NameResolution {
	switch len(l.Candidates) {
	case 0:
		return Unresolved{}
	case 1:
		return Resolved{Type{r.typeResolutionFromName(l.Candidates[0])}}
	}
	candidates := make([]Resolution, len(l.Candidates))
	for i, ty := range l.Candidates {
		candidates[i] = Type{r.typeResolutionFromName(ty)}
	}
	return Ambiguous{Candidates: candidates}
}

func (r *Resolver) staticResolutions(l StaticLookup) NameResolution {
	switch len(l.Candidates) {
	case 0:
		return Unresolved{}
	case 1:
		return Resolved{StaticMember{r.staticMemberResolutionFromID(l.Candidates[0])}}
	}
	candidates := make([]Resolution, len(l.Candidates))
	for i, id := range l.Candidates {
		candidates[i] = StaticMember{r.staticMemberResolutionFromID(id)}
	}
	return Ambiguous{Candidates: candidates}
}

// resolveTypeWithNesting tries name as written, then as a nested type.
func resolveTypeWithNesting(ix typeindex.TypeIndex, name javaname.QualifiedName) (javaname.TypeName, bool) {
	if ty, ok := ix.ResolveType(name); ok {
		return ty, true
	}
	return resolveNestedType(ix, name)
}

// resolveNestedType reinterprets trailing segments as a binary nested chain,
// longest package prefix first: a.b.C.D tries a.b.C$D, then a.b$C$D, then
// a$b$C$D.
func resolveNestedType(ix typeindex.TypeIndex, name javaname.QualifiedName) (javaname.TypeName, bool) {
	if len(name) < 2 {
		return "", false
	}
	for split := len(name) - 2; split >= 0; split-- {
		candidate := make(javaname.QualifiedName, 0, split+1)
		candidate = append(candidate, name[:split]...)
		candidate = append(candidate, javaname.Name(javaname.TypeName(name[split]).Nested(name[split+1:]...)))
		if ty, ok := ix.ResolveType(candidate); ok {
			return ty, true
		}
	}
	return "", false
}
