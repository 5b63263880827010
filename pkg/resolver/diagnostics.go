package resolver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stackb/javaresolve/pkg/javaname"
)

// DiagnosticCode classifies an import diagnostic.
type DiagnosticCode string

const (
	UnresolvedImport DiagnosticCode = "unresolved-import"
	AmbiguousImport  DiagnosticCode = "ambiguous-import"
	DuplicateImport  DiagnosticCode = "duplicate-import"
)

// Diagnostic is an advisory finding about an import declaration.
type Diagnostic struct {
	Code    DiagnosticCode
	Span    Span
	Message string
}

// String implements fmt.Stringer
func (d Diagnostic) String() string {
	return fmt.Sprintf("%v: %s: %s", d.Span, d.Code, d.Message)
}

// DiagnoseImports validates the import declarations of a file.  It reports
// single imports of one simple name that target different types, the same
// target imported twice, and imports whose target does not exist.  The result
// is sorted by span, then code, then message.  Diagnostics never affect name
// resolution.
func (r *Resolver) DiagnoseImports(imports *ImportMap) []Diagnostic {
	if imports == nil {
		return nil
	}
	var diags []Diagnostic

	singles := newImportGroups()
	for _, imp := range imports.TypeSingle {
		singles.span(imp.Imported, imp.Span)
		ty, ok := r.resolveTypeInIndex(imp.Path)
		if !ok {
			diags = append(diags, unresolvedImportDiagnostic(imp.Span, imp.Path.Dotted()))
			continue
		}
		if !singles.add(imp.Imported, string(ty)) {
			diags = append(diags, duplicateImportDiagnostic(imp.Span, string(ty)))
		}
	}
	diags = append(diags, singles.ambiguities()...)

	for _, imp := range imports.TypeStar {
		// X in `import X.*;` may name a package or a type
		if r.packageExists(imp.Path.Package()) {
			continue
		}
		if _, ok := r.resolveTypeInIndex(imp.Path); !ok {
			diags = append(diags, unresolvedImportDiagnostic(imp.Span, imp.Path.Dotted()+".*"))
		}
	}

	statics := newImportGroups()
	for _, imp := range imports.StaticSingle {
		statics.span(imp.Imported, imp.Span)
		written := fmt.Sprintf("static %s.%s", imp.Owner.Dotted(), imp.Member)
		owner, ok := r.resolveTypeInIndex(imp.Owner)
		if !ok || !r.staticImportResolves(owner, imp) {
			diags = append(diags, unresolvedImportDiagnostic(imp.Span, written))
			continue
		}
		target := string(owner) + "." + string(imp.Member)
		if !statics.add(imp.Imported, target) {
			diags = append(diags, duplicateImportDiagnostic(imp.Span, "static "+target))
		}
	}
	diags = append(diags, statics.ambiguities()...)

	for _, imp := range imports.StaticStar {
		if _, ok := r.resolveTypeInIndex(imp.Owner); !ok {
			diags = append(diags, unresolvedImportDiagnostic(imp.Span, fmt.Sprintf("static %s.*", imp.Owner.Dotted())))
		}
	}

	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		if a.Span != b.Span {
			return a.Span.Less(b.Span)
		}
		if a.Code != b.Code {
			return a.Code < b.Code
		}
		return a.Message < b.Message
	})
	return diags
}

// staticImportResolves reports whether a static single import names a
// static member or a member type of owner.
func (r *Resolver) staticImportResolves(owner javaname.TypeName, imp StaticSingleImport) bool {
	if _, ok := r.resolveStaticMemberInIndex(owner, imp.Member); ok {
		return true
	}
	_, ok := r.resolveStaticImportedMemberType(imp.Owner, imp.Member)
	return ok
}

// importGroups tracks the distinct targets imported under each simple name,
// in declaration order.
type importGroups struct {
	names   []javaname.Name
	spans   map[javaname.Name]Span
	targets map[javaname.Name][]string
}

func newImportGroups() *importGroups {
	return &importGroups{
		spans:   make(map[javaname.Name]Span),
		targets: make(map[javaname.Name][]string),
	}
}

// span records the span of the first import of name.
func (g *importGroups) span(name javaname.Name, span Span) {
	if _, ok := g.spans[name]; ok {
		return
	}
	g.spans[name] = span
	g.names = append(g.names, name)
}

// add records a target and reports false when it was already imported under
// the same name.
func (g *importGroups) add(name javaname.Name, target string) bool {
	for _, t := range g.targets[name] {
		if t == target {
			return false
		}
	}
	g.targets[name] = append(g.targets[name], target)
	return true
}

func (g *importGroups) ambiguities() (diags []Diagnostic) {
	for _, name := range g.names {
		targets := g.targets[name]
		if len(targets) <= 1 {
			continue
		}
		diags = append(diags, Diagnostic{
			Code:    AmbiguousImport,
			Span:    g.spans[name],
			Message: fmt.Sprintf("ambiguous import `%s`: %s", name, strings.Join(targets, ", ")),
		})
	}
	return
}

func unresolvedImportDiagnostic(span Span, path string) Diagnostic {
	return Diagnostic{
		Code:    UnresolvedImport,
		Span:    span,
		Message: fmt.Sprintf("unresolved import `%s`", path),
	}
}

func duplicateImportDiagnostic(span Span, target string) Diagnostic {
	return Diagnostic{
		Code:    DuplicateImport,
		Span:    span,
		Message: fmt.Sprintf("duplicate import `%s`", target),
	}
}
