package resolver

import (
	"fmt"
	"strings"

	"github.com/stackb/javaresolve/pkg/javaname"
)

// Span is a half-open byte range [Start, End) in a source file.
type Span struct {
	Start int
	End   int
}

// String implements fmt.Stringer
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Less orders spans by start, then end.
func (s Span) Less(other Span) bool {
	if s.Start != other.Start {
		return s.Start < other.Start
	}
	return s.End < other.End
}

// TypeSingleImport is `import p.q.Name;`.
type TypeSingleImport struct {
	// Imported is the simple name brought into scope (the last path segment).
	Imported javaname.Name
	// Path is the full target path.
	Path javaname.QualifiedName
	Span Span
}

// TypeStarImport is `import p.q.*;`.  Path may name a package or a type.
type TypeStarImport struct {
	Path javaname.QualifiedName
	Span Span
}

// StaticSingleImport is `import static p.q.T.member;`.
type StaticSingleImport struct {
	Owner    javaname.QualifiedName
	Member   javaname.Name
	Imported javaname.Name
	Span     Span
}

// StaticStarImport is `import static p.q.T.*;`.
type StaticStarImport struct {
	Owner javaname.QualifiedName
	Span  Span
}

// ImportMap is the categorized set of import declarations of one file.  Each
// list keeps source declaration order; resolution collects all candidates of
// a precedence tier before deciding, so the order only affects diagnostics.
type ImportMap struct {
	TypeSingle   []TypeSingleImport
	TypeStar     []TypeStarImport
	StaticSingle []StaticSingleImport
	StaticStar   []StaticStarImport
}

// NewImportMap returns an empty ImportMap.
func NewImportMap() *ImportMap {
	return &ImportMap{}
}

// emptyImports stands in for a missing import map on an import scope.
var emptyImports = &ImportMap{}

// Len returns the total number of import declarations.
func (m *ImportMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.TypeSingle) + len(m.TypeStar) + len(m.StaticSingle) + len(m.StaticStar)
}

// AddTypeSingle records `import <path>;`.
func (m *ImportMap) AddTypeSingle(path javaname.QualifiedName, span Span) {
	m.TypeSingle = append(m.TypeSingle, TypeSingleImport{
		Imported: path.Last(),
		Path:     path,
		Span:     span,
	})
}

// AddTypeStar records `import <path>.*;`.
func (m *ImportMap) AddTypeStar(path javaname.QualifiedName, span Span) {
	m.TypeStar = append(m.TypeStar, TypeStarImport{Path: path, Span: span})
}

// AddStaticSingle records `import static <path>;`, where the last segment of
// path is the member.  Paths with fewer than two segments are ignored.
func (m *ImportMap) AddStaticSingle(path javaname.QualifiedName, span Span) {
	if len(path) < 2 {
		return
	}
	member := path.Last()
	m.StaticSingle = append(m.StaticSingle, StaticSingleImport{
		Owner:    path[:len(path)-1].Append(),
		Member:   member,
		Imported: member,
		Span:     span,
	})
}

// AddStaticStar records `import static <owner>.*;`.
func (m *ImportMap) AddStaticStar(owner javaname.QualifiedName, span Span) {
	m.StaticStar = append(m.StaticStar, StaticStarImport{Owner: owner, Span: span})
}

// Reversed returns a copy with every list in reverse declaration order.
func (m *ImportMap) Reversed() *ImportMap {
	out := &ImportMap{
		TypeSingle:   make([]TypeSingleImport, len(m.TypeSingle)),
		TypeStar:     make([]TypeStarImport, len(m.TypeStar)),
		StaticSingle: make([]StaticSingleImport, len(m.StaticSingle)),
		StaticStar:   make([]StaticStarImport, len(m.StaticStar)),
	}
	for i, imp := range m.TypeSingle {
		out.TypeSingle[len(m.TypeSingle)-1-i] = imp
	}
	for i, imp := range m.TypeStar {
		out.TypeStar[len(m.TypeStar)-1-i] = imp
	}
	for i, imp := range m.StaticSingle {
		out.StaticSingle[len(m.StaticSingle)-1-i] = imp
	}
	for i, imp := range m.StaticStar {
		out.StaticStar[len(m.StaticStar)-1-i] = imp
	}
	return out
}

// String renders the map as import declarations, one per line.
func (m *ImportMap) String() string {
	var buf strings.Builder
	for _, imp := range m.TypeSingle {
		fmt.Fprintf(&buf, "import %s;\n", imp.Path)
	}
	for _, imp := range m.TypeStar {
		fmt.Fprintf(&buf, "import %s.*;\n", imp.Path)
	}
	for _, imp := range m.StaticSingle {
		fmt.Fprintf(&buf, "import static %s.%s;\n", imp.Owner, imp.Member)
	}
	for _, imp := range m.StaticStar {
		fmt.Fprintf(&buf, "import static %s.*;\n", imp.Owner)
	}
	return buf.String()
}
