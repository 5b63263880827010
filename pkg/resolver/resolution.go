package resolver

import (
	"fmt"
	"strings"

	"github.com/stackb/javaresolve/pkg/hir"
	"github.com/stackb/javaresolve/pkg/javaname"
)

// Resolution is the declaration a name denotes.  It is one of Local,
// Parameter, Field, Methods, Constructors, Type, Package or StaticMember.
type Resolution interface {
	fmt.Stringer
	isResolution()
}

// Local is a local variable declared in a body.
type Local struct {
	Owner hir.BodyOwner
	Local hir.LocalID
}

// Parameter is a formal parameter, by position.
type Parameter struct {
	Owner hir.ParamOwner
	Index int
}

// Field is a field of a source type.
type Field struct {
	ID hir.FieldID
}

// Methods is an overload set.
type Methods struct {
	IDs []hir.MethodID
}

// Constructors is a constructor overload set.
type Constructors struct {
	IDs []hir.ConstructorID
}

// Type is a type, from source or from an index.
type Type struct {
	Type TypeResolution
}

// Package is a package, identified by its dotted name.
type Package struct {
	ID javaname.PackageID
}

// StaticMember is a statically imported field or method.
type StaticMember struct {
	Member StaticMemberResolution
}

func (Local) isResolution()        {}
func (Parameter) isResolution()    {}
func (Field) isResolution()        {}
func (Methods) isResolution()      {}
func (Constructors) isResolution() {}
func (Type) isResolution()         {}
func (Package) isResolution()      {}
func (StaticMember) isResolution() {}

func (r Local) String() string        { return fmt.Sprintf("local(%v#%d)", r.Owner, r.Local) }
func (r Parameter) String() string    { return fmt.Sprintf("param(%v#%d)", r.Owner, r.Index) }
func (r Field) String() string        { return fmt.Sprintf("field(%v)", r.ID) }
func (r Methods) String() string      { return fmt.Sprintf("methods(%v)", r.IDs) }
func (r Constructors) String() string { return fmt.Sprintf("constructors(%v)", r.IDs) }
func (r Type) String() string         { return fmt.Sprintf("type(%v)", r.Type) }
func (r Package) String() string      { return fmt.Sprintf("package(%s)", r.ID) }
func (r StaticMember) String() string { return fmt.Sprintf("static(%v)", r.Member) }

// TypeResolution is a resolved type: SourceType or ExternalType.
type TypeResolution interface {
	fmt.Stringer
	isTypeResolution()
}

// SourceType is a type declared in the workspace.
type SourceType struct {
	Item hir.ItemID
}

// ExternalType is a type known to the JDK or classpath index.
type ExternalType struct {
	Name javaname.TypeName
}

func (SourceType) isTypeResolution()   {}
func (ExternalType) isTypeResolution() {}

func (t SourceType) String() string   { return "source:" + t.Item.String() }
func (t ExternalType) String() string { return t.Name.String() }

// StaticMemberResolution is a resolved static member: SourceField,
// SourceMethod or ExternalMember.
type StaticMemberResolution interface {
	fmt.Stringer
	isStaticMemberResolution()
}

// SourceField is a static field of a workspace type.
type SourceField struct {
	ID hir.FieldID
}

// SourceMethod is a static method of a workspace type.
type SourceMethod struct {
	ID hir.MethodID
}

// ExternalMember is a static member known to an index.
type ExternalMember struct {
	ID javaname.StaticMemberID
}

func (SourceField) isStaticMemberResolution()    {}
func (SourceMethod) isStaticMemberResolution()   {}
func (ExternalMember) isStaticMemberResolution() {}

func (m SourceField) String() string    { return fmt.Sprintf("source-field(%v)", m.ID) }
func (m SourceMethod) String() string   { return fmt.Sprintf("source-method(%v)", m.ID) }
func (m ExternalMember) String() string { return m.ID.String() }

// NameResolution is the outcome of resolving a name: Resolved, Unresolved or
// Ambiguous.  None of them is a failure.
type NameResolution interface {
	fmt.Stringer
	// Option returns the resolution when exactly one candidate was found.
	// Ambiguity is discarded.
	Option() (Resolution, bool)
	isNameResolution()
}

// Resolved is a name with a single meaning.
type Resolved struct {
	Resolution Resolution
}

// Unresolved is a name with no meaning in scope.
type Unresolved struct{}

// Ambiguous is a name with several equally-preferred meanings.  Candidates
// within a precedence tier are ordered by canonical name; when tiers combine,
// the higher tier comes first.
type Ambiguous struct {
	Candidates []Resolution
}

func (Resolved) isNameResolution()   {}
func (Unresolved) isNameResolution() {}
func (Ambiguous) isNameResolution()  {}

func (r Resolved) Option() (Resolution, bool) { return r.Resolution, true }
func (Unresolved) Option() (Resolution, bool) { return nil, false }
func (Ambiguous) Option() (Resolution, bool)  { return nil, false }

func (r Resolved) String() string { return r.Resolution.String() }
func (Unresolved) String() string { return "unresolved" }

func (r Ambiguous) String() string {
	names := make([]string, len(r.Candidates))
	for i, c := range r.Candidates {
		names[i] = c.String()
	}
	return "ambiguous[" + strings.Join(names, ", ") + "]"
}

// IsUnresolved reports whether nr is Unresolved.
func IsUnresolved(nr NameResolution) bool {
	_, ok := nr.(Unresolved)
	return ok
}

// Err converts a NameResolution to error form: nil when resolved,
// ErrNameNotFound when unresolved, *AmbiguousNameError when ambiguous.
func Err(name string, nr NameResolution) error {
	switch nr := nr.(type) {
	case Resolved:
		return nil
	case Ambiguous:
		return NewAmbiguousNameError(name, nr.Candidates)
	default:
		return fmt.Errorf("%w: %s", ErrNameNotFound, name)
	}
}
