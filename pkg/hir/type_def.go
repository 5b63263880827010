package hir

import "github.com/stackb/javaresolve/pkg/javaname"

// TypeKind is the declaration keyword of a type.
type TypeKind int

const (
	KindClass TypeKind = iota
	KindInterface
	KindEnum
	KindRecord
	KindAnnotation
)

var typeKindNames = map[TypeKind]string{
	KindClass:      "class",
	KindInterface:  "interface",
	KindEnum:       "enum",
	KindRecord:     "record",
	KindAnnotation: "@interface",
}

// String implements fmt.Stringer
func (k TypeKind) String() string {
	if s, ok := typeKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ImplicitlyStatic reports whether member types of this kind are static even
// without the modifier (JLS 8.5.1, 8.9, 8.10).
func (k TypeKind) ImplicitlyStatic() bool {
	return k != KindClass
}

// FieldDef summarizes a field declaration.
type FieldDef struct {
	ID       FieldID
	Name     javaname.Name
	IsStatic bool
}

// MethodDef summarizes a method declaration.
type MethodDef struct {
	ID       MethodID
	Name     javaname.Name
	IsStatic bool
}

// TypeDef summarizes a type declaration: its members and nesting.
type TypeDef struct {
	// Name is the simple name.
	Name javaname.Name
	// BinaryName is the canonical name, with '$' nested separators.
	BinaryName javaname.TypeName
	Kind       TypeKind
	// IsStatic is true when the static modifier was written explicitly.
	IsStatic bool
	// Enclosing is the directly enclosing type, for member types.
	Enclosing *ItemID
	Fields    map[javaname.Name]FieldDef
	// Methods groups overloads by name, in declaration order.
	Methods map[javaname.Name][]MethodDef
}

// StaticField returns the named field when it is static.
func (d *TypeDef) StaticField(name javaname.Name) (FieldDef, bool) {
	f, ok := d.Fields[name]
	if !ok || !f.IsStatic {
		return FieldDef{}, false
	}
	return f, true
}

// FirstStaticMethod returns the first static overload of the named method.
func (d *TypeDef) FirstStaticMethod(name javaname.Name) (MethodDef, bool) {
	for _, m := range d.Methods[name] {
		if m.IsStatic {
			return m, true
		}
	}
	return MethodDef{}, false
}
