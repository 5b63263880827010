package javaname

import "strings"

// TypeName is the canonical identity of a resolved type: the dotted package
// followed by the binary type name (e.g. "java.util.Map$Entry").  Equality is
// by this canonical form, never by source spelling.
type TypeName string

// String implements fmt.Stringer
func (t TypeName) String() string {
	return string(t)
}

// IsJava reports whether the type lives under the "java" namespace.
func (t TypeName) IsJava() bool {
	return strings.HasPrefix(string(t), "java.")
}

// Nested returns the binary name of a member type of t.
func (t TypeName) Nested(names ...Name) TypeName {
	var b strings.Builder
	b.WriteString(string(t))
	for _, name := range names {
		b.WriteByte('$')
		b.WriteString(string(name))
	}
	return TypeName(b.String())
}

// IsNestedIn reports whether t is a (possibly deeply) nested member of owner.
func (t TypeName) IsNestedIn(owner TypeName) bool {
	return strings.HasPrefix(string(t), string(owner)+"$")
}

// SourceDotted converts binary nested separators back to the source spelling
// ("java.util.Map$Entry" -> "java.util.Map.Entry").
func (t TypeName) SourceDotted() string {
	return strings.ReplaceAll(string(t), "$", ".")
}

// QualifiedName splits the canonical form at '.' boundaries.
func (t TypeName) QualifiedName() QualifiedName {
	return ParseQualifiedName(string(t))
}

// StaticMemberID identifies a static field or method of an external type as
// "owner::member".
type StaticMemberID string

// NewStaticMemberID builds the id of member on owner.
func NewStaticMemberID(owner TypeName, member Name) StaticMemberID {
	return StaticMemberID(string(owner) + "::" + string(member))
}

// String implements fmt.Stringer
func (id StaticMemberID) String() string {
	return string(id)
}

// Split returns the owner type and member name.  ok is false when the id is
// not in "owner::member" form.
func (id StaticMemberID) Split() (owner TypeName, member Name, ok bool) {
	o, m, found := strings.Cut(string(id), "::")
	if !found {
		return "", "", false
	}
	return TypeName(o), Name(m), true
}
