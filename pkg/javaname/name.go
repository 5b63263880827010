// Package javaname holds the identifier types shared by the resolver, the
// type indices and the workspace definition map.
package javaname

import "strings"

// Name is a single Java identifier (one lexical token).
type Name string

// String implements fmt.Stringer
func (n Name) String() string {
	return string(n)
}

// QualifiedName is an ordered sequence of names read left-to-right as
// package/type/member segments.  A QualifiedName is expected to be non-empty;
// the zero value is tolerated and simply never resolves.
type QualifiedName []Name

// ParseQualifiedName splits a dotted string into a QualifiedName.  Binary
// nested separators ('$') are kept inside their segment, so "a.b.C$D" has the
// three segments "a", "b" and "C$D".
func ParseQualifiedName(dotted string) QualifiedName {
	if dotted == "" {
		return nil
	}
	parts := strings.Split(dotted, ".")
	qn := make(QualifiedName, len(parts))
	for i, part := range parts {
		qn[i] = Name(part)
	}
	return qn
}

// Dotted returns the names joined with '.'.
func (qn QualifiedName) Dotted() string {
	return joinNames(qn, ".")
}

// String implements fmt.Stringer
func (qn QualifiedName) String() string {
	return qn.Dotted()
}

// First returns the leftmost segment, or the empty name.
func (qn QualifiedName) First() Name {
	if len(qn) == 0 {
		return ""
	}
	return qn[0]
}

// Last returns the rightmost segment, or the empty name.
func (qn QualifiedName) Last() Name {
	if len(qn) == 0 {
		return ""
	}
	return qn[len(qn)-1]
}

// IsJava reports whether the first segment is "java".  Only the platform may
// define types under that namespace.
func (qn QualifiedName) IsJava() bool {
	return qn.First() == "java"
}

// Append returns a new QualifiedName with the given names appended.  The
// receiver is never mutated.
func (qn QualifiedName) Append(names ...Name) QualifiedName {
	out := make(QualifiedName, 0, len(qn)+len(names))
	out = append(out, qn...)
	return append(out, names...)
}

// Package reinterprets the name as a package name.
func (qn QualifiedName) Package() PackageName {
	return PackageName(qn.Append())
}

func joinNames(names []Name, sep string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return string(names[0])
	}
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(string(name))
	}
	return b.String()
}
