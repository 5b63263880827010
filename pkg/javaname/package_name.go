package javaname

// PackageName is a qualified name known to denote a package.  The root
// (unnamed) package has no segments.
type PackageName []Name

// ParsePackageName splits a dotted package string.  The empty string is the
// root package.
func ParsePackageName(dotted string) PackageName {
	return PackageName(ParseQualifiedName(dotted))
}

// Dotted returns the names joined with '.'; the root package is "".
func (p PackageName) Dotted() string {
	return joinNames(p, ".")
}

// String implements fmt.Stringer
func (p PackageName) String() string {
	return p.Dotted()
}

// IsRoot reports whether this is the unnamed package.
func (p PackageName) IsRoot() bool {
	return len(p) == 0
}

// IsJava reports whether the package lives under "java".
func (p PackageName) IsJava() bool {
	return len(p) > 0 && p[0] == "java"
}

// Child returns the subpackage named name.
func (p PackageName) Child(name Name) PackageName {
	out := make(PackageName, 0, len(p)+1)
	out = append(out, p...)
	return append(out, name)
}

// Qualify returns the fully-qualified dotted name of a type in this package.
func (p PackageName) Qualify(name Name) string {
	if p.IsRoot() {
		return string(name)
	}
	return p.Dotted() + "." + string(name)
}

// PackageID identifies a resolved package by its dotted name.
type PackageID string

// JavaLang is the implicitly imported package.
var JavaLang = PackageName{"java", "lang"}
