package typeindex

import (
	"archive/zip"
	"fmt"
	"sort"
	"strings"
)

const (
	classFileSuffix = ".class"
	jarFileSuffix   = ".jar"
)

// ReadJarSpec lists the class entries of a jar and returns them as an
// IndexSpec.  Only names are recorded: static members require class file
// parsing and are left to richer index producers.
func ReadJarSpec(filename, from string) (*IndexSpec, error) {
	r, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("open jar %q: %w", filename, err)
	}
	defer r.Close()

	spec := &IndexSpec{
		Label:    from,
		Filename: filename,
	}
	packages := make(map[string]bool)
	for _, f := range r.File {
		name, ok := classNameFromEntry(f.Name)
		if !ok {
			continue
		}
		spec.Classes = append(spec.Classes, name)
		if i := strings.LastIndexByte(name, '.'); i > 0 {
			packages[name[:i]] = true
		}
	}
	sort.Strings(spec.Classes)
	for pkg := range packages {
		spec.Packages = append(spec.Packages, pkg)
	}
	sort.Strings(spec.Packages)
	return spec, nil
}

// classNameFromEntry converts a zip entry like "com/foo/Outer$Inner.class" into
// the binary name "com.foo.Outer$Inner".  Descriptors, multi-release
// overlays and anonymous or local classes are skipped.
func classNameFromEntry(entry string) (string, bool) {
	if !strings.HasSuffix(entry, classFileSuffix) {
		return "", false
	}
	if strings.HasPrefix(entry, "META-INF/") {
		return "", false
	}
	path := strings.TrimSuffix(entry, classFileSuffix)
	base := path[strings.LastIndexByte(path, '/')+1:]
	if base == "module-info" || base == "package-info" {
		return "", false
	}
	parts := strings.Split(base, "$")
	for _, part := range parts[1:] {
		if part == "" || (part[0] >= '0' && part[0] <= '9') {
			return "", false
		}
	}
	return strings.ReplaceAll(path, "/", "."), true
}
