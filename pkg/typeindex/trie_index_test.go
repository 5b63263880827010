package typeindex

import (
	"testing"

	"github.com/bazelbuild/bazel-gazelle/label"
	"github.com/google/go-cmp/cmp"

	"github.com/stackb/javaresolve/pkg/javaname"
)

func mustTrieIndex(t *testing.T, names ...string) *TrieIndex {
	t.Helper()
	ix := NewTrieIndex("test")
	for _, name := range names {
		if err := ix.PutType(javaname.TypeName(name), label.NoLabel); err != nil {
			t.Fatal(err)
		}
	}
	return ix
}

func TestTrieIndexResolveType(t *testing.T) {
	ix := mustTrieIndex(t, "java.util.List", "java.util.Map", "java.util.Map$Entry", "Toplevel")

	for name, tc := range map[string]struct {
		name   string
		want   javaname.TypeName
		wantOK bool
	}{
		"top level": {
			name:   "java.util.List",
			want:   "java.util.List",
			wantOK: true,
		},
		"binary nested": {
			name:   "java.util.Map$Entry",
			want:   "java.util.Map$Entry",
			wantOK: true,
		},
		"dotted nested is not a binary name": {
			name: "java.util.Map.Entry",
		},
		"package is not a type": {
			name: "java.util",
		},
		"root package type": {
			name:   "Toplevel",
			want:   "Toplevel",
			wantOK: true,
		},
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			got, ok := ix.ResolveType(javaname.ParseQualifiedName(tc.name))
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("want (%q, %t), got (%q, %t)", tc.want, tc.wantOK, got, ok)
			}
		})
	}
}

func TestTrieIndexPackages(t *testing.T) {
	ix := mustTrieIndex(t, "com.example.util.Strings")

	for _, pkg := range []string{"com", "com.example", "com.example.util"} {
		if !ix.PackageExists(javaname.ParsePackageName(pkg)) {
			t.Errorf("%s: want package", pkg)
		}
	}
	for _, pkg := range []string{"", "org", "com.example.util.Strings", "com.examples"} {
		if ix.PackageExists(javaname.ParsePackageName(pkg)) {
			t.Errorf("%q: want no package", pkg)
		}
	}

	ix.PutPackage(javaname.ParsePackageName("org.empty"), label.NoLabel)
	if !ix.PackageExists(javaname.ParsePackageName("org.empty")) {
		t.Error("org.empty: want package after PutPackage")
	}

	if got, ok := ix.ResolveTypeInPackage(javaname.ParsePackageName("com.example.util"), "Strings"); !ok || got != "com.example.util.Strings" {
		t.Errorf("ResolveTypeInPackage: got (%q, %t)", got, ok)
	}
	if _, ok := ix.ResolveTypeInPackage(javaname.ParsePackageName("com.example"), "Strings"); ok {
		t.Error("ResolveTypeInPackage: subpackage type must not match")
	}
}

func TestTrieIndexRootPackage(t *testing.T) {
	ix := mustTrieIndex(t, "Main")
	if !ix.PackageExists(nil) {
		t.Error("root package: want exists")
	}
	if got, ok := ix.ResolveTypeInPackage(nil, "Main"); !ok || got != "Main" {
		t.Errorf("ResolveTypeInPackage: got (%q, %t)", got, ok)
	}
}

func TestTrieIndexStaticMembers(t *testing.T) {
	ix := mustTrieIndex(t, "java.lang.Math")

	id, err := ix.PutStaticMember("java.lang.Math", "max", label.NoLabel)
	if err != nil {
		t.Fatal(err)
	}
	if id != "java.lang.Math::max" {
		t.Errorf("id: got %q", id)
	}
	if got, ok := ix.ResolveStaticMember("java.lang.Math", "max"); !ok || got != id {
		t.Errorf("ResolveStaticMember: got (%q, %t)", got, ok)
	}
	if _, ok := ix.ResolveStaticMember("java.lang.Math", "min"); ok {
		t.Error("min: want not found")
	}
	if _, err := ix.PutStaticMember("java.lang.Nope", "x", label.NoLabel); err == nil {
		t.Error("unknown owner: want error")
	}
}

func TestTrieIndexPutType(t *testing.T) {
	ix := NewTrieIndex("test")
	if err := ix.PutType("", label.NoLabel); err == nil {
		t.Error("empty name: want error")
	}

	from := label.New("maven", "", "guava")
	if err := ix.PutType("com.google.common.base.Strings", from); err != nil {
		t.Fatal(err)
	}
	if err := ix.PutType("com.google.common.base.Strings", from); err != nil {
		t.Fatal(err)
	}
	if ix.Len() != 1 {
		t.Errorf("Len: want 1, got %d", ix.Len())
	}
	got, ok := ix.Label("com.google.common.base.Strings")
	if !ok || got.String() != "@maven//:guava" {
		t.Errorf("Label: got (%v, %t)", got, ok)
	}
}

func TestTrieIndexGetSymbols(t *testing.T) {
	ix := mustTrieIndex(t, "b.Y", "a.X", "a.b.Z", "ab.W")

	var got []string
	for _, sym := range ix.GetSymbols("a") {
		got = append(got, sym.Name)
	}
	if diff := cmp.Diff([]string{"a.X", "a.b.Z"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if n := len(ix.GetSymbols("")); n != 4 {
		t.Errorf("all symbols: want 4, got %d", n)
	}
}

func TestImportSegmenter(t *testing.T) {
	var got []string
	for seg, next := importSegmenter("java.util.List", 0); seg != ""; seg, next = importSegmenter("java.util.List", next) {
		got = append(got, seg)
		if next == -1 {
			break
		}
	}
	if diff := cmp.Diff([]string{"java", ".util", ".List"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
