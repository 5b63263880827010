package javaname

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseQualifiedName(t *testing.T) {
	for name, tc := range map[string]struct {
		dotted string
		want   QualifiedName
	}{
		"empty": {},
		"simple": {
			dotted: "Foo",
			want:   QualifiedName{"Foo"},
		},
		"dotted": {
			dotted: "java.util.List",
			want:   QualifiedName{"java", "util", "List"},
		},
		"binary nesting stays in segment": {
			dotted: "a.b.C$D",
			want:   QualifiedName{"a", "b", "C$D"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := ParseQualifiedName(tc.dotted)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if got.Dotted() != tc.dotted {
				t.Errorf("Dotted: want %q, got %q", tc.dotted, got.Dotted())
			}
		})
	}
}

func TestQualifiedNameAccessors(t *testing.T) {
	qn := ParseQualifiedName("java.util.Map")
	if qn.First() != "java" || qn.Last() != "Map" {
		t.Errorf("First/Last: got %q/%q", qn.First(), qn.Last())
	}
	if !qn.IsJava() {
		t.Error("IsJava: want true")
	}
	if ParseQualifiedName("javax.swing.JList").IsJava() {
		t.Error("javax: want IsJava false")
	}

	var empty QualifiedName
	if empty.First() != "" || empty.Last() != "" || empty.IsJava() {
		t.Error("empty: want zero accessors")
	}
}

func TestQualifiedNameAppendDoesNotAlias(t *testing.T) {
	base := make(QualifiedName, 2, 8)
	base[0], base[1] = "a", "b"
	x := base.Append("X")
	y := base.Append("Y")
	if diff := cmp.Diff(QualifiedName{"a", "b", "X"}, x); diff != "" {
		t.Errorf("x (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(QualifiedName{"a", "b", "Y"}, y); diff != "" {
		t.Errorf("y (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(PackageName{"a", "b"}, base.Package()); diff != "" {
		t.Errorf("Package (-want +got):\n%s", diff)
	}
}

func TestPackageName(t *testing.T) {
	root := ParsePackageName("")
	if !root.IsRoot() || root.IsJava() {
		t.Errorf("root: IsRoot=%t IsJava=%t", root.IsRoot(), root.IsJava())
	}
	if got := root.Qualify("Foo"); got != "Foo" {
		t.Errorf("root Qualify: want Foo, got %q", got)
	}

	util := root.Child("java").Child("util")
	if util.Dotted() != "java.util" || !util.IsJava() {
		t.Errorf("java.util: got %q IsJava=%t", util.Dotted(), util.IsJava())
	}
	if got := util.Qualify("List"); got != "java.util.List" {
		t.Errorf("Qualify: want java.util.List, got %q", got)
	}
	if JavaLang.Dotted() != "java.lang" {
		t.Errorf("JavaLang: got %q", JavaLang)
	}
}

func TestTypeName(t *testing.T) {
	outer := TypeName("java.util.Map")
	entry := outer.Nested("Entry")
	if entry != "java.util.Map$Entry" {
		t.Errorf("Nested: got %q", entry)
	}
	if deep := outer.Nested("A", "B"); deep != "java.util.Map$A$B" {
		t.Errorf("Nested deep: got %q", deep)
	}
	if !entry.IsNestedIn(outer) {
		t.Error("IsNestedIn: want true")
	}
	if TypeName("java.util.MapX").IsNestedIn(outer) {
		t.Error("IsNestedIn sibling: want false")
	}
	if entry.SourceDotted() != "java.util.Map.Entry" {
		t.Errorf("SourceDotted: got %q", entry.SourceDotted())
	}
	if diff := cmp.Diff(QualifiedName{"java", "util", "Map$Entry"}, entry.QualifiedName()); diff != "" {
		t.Errorf("QualifiedName (-want +got):\n%s", diff)
	}
	if !entry.IsJava() || TypeName("javax.Foo").IsJava() {
		t.Error("IsJava mismatch")
	}
}

func TestStaticMemberID(t *testing.T) {
	id := NewStaticMemberID("java.lang.Math", "max")
	if id != "java.lang.Math::max" {
		t.Errorf("got %q", id)
	}
	owner, member, ok := id.Split()
	if !ok || owner != "java.lang.Math" || member != "max" {
		t.Errorf("Split: got %q %q %t", owner, member, ok)
	}
	if _, _, ok := StaticMemberID("bogus").Split(); ok {
		t.Error("Split bogus: want false")
	}
}
