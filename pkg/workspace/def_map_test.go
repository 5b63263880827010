package workspace

import (
	"testing"

	"github.com/bazelbuild/bazel-gazelle/label"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/stackb/javaresolve/pkg/hir"
	"github.com/stackb/javaresolve/pkg/javaname"
)

func TestDefMapAdd(t *testing.T) {
	outer := hir.ItemID{File: 1, Index: 0}
	def := &hir.TypeDef{
		Name:       "Outer",
		BinaryName: "com.example.Outer",
		Kind:       hir.KindClass,
		Fields: map[javaname.Name]hir.FieldDef{
			"CONSTANT": {Name: "CONSTANT", IsStatic: true},
			"count":    {Name: "count"},
		},
		Methods: map[javaname.Name][]hir.MethodDef{
			"of":  {{Name: "of"}, {Name: "of", IsStatic: true}},
			"get": {{Name: "get"}},
		},
	}
	from := label.New("", "src/main/java/com/example", "example")

	m := NewDefMap()
	added, err := m.Add(outer, def, from)
	require.NoError(t, err)
	require.True(t, added)

	// first definition wins
	added, err = m.Add(hir.ItemID{File: 2, Index: 0}, &hir.TypeDef{Name: "Outer", BinaryName: "com.example.Outer"}, label.NoLabel)
	require.NoError(t, err)
	require.False(t, added)
	require.Equal(t, 1, m.Len())

	item, ok := m.ItemByTypeName("com.example.Outer")
	require.True(t, ok)
	require.Equal(t, outer, item)

	name, ok := m.TypeName(outer)
	require.True(t, ok)
	require.Equal(t, javaname.TypeName("com.example.Outer"), name)

	got, ok := m.TypeDef(outer)
	require.True(t, ok)
	require.Same(t, def, got)

	ty, ok := m.ResolveTypeInPackage(javaname.ParsePackageName("com.example"), "Outer")
	require.True(t, ok)
	require.Equal(t, javaname.TypeName("com.example.Outer"), ty)
	require.True(t, m.PackageExists(javaname.ParsePackageName("com")))

	for member, want := range map[javaname.Name]bool{
		"CONSTANT": true,
		"of":       true,
		"count":    false,
		"get":      false,
	} {
		_, ok := m.ResolveStaticMember("com.example.Outer", member)
		require.Equal(t, want, ok, member)
	}

	lbl, ok := m.Label("com.example.Outer")
	require.True(t, ok)
	require.Equal(t, from, lbl)
}

func TestDefMapAddErrors(t *testing.T) {
	m := NewDefMap()

	_, err := m.Add(hir.ItemID{}, nil, label.NoLabel)
	require.Error(t, err)
	_, err = m.Add(hir.ItemID{}, &hir.TypeDef{Name: "Anon"}, label.NoLabel)
	require.Error(t, err)

	item := hir.ItemID{File: 1}
	_, err = m.Add(item, &hir.TypeDef{Name: "A", BinaryName: "p.A"}, label.NoLabel)
	require.NoError(t, err)
	_, err = m.Add(item, &hir.TypeDef{Name: "B", BinaryName: "p.B"}, label.NoLabel)
	require.EqualError(t, err, "item(1:0): already registered as p.A")
}

func TestDefMapTypeNames(t *testing.T) {
	m := NewDefMap()
	for i, name := range []javaname.TypeName{"p.Z", "p.A", "a.M$N", "a.M"} {
		_, err := m.Add(hir.ItemID{File: 1, Index: uint32(i)}, &hir.TypeDef{BinaryName: name}, label.NoLabel)
		require.NoError(t, err)
	}
	if diff := cmp.Diff([]javaname.TypeName{"a.M", "a.M$N", "p.A", "p.Z"}, m.TypeNames()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	_, ok := m.ResolveType(javaname.ParseQualifiedName("a.M$N"))
	require.True(t, ok)
}
