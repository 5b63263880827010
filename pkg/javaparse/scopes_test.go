package javaparse

import (
	"testing"

	"github.com/bazelbuild/bazel-gazelle/label"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/stackb/javaresolve/pkg/hir"
	"github.com/stackb/javaresolve/pkg/javaname"
	"github.com/stackb/javaresolve/pkg/resolver"
	"github.com/stackb/javaresolve/pkg/typeindex"
	"github.com/stackb/javaresolve/pkg/workspace"
)

func testJDK(t *testing.T) *typeindex.TrieIndex {
	t.Helper()
	jdk, err := typeindex.NewTrieIndexFromSpecs("jdk", &typeindex.IndexSpec{
		Classes: []string{"java.lang.Math", "java.lang.String", "java.util.List", "java.util.Map"},
		StaticMembers: []*typeindex.StaticMemberSpec{
			{Owner: "java.lang.Math", Members: []string{"max", "min"}},
		},
	})
	require.NoError(t, err)
	return jdk
}

func TestScopesResolve(t *testing.T) {
	file := mustParse(t, 3, outerSource)
	defs := workspace.NewDefMap()
	shadowed, err := file.Register(defs, label.NoLabel)
	require.NoError(t, err)
	require.Empty(t, shadowed)

	scopes := file.Scopes()
	r := resolver.New(testJDK(t), resolver.WithClasspath(defs), resolver.WithWorkspace(defs))

	outer := scopes.Classes["com.example.Outer"]
	deep := scopes.Classes["com.example.Outer$Inner$Deep"]

	for name, tc := range map[string]struct {
		scope resolver.ScopeID
		name  javaname.Name
		want  resolver.NameResolution
	}{
		"field in class scope": {
			scope: outer,
			name:  "CONSTANT",
			want:  resolver.Resolved{Resolution: resolver.Field{ID: hir.FieldID{File: 3, Index: 0}}},
		},
		"member type seen from nested scope": {
			scope: deep,
			name:  "Inner",
			want:  resolver.Resolved{Resolution: resolver.Type{Type: resolver.SourceType{Item: hir.ItemID{File: 3, Index: 2}}}},
		},
		"top-level type in file scope": {
			scope: scopes.File.File,
			name:  "Marker",
			want:  resolver.Resolved{Resolution: resolver.Type{Type: resolver.SourceType{Item: hir.ItemID{File: 3, Index: 7}}}},
		},
		"single type import": {
			scope: deep,
			name:  "List",
			want:  resolver.Resolved{Resolution: resolver.Type{Type: resolver.ExternalType{Name: "java.util.List"}}},
		},
		"static import": {
			scope: outer,
			name:  "max",
			want:  resolver.Resolved{Resolution: resolver.StaticMember{Member: resolver.ExternalMember{ID: "java.lang.Math::max"}}},
		},
		"on demand import": {
			scope: outer,
			name:  "Map",
			want:  resolver.Resolved{Resolution: resolver.Type{Type: resolver.ExternalType{Name: "java.util.Map"}}},
		},
		"unknown": {
			scope: outer,
			name:  "Nope",
			want:  resolver.Unresolved{},
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := r.ResolveNameDetailed(scopes.Graph, tc.scope, tc.name)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}

	methods, ok := r.ResolveMethodName(scopes.Graph, outer, "run")
	require.True(t, ok)
	require.Equal(t, resolver.Methods{IDs: []hir.MethodID{{File: 3, Index: 1}, {File: 3, Index: 2}}}, methods)

	ty, ok := r.ResolveQualifiedTypeInScope(scopes.Graph, scopes.File.File, javaname.ParseQualifiedName("Outer.Inner.Deep"))
	require.True(t, ok)
	require.Equal(t, javaname.TypeName("com.example.Outer$Inner$Deep"), ty)
}

func TestRegisterReportsShadowedTypes(t *testing.T) {
	defs := workspace.NewDefMap()
	first := mustParse(t, 1, "package p; class A {}")
	second := mustParse(t, 2, "package p; class A {} class B {}")

	_, err := first.Register(defs, label.NoLabel)
	require.NoError(t, err)
	shadowed, err := second.Register(defs, label.NoLabel)
	require.NoError(t, err)

	require.Equal(t, []javaname.TypeName{"p.A"}, shadowed)
	item, ok := defs.ItemByTypeName("p.A")
	require.True(t, ok)
	require.Equal(t, hir.FileID(1), item.File)
}
