package resolver

import (
	"testing"

	"github.com/bazelbuild/bazel-gazelle/label"
	"github.com/stretchr/testify/require"

	"github.com/stackb/javaresolve/pkg/hir"
	"github.com/stackb/javaresolve/pkg/javaname"
	"github.com/stackb/javaresolve/pkg/typeindex"
	"github.com/stackb/javaresolve/pkg/workspace"
)

// testIndex is a type index fixture: types, then static members per owner.
type testIndex struct {
	types   []string
	members map[string][]string
}

func (ti testIndex) build(t *testing.T, provider string) *typeindex.TrieIndex {
	t.Helper()
	ix := typeindex.NewTrieIndex(provider)
	for _, name := range ti.types {
		require.NoError(t, ix.PutType(javaname.TypeName(name), label.NoLabel))
	}
	for owner, members := range ti.members {
		for _, member := range members {
			_, err := ix.PutStaticMember(javaname.TypeName(owner), javaname.Name(member), label.NoLabel)
			require.NoError(t, err)
		}
	}
	return ix
}

var jdkFixture = testIndex{
	types: []string{
		"java.lang.Object",
		"java.lang.String",
		"java.lang.Integer",
		"java.lang.Math",
		"java.lang.System",
		"java.lang.Thread",
		"java.lang.Thread$State",
		"java.util.List",
		"java.util.ArrayList",
		"java.util.Map",
		"java.util.Map$Entry",
		"java.awt.List",
	},
	members: map[string][]string{
		"java.lang.Math":    {"max", "min", "PI"},
		"java.lang.Integer": {"MAX_VALUE", "parseInt"},
		"java.lang.System":  {"out"},
	},
}

var classpathFixture = testIndex{
	types: []string{
		"a.Foo",
		"b.Foo",
		"p.Foo",
		"p.Bar",
		"q.Foo",
		"q.Util",
		"q.String",
		"r.String",
		"s.String",
		"com.example.util.Strings",
		"com.example.Outer",
		"com.example.Outer$Inner",
		"com.example.Outer$Inner$Deep",
		"java.lang.Evil",
		"java.lang.Math",
		"java.util.FakeList",
	},
	members: map[string][]string{
		"q.Util":            {"max", "clamp"},
		"p.Bar":             {"max"},
		"com.example.Outer": {"CONSTANT", "helper"},
		"java.lang.Evil":    {"evil"},
		"java.lang.Math":    {"hack"},
	},
}

func newTestResolver(t *testing.T, options ...ResolverOption) *Resolver {
	t.Helper()
	jdk := jdkFixture.build(t, "jdk")
	cp := classpathFixture.build(t, "classpath")
	return New(jdk, append([]ResolverOption{WithClasspath(cp)}, options...)...)
}

func qn(dotted string) javaname.QualifiedName {
	return javaname.ParseQualifiedName(dotted)
}

func pkgName(dotted string) *javaname.PackageName {
	pkg := javaname.ParsePackageName(dotted)
	if pkg == nil {
		pkg = javaname.PackageName{}
	}
	return &pkg
}

// parseImports builds an ImportMap from import declarations without the
// `import` keyword or trailing semicolon, e.g. "static java.lang.Math.*".
// Each declaration gets a span of 10 bytes in declaration order.
func parseImports(decls ...string) *ImportMap {
	m := NewImportMap()
	for i, decl := range decls {
		span := Span{Start: i * 10, End: i*10 + 9}
		static := false
		if len(decl) > 7 && decl[:7] == "static " {
			static = true
			decl = decl[7:]
		}
		star := false
		if len(decl) > 2 && decl[len(decl)-2:] == ".*" {
			star = true
			decl = decl[:len(decl)-2]
		}
		path := qn(decl)
		switch {
		case static && star:
			m.AddStaticStar(path, span)
		case static:
			m.AddStaticSingle(path, span)
		case star:
			m.AddTypeStar(path, span)
		default:
			m.AddTypeSingle(path, span)
		}
	}
	return m
}

func typeLookup(names ...string) TypeLookup {
	var l TypeLookup
	for _, name := range names {
		l.Candidates = append(l.Candidates, javaname.TypeName(name))
	}
	return l
}

func staticLookup(ids ...string) StaticLookup {
	var l StaticLookup
	for _, id := range ids {
		l.Candidates = append(l.Candidates, javaname.StaticMemberID(id))
	}
	return l
}

func external(name string) Resolution {
	return Type{ExternalType{Name: javaname.TypeName(name)}}
}

func externalMember(id string) Resolution {
	return StaticMember{ExternalMember{ID: javaname.StaticMemberID(id)}}
}

// testWorkspace declares:
//
//	package com.example;
//	class Outer { static int CONSTANT; static void helper(); class Inner { class Deep {} } }
//	interface Api { class Impl {} }
//	class Host { class Nonstatic {} static class Static {} enum Mode {} }
//	package java.lang; class String {}
func testWorkspace(t *testing.T) *workspace.DefMap {
	t.Helper()
	outer := hir.ItemID{File: 1, Index: 0}
	inner := hir.ItemID{File: 1, Index: 1}
	api := hir.ItemID{File: 1, Index: 3}
	host := hir.ItemID{File: 1, Index: 5}
	defs := []struct {
		item hir.ItemID
		def  *hir.TypeDef
	}{
		{outer, &hir.TypeDef{
			Name:       "Outer",
			BinaryName: "com.example.Outer",
			Kind:       hir.KindClass,
			Fields: map[javaname.Name]hir.FieldDef{
				"CONSTANT": {ID: hir.FieldID{File: 1, Index: 0}, Name: "CONSTANT", IsStatic: true},
				"instance": {ID: hir.FieldID{File: 1, Index: 1}, Name: "instance"},
			},
			Methods: map[javaname.Name][]hir.MethodDef{
				"helper": {
					{ID: hir.MethodID{File: 1, Index: 0}, Name: "helper"},
					{ID: hir.MethodID{File: 1, Index: 1}, Name: "helper", IsStatic: true},
				},
			},
		}},
		{inner, &hir.TypeDef{Name: "Inner", BinaryName: "com.example.Outer$Inner", Kind: hir.KindClass, Enclosing: &outer}},
		{hir.ItemID{File: 1, Index: 2}, &hir.TypeDef{Name: "Deep", BinaryName: "com.example.Outer$Inner$Deep", Kind: hir.KindClass, Enclosing: &inner}},
		{api, &hir.TypeDef{Name: "Api", BinaryName: "com.example.Api", Kind: hir.KindInterface}},
		{hir.ItemID{File: 1, Index: 4}, &hir.TypeDef{Name: "Impl", BinaryName: "com.example.Api$Impl", Kind: hir.KindClass, Enclosing: &api}},
		{host, &hir.TypeDef{Name: "Host", BinaryName: "com.example.Host", Kind: hir.KindClass}},
		{hir.ItemID{File: 1, Index: 6}, &hir.TypeDef{Name: "Nonstatic", BinaryName: "com.example.Host$Nonstatic", Kind: hir.KindClass, Enclosing: &host}},
		{hir.ItemID{File: 1, Index: 7}, &hir.TypeDef{Name: "Static", BinaryName: "com.example.Host$Static", Kind: hir.KindClass, IsStatic: true, Enclosing: &host}},
		{hir.ItemID{File: 1, Index: 8}, &hir.TypeDef{Name: "Mode", BinaryName: "com.example.Host$Mode", Kind: hir.KindEnum, Enclosing: &host}},
		{hir.ItemID{File: 2, Index: 0}, &hir.TypeDef{Name: "String", BinaryName: "java.lang.String", Kind: hir.KindClass}},
	}
	ws := workspace.NewDefMap()
	for _, d := range defs {
		added, err := ws.Add(d.item, d.def, label.NoLabel)
		require.NoError(t, err)
		require.True(t, added, d.def.BinaryName)
	}
	return ws
}
