package typeindex

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bazelbuild/bazel-gazelle/label"
	"github.com/dghubble/trie"

	"github.com/stackb/javaresolve/pkg/javaname"
)

var indexTrieConfig = &trie.PathTrieConfig{
	Segmenter: importSegmenter,
}

// TrieIndex implements TypeIndex using path tries keyed by dotted names.
// Populate it with the Put* methods, then treat it as read-only.
type TrieIndex struct {
	provider string
	types    *trie.PathTrie
	packages *trie.PathTrie
	members  *trie.PathTrie
	// rootPackage is set once a type is declared in the unnamed package.
	rootPackage bool
	size        int
}

// NewTrieIndex constructs a new empty TrieIndex.  The provider name is recorded
// on every symbol it stores.
func NewTrieIndex(provider string) *TrieIndex {
	return &TrieIndex{
		provider: provider,
		types:    trie.NewPathTrieWithConfig(indexTrieConfig),
		packages: trie.NewPathTrieWithConfig(indexTrieConfig),
		members:  trie.NewPathTrieWithConfig(indexTrieConfig),
	}
}

// Provider returns the provider name of this index.
func (ix *TrieIndex) Provider() string {
	return ix.provider
}

// Len returns the number of types in the index.
func (ix *TrieIndex) Len() int {
	return ix.size
}

// PutType registers a type by its binary name.  Its package, and every prefix
// of that package, becomes known.
func (ix *TrieIndex) PutType(name javaname.TypeName, from label.Label) error {
	if name == "" {
		return fmt.Errorf("%s: empty type name", ix.provider)
	}
	if ix.types.Put(string(name), NewSymbol(SymbolType, string(name), ix.provider, from)) {
		ix.size++
	}
	ix.putPackage(packageOf(name), from)
	return nil
}

// PutPackage registers a package that may not contain any indexed type (for
// example, a package that only holds nested packages).
func (ix *TrieIndex) PutPackage(pkg javaname.PackageName, from label.Label) {
	ix.putPackage(pkg, from)
}

func (ix *TrieIndex) putPackage(pkg javaname.PackageName, from label.Label) {
	if pkg.IsRoot() {
		ix.rootPackage = true
		return
	}
	for i := 1; i <= len(pkg); i++ {
		prefix := pkg[:i].Dotted()
		if ix.packages.Get(prefix) != nil {
			continue
		}
		ix.packages.Put(prefix, NewSymbol(SymbolPackage, prefix, ix.provider, from))
	}
}

// PutStaticMember registers a static field or method on an owner type.  The
// owner must already be present.
func (ix *TrieIndex) PutStaticMember(owner javaname.TypeName, member javaname.Name, from label.Label) (javaname.StaticMemberID, error) {
	if ix.types.Get(string(owner)) == nil {
		return "", fmt.Errorf("%s: static member %s declared on unknown type %s", ix.provider, member, owner)
	}
	id := javaname.NewStaticMemberID(owner, member)
	ix.members.Put(memberKey(owner, member), NewSymbol(SymbolStaticMember, string(id), ix.provider, from))
	return id, nil
}

// ResolveType implements part of the TypeIndex interface.
func (ix *TrieIndex) ResolveType(name javaname.QualifiedName) (javaname.TypeName, bool) {
	sym, ok := ix.GetSymbol(name.Dotted())
	if !ok {
		return "", false
	}
	return sym.TypeName(), true
}

// ResolveTypeInPackage implements part of the TypeIndex interface.
func (ix *TrieIndex) ResolveTypeInPackage(pkg javaname.PackageName, name javaname.Name) (javaname.TypeName, bool) {
	sym, ok := ix.GetSymbol(pkg.Qualify(name))
	if !ok {
		return "", false
	}
	return sym.TypeName(), true
}

// PackageExists implements part of the TypeIndex interface.
func (ix *TrieIndex) PackageExists(pkg javaname.PackageName) bool {
	if pkg.IsRoot() {
		return ix.rootPackage
	}
	return ix.packages.Get(pkg.Dotted()) != nil
}

// ResolveStaticMember implements part of the TypeIndex interface.
func (ix *TrieIndex) ResolveStaticMember(owner javaname.TypeName, name javaname.Name) (javaname.StaticMemberID, bool) {
	v := ix.members.Get(memberKey(owner, name))
	if v == nil {
		return "", false
	}
	return javaname.StaticMemberID(v.(*Symbol).Name), true
}

// GetSymbol does an exact lookup of the given type name.
func (ix *TrieIndex) GetSymbol(name string) (*Symbol, bool) {
	if name == "" {
		return nil, false
	}
	v := ix.types.Get(name)
	if v == nil {
		return nil, false
	}
	return v.(*Symbol), true
}

// Label returns the label that provides the given type.
func (ix *TrieIndex) Label(name javaname.TypeName) (label.Label, bool) {
	sym, ok := ix.GetSymbol(string(name))
	if !ok {
		return label.NoLabel, false
	}
	return sym.Label, true
}

// GetSymbols returns the type symbols under the given package prefix, sorted
// by name.
func (ix *TrieIndex) GetSymbols(prefix string) (symbols []*Symbol) {
	ix.types.Walk(func(key string, value interface{}) error {
		sym := value.(*Symbol)
		if prefix == "" || strings.HasPrefix(sym.Name, prefix+".") {
			symbols = append(symbols, sym)
		}
		return nil
	})
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i].Name < symbols[j].Name
	})
	return
}

// String implements the fmt.Stringer interface
func (ix *TrieIndex) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s (%d types) ---\n", ix.provider, ix.size)
	for _, sym := range ix.GetSymbols("") {
		buf.WriteString(sym.String())
		buf.WriteRune('\n')
	}
	return buf.String()
}

func memberKey(owner javaname.TypeName, member javaname.Name) string {
	return string(owner) + "." + string(member)
}

// packageOf returns the package portion of a binary type name: everything
// before the last '.'.
func packageOf(name javaname.TypeName) javaname.PackageName {
	s := string(name)
	i := strings.LastIndexByte(s, '.')
	if i < 0 {
		return nil
	}
	return javaname.ParsePackageName(s[:i])
}

// importSegmenter segments string key paths by dot separators. For example,
// ".a.b.c" -> (".a", 2), (".b", 4), (".c", -1) in successive calls. It does
// not allocate any heap memory.
func importSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.IndexRune(path[start+1:], '.') // next '.' after 0th rune
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end+1], start + end + 1
}
