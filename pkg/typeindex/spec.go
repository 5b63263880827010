package typeindex

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bazelbuild/bazel-gazelle/label"
	"gopkg.in/yaml.v3"

	"github.com/stackb/javaresolve/pkg/javaname"
)

// IndexSpec describes the types provided by a single jar, JDK image or source
// rule.
type IndexSpec struct {
	// Label is the bazel label that provides the types (may be empty).
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	// Filename is the jar or image the spec was derived from.
	Filename string `json:"filename,omitempty" yaml:"filename,omitempty"`
	// Classes is a list of binary type names ("a.b.Outer$Inner").
	Classes []string `json:"classes,omitempty" yaml:"classes,omitempty"`
	// Packages is a list of packages represented in the spec.
	Packages []string `json:"packages,omitempty" yaml:"packages,omitempty"`
	// StaticMembers lists the static fields and methods per owner type.
	StaticMembers []*StaticMemberSpec `json:"staticMembers,omitempty" yaml:"staticMembers,omitempty"`
}

// StaticMemberSpec lists the static member names of one owner type.
type StaticMemberSpec struct {
	Owner   string   `json:"owner" yaml:"owner"`
	Members []string `json:"members" yaml:"members"`
}

// ReadIndexSpec reads a spec file.  Files ending in .yaml or .yml are decoded
// as YAML, anything else as JSON.
func ReadIndexSpec(filename string) (*IndexSpec, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	var spec IndexSpec
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", filename, err)
		}
	default:
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", filename, err)
		}
	}
	if spec.Filename == "" {
		spec.Filename = filename
	}
	return &spec, nil
}

// WriteIndexSpec writes the spec to filename.  Files ending in .yaml or .yml
// are encoded as YAML, anything else as indented JSON.
func WriteIndexSpec(filename string, spec *IndexSpec) error {
	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(spec)
	default:
		data, err = json.MarshalIndent(spec, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filename, err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

// MergeIndexSpecs combines the classes, packages and static members of specs
// into one spec provided by from.  Names are sorted and deduplicated.
func MergeIndexSpecs(from string, specs ...*IndexSpec) *IndexSpec {
	classes := make(map[string]bool)
	packages := make(map[string]bool)
	members := make(map[string]map[string]bool)
	for _, spec := range specs {
		for _, class := range spec.Classes {
			classes[class] = true
		}
		for _, pkg := range spec.Packages {
			packages[pkg] = true
		}
		for _, ms := range spec.StaticMembers {
			if members[ms.Owner] == nil {
				members[ms.Owner] = make(map[string]bool)
			}
			for _, member := range ms.Members {
				members[ms.Owner][member] = true
			}
		}
	}

	merged := &IndexSpec{
		Label:    from,
		Classes:  sortedKeys(classes),
		Packages: sortedKeys(packages),
	}
	owners := make([]string, 0, len(members))
	for owner := range members {
		owners = append(owners, owner)
	}
	sort.Strings(owners)
	for _, owner := range owners {
		merged.StaticMembers = append(merged.StaticMembers, &StaticMemberSpec{
			Owner:   owner,
			Members: sortedKeys(members[owner]),
		})
	}
	return merged
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Load adds every class, package and static member of the spec to the index.
func (ix *TrieIndex) Load(spec *IndexSpec) error {
	from := label.NoLabel
	if spec.Label != "" {
		lbl, err := label.Parse(spec.Label)
		if err != nil {
			return fmt.Errorf("%s: invalid label %q: %w", spec.Filename, spec.Label, err)
		}
		from = lbl
	}
	for _, pkg := range spec.Packages {
		ix.PutPackage(javaname.ParsePackageName(pkg), from)
	}
	for _, class := range spec.Classes {
		if err := ix.PutType(javaname.TypeName(class), from); err != nil {
			return err
		}
	}
	for _, ms := range spec.StaticMembers {
		for _, member := range ms.Members {
			if _, err := ix.PutStaticMember(javaname.TypeName(ms.Owner), javaname.Name(member), from); err != nil {
				return fmt.Errorf("%s: %w", spec.Filename, err)
			}
		}
	}
	return nil
}

// NewTrieIndexFromSpecs builds one index holding all of the given specs.
func NewTrieIndexFromSpecs(provider string, specs ...*IndexSpec) (*TrieIndex, error) {
	ix := NewTrieIndex(provider)
	for _, spec := range specs {
		if err := ix.Load(spec); err != nil {
			return nil, err
		}
	}
	return ix, nil
}
