package resolver

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stackb/javaresolve/pkg/javaname"
)

func TestResolveStaticImportsDetailed(t *testing.T) {
	for name, tc := range map[string]struct {
		imports []string
		name    javaname.Name
		want    StaticLookup
	}{
		"static star": {
			imports: []string{"static java.lang.Math.*"},
			name:    "PI",
			want:    staticLookup("java.lang.Math::PI"),
		},
		"static stars are ambiguous": {
			imports: []string{"static java.lang.Math.*", "static q.Util.*"},
			name:    "max",
			want:    staticLookup("java.lang.Math::max", "q.Util::max"),
		},
		"static stars are ambiguous in any order": {
			imports: []string{"static q.Util.*", "static java.lang.Math.*"},
			name:    "max",
			want:    staticLookup("java.lang.Math::max", "q.Util::max"),
		},
		"single shadows star": {
			imports: []string{"static q.Util.*", "static java.lang.Math.max"},
			name:    "max",
			want:    staticLookup("java.lang.Math::max"),
		},
		"conflicting singles": {
			imports: []string{"static q.Util.max", "static p.Bar.max"},
			name:    "max",
			want:    staticLookup("p.Bar::max", "q.Util::max"),
		},
		"duplicate stars collapse": {
			imports: []string{"static java.lang.Math.*", "static java.lang.Math.*"},
			name:    "min",
			want:    staticLookup("java.lang.Math::min"),
		},
		"unresolved single falls through to star": {
			imports: []string{"static nope.Owner.max", "static q.Util.*"},
			name:    "max",
			want:    staticLookup("q.Util::max"),
		},
		"unknown owner": {
			imports: []string{"static nope.Owner.*"},
			name:    "max",
		},
		"unknown member": {
			imports: []string{"static java.lang.Math.*"},
			name:    "clamp",
		},
		"classpath cannot declare members of java types": {
			imports: []string{"static java.lang.Evil.evil"},
			name:    "evil",
		},
		"classpath cannot declare members of java types on demand": {
			imports: []string{"static java.lang.Evil.*"},
			name:    "evil",
		},
		"classpath cannot add members to jdk types": {
			imports: []string{"static java.lang.Math.hack"},
			name:    "hack",
		},
		"classpath cannot add members to jdk types on demand": {
			imports: []string{"static java.lang.Math.*"},
			name:    "hack",
		},
		"member types are not static members": {
			imports: []string{"static java.lang.Thread.*"},
			name:    "State",
		},
	} {
		t.Run(name, func(t *testing.T) {
			r := newTestResolver(t)
			got := r.ResolveStaticImportsDetailed(parseImports(tc.imports...), tc.name)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveStaticImportsDetailedNilImports(t *testing.T) {
	r := newTestResolver(t)
	if got := r.ResolveStaticImportsDetailed(nil, "max"); !got.NotFound() {
		t.Errorf("want not found, got %v", got.Candidates)
	}
}
