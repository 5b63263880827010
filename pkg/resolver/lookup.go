package resolver

import (
	"cmp"
	"slices"

	"github.com/stackb/javaresolve/pkg/javaname"
)

// Lookup collects the distinct candidates found for a name within one
// precedence tier.
type Lookup[T cmp.Ordered] struct {
	Candidates []T
}

// TypeLookup is the result of an import lookup in the type namespace.
type TypeLookup = Lookup[javaname.TypeName]

// StaticLookup is the result of a static import lookup.
type StaticLookup = Lookup[javaname.StaticMemberID]

// Found returns the candidate when there is exactly one.
func (l Lookup[T]) Found() (T, bool) {
	if len(l.Candidates) != 1 {
		var zero T
		return zero, false
	}
	return l.Candidates[0], true
}

// NotFound reports whether there are no candidates.
func (l Lookup[T]) NotFound() bool {
	return len(l.Candidates) == 0
}

// Ambiguous reports whether there is more than one candidate.
func (l Lookup[T]) Ambiguous() bool {
	return len(l.Candidates) > 1
}

func (l *Lookup[T]) add(v T) {
	if !slices.Contains(l.Candidates, v) {
		l.Candidates = append(l.Candidates, v)
	}
}

// sorted puts the candidates in canonical order so a tier's result does not
// depend on import declaration order.
func (l Lookup[T]) sorted() Lookup[T] {
	slices.Sort(l.Candidates)
	return l
}
