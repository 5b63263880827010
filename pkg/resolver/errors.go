package resolver

import (
	"errors"
	"fmt"
)

// ErrNameNotFound is returned by Err when a name does not resolve in scope.
var ErrNameNotFound = errors.New("name not found")

// NewAmbiguousNameError builds an error from the candidates of an Ambiguous
// result.
func NewAmbiguousNameError(name string, candidates []Resolution) *AmbiguousNameError {
	return &AmbiguousNameError{
		Name:       name,
		Candidates: append([]Resolution(nil), candidates...),
	}
}

// AmbiguousNameError is the error form of an Ambiguous resolution.
type AmbiguousNameError struct {
	// The name that is ambiguous.
	Name string
	// The equally-preferred candidates.
	Candidates []Resolution
}

func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf("found multiple matches for %q: %v", e.Name, e.Candidates)
}
