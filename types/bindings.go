package types

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Bindings maps declared type parameters, by identity, to the types a class
// instantiates them with. A top-level binding target is always a reference
// type, never a wildcard: bindings only ever replace bare variable uses.
type Bindings map[*TypeParameter]Type

// Get looks up the binding for a parameter
func (b Bindings) Get(param *TypeParameter) (Type, bool) {
	bound, ok := b[param]
	return bound, ok
}

// Compose returns the bindings equivalent to applying b and then next: every
// value of b is substituted through next, and bindings of next for
// parameters b does not mention carry over unchanged.
func (b Bindings) Compose(next Bindings) Bindings {
	if len(b) == 0 {
		return next
	}
	if len(next) == 0 {
		return b
	}
	composed := make(Bindings, len(b)+len(next))
	for param, bound := range b {
		composed[param] = Substitute(bound, next)
	}
	for param, bound := range next {
		if _, already := composed[param]; !already {
			composed[param] = bound
		}
	}
	return composed
}

// String renders the bindings deterministically, ordered by parameter name
func (b Bindings) String() string {
	entries := make([]string, 0, len(b))
	for param, bound := range b {
		entries = append(entries, param.Name+" -> "+TypeString(bound))
	}
	slices.Sort(entries)
	return "{" + strings.Join(entries, ", ") + "}"
}
