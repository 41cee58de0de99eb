package registry

import (
	"errors"
	"fmt"
	"iter"
)

// Sentinel errors matched by [DuplicateError] through errors.Is.
var (
	// ErrDuplicateIdentifier indicates two definitions share an identifier.
	ErrDuplicateIdentifier = errors.New("registry: duplicate identifier")

	// ErrDuplicateCode indicates two definitions share a code.
	ErrDuplicateCode = errors.New("registry: duplicate code")
)

// DuplicateError reports two definitions that collide on a unique key.
// First and Second are the colliding entries in input order.
type DuplicateError struct {
	// Key is "identifier" or "code".
	Key    string
	First  Definition
	Second Definition
}

// Error implements the error interface.
func (e *DuplicateError) Error() string {
	if e.Key == "code" {
		return fmt.Sprintf("registry: duplicate code %d: %s and %s",
			e.Second.Code, e.First.Identifier, e.Second.Identifier)
	}
	return fmt.Sprintf("registry: duplicate identifier %q: codes %d and %d",
		e.Second.Identifier, e.First.Code, e.Second.Code)
}

// Is matches [ErrDuplicateIdentifier] or [ErrDuplicateCode] depending on
// which key collided.
func (e *DuplicateError) Is(target error) bool {
	switch target {
	case ErrDuplicateIdentifier:
		return e.Key == "identifier"
	case ErrDuplicateCode:
		return e.Key == "code"
	}
	return false
}

// Registry is an immutable catalogue of [Definition] entries, indexed by
// identifier and by code. Both indexes point into the same backing slice.
//
// The zero value is an empty registry. Use [New] or [MustNew] to build a
// populated one.
type Registry struct {
	defs         []Definition
	byIdentifier map[string]int
	byCode       map[int]int
}

// New builds a Registry from defs. The slice is copied; later changes to
// defs do not affect the registry.
//
// New fails with a [*DuplicateError] if two definitions share an identifier
// or a code. The first collision in input order is reported.
func New(defs []Definition) (*Registry, error) {
	r := &Registry{
		defs:         make([]Definition, len(defs)),
		byIdentifier: make(map[string]int, len(defs)),
		byCode:       make(map[int]int, len(defs)),
	}
	copy(r.defs, defs)

	for i, d := range r.defs {
		if j, dup := r.byIdentifier[d.Identifier]; dup {
			return nil, &DuplicateError{Key: "identifier", First: r.defs[j], Second: d}
		}
		if j, dup := r.byCode[d.Code]; dup {
			return nil, &DuplicateError{Key: "code", First: r.defs[j], Second: d}
		}
		r.byIdentifier[d.Identifier] = i
		r.byCode[d.Code] = i
	}

	return r, nil
}

// MustNew is like [New] but panics if the definitions are inconsistent.
// It is intended for compiled-in tables, where a collision is a
// programming error that must stop the process at start-up.
func MustNew(defs []Definition) *Registry {
	r, err := New(defs)
	if err != nil {
		panic(err)
	}
	return r
}

// LookupByIdentifier returns the definition registered under identifier.
// The match is exact and case-sensitive. The second result is false, and
// the definition is the zero value, when no such entry exists.
func (r *Registry) LookupByIdentifier(identifier string) (Definition, bool) {
	if r == nil {
		return Definition{}, false
	}
	i, ok := r.byIdentifier[identifier]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// LookupByCode returns the definition registered under code. The second
// result is false, and the definition is the zero value, when no such
// entry exists.
func (r *Registry) LookupByCode(code int) (Definition, bool) {
	if r == nil {
		return Definition{}, false
	}
	i, ok := r.byCode[code]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// All returns a sequence over every definition in construction order.
// The sequence may be ranged over any number of times and always yields
// the same entries in the same order.
func (r *Registry) All() iter.Seq[Definition] {
	return func(yield func(Definition) bool) {
		if r == nil {
			return
		}
		for _, d := range r.defs {
			if !yield(d) {
				return
			}
		}
	}
}

// Definitions returns a copy of every definition in construction order.
func (r *Registry) Definitions() []Definition {
	if r == nil {
		return nil
	}
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.defs)
}
