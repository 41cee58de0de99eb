package registry

import (
	"errors"
	"fmt"
	"regexp"
)

// identifierPattern is the accepted identifier shape: an uppercase ASCII
// letter followed by uppercase letters, digits, and underscores.
var identifierPattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// Violation kinds reported by [Validate].
const (
	ViolationIdentifier = "identifier"
	ViolationCode       = "code"
	ViolationBand       = "band"
	ViolationOverlap    = "overlap"
	ViolationDuplicate  = "duplicate"
)

// ValidationError describes one problem found by [Validate].
type ValidationError struct {
	Kind       string
	Definition Definition
	Reason     string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Kind == ViolationOverlap {
		return "registry: " + e.Reason
	}
	return fmt.Sprintf("registry: %s: %s", e.Definition, e.Reason)
}

// Validate checks a candidate table against the catalogue invariants and
// returns every violation found, joined with [errors.Join], or nil.
//
// The checks are: identifiers are well-formed, codes are positive, every
// code falls inside exactly one of bands, bands do not overlap, and no
// identifier or code repeats. Validate only inspects defs; it does not
// build or modify any registry. Passing a nil bands slice skips the band
// checks.
func Validate(defs []Definition, bands []Band) error {
	var errs []error

	for i := range bands {
		for j := i + 1; j < len(bands); j++ {
			if bands[i].Overlaps(bands[j]) {
				errs = append(errs, &ValidationError{
					Kind:   ViolationOverlap,
					Reason: fmt.Sprintf("band %s overlaps %s", bands[i], bands[j]),
				})
			}
		}
	}

	seenIDs := make(map[string]Definition, len(defs))
	seenCodes := make(map[int]Definition, len(defs))
	for _, d := range defs {
		if !identifierPattern.MatchString(d.Identifier) {
			errs = append(errs, &ValidationError{
				Kind:       ViolationIdentifier,
				Definition: d,
				Reason:     fmt.Sprintf("identifier %q must match %s", d.Identifier, identifierPattern),
			})
		}
		if d.Code <= 0 {
			errs = append(errs, &ValidationError{
				Kind:       ViolationCode,
				Definition: d,
				Reason:     fmt.Sprintf("code %d is not positive", d.Code),
			})
		} else if bands != nil {
			if _, ok := BandOf(d.Code, bands); !ok {
				errs = append(errs, &ValidationError{
					Kind:       ViolationBand,
					Definition: d,
					Reason:     fmt.Sprintf("code %d is outside every band", d.Code),
				})
			}
		}
		if prev, dup := seenIDs[d.Identifier]; dup {
			errs = append(errs, &ValidationError{
				Kind:       ViolationDuplicate,
				Definition: d,
				Reason:     fmt.Sprintf("identifier already used by code %d", prev.Code),
			})
		} else {
			seenIDs[d.Identifier] = d
		}
		if prev, dup := seenCodes[d.Code]; dup {
			errs = append(errs, &ValidationError{
				Kind:       ViolationDuplicate,
				Definition: d,
				Reason:     fmt.Sprintf("code already used by %s", prev.Identifier),
			})
		} else {
			seenCodes[d.Code] = d
		}
	}

	return errors.Join(errs...)
}
