package registry

import (
	"fmt"
	"strings"
)

// Placeholder is the positional marker substituted by [Format].
const Placeholder = "%s"

// Definition is a single catalogue entry.
type Definition struct {
	// Identifier is the symbolic, case-sensitive name of the error kind
	// (e.g., "VOC_ERROR_DOCUMENT_NOT_FOUND").
	Identifier string `json:"identifier" yaml:"identifier"`

	// Code is the stable numeric code used on the wire and in logs.
	Code int `json:"code" yaml:"code"`

	// Template is the message template. It may contain zero or more
	// [Placeholder] markers and may be empty.
	Template string `json:"template" yaml:"template"`
}

// Placeholders returns the number of [Placeholder] markers in the template.
func (d Definition) Placeholders() int {
	return strings.Count(d.Template, Placeholder)
}

// Format renders the template with args. See the package-level [Format].
func (d Definition) Format(args ...any) string {
	return Format(d, args...)
}

// String returns "IDENTIFIER (code)".
func (d Definition) String() string {
	return fmt.Sprintf("%s (%d)", d.Identifier, d.Code)
}

// Format substitutes args into the template of def, left to right, one
// argument per [Placeholder]. Arguments are rendered with [fmt.Sprint].
//
// Format never fails: placeholders without a matching argument are kept
// literally in the output, and surplus arguments are ignored. No other
// formatting verbs are interpreted, so a template such as "100% done"
// is returned unchanged.
func Format(def Definition, args ...any) string {
	tmpl := def.Template
	if len(args) == 0 || !strings.Contains(tmpl, Placeholder) {
		return tmpl
	}

	var b strings.Builder
	b.Grow(len(tmpl))

	next := 0
	for {
		i := strings.Index(tmpl, Placeholder)
		if i < 0 || next >= len(args) {
			break
		}
		b.WriteString(tmpl[:i])
		b.WriteString(fmt.Sprint(args[next]))
		next++
		tmpl = tmpl[i+len(Placeholder):]
	}
	b.WriteString(tmpl)
	return b.String()
}
