package variants

import (
	"strings"
)

// Define is a single resolved placeholder assignment. Immutable value type.
type Define struct {
	Placeholder string
	Value       string
}

// String serializes the define in the `key=value` shape the materialization
// collaborator consumes. No escaping: keys and values must not contain `=`
// or whitespace.
func (d Define) String() string {
	return d.Placeholder + "=" + d.Value
}

// Variant is one complete assignment: exactly one Define per placeholder of
// its owning template, in the template's placeholder declaration order.
type Variant []Define

// Defines returns the `key=value` strings in declaration order.
func (v Variant) Defines() []string {
	defines := make([]string, len(v))
	for i, d := range v {
		defines[i] = d.String()
	}
	return defines
}

// PathSegments returns the choice values in declaration order, one output
// directory level per placeholder.
func (v Variant) PathSegments() []string {
	segments := make([]string, len(v))
	for i, d := range v {
		segments[i] = d.Value
	}
	return segments
}

// String is a compact human-readable form used in logs and summaries.
func (v Variant) String() string {
	return strings.Join(v.Defines(), " ")
}
