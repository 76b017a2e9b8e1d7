package templates

import (
	"github.com/arthur-debert/vargen/pkg/config"
)

// Template is a named, independently-configured generation unit: a directory
// carrying a descriptor plus the payload the materialization collaborator
// instantiates. Immutable after discovery.
type Template struct {
	// Name is the template name (the directory name under the root)
	Name string

	// Path is the path to the template directory
	Path string

	// Placeholders in declaration order, as loaded from the descriptor
	Placeholders []config.Placeholder
}

// Placeholder returns the named placeholder, if the template declares it.
func (t Template) Placeholder(name string) (config.Placeholder, bool) {
	for _, p := range t.Placeholders {
		if p.Name == name {
			return p, true
		}
	}
	return config.Placeholder{}, false
}

// HasChoice reports whether any placeholder of this template declares the
// given choice value.
func (t Template) HasChoice(value string) bool {
	for _, p := range t.Placeholders {
		for _, c := range p.Choices {
			if c == value {
				return true
			}
		}
	}
	return false
}

// VariantCount is the number of unfiltered variants: the product of each
// placeholder's choice count.
func (t Template) VariantCount() int {
	count := 1
	for _, p := range t.Placeholders {
		count *= len(p.Choices)
	}
	return count
}
