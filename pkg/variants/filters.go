package variants

import (
	"github.com/arthur-debert/vargen/pkg/logging"
	"github.com/arthur-debert/vargen/pkg/templates"
)

// Filters is the classified form of the raw filter token list. Every raw
// token lands in exactly one bucket; classification is a partition, not a
// filter. Tokens in Values are resolved later, per template, since
// templates may have disjoint choice vocabularies.
type Filters struct {
	// Templates holds tokens that exactly match a discovered template name
	Templates []string

	// Values holds the remaining tokens, expected to match placeholder
	// choice values
	Values []string
}

// Classify splits the raw token list against the discovered template names.
// No I/O and no failure here; unresolved Values tokens surface as errors
// only after expansion has tried them against every in-scope template.
func Classify(discovered []templates.Template, tokens []string) Filters {
	logger := logging.GetLogger("variants.filters")

	names := make(map[string]bool, len(discovered))
	for _, t := range discovered {
		names[t.Name] = true
	}

	var f Filters
	for _, token := range tokens {
		if names[token] {
			f.Templates = append(f.Templates, token)
		} else {
			f.Values = append(f.Values, token)
		}
	}

	logger.Debug().
		Strs("template_filters", f.Templates).
		Strs("value_filters", f.Values).
		Msg("Classified filter tokens")

	return f
}

// Scope narrows the discovered templates to the ones selected by
// template-name filters. With no template filters every template is in
// scope. Discovery order is preserved.
func (f Filters) Scope(discovered []templates.Template) []templates.Template {
	if len(f.Templates) == 0 {
		return discovered
	}

	selected := make(map[string]bool, len(f.Templates))
	for _, name := range f.Templates {
		selected[name] = true
	}

	var scoped []templates.Template
	for _, t := range discovered {
		if selected[t.Name] {
			scoped = append(scoped, t)
		}
	}
	return scoped
}
