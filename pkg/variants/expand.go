package variants

import (
	"github.com/arthur-debert/vargen/pkg/errors"
	"github.com/arthur-debert/vargen/pkg/logging"
	"github.com/arthur-debert/vargen/pkg/templates"
)

// Set pairs a template with its expanded variants.
type Set struct {
	Template templates.Template
	Variants []Variant
}

// Expand computes the variants of a single template under the given value
// tokens. For each placeholder the candidate choices are the tokens that
// match its declared choices, kept in declared-choice order; a placeholder
// no token matches keeps its full choice list. The cartesian product is
// taken across placeholders in declaration order, so every variant's
// defines come out in that order.
//
// The returned map records which tokens resolved against this template.
// Tokens that resolved nowhere are the caller's problem: a token is only
// unknown once every in-scope template has rejected it.
func Expand(t templates.Template, values []string) ([]Variant, map[string]bool) {
	tokens := make(map[string]bool, len(values))
	for _, v := range values {
		tokens[v] = true
	}
	resolved := make(map[string]bool)

	variants := []Variant{{}}
	for _, p := range t.Placeholders {
		// Matching tokens in declared-choice order, not filter order
		var candidates []string
		for _, choice := range p.Choices {
			if tokens[choice] {
				candidates = append(candidates, choice)
				resolved[choice] = true
			}
		}
		if len(candidates) == 0 {
			candidates = p.Choices
		}

		next := make([]Variant, 0, len(variants)*len(candidates))
		for _, v := range variants {
			for _, value := range candidates {
				extended := make(Variant, len(v), len(v)+1)
				copy(extended, v)
				next = append(next, append(extended, Define{Placeholder: p.Name, Value: value}))
			}
		}
		variants = next
	}

	return variants, resolved
}

// ExpandAll runs expansion over every in-scope template and applies the
// deferred filter resolution: a value token is fatal only if no in-scope
// template resolved it. A run that would produce zero (template, variant)
// pairs fails rather than silently generating nothing; when that happens
// because unresolved tokens exist, the unknown-filter error wins, otherwise
// it surfaces as an empty-result error (this includes the empty-discovery
// case).
func ExpandAll(discovered []templates.Template, f Filters) ([]Set, error) {
	logger := logging.GetLogger("variants.expand")

	scoped := f.Scope(discovered)
	resolved := make(map[string]bool)
	var sets []Set
	total := 0

	for _, t := range scoped {
		vs, res := Expand(t, f.Values)
		for token := range res {
			resolved[token] = true
		}
		sets = append(sets, Set{Template: t, Variants: vs})
		total += len(vs)

		logger.Debug().
			Str("template", t.Name).
			Int("variants", len(vs)).
			Msg("Expanded template")
	}

	for _, token := range f.Values {
		if !resolved[token] {
			return nil, errors.Newf(errors.ErrUnknownFilter,
				"filter `%s` matches no template name and no placeholder choice", token).
				WithDetail("token", token)
		}
	}

	if total == 0 {
		return nil, errors.New(errors.ErrEmptyResult,
			"filters selected no template variants, nothing to generate")
	}

	logger.Info().
		Int("templates", len(sets)).
		Int("variants", total).
		Msg("Computed template variants")

	return sets, nil
}
