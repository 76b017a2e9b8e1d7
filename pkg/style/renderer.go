package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/vargen/pkg/generate"
	"github.com/arthur-debert/vargen/pkg/templates"
	"github.com/arthur-debert/vargen/pkg/variants"
	"github.com/pterm/pterm"
)

// RenderTemplateList renders the discovered templates with their
// placeholders and choices
func RenderTemplateList(found []templates.Template) string {
	if len(found) == 0 {
		return MutedStyle.Sprint("No templates found")
	}

	var result strings.Builder
	result.WriteString(TitleStyle.Sprint("Available Templates") + "\n\n")

	for _, t := range found {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			pterm.Info.Prefix.Text,
			Bold(t.Name),
			MutedStyle.Sprintf("(%d variants)", t.VariantCount())))
		result.WriteString(Indent(PathStyle.Sprint(t.Path), 1) + "\n")

		for _, p := range t.Placeholders {
			line := fmt.Sprintf("%s: %s", p.Name, ChoiceStyle.Sprint(strings.Join(p.Choices, ", ")))
			result.WriteString(Indent(line, 1) + "\n")
		}
		result.WriteString("\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderVariantPreview renders the variants a dry run would generate
func RenderVariantPreview(sets []variants.Set) string {
	var result strings.Builder
	result.WriteString(TitleStyle.Sprint("Variants") + "\n\n")

	total := 0
	for _, set := range sets {
		result.WriteString(Bold(set.Template.Name) + "\n")
		for _, v := range set.Variants {
			result.WriteString(Indent(v.String(), 1) + "\n")
		}
		total += len(set.Variants)
	}

	result.WriteString("\n" + MutedStyle.Sprintf("%d variants total", total))
	return result.String()
}

// RenderSummary renders the generation results
func RenderSummary(results []generate.Result) string {
	if len(results) == 0 {
		return MutedStyle.Sprint("Nothing generated")
	}

	var result strings.Builder
	result.WriteString(SuccessStyle.Sprintf("Generated %d variants", len(results)) + "\n")
	for _, r := range results {
		result.WriteString(Indent(PathStyle.Sprint(r.OutDir), 1) + "\n")
	}
	return strings.TrimRight(result.String(), "\n")
}
