// pkg/variants/filters_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test filter token classification and template scoping

package variants_test

import (
	"testing"

	"github.com/arthur-debert/vargen/pkg/templates"
	"github.com/arthur-debert/vargen/pkg/variants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPartitionsEveryToken(t *testing.T) {
	discovered := []templates.Template{graphicsTemplate(), computeTemplate()}

	f := variants.Classify(discovered, []string{"graphics", "ash", "bogus", "compute"})

	assert.Equal(t, []string{"graphics", "compute"}, f.Templates)
	// Unmatched tokens are kept, not dropped; they fail later if they
	// never resolve
	assert.Equal(t, []string{"ash", "bogus"}, f.Values)
}

func TestClassifyEmptyTokens(t *testing.T) {
	f := variants.Classify([]templates.Template{graphicsTemplate()}, nil)

	assert.Empty(t, f.Templates)
	assert.Empty(t, f.Values)
}

func TestClassifyTemplateNameWins(t *testing.T) {
	// A token that equals a template name is a template filter even if it
	// also looks like a choice value elsewhere
	ambiguous := templates.Template{
		Name:         "ash",
		Placeholders: graphicsTemplate().Placeholders,
	}
	discovered := []templates.Template{graphicsTemplate(), ambiguous}

	f := variants.Classify(discovered, []string{"ash"})
	assert.Equal(t, []string{"ash"}, f.Templates)
	assert.Empty(t, f.Values)
}

func TestScope(t *testing.T) {
	discovered := []templates.Template{graphicsTemplate(), computeTemplate()}

	t.Run("no_template_filters_keeps_all", func(t *testing.T) {
		scoped := variants.Filters{}.Scope(discovered)
		assert.Equal(t, discovered, scoped)
	})

	t.Run("selects_named_templates_in_discovery_order", func(t *testing.T) {
		f := variants.Filters{Templates: []string{"compute", "graphics"}}
		scoped := f.Scope(discovered)
		require.Len(t, scoped, 2)
		assert.Equal(t, "graphics", scoped[0].Name)
		assert.Equal(t, "compute", scoped[1].Name)
	})

	t.Run("single_selection", func(t *testing.T) {
		f := variants.Filters{Templates: []string{"compute"}}
		scoped := f.Scope(discovered)
		require.Len(t, scoped, 1)
		assert.Equal(t, "compute", scoped[0].Name)
	})
}

func TestDefineString(t *testing.T) {
	d := variants.Define{Placeholder: "api", Value: "wgpu"}
	assert.Equal(t, "api=wgpu", d.String())
}

func TestVariantSerialization(t *testing.T) {
	v := variants.Variant{
		{Placeholder: "integration", Value: "cargo-gpu"},
		{Placeholder: "api", Value: "ash"},
	}

	assert.Equal(t, []string{"integration=cargo-gpu", "api=ash"}, v.Defines())
	assert.Equal(t, []string{"cargo-gpu", "ash"}, v.PathSegments())
	assert.Equal(t, "integration=cargo-gpu api=ash", v.String())
}
