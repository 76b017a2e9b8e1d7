// pkg/generate/generate_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temp filesystem, fake materializer
// PURPOSE: Test output path computation, ordering, clean, env
// normalization and the fail-fast policy

package generate_test

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/vargen/pkg/config"
	"github.com/arthur-debert/vargen/pkg/errors"
	"github.com/arthur-debert/vargen/pkg/generate"
	"github.com/arthur-debert/vargen/pkg/templates"
	"github.com/arthur-debert/vargen/pkg/variants"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	TemplateDir string
	Defines     []string
	DestDir     string
	Overwrite   bool
	Silent      bool
}

// fakeMaterializer records calls and optionally fails on the nth call
type fakeMaterializer struct {
	calls  []call
	failOn int // 1-based, 0 means never
	err    error
}

func (f *fakeMaterializer) Materialize(templateDir string, defines []string, destDir string, overwrite, silent bool) error {
	f.calls = append(f.calls, call{templateDir, defines, destDir, overwrite, silent})
	if f.failOn > 0 && len(f.calls) == f.failOn {
		return f.err
	}
	return nil
}

func graphicsSets(t *testing.T) []variants.Set {
	t.Helper()
	tmpl := templates.Template{
		Name: "graphics",
		Path: "/templates/graphics",
		Placeholders: []config.Placeholder{
			{Name: "integration", Choices: []string{"cargo-gpu", "spirv-builder"}},
			{Name: "api", Choices: []string{"ash", "wgpu"}},
		},
	}
	vs, _ := variants.Expand(tmpl, nil)
	return []variants.Set{{Template: tmpl, Variants: vs}}
}

func TestRunSingleTemplateLayout(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated")
	fake := &fakeMaterializer{}
	driver := generate.New(generate.Options{Out: out, Materializer: fake, Silent: true})

	results, err := driver.Run(graphicsSets(t))
	require.NoError(t, err)
	require.Len(t, results, 4)

	// Single template: no template-name path level, one level per
	// placeholder in declaration order
	assert.Equal(t, filepath.Join(out, "cargo-gpu", "ash"), results[0].OutDir)
	assert.Equal(t, filepath.Join(out, "cargo-gpu", "wgpu"), results[1].OutDir)
	assert.Equal(t, filepath.Join(out, "spirv-builder", "ash"), results[2].OutDir)
	assert.Equal(t, filepath.Join(out, "spirv-builder", "wgpu"), results[3].OutDir)

	for _, r := range results {
		info, err := os.Stat(r.OutDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestRunMultiTemplateLayout(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated")
	fake := &fakeMaterializer{}
	driver := generate.New(generate.Options{Out: out, Materializer: fake, Silent: true})

	sets := graphicsSets(t)
	compute := templates.Template{
		Name: "compute",
		Path: "/templates/compute",
		Placeholders: []config.Placeholder{
			{Name: "backend", Choices: []string{"vulkan"}},
		},
	}
	cvs, _ := variants.Expand(compute, nil)
	sets = append(sets, variants.Set{Template: compute, Variants: cvs})

	results, err := driver.Run(sets)
	require.NoError(t, err)
	require.Len(t, results, 5)

	assert.Equal(t, filepath.Join(out, "graphics", "cargo-gpu", "ash"), results[0].OutDir)
	assert.Equal(t, filepath.Join(out, "compute", "vulkan"), results[4].OutDir)
}

func TestRunPassesDefinesAndOverwrite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated")
	fake := &fakeMaterializer{}
	driver := generate.New(generate.Options{Out: out, Materializer: fake, Silent: true})

	_, err := driver.Run(graphicsSets(t))
	require.NoError(t, err)
	require.Len(t, fake.calls, 4)

	first := fake.calls[0]
	assert.Equal(t, "/templates/graphics", first.TemplateDir)
	assert.Equal(t, []string{"integration=cargo-gpu", "api=ash"}, first.Defines)
	// Regenerating over an existing tree is an expected workflow
	assert.True(t, first.Overwrite)
	assert.True(t, first.Silent)
}

func TestRunNormalizesEnv(t *testing.T) {
	t.Setenv("CARGO_NAME", "someone")
	t.Setenv("CARGO_EMAIL", "someone@example.com")

	out := filepath.Join(t.TempDir(), "generated")
	driver := generate.New(generate.Options{Out: out, Materializer: &fakeMaterializer{}, Silent: true})

	_, err := driver.Run(graphicsSets(t))
	require.NoError(t, err)

	assert.Equal(t, "generated", os.Getenv("CARGO_NAME"))
	assert.Equal(t, "generated", os.Getenv("CARGO_EMAIL"))
}

func TestRunLogsThroughGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	prevLogger := log.Logger
	prevLevel := zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	}()

	// No Logger in the options: the driver must pick up the global one
	driver := generate.New(generate.Options{
		Out:          filepath.Join(t.TempDir(), "generated"),
		DryRun:       true,
		Materializer: &fakeMaterializer{},
	})

	_, err := driver.Run(graphicsSets(t))
	require.NoError(t, err)

	logged := buf.String()
	assert.Contains(t, logged, `"component":"generate"`)
	assert.Contains(t, logged, "Operation started")
	assert.Contains(t, logged, "Generating variant")
	assert.Contains(t, logged, "Generation complete")
}

func TestRunDryRunLeavesEnvAlone(t *testing.T) {
	t.Setenv("CARGO_NAME", "someone")
	t.Setenv("CARGO_EMAIL", "someone@example.com")

	out := filepath.Join(t.TempDir(), "generated")
	driver := generate.New(generate.Options{Out: out, DryRun: true, Materializer: &fakeMaterializer{}})

	_, err := driver.Run(graphicsSets(t))
	require.NoError(t, err)

	assert.Equal(t, "someone", os.Getenv("CARGO_NAME"))
	assert.Equal(t, "someone@example.com", os.Getenv("CARGO_EMAIL"))
}

func TestRunFailFast(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated")
	fake := &fakeMaterializer{failOn: 2, err: stderrors.New("template engine exploded")}
	driver := generate.New(generate.Options{Out: out, Materializer: fake, Silent: true})

	results, err := driver.Run(graphicsSets(t))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMaterialize))
	assert.ErrorContains(t, err, "template engine exploded")

	// First variant succeeded, the rest were never attempted
	assert.Len(t, results, 1)
	assert.Len(t, fake.calls, 2)
}

func TestRunClean(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated")
	stale := filepath.Join(out, "stale", "leftover")
	require.NoError(t, os.MkdirAll(stale, 0755))

	driver := generate.New(generate.Options{
		Out:          out,
		Clean:        true,
		Materializer: &fakeMaterializer{},
		Silent:       true,
	})

	_, err := driver.Run(graphicsSets(t))
	require.NoError(t, err)

	_, statErr := os.Stat(stale)
	assert.True(t, os.IsNotExist(statErr), "stale directory should have been removed")
}

func TestRunDryRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated")
	fake := &fakeMaterializer{}
	driver := generate.New(generate.Options{Out: out, DryRun: true, Materializer: fake})

	results, err := driver.Run(graphicsSets(t))
	require.NoError(t, err)

	// Paths are computed but nothing is touched
	require.Len(t, results, 4)
	assert.Empty(t, fake.calls)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}
