package generate

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/vargen/pkg/errors"
	"github.com/arthur-debert/vargen/pkg/logging"
	"github.com/arthur-debert/vargen/pkg/variants"
	"github.com/rs/zerolog"
)

// Options contains configuration for the generation driver
type Options struct {
	// Out is the output base directory
	Out string

	// Clean deletes the output base before generating
	Clean bool

	// DryRun computes output paths without touching the filesystem or
	// invoking the materializer
	DryRun bool

	// Silent suppresses the materializer's own console output
	Silent bool

	// Materializer instantiates each variant; defaults to CargoGenerate
	Materializer Materializer

	// Logger overrides the component logger; nil uses the global one
	Logger *zerolog.Logger
}

// Result is one materialized (template, variant) pair
type Result struct {
	Template string
	Variant  variants.Variant
	OutDir   string
}

// Driver walks every (template, variant) pair in order and delegates each
// one to the materializer.
type Driver struct {
	out          string
	clean        bool
	dryRun       bool
	silent       bool
	materializer Materializer
	logger       zerolog.Logger
}

// New creates a new generation driver
func New(opts Options) *Driver {
	logger := logging.GetLogger("generate")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	m := opts.Materializer
	if m == nil {
		m = &CargoGenerate{}
	}

	return &Driver{
		out:          opts.Out,
		clean:        opts.Clean,
		dryRun:       opts.DryRun,
		silent:       opts.Silent,
		materializer: m,
		logger:       logger,
	}
}

// Run generates every variant of every set, in set order then variant
// order, and returns the ordered results. The run is fail-fast: the first
// materialization error aborts the remaining variants. The whole pipeline
// is single-threaded; normalizeEnv mutates process-wide state and has no
// synchronization.
func (d *Driver) Run(sets []variants.Set) ([]Result, error) {
	done := logging.LogOperationStart(d.logger, "generate")
	defer done()

	// A dry run touches nothing, not even the environment.
	if !d.dryRun {
		normalizeEnv()
	}

	if err := d.prepareOut(); err != nil {
		return nil, err
	}

	// With a single template in scope the template-name path level is
	// omitted, matching the flat layout of single-template roots.
	includeName := len(sets) > 1

	var results []Result
	for _, set := range sets {
		for _, variant := range set.Variants {
			outDir := d.outDir(set.Template.Name, variant, includeName)

			d.logger.Debug().
				Str("template", set.Template.Name).
				Str("variant", variant.String()).
				Str("outDir", outDir).
				Bool("dry_run", d.dryRun).
				Msg("Generating variant")

			if !d.dryRun {
				if err := os.MkdirAll(outDir, 0755); err != nil {
					return results, errors.Wrap(err, errors.ErrDirCreate, "cannot create output directory").
						WithDetail("path", outDir)
				}

				err := d.materializer.Materialize(set.Template.Path, variant.Defines(), outDir, true, d.silent)
				if err != nil {
					return results, errors.Wrapf(err, errors.ErrMaterialize,
						"materialization failed for variant `%s` of template `%s`", variant, set.Template.Name).
						WithDetail("template", set.Template.Name).
						WithDetail("outDir", outDir)
				}
			}

			results = append(results, Result{
				Template: set.Template.Name,
				Variant:  variant,
				OutDir:   outDir,
			})
		}
	}

	d.logger.Info().Int("count", len(results)).Msg("Generation complete")
	return results, nil
}

// outDir nests one directory level per placeholder, in declaration order,
// so repeated runs land in identical, diffable paths.
func (d *Driver) outDir(templateName string, v variants.Variant, includeName bool) string {
	parts := []string{d.out}
	if includeName {
		parts = append(parts, templateName)
	}
	parts = append(parts, v.PathSegments()...)
	return filepath.Join(parts...)
}

// prepareOut cleans and recreates the output base as requested.
func (d *Driver) prepareOut() error {
	if d.dryRun {
		return nil
	}
	if d.clean {
		if err := os.RemoveAll(d.out); err != nil {
			return errors.Wrap(err, errors.ErrDirRemove, "cannot clean output directory").
				WithDetail("path", d.out)
		}
	}
	if err := os.MkdirAll(d.out, 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "cannot create output directory").
			WithDetail("path", d.out)
	}
	return nil
}

// normalizeEnv pins the identity cargo-generate would otherwise read from
// the user's environment so generated output is reproducible across
// machines.
// Process-wide mutation: must happen before any generation and never
// concurrently with it.
func normalizeEnv() {
	_ = os.Setenv("CARGO_NAME", "generated")
	_ = os.Setenv("CARGO_EMAIL", "generated")
}
