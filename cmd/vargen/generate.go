package main

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/vargen/pkg/execute"
	"github.com/arthur-debert/vargen/pkg/generate"
	"github.com/arthur-debert/vargen/pkg/style"
	"github.com/arthur-debert/vargen/pkg/templates"
	"github.com/arthur-debert/vargen/pkg/variants"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	templatesRoot string
	outDir        string
	clean         bool
	executeWith   string
	dryRun        bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [filters...]",
	Short: "Generate all template variants matching the given filters",
	Long: `Generate expands every discovered template into the full cartesian
product of its placeholder choices and materializes each variant into
its own output directory.

Trailing arguments are filter tokens. A token equal to a template name
limits generation to that template; any other token must match a
placeholder choice value and limits that placeholder to the matching
choices. Filtering one placeholder never changes the other factors of
the product.`,
	Example: `  vargen generate
  vargen generate ash
  vargen generate graphics cargo-gpu wgpu
  vargen generate --clean -x "cargo check"`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&templatesRoot, "templates", ".", "Template root directory (holds the root descriptor)")
	generateCmd.Flags().StringVar(&outDir, "out", "", "Output directory (default: generated/ next to the template root)")
	generateCmd.Flags().BoolVar(&clean, "clean", false, "Delete the output directory before generating. Use this when you moved or removed files")
	generateCmd.Flags().StringVarP(&executeWith, "execute", "x", "", "A command to run in each generated directory; if any fails, the run fails")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the variants without generating anything")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	discovered, err := templates.Discover(templatesRoot)
	if err != nil {
		return err
	}

	filters := variants.Classify(discovered, args)
	sets, err := variants.ExpandAll(discovered, filters)
	if err != nil {
		return err
	}

	out := outDir
	if out == "" {
		out = filepath.Join(templatesRoot, "..", "generated")
	}

	driver := generate.New(generate.Options{
		Out:    out,
		Clean:  clean,
		DryRun: dryRun,
		Silent: verbosity < 2,
	})

	results, err := driver.Run(sets)
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Println(style.RenderVariantPreview(sets))
		return nil
	}

	fmt.Println(style.RenderSummary(results))

	if executeWith != "" {
		dirs := make([]string, len(results))
		for i, r := range results {
			dirs[i] = r.OutDir
		}
		log.Info().Str("command", executeWith).Int("dirs", len(dirs)).Msg("Running post-generation command")
		if err := execute.New(executeWith).Run(dirs); err != nil {
			return err
		}
	}

	return nil
}
