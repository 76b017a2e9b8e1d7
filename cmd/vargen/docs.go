package main

import (
	_ "embed"
	"fmt"

	"github.com/arthur-debert/vargen/pkg/ui"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed docs/descriptors.md
var descriptorsDoc string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the template descriptor format guide",
	RunE: func(cmd *cobra.Command, args []string) error {
		if resolvedFormat() != ui.FormatTerminal {
			fmt.Print(descriptorsDoc)
			return nil
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			// Fall back to the raw markdown
			fmt.Print(descriptorsDoc)
			return nil
		}

		rendered, err := renderer.Render(descriptorsDoc)
		if err != nil {
			fmt.Print(descriptorsDoc)
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}
