package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arthur-debert/vargen/pkg/style"
	"github.com/arthur-debert/vargen/pkg/templates"
	"github.com/arthur-debert/vargen/pkg/ui"
	"github.com/spf13/cobra"
)

var listTemplatesRoot string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered templates, their placeholders and choices",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listTemplatesRoot, "templates", ".", "Template root directory (holds the root descriptor)")
}

// listEntry is the JSON shape of one template
type listEntry struct {
	Name         string            `json:"name"`
	Path         string            `json:"path"`
	VariantCount int               `json:"variant_count"`
	Placeholders []listPlaceholder `json:"placeholders"`
}

type listPlaceholder struct {
	Name    string   `json:"name"`
	Choices []string `json:"choices"`
}

func runList(cmd *cobra.Command, args []string) error {
	discovered, err := templates.Discover(listTemplatesRoot)
	if err != nil {
		return err
	}

	if resolvedFormat() == ui.FormatJSON {
		entries := make([]listEntry, 0, len(discovered))
		for _, t := range discovered {
			entry := listEntry{
				Name:         t.Name,
				Path:         t.Path,
				VariantCount: t.VariantCount(),
			}
			for _, p := range t.Placeholders {
				entry.Placeholders = append(entry.Placeholders, listPlaceholder{
					Name:    p.Name,
					Choices: p.Choices,
				})
			}
			entries = append(entries, entry)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	fmt.Println(style.RenderTemplateList(discovered))
	return nil
}
