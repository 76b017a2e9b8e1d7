// Package testutil provides common test fixtures for vargen tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/vargen/pkg/config"
)

// CreateFile creates a file with the given content in the specified directory
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// CreateDir creates a directory and any necessary parents
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)

	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	return path
}

// PlaceholderFixture declares one placeholder for a template fixture
type PlaceholderFixture struct {
	Name    string
	Choices []string
}

// CreateTemplateRoot writes a root descriptor plus one sub-template
// directory per entry of templates, each declaring its placeholders in the
// given order. Returns the root path.
func CreateTemplateRoot(t *testing.T, templates map[string][]PlaceholderFixture, order []string) string {
	t.Helper()

	root := t.TempDir()

	var rootDesc strings.Builder
	rootDesc.WriteString("[template]\nsub_templates = [")
	for i, name := range order {
		if i > 0 {
			rootDesc.WriteString(", ")
		}
		fmt.Fprintf(&rootDesc, "%q", name)
	}
	rootDesc.WriteString("]\n")
	CreateFile(t, root, config.DescriptorName, rootDesc.String())

	for _, name := range order {
		dir := CreateDir(t, root, name)
		var desc strings.Builder
		for _, p := range templates[name] {
			fmt.Fprintf(&desc, "[placeholders.%s]\nchoices = [", p.Name)
			for i, c := range p.Choices {
				if i > 0 {
					desc.WriteString(", ")
				}
				fmt.Fprintf(&desc, "%q", c)
			}
			desc.WriteString("]\n\n")
		}
		CreateFile(t, dir, config.DescriptorName, desc.String())
	}

	return root
}

// SkipOnWindows skips the test when running on Windows
func SkipOnWindows(t *testing.T) {
	t.Helper()
	if os.PathSeparator == '\\' {
		t.Skip("Test not supported on Windows")
	}
}
