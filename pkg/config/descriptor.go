package config

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/vargen/pkg/errors"
	"github.com/arthur-debert/vargen/pkg/logging"
	toml "github.com/pelletier/go-toml/v2"
)

var log = logging.GetLogger("config")

// DescriptorName is the file each template directory (and the template root)
// must carry. The format matches cargo-generate's configuration file, which
// is what the materialization collaborator consumes.
const DescriptorName = "cargo-generate.toml"

// Placeholder is a named template parameter with its ordered choice list.
type Placeholder struct {
	Name    string
	Choices []string
}

// Descriptor is the parsed content of a cargo-generate.toml. A root
// descriptor declares sub-templates; a template descriptor declares
// placeholders. Placeholders preserve file declaration order, which fixes
// the directory-nesting order of generated output.
type Descriptor struct {
	// Path is the descriptor file this was loaded from, kept for error
	// reporting.
	Path string

	// SubTemplates lists the template names declared under [template].
	SubTemplates []string

	// Placeholders in declaration order.
	Placeholders []Placeholder

	hasTemplate bool
}

// HasTemplateSection reports whether the file carried a [template] table.
func (d Descriptor) HasTemplateSection() bool {
	return d.hasTemplate
}

type rawDescriptor struct {
	Template     *rawTemplateSection       `toml:"template"`
	Placeholders map[string]rawPlaceholder `toml:"placeholders"`
}

type rawTemplateSection struct {
	SubTemplates []string `toml:"sub_templates"`
}

type rawPlaceholder struct {
	Type    string   `toml:"type"`
	Prompt  string   `toml:"prompt"`
	Choices []string `toml:"choices"`
	Default string   `toml:"default"`
}

// LoadDescriptor reads and parses the descriptor file in dir.
func LoadDescriptor(dir string) (Descriptor, error) {
	path := filepath.Join(dir, DescriptorName)
	logger := log.With().Str("path", path).Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Descriptor{}, errors.Wrap(err, errors.ErrNotFound, "descriptor file not found").
				WithDetail("path", path)
		}
		return Descriptor{}, errors.Wrap(err, errors.ErrConfigRead, "cannot read descriptor file").
			WithDetail("path", path)
	}

	var raw rawDescriptor
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Descriptor{}, errors.Wrap(err, errors.ErrConfigParse, "malformed descriptor").
			WithDetail("path", path)
	}

	desc := Descriptor{Path: path}
	if raw.Template != nil {
		desc.hasTemplate = true
		desc.SubTemplates = raw.Template.SubTemplates
	}

	if len(raw.Placeholders) > 0 {
		order, err := placeholderOrder(data)
		if err != nil {
			return Descriptor{}, errors.Wrap(err, errors.ErrConfigParse, "malformed descriptor").
				WithDetail("path", path)
		}
		for _, name := range order {
			entry, ok := raw.Placeholders[name]
			if !ok {
				continue
			}
			placeholder, err := buildPlaceholder(path, name, entry)
			if err != nil {
				return Descriptor{}, err
			}
			desc.Placeholders = append(desc.Placeholders, placeholder)
		}
		if len(desc.Placeholders) != len(raw.Placeholders) {
			return Descriptor{}, errors.New(errors.ErrInternal, "placeholder order does not cover all declared placeholders").
				WithDetail("path", path)
		}
	}

	logger.Debug().
		Int("sub_templates", len(desc.SubTemplates)).
		Int("placeholders", len(desc.Placeholders)).
		Msg("Descriptor loaded")

	return desc, nil
}

// buildPlaceholder validates a single placeholder entry. Every placeholder
// needs a non-empty choices array with no duplicate values.
func buildPlaceholder(path, name string, entry rawPlaceholder) (Placeholder, error) {
	if len(entry.Choices) == 0 {
		return Placeholder{}, errors.Newf(errors.ErrConfigValid, "placeholder `%s` has no choices", name).
			WithDetail("path", path).
			WithDetail("placeholder", name)
	}

	seen := make(map[string]bool, len(entry.Choices))
	for _, choice := range entry.Choices {
		if choice == "" {
			return Placeholder{}, errors.Newf(errors.ErrConfigValid, "placeholder `%s` has an empty choice value", name).
				WithDetail("path", path).
				WithDetail("placeholder", name)
		}
		if seen[choice] {
			return Placeholder{}, errors.Newf(errors.ErrConfigValid, "placeholder `%s` declares choice `%s` more than once", name, choice).
				WithDetail("path", path).
				WithDetail("placeholder", name)
		}
		seen[choice] = true
	}

	return Placeholder{Name: name, Choices: entry.Choices}, nil
}
