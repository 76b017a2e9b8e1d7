package templates

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/vargen/pkg/config"
	"github.com/arthur-debert/vargen/pkg/errors"
	"github.com/arthur-debert/vargen/pkg/logging"
)

// Discover reads the root descriptor under root and loads every declared
// sub-template. The returned order is the declaration order of the root
// descriptor. An empty sub-template list is legal and returns an empty
// slice; downstream filter handling is responsible for not letting that
// silently swallow user-supplied filters.
func Discover(root string) ([]Template, error) {
	logger := logging.GetLogger("templates.discovery")
	logger.Trace().Str("root", root).Msg("Discovering templates")

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrNotFound, "template root does not exist").
				WithDetail("path", root)
		}
		return nil, errors.Wrap(err, errors.ErrConfigRead, "cannot access template root").
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrInvalidInput, "template root is not a directory").
			WithDetail("path", root)
	}

	desc, err := config.LoadDescriptor(root)
	if err != nil {
		return nil, err
	}
	if !desc.HasTemplateSection() {
		return nil, errors.New(errors.ErrConfigValid, "root descriptor is missing the [template] declaration").
			WithDetail("path", desc.Path)
	}

	templates := make([]Template, 0, len(desc.SubTemplates))
	for _, name := range desc.SubTemplates {
		tmpl, err := load(root, name)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tmpl)
		logger.Trace().
			Str("name", tmpl.Name).
			Str("path", tmpl.Path).
			Int("placeholders", len(tmpl.Placeholders)).
			Msg("Loaded template")
	}

	logger.Info().Int("count", len(templates)).Msg("Discovered templates")
	return templates, nil
}

// load reads a single sub-template's descriptor.
func load(root, name string) (Template, error) {
	dir := filepath.Join(root, name)

	desc, err := config.LoadDescriptor(dir)
	if err != nil {
		return Template{}, err
	}
	if len(desc.Placeholders) == 0 {
		return Template{}, errors.Newf(errors.ErrConfigValid, "template `%s` declares no placeholders", name).
			WithDetail("path", desc.Path).
			WithDetail("template", name)
	}

	return Template{
		Name:         name,
		Path:         dir,
		Placeholders: desc.Placeholders,
	}, nil
}
