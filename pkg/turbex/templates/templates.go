// Package templates captures a source's recipes as a portable template and
// applies templates back onto sources, including a per-user default template
// for newly added sources.
package templates

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tiendc/go-deepcopy"

	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/models"
)

// Version is the template schema version written into every template file.
const Version = 1

// EnvDefaultTemplatePath overrides where the default template lives.
const EnvDefaultTemplatePath = "TURBEX_DEFAULT_TEMPLATE_PATH"

const defaultTemplateFile = "default_source_template.json"

// Template is a portable bundle of recipes. It deliberately excludes the
// source path and display name so one template applies to any source.
type Template struct {
	Version int                   `json:"version"`
	Recipes []models.RecipeConfig `json:"recipes"`
}

// FromSource captures a deep copy of the source's recipes as a template.
// Later edits to the source do not leak into the template.
func FromSource(src models.SourceConfig) (Template, error) {
	var recipes []models.RecipeConfig
	if err := deepcopy.Copy(&recipes, src.Recipes); err != nil {
		return Template{}, fmt.Errorf("copy recipes: %w", err)
	}
	return Template{Version: Version, Recipes: recipes}, nil
}

// ApplyToSource replaces the source's recipes with a deep copy of the
// template's. The source path and name stay untouched, and the template
// itself is not aliased by the result.
func ApplyToSource(src *models.SourceConfig, tpl Template) error {
	var recipes []models.RecipeConfig
	if err := deepcopy.Copy(&recipes, tpl.Recipes); err != nil {
		return fmt.Errorf("copy template recipes: %w", err)
	}
	src.Recipes = recipes
	return nil
}

// Clone returns an independent deep copy of the template.
func Clone(tpl Template) (Template, error) {
	var out Template
	if err := deepcopy.Copy(&out, tpl); err != nil {
		return Template{}, fmt.Errorf("copy template: %w", err)
	}
	return out, nil
}

// Save writes the template as indented JSON, creating parent directories as
// needed.
func Save(tpl Template, path string) error {
	data, err := json.MarshalIndent(tpl, "", "  ")
	if err != nil {
		return fmt.Errorf("encode template: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create template directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write template file: %w", err)
	}
	return nil
}

// Load reads a template file.
func Load(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("read template file: %w", err)
	}
	var tpl Template
	if err := json.Unmarshal(data, &tpl); err != nil {
		return Template{}, fmt.Errorf("parse template file %s: %w", path, err)
	}
	return tpl, nil
}

// DefaultPath resolves where the default source template lives. The
// TURBEX_DEFAULT_TEMPLATE_PATH variable wins when set, with relative values
// resolved against root (or the working directory when root is blank).
func DefaultPath(root string) string {
	if p := os.Getenv(EnvDefaultTemplatePath); p != "" {
		if filepath.IsAbs(p) || root == "" {
			return p
		}
		return filepath.Join(root, p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".turbex", defaultTemplateFile)
	}
	return filepath.Join(home, ".turbex", defaultTemplateFile)
}

// SetDefault saves tpl as the default source template and returns the path
// it was written to. A blank path means the resolved default location.
func SetDefault(tpl Template, path string) (string, error) {
	if path == "" {
		path = DefaultPath("")
	}
	if err := Save(tpl, path); err != nil {
		return "", err
	}
	return path, nil
}

// LoadDefault reads the default template, returning (nil, nil) when none
// has been set. A blank path means the resolved default location.
func LoadDefault(path string) (*Template, error) {
	if path == "" {
		path = DefaultPath("")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat template file: %w", err)
	}
	tpl, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// ResetDefault removes the default template if one exists.
func ResetDefault(path string) error {
	if path == "" {
		path = DefaultPath("")
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove template file: %w", err)
	}
	return nil
}
