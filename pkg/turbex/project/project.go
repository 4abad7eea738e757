// Package project persists the source and recipe configuration tree as JSON
// and flattens it into the ordered work list a batch run executes.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/models"
)

// Load reads a project file.
func Load(path string) (*models.ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}
	var cfg models.ProjectConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse project file %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadIfExists reads a project file, returning (nil, nil) when the file is
// absent. Used for autosave recovery at startup.
func LoadIfExists(path string) (*models.ProjectConfig, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat project file: %w", err)
	}
	return Load(path)
}

// Save writes the project as indented JSON, creating parent directories as
// needed.
func Save(cfg *models.ProjectConfig, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create project directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write project file: %w", err)
	}
	return nil
}

// SaveAtomic writes the project through a temporary file in the same
// directory and renames it into place, so an interrupted save never leaves
// a truncated project file behind.
func SaveAtomic(cfg *models.ProjectConfig, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create project directory: %w", err)
		}
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp project file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp project file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp project file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace project file: %w", err)
	}
	return nil
}

// BuildRunItems flattens the project into batch work items, walking sources,
// recipes and sheets in their stored order.
func BuildRunItems(cfg *models.ProjectConfig) []models.RunItem {
	var items []models.RunItem
	for _, src := range cfg.Sources {
		for _, recipe := range src.Recipes {
			for _, sheet := range recipe.Sheets {
				items = append(items, models.RunItem{
					SourcePath: src.Path,
					RecipeName: recipe.Name,
					Sheet:      sheet,
				})
			}
		}
	}
	return items
}
