package templates

import (
	"path/filepath"
	"testing"

	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/models"
)

func sampleSource() models.SourceConfig {
	return models.SourceConfig{
		Path: "/data/alpha.xlsx",
		Name: "Alpha",
		Recipes: []models.RecipeConfig{
			{
				Name: "daily",
				Sheets: []models.SheetConfig{
					{
						Name:        "summary",
						ColumnsSpec: "A,C",
						Rules: []models.Rule{
							{Mode: models.RuleModeInclude, Column: "C", Operator: models.OpEquals, Value: "fruit"},
						},
						Destination: models.Destination{FilePath: "/out/d.xlsx", SheetName: "Out", StartCol: "A"},
					},
				},
			},
		},
	}
}

func TestFromSourceDeepCopies(t *testing.T) {
	src := sampleSource()
	tpl, err := FromSource(src)
	if err != nil {
		t.Fatalf("FromSource failed: %v", err)
	}

	if tpl.Version != Version {
		t.Errorf("Expected version %d, got %d", Version, tpl.Version)
	}
	if len(tpl.Recipes) != 1 || tpl.Recipes[0].Name != "daily" {
		t.Fatalf("Expected the recipes captured, got %+v", tpl.Recipes)
	}

	// Mutating the source afterwards must not leak into the template.
	src.Recipes[0].Name = "changed"
	src.Recipes[0].Sheets[0].Rules[0].Value = "changed"
	if tpl.Recipes[0].Name != "daily" {
		t.Error("Template recipe name aliased to the source")
	}
	if tpl.Recipes[0].Sheets[0].Rules[0].Value != "fruit" {
		t.Error("Template rule aliased to the source")
	}
}

func TestApplyToSource(t *testing.T) {
	src := sampleSource()
	tpl, err := FromSource(src)
	if err != nil {
		t.Fatalf("FromSource failed: %v", err)
	}

	target := models.SourceConfig{
		Path: "/data/beta.xlsx",
		Name: "Beta",
		Recipes: []models.RecipeConfig{
			{Name: "old", Sheets: []models.SheetConfig{{Name: "old"}}},
		},
	}
	if err := ApplyToSource(&target, tpl); err != nil {
		t.Fatalf("ApplyToSource failed: %v", err)
	}

	if target.Path != "/data/beta.xlsx" || target.Name != "Beta" {
		t.Error("ApplyToSource must leave the path and name untouched")
	}
	if len(target.Recipes) != 1 || target.Recipes[0].Name != "daily" {
		t.Errorf("Expected the template recipes, got %+v", target.Recipes)
	}

	// The applied copy is independent of the template.
	target.Recipes[0].Sheets[0].Rules[0].Value = "changed"
	if tpl.Recipes[0].Sheets[0].Rules[0].Value != "fruit" {
		t.Error("Applied recipes aliased to the template")
	}
}

func TestClone(t *testing.T) {
	tpl, err := FromSource(sampleSource())
	if err != nil {
		t.Fatalf("FromSource failed: %v", err)
	}
	copied, err := Clone(tpl)
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}

	copied.Recipes[0].Name = "changed"
	if tpl.Recipes[0].Name != "daily" {
		t.Error("Clone aliased the original")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tpl.json")
	tpl, err := FromSource(sampleSource())
	if err != nil {
		t.Fatalf("FromSource failed: %v", err)
	}

	if err := Save(tpl, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Version != Version {
		t.Errorf("Expected version %d, got %d", Version, loaded.Version)
	}
	if loaded.Recipes[0].Sheets[0].Rules[0].Value != "fruit" {
		t.Errorf("Expected the rule preserved, got %+v", loaded.Recipes[0].Sheets[0])
	}
}

func TestDefaultTemplateLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.json")
	t.Setenv(EnvDefaultTemplatePath, path)

	// Nothing set yet.
	got, err := LoadDefault("")
	if err != nil || got != nil {
		t.Errorf("Expected (nil, nil) before a default exists, got (%v, %v)", got, err)
	}

	tpl, err := FromSource(sampleSource())
	if err != nil {
		t.Fatalf("FromSource failed: %v", err)
	}
	savedTo, err := SetDefault(tpl, "")
	if err != nil {
		t.Fatalf("SetDefault failed: %v", err)
	}
	if savedTo != path {
		t.Errorf("Expected the override path %q, got %q", path, savedTo)
	}

	got, err = LoadDefault("")
	if err != nil {
		t.Fatalf("LoadDefault failed: %v", err)
	}
	if got == nil || len(got.Recipes) != 1 {
		t.Fatalf("Expected the saved default, got %v", got)
	}

	if err := ResetDefault(""); err != nil {
		t.Fatalf("ResetDefault failed: %v", err)
	}
	got, err = LoadDefault("")
	if err != nil || got != nil {
		t.Errorf("Expected the default gone, got (%v, %v)", got, err)
	}

	// Resetting twice is fine.
	if err := ResetDefault(""); err != nil {
		t.Errorf("ResetDefault on a missing file failed: %v", err)
	}
}

func TestDefaultPathOverride(t *testing.T) {
	t.Setenv(EnvDefaultTemplatePath, "tpl/default.json")
	if got := DefaultPath("/work"); got != filepath.Join("/work", "tpl", "default.json") {
		t.Errorf("Expected the relative override joined to root, got %q", got)
	}

	t.Setenv(EnvDefaultTemplatePath, "")
	if got := DefaultPath(""); !filepath.IsAbs(got) && got != filepath.Join(".turbex", defaultTemplateFile) {
		t.Errorf("Expected a home-based default, got %q", got)
	}
}
