package appenv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eugenenazirov/confkit/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(VarNameOverride, "")
	t.Setenv(PathOverrideVar, "")
	t.Setenv(config.DefaultPathEnvVar, "")
}

func TestCandidatesExplicitOverrides(t *testing.T) {
	s := Selector{
		Base:     "app.yml",
		ProdFile: "conf/prod.yml",
		BOEFile:  "conf/boe.yml",
	}

	got := s.Candidates(Prod)
	want := []string{"conf/prod.yml", "conf/boe.yml", "app.dev.yml", "app.yml"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("candidates = %v, want %v", got, want)
	}
}

func TestCandidatesDeduplicates(t *testing.T) {
	s := Selector{Base: "app.yml", ProdFile: "app.yml"}

	got := s.Candidates(Prod)
	for i, name := range got {
		for j, other := range got {
			if i != j && name == other {
				t.Fatalf("duplicate candidate %q in %v", name, got)
			}
		}
	}
}

func TestLoadPicksEnvironmentSpecificFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(DefaultVar, "boe")

	dir := t.TempDir()
	writeFile(t, dir, "app.yml", "stage: base\n")
	writeFile(t, dir, "app.boe.yml", "stage: boe\n")

	cfg, err := Load("app.yml", config.Options{SearchLocations: []string{dir}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage, _ := cfg.GetString("stage"); stage != "boe" {
		t.Fatalf("expected boe file, got stage %q from %s", stage, cfg.Filepath())
	}
}

func TestLoadDerivesDevFilename(t *testing.T) {
	clearEnv(t)
	t.Setenv(DefaultVar, "development")

	dir := t.TempDir()
	writeFile(t, dir, "app.dev.yml", "stage: dev\n")

	cfg, err := Load("app.yml", config.Options{SearchLocations: []string{dir}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(cfg.Filepath(), "app.dev.yml") {
		t.Fatalf("expected derived app.dev.yml, got %s", cfg.Filepath())
	}
	if stage, _ := cfg.GetString("stage"); stage != "dev" {
		t.Fatalf("expected dev stage, got %q", stage)
	}
}

func TestLoadFallsBackToBase(t *testing.T) {
	clearEnv(t)
	t.Setenv(DefaultVar, "production")

	dir := t.TempDir()
	writeFile(t, dir, "app.yml", "stage: base\n")

	cfg, err := Load("app.yml", config.Options{SearchLocations: []string{dir}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage, _ := cfg.GetString("stage"); stage != "base" {
		t.Fatalf("expected base fallback, got %q from %s", stage, cfg.Filepath())
	}
}

func TestLoadPrefersMoreSpecificEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(DefaultVar, "production")

	dir := t.TempDir()
	writeFile(t, dir, "app.yml", "stage: base\n")
	writeFile(t, dir, "app.boe.yml", "stage: boe\n")
	writeFile(t, dir, "app.prod.yml", "stage: prod\n")

	cfg, err := Load("app.yml", config.Options{SearchLocations: []string{dir}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage, _ := cfg.GetString("stage"); stage != "prod" {
		t.Fatalf("expected prod file, got %q", stage)
	}
}

func TestLoadPathOverrideWins(t *testing.T) {
	clearEnv(t)
	t.Setenv(DefaultVar, "boe")

	dir := t.TempDir()
	writeFile(t, dir, "app.boe.yml", "stage: boe\n")
	override := writeFile(t, dir, "special.yml", "stage: override\n")
	t.Setenv(PathOverrideVar, override)

	cfg, err := Load("app.yml", config.Options{SearchLocations: []string{dir}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage, _ := cfg.GetString("stage"); stage != "override" {
		t.Fatalf("expected ENV_CONFIG_PATH override, got %q from %s", stage, cfg.Filepath())
	}
}

func TestLoadNothingFoundYieldsEmptyConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv(DefaultVar, "boe")

	cfg, err := Load("app.yml", config.Options{SearchLocations: []string{t.TempDir()}})
	if err != nil {
		t.Fatalf("absence must not be an error, got %v", err)
	}
	if cfg.Filepath() != "" {
		t.Fatalf("expected empty config, got %s", cfg.Filepath())
	}
}

func TestSelectorLoadUsesExplicitFiles(t *testing.T) {
	clearEnv(t)
	t.Setenv(DefaultVar, "production")

	dir := t.TempDir()
	writeFile(t, dir, "custom_prod.yml", "stage: custom\n")

	s := Selector{Base: "app.yml", ProdFile: "custom_prod.yml"}
	cfg, err := s.Load(config.Options{SearchLocations: []string{dir}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage, _ := cfg.GetString("stage"); stage != "custom" {
		t.Fatalf("expected explicit prod file, got %q", stage)
	}
}
