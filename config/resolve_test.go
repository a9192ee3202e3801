package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestResolvePathExplicit(t *testing.T) {
	t.Setenv(DefaultPathEnvVar, "")

	dir := t.TempDir()
	want := writeFile(t, dir, "app.yml", "key: value\n")

	got, err := ResolvePath(Options{ExplicitPath: want})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestResolvePathExplicitBeatsEnvVar(t *testing.T) {
	dir := t.TempDir()
	explicit := writeFile(t, dir, "explicit.yml", "a: 1\n")
	fromEnv := writeFile(t, dir, "env.yml", "a: 2\n")
	t.Setenv(DefaultPathEnvVar, fromEnv)

	got, err := ResolvePath(Options{ExplicitPath: explicit})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != explicit {
		t.Fatalf("expected explicit path %s, got %s", explicit, got)
	}
}

func TestResolvePathEnvVar(t *testing.T) {
	dir := t.TempDir()
	want := writeFile(t, dir, "app.yml", "key: value\n")
	t.Setenv("MY_CONFIG", want)

	got, err := ResolvePath(Options{EnvVar: "MY_CONFIG"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestResolvePathSearchOrder(t *testing.T) {
	t.Setenv(DefaultPathEnvVar, "")

	first := t.TempDir()
	second := t.TempDir()
	third := t.TempDir()
	locations := []string{first, second, third}

	t.Run("file in second location", func(t *testing.T) {
		want := writeFile(t, second, "ordered.yml", "n: 2\n")

		got, err := ResolvePath(Options{Filename: "ordered.yml", SearchLocations: locations})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})

	t.Run("earlier location wins", func(t *testing.T) {
		want := writeFile(t, first, "ordered.yml", "n: 1\n")
		writeFile(t, third, "ordered.yml", "n: 3\n")

		got, err := ResolvePath(Options{Filename: "ordered.yml", SearchLocations: locations})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("expected first location %s, got %s", want, got)
		}
	})
}

func TestResolvePathNotFound(t *testing.T) {
	t.Setenv(DefaultPathEnvVar, "")

	_, err := ResolvePath(Options{
		Filename:        "missing.yml",
		SearchLocations: []string{t.TempDir()},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolvePathIgnoresDirectories(t *testing.T) {
	t.Setenv(DefaultPathEnvVar, "")

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "app.yml"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, err := ResolvePath(Options{Filename: "app.yml", SearchLocations: []string{dir}})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for directory candidate, got %v", err)
	}
}

func TestDefaultSearchLocations(t *testing.T) {
	locations := DefaultSearchLocations()
	if len(locations) < 3 {
		t.Fatalf("expected at least 3 locations, got %v", locations)
	}
	if locations[0] != "." || locations[1] != "./config" || locations[2] != "./configs" {
		t.Fatalf("unexpected leading locations: %v", locations)
	}
}
