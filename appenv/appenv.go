// Package appenv detects the application environment from process
// environment variables and selects environment-specific configuration
// files, with fallback from more to less specific environments.
package appenv

import (
	"os"
	"path/filepath"
	"strings"
)

// Env is the application environment tag.
type Env int

const (
	// Dev is the development environment and the default when APP_ENV is
	// absent or unrecognized.
	Dev Env = iota
	// BOE is the beta/staging environment.
	BOE
	// Prod is the production environment.
	Prod
)

const (
	// DefaultVar is the environment variable holding the environment tag.
	DefaultVar = "APP_ENV"
	// VarNameOverride names an environment variable that, when set,
	// renames the variable consulted for the environment tag.
	VarNameOverride = "ENV_VAR_NAME"
	// PathOverrideVar may hold an explicit configuration file path that
	// bypasses environment-specific file selection entirely.
	PathOverrideVar = "ENV_CONFIG_PATH"
)

// String returns the tag used in derived filenames: dev, boe, or prod.
func (e Env) String() string {
	switch e {
	case BOE:
		return "boe"
	case Prod:
		return "prod"
	default:
		return "dev"
	}
}

// Parse maps a raw tag to an Env. "boe" selects BOE, "prod" and
// "production" select Prod, everything else (including empty) selects Dev.
// Matching is case-insensitive and ignores surrounding whitespace.
func Parse(raw string) Env {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "boe":
		return BOE
	case "prod", "production":
		return Prod
	default:
		return Dev
	}
}

// Detect reads the current environment tag from APP_ENV, or from the
// variable named by ENV_VAR_NAME when that override is set.
func Detect() Env {
	name := strings.TrimSpace(os.Getenv(VarNameOverride))
	if name == "" {
		name = DefaultVar
	}
	return Parse(os.Getenv(name))
}

// IsDev reports whether the detected environment is development.
func IsDev() bool { return Detect() == Dev }

// IsBOE reports whether the detected environment is BOE.
func IsBOE() bool { return Detect() == BOE }

// IsProd reports whether the detected environment is production.
func IsProd() bool { return Detect() == Prod }

// Filename derives the environment-specific variant of a base filename by
// inserting the environment tag before the extension:
// app.yml becomes app.dev.yml.
func Filename(base string, env Env) string {
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "." + env.String() + ext
}

// Fallbacks lists candidate filenames for env in try-order. More specific
// environments fall back through less specific ones and finally the base
// filename: prod tries prod, boe, base; boe tries boe, base; dev tries
// dev, base.
func Fallbacks(base string, env Env) []string {
	return Selector{Base: base}.Candidates(env)
}
