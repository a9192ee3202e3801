package appenv

import (
	"errors"

	"go.uber.org/zap"

	"github.com/eugenenazirov/confkit/config"
)

// Selector chooses which configuration file to load for an environment.
// Explicit per-environment filenames take priority over names derived from
// Base; the base filename is always the final fallback.
type Selector struct {
	// Base is the environment-neutral filename, e.g. "app.yml".
	Base string
	// DevFile, BOEFile, and ProdFile override the derived filename for
	// their environment when non-empty.
	DevFile  string
	BOEFile  string
	ProdFile string
}

// Candidates lists the filenames to try for env, most specific first,
// without duplicates.
func (s Selector) Candidates(env Env) []string {
	var names []string
	switch env {
	case Prod:
		names = []string{s.fileFor(Prod), s.fileFor(BOE), s.fileFor(Dev)}
	case BOE:
		names = []string{s.fileFor(BOE), s.fileFor(Dev)}
	default:
		names = []string{s.fileFor(Dev)}
	}
	if s.Base != "" {
		names = append(names, s.Base)
	}

	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func (s Selector) fileFor(env Env) string {
	switch env {
	case Prod:
		if s.ProdFile != "" {
			return s.ProdFile
		}
	case BOE:
		if s.BOEFile != "" {
			return s.BOEFile
		}
	default:
		if s.DevFile != "" {
			return s.DevFile
		}
	}
	if s.Base == "" {
		return ""
	}
	return Filename(s.Base, env)
}

// Load resolves and loads the configuration file for the detected
// environment, trying each candidate filename of s in order. The
// ENV_CONFIG_PATH variable (or opts.EnvVar when set) overrides the search
// with an explicit path. When no candidate exists the result is an empty
// Config, matching the config package's absence policy.
func (s Selector) Load(opts config.Options) (*config.Config, error) {
	env := Detect()
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.EnvVar == "" {
		opts.EnvVar = PathOverrideVar
	}

	candidates := s.Candidates(env)
	logger.Debug("selecting environment configuration",
		zap.String("env", env.String()), zap.Strings("candidates", candidates))

	for _, name := range candidates {
		probe := opts
		probe.Filename = name
		path, err := config.ResolvePath(probe)
		if errors.Is(err, config.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		probe.ExplicitPath = path
		return config.Load(probe)
	}

	logger.Warn("no environment configuration file found, using empty configuration",
		zap.String("env", env.String()), zap.Strings("candidates", candidates))
	return config.Empty(), nil
}

// Load loads the environment-appropriate variant of a base filename. It is
// shorthand for Selector{Base: base}.Load(opts).
func Load(base string, opts config.Options) (*config.Config, error) {
	return Selector{Base: base}.Load(opts)
}
