package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// DefaultPathEnvVar is consulted for an explicit file path when
// Options.EnvVar is left empty.
const DefaultPathEnvVar = "CONFIG_PATH"

// DefaultSearchLocations returns the directories probed when no search list
// is configured: the working directory, ./config, ./configs, the user
// configuration directory, and /etc on POSIX systems.
func DefaultSearchLocations() []string {
	locations := []string{".", "./config", "./configs"}
	if dir, err := os.UserConfigDir(); err == nil {
		locations = append(locations, dir)
	}
	if runtime.GOOS != "windows" {
		locations = append(locations, "/etc")
	}
	return locations
}

// ResolvePath returns the first existing candidate for the configured file
// as an absolute path, following the priority order documented on the
// package. It returns ErrNotFound when no candidate exists, which is not an
// authoring mistake by itself.
func ResolvePath(opts Options) (string, error) {
	logger := opts.logger()

	if opts.ExplicitPath != "" {
		if fileExists(opts.ExplicitPath) {
			return absPath(opts.ExplicitPath)
		}
		logger.Warn("explicit config path does not exist", zap.String("path", opts.ExplicitPath))
	}

	envVar := opts.EnvVar
	if envVar == "" {
		envVar = DefaultPathEnvVar
	}
	if envPath := strings.TrimSpace(os.Getenv(envVar)); envPath != "" {
		if fileExists(envPath) {
			logger.Debug("using config path from environment variable",
				zap.String("var", envVar), zap.String("path", envPath))
			return absPath(envPath)
		}
		logger.Warn("config path from environment variable does not exist",
			zap.String("var", envVar), zap.String("path", envPath))
	}

	if opts.Filename != "" {
		locations := opts.SearchLocations
		if locations == nil {
			locations = DefaultSearchLocations()
		}
		for _, dir := range locations {
			candidate := filepath.Join(dir, opts.Filename)
			if fileExists(candidate) {
				logger.Debug("found config file in search location", zap.String("path", candidate))
				return absPath(candidate)
			}
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNotFound, describeTarget(opts))
}

func describeTarget(opts Options) string {
	if opts.Filename != "" {
		return opts.Filename
	}
	if opts.ExplicitPath != "" {
		return opts.ExplicitPath
	}
	return "(no filename configured)"
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %s: %w", path, err)
	}
	return abs, nil
}
