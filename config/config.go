package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Options controls how a configuration file is located and loaded.
type Options struct {
	// ExplicitPath points directly at a configuration file and takes
	// priority over every other resolution mechanism.
	ExplicitPath string
	// Filename is the file name to look for in SearchLocations.
	Filename string
	// SearchLocations lists directories probed for Filename, in order.
	// Nil means DefaultSearchLocations().
	SearchLocations []string
	// EnvVar names an environment variable that may hold the file path.
	// Empty means DefaultPathEnvVar.
	EnvVar string
	// DisableExpansion turns off ${NAME} placeholder substitution.
	DisableExpansion bool
	// Logger receives resolution and load events. Nil means no logging.
	Logger *zap.Logger
	// Cache, when set, memoises parsed documents by resolved path so the
	// same file is read and parsed at most once.
	Cache *Cache
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// Config is a loaded configuration document. The zero value and the result
// of loading a missing file are both usable and behave as an empty document.
type Config struct {
	data     map[string]any
	filepath string
}

// Empty returns a Config with no data and no backing file.
func Empty() *Config {
	return &Config{data: map[string]any{}}
}

// Load resolves and loads a configuration file according to opts.
//
// A file that cannot be found yields an empty Config and a nil error, so
// absence stays a caller-level policy decision. Malformed YAML or a
// non-mapping top level yields an error wrapping ErrParse.
func Load(opts Options) (*Config, error) {
	logger := opts.logger()

	path, err := ResolvePath(opts)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			logger.Warn("configuration file not found, using empty configuration",
				zap.String("target", describeTarget(opts)))
			return Empty(), nil
		}
		return nil, err
	}

	load := func() (map[string]any, error) {
		return loadFile(path, !opts.DisableExpansion)
	}

	var doc map[string]any
	if opts.Cache != nil {
		doc, err = opts.Cache.GetOrLoad(path, load)
	} else {
		doc, err = load()
	}
	if err != nil {
		return nil, err
	}

	logger.Info("configuration loaded",
		zap.String("path", path), zap.Int("top_level_keys", len(doc)))
	return &Config{data: doc, filepath: path}, nil
}

// loadFile reads and parses one YAML file. Placeholder substitution happens
// exactly once, here, so cached documents are already fully expanded.
func loadFile(path string, expand bool) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	if raw == nil {
		return map[string]any{}, nil
	}

	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: top level must be a mapping, got %T", ErrParse, path, raw)
	}

	if expand {
		expandPlaceholders(doc)
	}
	return doc, nil
}

// Filepath returns the absolute path of the loaded file, or "" when no file
// was found.
func (c *Config) Filepath() string {
	if c == nil {
		return ""
	}
	return c.filepath
}

// Get returns the value at a dotted key path ("server.http.port"),
// descending through nested mappings. The second result reports whether the
// full path exists.
func (c *Config) Get(path string) (any, bool) {
	if c == nil || path == "" {
		return nil, false
	}

	var current any = c.data
	for _, key := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// GetDefault returns the value at a dotted key path, or def when the path
// does not exist.
func (c *Config) GetDefault(path string, def any) any {
	if value, ok := c.Get(path); ok {
		return value
	}
	return def
}

// GetString returns the string at a dotted key path. The second result is
// false when the path is missing or the value is not a string.
func (c *Config) GetString(path string) (string, bool) {
	value, ok := c.Get(path)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// GetInt returns the integer at a dotted key path.
func (c *Config) GetInt(path string) (int, bool) {
	value, ok := c.Get(path)
	if !ok {
		return 0, false
	}
	n, ok := value.(int)
	return n, ok
}

// GetBool returns the boolean at a dotted key path.
func (c *Config) GetBool(path string) (bool, bool) {
	value, ok := c.Get(path)
	if !ok {
		return false, false
	}
	b, ok := value.(bool)
	return b, ok
}

// Document returns a deep copy of the underlying document, so callers cannot
// mutate shared cached state.
func (c *Config) Document() map[string]any {
	if c == nil || c.data == nil {
		return map[string]any{}
	}
	return copyValue(c.data).(map[string]any)
}

func copyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, elem := range v {
			out[key] = copyValue(elem)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = copyValue(elem)
		}
		return out
	default:
		return value
	}
}
