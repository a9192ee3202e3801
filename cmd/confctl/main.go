package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/confkit/appenv"
	"github.com/eugenenazirov/confkit/config"
	"github.com/eugenenazirov/confkit/internal/logging"
)

func main() {
	app := kingpin.New("confctl", "Inspect YAML configuration files: resolve locations, read values, and list LLM models.")
	verbose := app.Flag("verbose", "Enable debug logging").Short('v').Bool()
	file := app.Flag("file", "Explicit path to a configuration file").String()
	name := app.Flag("name", "Configuration filename to search for").String()
	search := app.Flag("search", "Directory to search, repeatable; defaults to the standard locations").Strings()
	envVar := app.Flag("env-var", "Environment variable that may hold the file path").String()
	noExpand := app.Flag("no-expand", "Disable ${VAR} placeholder substitution").Bool()

	resolveCmd := app.Command("resolve", "Print the resolved configuration file path")

	getCmd := app.Command("get", "Print the value at a dotted key path")
	getKey := getCmd.Arg("key", "Dotted key path, e.g. server.http.port").Required().String()
	getDefault := getCmd.Flag("default", "Value printed when the key is missing").String()

	modelsCmd := app.Command("models", "List models from an LLM provider configuration")
	modelsTag := modelsCmd.Flag("tag", "Only models carrying this tag").String()
	modelsProvider := modelsCmd.Flag("provider", "Only models owned by this provider").String()

	envCmd := app.Command("env", "Print the detected environment and candidate filenames")
	envBase := envCmd.Arg("base", "Base filename to derive candidates from").String()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := logging.NewConsole(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	opts := config.Options{
		ExplicitPath:     *file,
		Filename:         *name,
		EnvVar:           *envVar,
		DisableExpansion: *noExpand,
		Logger:           logger,
	}
	if len(*search) > 0 {
		opts.SearchLocations = *search
	}

	var runErr error
	switch command {
	case resolveCmd.FullCommand():
		runErr = runResolve(os.Stdout, opts)
	case getCmd.FullCommand():
		runErr = runGet(os.Stdout, opts, *getKey, *getDefault)
	case modelsCmd.FullCommand():
		runErr = runModels(os.Stdout, opts, *modelsTag, *modelsProvider)
	case envCmd.FullCommand():
		runErr = runEnv(os.Stdout, *envBase)
	}

	if runErr != nil {
		logger.Error("command failed", zap.Error(runErr))
		os.Exit(1)
	}
}

func runResolve(out io.Writer, opts config.Options) error {
	path, err := config.ResolvePath(opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, path)
	return nil
}

func runGet(out io.Writer, opts config.Options, key, fallback string) error {
	cfg, err := config.Load(opts)
	if err != nil {
		return err
	}

	value, ok := cfg.Get(key)
	if !ok {
		if fallback != "" {
			fmt.Fprintln(out, fallback)
			return nil
		}
		return fmt.Errorf("key %q not found in %s", key, describeSource(cfg))
	}

	rendered, err := formatValue(value)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, rendered)
	return nil
}

func runEnv(out io.Writer, base string) error {
	env := appenv.Detect()
	fmt.Fprintln(out, env)
	if base != "" {
		for _, candidate := range appenv.Fallbacks(base, env) {
			fmt.Fprintln(out, candidate)
		}
	}
	return nil
}

func describeSource(cfg *config.Config) string {
	if cfg.Filepath() == "" {
		return "empty configuration (no file found)"
	}
	return cfg.Filepath()
}

// formatValue renders scalars verbatim and composite values as YAML.
func formatValue(value any) (string, error) {
	switch value.(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(value)
		if err != nil {
			return "", fmt.Errorf("render value: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	default:
		return fmt.Sprintf("%v", value), nil
	}
}
