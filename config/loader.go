package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix for environment variables.
	EnvPrefix = "ANTMST_"
	// Delimiter is the key delimiter for nested config.
	Delimiter = "."
)

var (
	// ErrUnsupportedFormat is returned for config files that are neither YAML nor JSON.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrFileNotFound is returned when an explicit config path does not exist.
	ErrFileNotFound = errors.New("config: file not found")
)

// Loader merges configuration sources with koanf.
type Loader struct {
	k *koanf.Koanf
}

// NewLoader creates an empty loader.
func NewLoader() *Loader {
	return &Loader{k: koanf.New(Delimiter)}
}

// Load reads configuration with the following priority:
//  1. overrides (highest; typically command-line flags)
//  2. environment variables ANTMST_SECTION_KEY
//  3. the file at configPath, if non-empty
//  4. DefaultConfig (lowest)
func (l *Loader) Load(configPath string, overrides map[string]interface{}) (*Config, error) {
	if err := l.loadDefaults(); err != nil {
		return nil, fmt.Errorf("Load: defaults: %w", err)
	}
	if configPath != "" {
		if err := l.loadFile(configPath); err != nil {
			return nil, fmt.Errorf("Load: %w", err)
		}
	}
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("Load: env: %w", err)
	}
	if len(overrides) > 0 {
		if err := l.k.Load(confmap.Provider(overrides, Delimiter), nil); err != nil {
			return nil, fmt.Errorf("Load: overrides: %w", err)
		}
	}

	var cfg Config
	if err := l.k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "mapstructure"}); err != nil {
		return nil, fmt.Errorf("Load: unmarshal: %w", err)
	}
	if err := ValidateWithDetails(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadDefaults seeds koanf with DefaultConfig as flat keys.
func (l *Loader) loadDefaults() error {
	d := DefaultConfig()

	return l.k.Load(confmap.Provider(map[string]interface{}{
		"graph.path":         d.Graph.Path,
		"mst.seed":           d.MST.Seed,
		"mst.max_iterations": d.MST.MaxIterations,
		"aco.alpha":          d.ACO.Alpha,
		"aco.beta":           d.ACO.Beta,
		"aco.rho":            d.ACO.Rho,
		"aco.max_iterations": d.ACO.MaxIterations,
		"aco.seed":           d.ACO.Seed,
		"aco.runs":           d.ACO.Runs,
		"log.level":          d.Log.Level,
		"log.format":         d.Log.Format,
		"metrics.file":       d.Metrics.File,
		"metrics.namespace":  d.Metrics.Namespace,
	}, Delimiter), nil)
}

// loadFile picks the parser from the file extension.
func (l *Loader) loadFile(path string) error {
	var parser koanf.Parser
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", path, ErrFileNotFound)
	}

	return l.k.Load(file.Provider(path), parser)
}

// loadEnv maps ANTMST_ACO_MAX_ITERATIONS to aco.max_iterations: the first
// underscore separates the section from the key.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.Provider(EnvPrefix, Delimiter, func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))

		return strings.Replace(key, "_", Delimiter, 1)
	}), nil)
}

// Print returns the merged key/value view for debugging.
func (l *Loader) Print() string {
	return l.k.Sprint()
}

// Load is a convenience wrapper around NewLoader().Load.
func Load(configPath string, overrides map[string]interface{}) (*Config, error) {
	return NewLoader().Load(configPath, overrides)
}
