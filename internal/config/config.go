package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// CollisionPolicy decides what happens when two structures derive the same builder name.
type CollisionPolicy string

const (
	// CollisionLastWins keeps the later definition and records a warning.
	CollisionLastWins CollisionPolicy = "last-wins"
	// CollisionReject aborts the run.
	CollisionReject CollisionPolicy = "reject"
)

// Config is the root of the generator configuration file.
type Config struct {
	Version         string          `yaml:"version"`
	Selection       Selection       `yaml:"selection"`
	Naming          Naming          `yaml:"naming"`
	SkipFields      []string        `yaml:"skip_fields,omitempty"`
	CollisionPolicy CollisionPolicy `yaml:"collision_policy,omitempty"`
	// Header is written once at the top of the generated output (optional).
	Header string `yaml:"header,omitempty"`
}

// Selection controls which registry structures and members are loaded.
type Selection struct {
	NameContains string   `yaml:"name_contains"`
	ExcludeAPIs  []string `yaml:"exclude_apis,omitempty"`
}

// Naming controls how builder names are derived from native names.
type Naming struct {
	NativePrefix  string `yaml:"native_prefix"`
	StripSuffix   string `yaml:"strip_suffix"`
	BuilderPrefix string `yaml:"builder_prefix"`
	BuilderSuffix string `yaml:"builder_suffix"`
}

// Default returns the configuration matching the upstream Vulkan registry.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Naming.BuilderPrefix = "Vulkan"

	return cfg
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config, applies defaults and validates it.
//
// builder_prefix is the only naming key where an explicit empty value is
// meaningful, so it keeps the default only when the key is absent.
func Parse(data []byte) (*Config, error) {
	cfg := Config{Naming: Naming{BuilderPrefix: "Vulkan"}}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if cfg.Selection.NameContains == "" {
		cfg.Selection.NameContains = "CreateInfo"
	}

	if cfg.Selection.ExcludeAPIs == nil {
		cfg.Selection.ExcludeAPIs = []string{"vulkansc"}
	}

	if cfg.Naming.NativePrefix == "" {
		cfg.Naming.NativePrefix = "Vk"
	}

	if cfg.Naming.StripSuffix == "" {
		cfg.Naming.StripSuffix = "CreateInfo"
	}

	if cfg.Naming.BuilderSuffix == "" {
		cfg.Naming.BuilderSuffix = "Builder"
	}

	if cfg.SkipFields == nil {
		cfg.SkipFields = []string{"sType", "flags", "pNext"}
	}

	if cfg.CollisionPolicy == "" {
		cfg.CollisionPolicy = CollisionLastWins
	}
}

// Validate checks the config for values the generator cannot work with.
func (c *Config) Validate() error {
	switch c.CollisionPolicy {
	case CollisionLastWins, CollisionReject:
	default:
		return fmt.Errorf("%w: unknown collision_policy %q", ErrInvalidConfig, c.CollisionPolicy)
	}

	if c.Version != "1" {
		return fmt.Errorf("%w: unsupported version %q", ErrInvalidConfig, c.Version)
	}

	return nil
}

// SkipSet returns the skip field names as a lookup set.
func (c *Config) SkipSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.SkipFields))
	for _, name := range c.SkipFields {
		set[name] = struct{}{}
	}

	return set
}

// IsExcludedAPI reports whether members tagged with api belong to an excluded variant.
// The attribute may list several comma separated variants; the member is
// excluded only when every listed variant is excluded.
func (s Selection) IsExcludedAPI(api string) bool {
	if api == "" {
		return false
	}

	for _, v := range strings.Split(api, ",") {
		if !slices.Contains(s.ExcludeAPIs, strings.TrimSpace(v)) {
			return false
		}
	}

	return true
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
