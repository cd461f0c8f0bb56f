package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	profileEnv       = envPrefix + "PROFILE"
	defaultConfigDir = "configs"
)

// ErrNoProfile is returned by ProfileFromEnv when APP_PROFILE is unset and
// there is no fallback.
var ErrNoProfile = errors.New(profileEnv + " environment variable is required (e.g. local, prod)")

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	overrides map[string]any
}

// WithConfigDir sets the directory where config YAML files are located.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithOverrides sets values that win over every other layer, keyed by dotted
// path (e.g. "client.base_url"). Command-line flags use it.
func WithOverrides(values map[string]any) Option {
	return func(o *loadOptions) {
		if o.overrides == nil {
			o.overrides = make(map[string]any, len(values))
		}
		for k, v := range values {
			o.overrides[k] = v
		}
	}
}

// ProfileFromEnv returns APP_PROFILE, or fallback when it is unset. An empty
// fallback makes the variable mandatory.
func ProfileFromEnv(fallback string) (string, error) {
	if p := strings.TrimSpace(os.Getenv(profileEnv)); p != "" {
		return p, nil
	}
	if fallback == "" {
		return "", ErrNoProfile
	}
	return fallback, nil
}

// layer is one source in the load order.
type layer struct {
	name     string
	provider koanf.Provider
	parser   koanf.Parser
}

// Load reads configuration from these layers, later ones winning:
//
//  0. Built-in defaults
//  1. Base config ({configDir}/base.yaml)
//  2. Profile config ({configDir}/{profile}.yaml)
//  3. Environment variables (APP_ prefix)
//  4. Overrides passed with WithOverrides
//
// Environment variables are matched against the keys already loaded, so
// field names containing underscores resolve unambiguously:
//
//	APP_SERVER_PORT                  -> server.port
//	APP_CLIENT_RETRY_MAX_ATTEMPTS    -> client.retry.max_attempts
//	APP_FORM_SUCCESS_NOTICE_DURATION -> form.success_notice_duration
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	files := []layer{
		{name: "defaults", provider: confmap.Provider(defaults(), ".")},
		{name: "base config", provider: file.Provider(filepath.Join(o.configDir, "base.yaml")), parser: yaml.Parser()},
		{name: "profile " + profile, provider: file.Provider(filepath.Join(o.configDir, profile+".yaml")), parser: yaml.Parser()},
	}
	for _, l := range files {
		if err := k.Load(l.provider, l.parser); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	// The env layer needs the keys of the file layers to resolve names.
	envProvider := env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envKeyMapper(k.Keys()),
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	if len(o.overrides) > 0 {
		if err := k.Load(confmap.Provider(o.overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("loading overrides: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// validateProfile rejects empty names and names that could escape the
// config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a plain file name", profile)
	}
	return nil
}

// envKeyMapper maps APP_ variables onto known koanf keys. A variable with no
// matching key falls back to treating every underscore as a separator.
func envKeyMapper(keys []string) func(key, value string) (string, any) {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
		if koanfKey, ok := lookup[key]; ok {
			return koanfKey, value
		}
		return strings.ReplaceAll(key, "_", "."), value
	}
}
