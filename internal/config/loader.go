package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for typedoc configuration.
const envPrefix = "TYPEDOC"

// Loader handles loading and merging configuration from multiple sources:
// defaults, a YAML config file, and environment variables, in increasing
// precedence.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("dir", "TYPEDOC_DIR")
	_ = v.BindEnv("name", "TYPEDOC_NAME")
	_ = v.BindEnv("output.dir", "TYPEDOC_OUTPUT_DIR")

	return &Loader{v: v}
}

// Set records an explicit override (e.g. from a CLI flag), taking
// precedence over file and environment values.
func (l *Loader) Set(key string, value any) {
	l.v.Set(key, value)
}

// Load reads the configuration from configFile. An empty path falls back
// to "typedoc.yaml" in the working directory; a missing file is not an
// error, only a malformed one.
func (l *Loader) Load(configFile string) (*Config, error) {
	explicit := configFile != ""
	if !explicit {
		configFile = "typedoc.yaml"
	}

	l.v.SetConfigFile(configFile)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		missing := notFound || os.IsNotExist(err)
		if explicit || !missing {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Default config file absent: defaults + env vars apply.
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.ApplyDefaults()

	flags, err := TranslateBuildFlags(cfg.Engine.BuildFlags)
	if err != nil {
		return nil, fmt.Errorf("engine flags: %w", err)
	}
	cfg.Engine.BuildFlags = flags

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
