// Package config provides configuration loading for the documentation
// pipeline: the option schema, viper-backed loading, translation of engine
// build flags, and default pattern discovery.
package config

import "fmt"

// Config is the full option set of a documentation run.
type Config struct {
	// Name is the project name given to the graph root. Defaults to the
	// module path of the analyzed directory.
	Name string `mapstructure:"name"`

	// Patterns are the package patterns handed to the analysis engine.
	// Defaults to "./..." relative to Dir.
	Patterns []string `mapstructure:"patterns"`

	// Dir is the working directory for the engine load.
	Dir string `mapstructure:"dir"`

	// Exclude holds glob patterns for source files left out of the run.
	Exclude []string `mapstructure:"exclude"`

	// IncludeUnexported also documents unexported declarations.
	IncludeUnexported bool `mapstructure:"includeUnexported"`

	// SkipErrorChecking suppresses all blocking diagnostics.
	SkipErrorChecking bool `mapstructure:"skipErrorChecking"`

	// IncludeTests includes test files of the matched packages.
	IncludeTests bool `mapstructure:"includeTests"`

	// Engine carries translated engine (build system) flags.
	Engine EngineConfig `mapstructure:"engine"`

	// Output controls artifact writing.
	Output OutputConfig `mapstructure:"output"`
}

// EngineConfig carries options delegated opaquely to the analysis engine.
type EngineConfig struct {
	// BuildFlags are passed through to the build system.
	BuildFlags []string `mapstructure:"buildFlags"`

	// Env overrides the build environment, "KEY=value" entries.
	Env []string `mapstructure:"env"`
}

// OutputConfig controls where and how the finished graph is written.
type OutputConfig struct {
	// Dir is the artifact directory. Empty writes to stdout.
	Dir string `mapstructure:"dir"`

	// Formats selects serializations: "json", "yaml".
	Formats []string `mapstructure:"formats"`
}

// Validate reports the first structural problem with the configuration.
func (c *Config) Validate() error {
	for _, format := range c.Output.Formats {
		switch format {
		case "json", "yaml":
		default:
			return fmt.Errorf("unsupported output format %q", format)
		}
	}

	return nil
}

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if len(c.Patterns) == 0 {
		c.Patterns = []string{"./..."}
	}
	if len(c.Output.Formats) == 0 {
		c.Output.Formats = []string{"json"}
	}
	if c.Name == "" {
		c.Name = DiscoverModulePath(c.Dir)
	}
}
