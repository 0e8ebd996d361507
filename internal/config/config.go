// Package config resolves opponentgen settings from flags, environment,
// an optional YAML config file and built-in defaults.
package config

import (
	"github.com/opmodel/opponentgen/internal/generator"
	"github.com/opmodel/opponentgen/internal/output"
)

// Environment variables read by the resolver.
const (
	EnvConfig      = "OPPONENTGEN_CONFIG"
	EnvDir         = "OPPONENTGEN_DIR"
	EnvBase        = "OPPONENTGEN_BASE"
	EnvPlaceholder = "OPPONENTGEN_PLACEHOLDER"
	EnvOutput      = "OPPONENTGEN_OUTPUT"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config is the content of an opponentgen YAML config file.
// Every field is optional.
type Config struct {
	// Dir is the working directory holding the template pair.
	Dir string `mapstructure:"dir" yaml:"dir,omitempty"`

	// Base is the template base name.
	Base string `mapstructure:"base" yaml:"base,omitempty"`

	// Placeholder is the identifier embedded in the template content.
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder,omitempty"`

	// Output is the report format.
	Output string `mapstructure:"output" yaml:"output,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// Defaults returns the built-in setting values.
func Defaults() Config {
	return Config{
		Dir:         ".",
		Base:        generator.DefaultBaseName,
		Placeholder: generator.DefaultPlaceholder,
		Output:      string(output.FormatText),
	}
}

// Settings is the fully resolved configuration for one run.
type Settings struct {
	ConfigPath  ResolvedValue
	Dir         ResolvedValue
	Base        ResolvedValue
	Placeholder ResolvedValue
	Output      ResolvedValue

	// Timestamps is the config file's log.timestamps, nil when unset.
	Timestamps *bool
}

// Template returns the template pair described by s.
func (s *Settings) Template() generator.Template {
	return generator.Template{
		BaseName:    s.Base.Value,
		Placeholder: s.Placeholder.Value,
	}
}

// Values returns every resolved value in a stable order.
func (s *Settings) Values() []ResolvedValue {
	return []ResolvedValue{s.ConfigPath, s.Dir, s.Base, s.Placeholder, s.Output}
}
