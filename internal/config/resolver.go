package config

import (
	"os"

	"github.com/opmodel/opponentgen/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a setting together with the source that supplied it.
type ResolvedValue struct {
	// Key is the setting name.
	Key string
	// Value is the winning value.
	Value string
	// Source indicates where Value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveValueOptions contains the candidate values for one setting.
type ResolveValueOptions struct {
	Key          string
	FlagValue    string
	EnvVar       string
	ConfigValue  string
	DefaultValue string
}

// ResolveValue resolves one setting using precedence:
// (1) flag, (2) env, (3) config file, (4) default.
// Empty candidates are treated as unset.
func ResolveValue(opts ResolveValueOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	var envValue string
	if opts.EnvVar != "" {
		envValue = os.Getenv(opts.EnvVar)
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, opts.FlagValue},
		{SourceEnv, envValue},
		{SourceConfig, opts.ConfigValue},
		{SourceDefault, opts.DefaultValue},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}

	return result
}

// ResolveOptions contains raw flag values for Resolve.
// Empty strings mean the flag was not set.
type ResolveOptions struct {
	ConfigFlag      string
	DirFlag         string
	BaseFlag        string
	PlaceholderFlag string
	OutputFlag      string
}

// Resolve loads the config file named by --config or OPPONENTGEN_CONFIG,
// if any, and resolves every setting.
func Resolve(opts ResolveOptions) (*Settings, error) {
	configPath := ResolveValue(ResolveValueOptions{
		Key:       "config",
		FlagValue: opts.ConfigFlag,
		EnvVar:    EnvConfig,
	})

	cfg, err := NewLoader().Load(configPath.Value)
	if err != nil {
		return nil, err
	}

	defaults := Defaults()
	return &Settings{
		ConfigPath: configPath,
		Dir: ResolveValue(ResolveValueOptions{
			Key:          "dir",
			FlagValue:    opts.DirFlag,
			EnvVar:       EnvDir,
			ConfigValue:  cfg.Dir,
			DefaultValue: defaults.Dir,
		}),
		Base: ResolveValue(ResolveValueOptions{
			Key:          "base",
			FlagValue:    opts.BaseFlag,
			EnvVar:       EnvBase,
			ConfigValue:  cfg.Base,
			DefaultValue: defaults.Base,
		}),
		Placeholder: ResolveValue(ResolveValueOptions{
			Key:          "placeholder",
			FlagValue:    opts.PlaceholderFlag,
			EnvVar:       EnvPlaceholder,
			ConfigValue:  cfg.Placeholder,
			DefaultValue: defaults.Placeholder,
		}),
		Output: ResolveValue(ResolveValueOptions{
			Key:          "output",
			FlagValue:    opts.OutputFlag,
			EnvVar:       EnvOutput,
			ConfigValue:  cfg.Output,
			DefaultValue: defaults.Output,
		}),
		Timestamps: cfg.Log.Timestamps,
	}, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
