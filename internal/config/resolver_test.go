package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveValue_FlagPrecedence(t *testing.T) {
	t.Setenv(EnvBase, "EnvBot")

	result := ResolveValue(ResolveValueOptions{
		Key:          "base",
		FlagValue:    "FlagBot",
		EnvVar:       EnvBase,
		ConfigValue:  "ConfigBot",
		DefaultValue: "DummyOpponent",
	})

	assert.Equal(t, "FlagBot", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "EnvBot", result.Shadowed[SourceEnv])
	assert.Equal(t, "ConfigBot", result.Shadowed[SourceConfig])
	assert.Equal(t, "DummyOpponent", result.Shadowed[SourceDefault])
}

func TestResolveValue_EnvPrecedence(t *testing.T) {
	t.Setenv(EnvBase, "EnvBot")

	result := ResolveValue(ResolveValueOptions{
		Key:          "base",
		EnvVar:       EnvBase,
		ConfigValue:  "ConfigBot",
		DefaultValue: "DummyOpponent",
	})

	assert.Equal(t, "EnvBot", result.Value)
	assert.Equal(t, SourceEnv, result.Source)
	assert.Equal(t, "ConfigBot", result.Shadowed[SourceConfig])
	assert.NotContains(t, result.Shadowed, SourceFlag)
}

func TestResolveValue_ConfigFallback(t *testing.T) {
	t.Setenv(EnvBase, "")

	result := ResolveValue(ResolveValueOptions{
		Key:          "base",
		EnvVar:       EnvBase,
		ConfigValue:  "ConfigBot",
		DefaultValue: "DummyOpponent",
	})

	assert.Equal(t, "ConfigBot", result.Value)
	assert.Equal(t, SourceConfig, result.Source)
	assert.Equal(t, map[ConfigSource]string{SourceDefault: "DummyOpponent"}, result.Shadowed)
}

func TestResolveValue_Default(t *testing.T) {
	result := ResolveValue(ResolveValueOptions{Key: "dir", DefaultValue: "."})

	assert.Equal(t, ".", result.Value)
	assert.Equal(t, SourceDefault, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestResolveValue_Unset(t *testing.T) {
	result := ResolveValue(ResolveValueOptions{Key: "config"})

	assert.Empty(t, result.Value)
	assert.Empty(t, result.Source)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfig, EnvDir, EnvBase, EnvPlaceholder, EnvOutput} {
		t.Setenv(k, "")
	}
}

func TestResolve_Defaults(t *testing.T) {
	clearEnv(t)

	settings, err := Resolve(ResolveOptions{})
	require.NoError(t, err)

	assert.Empty(t, settings.ConfigPath.Value)
	assert.Equal(t, ".", settings.Dir.Value)
	assert.Equal(t, "DummyOpponent", settings.Base.Value)
	assert.Equal(t, "123456789", settings.Placeholder.Value)
	assert.Equal(t, "text", settings.Output.Value)
	assert.Nil(t, settings.Timestamps)
	for _, v := range settings.Values()[1:] {
		assert.Equal(t, SourceDefault, v.Source, v.Key)
	}
}

func TestResolve_ConfigFileFromEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "opponentgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base: ConfigBot\nlog:\n  timestamps: true\n"), 0o644))
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvPlaceholder, "111222333")

	settings, err := Resolve(ResolveOptions{DirFlag: "/work"})
	require.NoError(t, err)

	assert.Equal(t, path, settings.ConfigPath.Value)
	assert.Equal(t, SourceEnv, settings.ConfigPath.Source)
	assert.Equal(t, "/work", settings.Dir.Value)
	assert.Equal(t, SourceFlag, settings.Dir.Source)
	assert.Equal(t, "ConfigBot", settings.Base.Value)
	assert.Equal(t, SourceConfig, settings.Base.Source)
	assert.Equal(t, "111222333", settings.Placeholder.Value)
	assert.Equal(t, SourceEnv, settings.Placeholder.Source)
	require.NotNil(t, settings.Timestamps)
	assert.True(t, *settings.Timestamps)
}

func TestResolve_MissingConfigFile(t *testing.T) {
	clearEnv(t)

	_, err := Resolve(ResolveOptions{ConfigFlag: filepath.Join(t.TempDir(), "absent.yaml")})
	assert.Error(t, err)
}
