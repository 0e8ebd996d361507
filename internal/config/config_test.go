package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opmodel/opponentgen/internal/generator"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, ".", cfg.Dir)
	assert.Equal(t, "DummyOpponent", cfg.Base)
	assert.Equal(t, "123456789", cfg.Placeholder)
	assert.Equal(t, "text", cfg.Output)
	assert.Nil(t, cfg.Log.Timestamps)
}

func TestSettings_Template(t *testing.T) {
	s := &Settings{
		Base:        ResolvedValue{Key: "base", Value: "Bot", Source: SourceFlag},
		Placeholder: ResolvedValue{Key: "placeholder", Value: "999", Source: SourceEnv},
	}

	assert.Equal(t, generator.Template{BaseName: "Bot", Placeholder: "999"}, s.Template())
}

func TestSettings_Values(t *testing.T) {
	s := &Settings{
		ConfigPath:  ResolvedValue{Key: "config"},
		Dir:         ResolvedValue{Key: "dir"},
		Base:        ResolvedValue{Key: "base"},
		Placeholder: ResolvedValue{Key: "placeholder"},
		Output:      ResolvedValue{Key: "output"},
	}

	var keys []string
	for _, v := range s.Values() {
		keys = append(keys, v.Key)
	}
	assert.Equal(t, []string{"config", "dir", "base", "placeholder", "output"}, keys)
}
