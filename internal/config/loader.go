package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	oerrors "github.com/opmodel/opponentgen/internal/errors"
)

// Loader reads an opponentgen config file.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// Load reads the YAML config file at path. An empty path yields an empty
// Config. A named file that does not exist is a not-found error.
func (l *Loader) Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	expandedPath, err := ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewNotFoundError(
				fmt.Sprintf("config file %s does not exist", expandedPath),
				expandedPath,
				fmt.Sprintf("Create the file or unset --config and %s.", EnvConfig))
		}
		return nil, oerrors.Wrap(oerrors.ErrValidation, fmt.Sprintf("reading config file %s: %v", expandedPath, err))
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, oerrors.Wrap(oerrors.ErrValidation, fmt.Sprintf("decoding config file %s: %v", expandedPath, err))
	}

	return &cfg, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
