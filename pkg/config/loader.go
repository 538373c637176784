package config

import (
	"errors"
	"os"

	"github.com/kkyr/fig"
)

const EnvPrefix = "GLSTACK"

// LoadConfig loads a configuration file into the given struct.
// The path param specifies a custom directory with the config.yaml file.
// Reads and puts environment variables with the prefix GLSTACK_.
// Params from the config should be in uppercase separated with _.
// Without a custom path a missing file is not an error, then
// only defaults and the environment are used.
func LoadConfig(config any, path string) error {
	dirs := []string{path}
	if path == "" {
		dirs = append(dirs, ".", "configs", "../../configs")
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, home+"/.glstack")
		}
	}
	err := fig.Load(config, fig.Dirs(dirs...), fig.UseEnv(EnvPrefix))
	if errors.Is(err, fig.ErrFileNotFound) && path == "" {
		return LoadConfigEnv(config)
	}
	return err
}

func LoadConfigEnv(config any) error {
	return fig.Load(config, fig.IgnoreFile(), fig.UseEnv(EnvPrefix))
}
