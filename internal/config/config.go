package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the process configuration. Everything has a default; the
// config file and ROSTER_* environment variables are optional overrides.
// Records themselves are never persisted — the seed file is read once at
// startup and only replaces the built-in roster.
type Config struct {
	LogLevel string
	SeedFile string
	UI       UIConfig
}

// UIConfig holds presentation options.
type UIConfig struct {
	Color bool
}

func setDefaults() {
	viper.SetDefault("log_level", "info")
	viper.SetDefault("seed_file", "")
	viper.SetDefault("ui.color", true)
}

// Load reads configuration with env over file over defaults precedence. A
// missing config file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	setDefaults()

	viper.SetEnvPrefix("ROSTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			if _, missing := err.(viper.ConfigFileNotFoundError); !missing && !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file %s: %w", path, err)
			}
		}
	}

	return &Config{
		LogLevel: viper.GetString("log_level"),
		SeedFile: viper.GetString("seed_file"),
		UI: UIConfig{
			Color: viper.GetBool("ui.color"),
		},
	}, nil
}
