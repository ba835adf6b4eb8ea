package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Locale  string        `yaml:"locale" mapstructure:"locale"`
	Theme   string        `yaml:"theme" mapstructure:"theme"`
	DataDir string        `yaml:"data_dir" mapstructure:"data_dir"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

type LoggingConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	File  string `yaml:"file" mapstructure:"file"`
}

var envVarRe = regexp.MustCompile(`\$([A-Z_][A-Z0-9_]*)`)

func expandEnv(s string) string {
	return envVarRe.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.TrimPrefix(match, "$")
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match
	})
}

func DefaultConfig() *Config {
	return &Config{
		Locale:  "en",
		Theme:   "warm",
		DataDir: defaultDataDir(),
		Logging: LoggingConfig{Level: "info"},
	}
}

func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "keepsake")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "keepsake")
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "keepsake")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "keepsake")
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath(configDir())

	viper.SetEnvPrefix("KEEPSAKE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// No config file; defaults apply.
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	cfg.DataDir = expandEnv(cfg.DataDir)
	cfg.Logging.File = expandEnv(cfg.Logging.File)
	if cfg.Logging.File == "" {
		cfg.Logging.File = filepath.Join(cfg.DataDir, "keepsake.log")
	}
	return cfg, nil
}

// WriteDefault writes a starter config file if none exists yet and returns
// its path.
func WriteDefault() (string, error) {
	path := filepath.Join(configDir(), "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(configDir(), 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
