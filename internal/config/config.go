package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/thoreinstein/gdvm/internal/paths"
)

// Config represents the top-level configuration structure.
type Config struct {
	Release     ReleaseConfig `mapstructure:"release" yaml:"release"`
	GitHubToken string        `mapstructure:"github_token" yaml:"github_token"`
	DataDir     string        `mapstructure:"data_dir" yaml:"data_dir"`
	CacheDir    string        `mapstructure:"cache_dir" yaml:"cache_dir"`
}

// ReleaseConfig identifies the release index engines are fetched from.
type ReleaseConfig struct {
	Owner   string `mapstructure:"owner" yaml:"owner"`
	Repo    string `mapstructure:"repo" yaml:"repo"`
	Channel string `mapstructure:"channel" yaml:"channel"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(paths.AppConfigDir())

	// Environment variable support: GDVM_GITHUB_TOKEN, GDVM_RELEASE_OWNER, ...
	viper.SetEnvPrefix("GDVM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Defaults. Registering every key here also makes env-only values
	// visible to Unmarshal.
	viper.SetDefault("release.owner", "godotengine")
	viper.SetDefault("release.repo", "godot")
	viper.SetDefault("release.channel", "stable")
	viper.SetDefault("github_token", "")
	viper.SetDefault("data_dir", "")
	viper.SetDefault("cache_dir", "")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If the user specified a path, a missing file is an error.
			// An implicit load falls back to defaults.
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}

// ResolveDataDir returns the configured data root, falling back to the
// XDG default.
func (c *Config) ResolveDataDir() string {
	if c.DataDir != "" {
		return c.DataDir
	}
	return paths.AppDataDir()
}

// ResolveCacheDir returns the configured cache root, falling back to the
// XDG default.
func (c *Config) ResolveCacheDir() string {
	if c.CacheDir != "" {
		return c.CacheDir
	}
	return paths.AppCacheDir()
}

// Default returns the configuration that applies when no file exists.
// It is what `config init` seeds a fresh config file with.
func Default() *Config {
	return &Config{
		Release: ReleaseConfig{
			Owner:   "godotengine",
			Repo:    "godot",
			Channel: "stable",
		},
	}
}
