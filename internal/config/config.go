// Package config resolves runtime settings for the fishlog CLI.
package config

import (
	"github.com/spf13/viper"
)

// Config holds runtime settings.
//
// Fields:
//   - Endpoint: base URL of the BaaS HTTP API (includes the /v1 prefix).
//   - Project: project identifier sent with every request.
//   - DataDir: local directory for the persisted snapshot and session.
type Config struct {
	Endpoint string
	Project  string
	DataDir  string
}

// LoadDefaults populates c with the baked-in fallbacks used when nothing
// else is configured.
func (c *Config) LoadDefaults() {
	c.Endpoint = "https://mentor-db.sustainablegrowthlabs.com/v1"
	c.Project = "6723a47b7732b1007525"
	c.DataDir = "~/.fishlog"
}

// Load constructs a Config: defaults, then an optional .fishlog config file
// (home directory or cwd), then environment variables. Later sources take
// precedence over earlier ones.
//
// Recognized environment variables: APPWRITE_ENDPOINT, APPWRITE_PROJECT
// (matching the web app), plus FISHLOG_ENDPOINT, FISHLOG_PROJECT and
// FISHLOG_DATA_DIR.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	v := viper.New()
	v.SetDefault("endpoint", cfg.Endpoint)
	v.SetDefault("project", cfg.Project)
	v.SetDefault("data_dir", cfg.DataDir)

	v.SetConfigName(".fishlog")
	v.AddConfigPath("$HOME")
	v.AddConfigPath("./")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	_ = v.BindEnv("endpoint", "FISHLOG_ENDPOINT", "APPWRITE_ENDPOINT")
	_ = v.BindEnv("project", "FISHLOG_PROJECT", "APPWRITE_PROJECT")
	_ = v.BindEnv("data_dir", "FISHLOG_DATA_DIR")

	cfg.Endpoint = v.GetString("endpoint")
	cfg.Project = v.GetString("project")
	cfg.DataDir = v.GetString("data_dir")
	return cfg, nil
}
