package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://mentor-db.sustainablegrowthlabs.com/v1", cfg.Endpoint)
	assert.Equal(t, "6723a47b7732b1007525", cfg.Project)
	assert.Equal(t, "~/.fishlog", cfg.DataDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FISHLOG_ENDPOINT", "https://example.test/v1")
	t.Setenv("FISHLOG_PROJECT", "proj-1")
	t.Setenv("FISHLOG_DATA_DIR", "/tmp/fishlog-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://example.test/v1", cfg.Endpoint)
	assert.Equal(t, "proj-1", cfg.Project)
	assert.Equal(t, "/tmp/fishlog-test", cfg.DataDir)
}

func TestLoad_CompatibilityEnvNames(t *testing.T) {
	t.Setenv("APPWRITE_ENDPOINT", "https://compat.test/v1")
	t.Setenv("APPWRITE_PROJECT", "compat-proj")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://compat.test/v1", cfg.Endpoint)
	assert.Equal(t, "compat-proj", cfg.Project)
}

func TestLoad_SpecificEnvWinsOverCompatibility(t *testing.T) {
	t.Setenv("APPWRITE_ENDPOINT", "https://compat.test/v1")
	t.Setenv("FISHLOG_ENDPOINT", "https://specific.test/v1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://specific.test/v1", cfg.Endpoint)
}
