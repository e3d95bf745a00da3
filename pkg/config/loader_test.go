package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msprojectmerger/landing/pkg/config"
)

type defaultsConfig struct {
	Path    string        `env:"TEST_CFG_DEFAULT_PATH" envDefault:"/api/collect-email"`
	Timeout time.Duration `env:"TEST_CFG_DEFAULT_TIMEOUT" envDefault:"5s"`
	Enabled bool          `env:"TEST_CFG_DEFAULT_ENABLED" envDefault:"true"`
}

type listConfig struct {
	Sinks []string `env:"TEST_CFG_SINKS" envSeparator:"," envDefault:"log"`
}

type cachedConfig struct {
	Value string `env:"TEST_CFG_CACHED"`
}

type requiredConfig struct {
	URL string `env:"TEST_CFG_REQUIRED_URL,required"`
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("TEST_CFG_DEFAULT_PATH")
	os.Unsetenv("TEST_CFG_DEFAULT_TIMEOUT")
	os.Unsetenv("TEST_CFG_DEFAULT_ENABLED")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "/api/collect-email", cfg.Path)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.Enabled)
}

func TestParse_Separator(t *testing.T) {
	t.Setenv("TEST_CFG_SINKS", "log,redis,webhook")

	var cfg listConfig
	require.NoError(t, config.Parse(&cfg))
	assert.Equal(t, []string{"log", "redis", "webhook"}, cfg.Sinks)
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("TEST_CFG_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_CFG_CACHED", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))

	assert.Equal(t, "first", second.Value)

	var fresh cachedConfig
	require.NoError(t, config.Parse(&fresh))
	assert.Equal(t, "second", fresh.Value)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("TEST_CFG_REQUIRED_URL")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	assert.ErrorIs(t, config.Parse(cfg), config.ErrNilPointer)
}

func TestMustLoad_Panics(t *testing.T) {
	os.Unsetenv("TEST_CFG_REQUIRED_URL")

	type mustConfig struct {
		URL string `env:"TEST_CFG_REQUIRED_URL,required"`
	}
	var cfg mustConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}
