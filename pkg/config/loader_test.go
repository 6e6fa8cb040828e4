package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formintake/pkg/config"
	"github.com/dmitrymomot/formintake/pkg/multipartform"
)

type limitsConfig struct {
	AvatarMaxSize multipartform.Size `env:"TEST_AVATAR_MAX_SIZE" envDefault:"8MiB"`
	MaxParts      int                `env:"TEST_MAX_PARTS" envDefault:"16"`
	Lenient       bool               `env:"TEST_LENIENT_QUOTES" envDefault:"false"`
}

type requiredConfig struct {
	SchemaFile string `env:"TEST_SCHEMA_FILE_REQUIRED,required"`
}

type cachedConfig struct {
	Name string `env:"TEST_CACHED_NAME" envDefault:"first"`
}

type dotenvConfig struct {
	Name string `env:"TEST_DOTENV_NAME"`
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_AVATAR_MAX_SIZE", "2MiB")
	t.Setenv("TEST_LENIENT_QUOTES", "true")
	config.ResetCache()

	var cfg limitsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, int64(2<<20), cfg.AvatarMaxSize.Bytes())
	assert.Equal(t, 16, cfg.MaxParts)
	assert.True(t, cfg.Lenient)
}

func TestLoad_Errors(t *testing.T) {
	config.ResetCache()

	assert.ErrorIs(t, config.Load[limitsConfig](nil), config.ErrNilPointer)

	var req requiredConfig
	assert.ErrorIs(t, config.Load(&req), config.ErrParsingConfig)

	t.Setenv("TEST_AVATAR_MAX_SIZE", "huge")
	var limits limitsConfig
	assert.ErrorIs(t, config.Load(&limits), config.ErrParsingConfig)

	assert.Panics(t, func() { config.MustLoad(&req) })
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Name)

	t.Setenv("TEST_CACHED_NAME", "second")
	var again cachedConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Name, "configuration is fixed after first load")

	config.ResetCache()
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "second", again.Name)
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()

	path := filepath.Join(t.TempDir(), ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("TEST_DOTENV_NAME=from-file\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("TEST_DOTENV_NAME") })

	require.NoError(t, config.LoadEnv(path))

	var cfg dotenvConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from-file", cfg.Name)

	assert.ErrorIs(t, config.LoadEnv(filepath.Join(t.TempDir(), "missing")), config.ErrLoadingEnv)
}
