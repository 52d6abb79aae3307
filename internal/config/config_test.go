package config

import (
	"io"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	return Load("memgraph", args, io.Discard)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Length)
	assert.False(t, cfg.HumanReadable)
	assert.Equal(t, 2, cfg.Decimals)
	assert.Equal(t, "/proc", cfg.ProcRoot)
	assert.Empty(t, cfg.Program)
	assert.False(t, cfg.Serve)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := load(t, "-H", "-l", "40", "firefox")
	require.NoError(t, err)
	assert.True(t, cfg.HumanReadable)
	assert.Equal(t, 40, cfg.Length)
	assert.Equal(t, "firefox", cfg.Program)
	assert.True(t, cfg.Units().Human)

	cfg, err = load(t, "--length=5", "--human-readable", "--decimals", "1")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Length)
	assert.True(t, cfg.HumanReadable)
	assert.Equal(t, 1, cfg.Units().Decimals)
}

func TestLoadRejects(t *testing.T) {
	_, err := load(t, "--length", "abc")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)

	for _, args := range [][]string{
		{"-l", "0"},
		{"--decimals", "-1"},
		{"--log-level", "loud"},
		{"--proc-root", ""},
		{"one", "two"},
		{"--serve", "nginx"},
	} {
		_, err := load(t, args...)
		assert.ErrorIs(t, err, ErrInvalid, "args %v", args)
	}
}

func TestLoadHelp(t *testing.T) {
	_, err := load(t, "--help")
	assert.ErrorIs(t, err, pflag.ErrHelp)
}

func TestLoadServeAddress(t *testing.T) {
	cfg, err := load(t, "--serve", "--bind", "127.0.0.1", "--port", "9099")
	require.NoError(t, err)
	assert.True(t, cfg.Serve)
	assert.Equal(t, "127.0.0.1", cfg.Bind)
	assert.Equal(t, "9099", cfg.Port)

	cfg, err = load(t)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Bind)
	assert.Equal(t, "8080", cfg.Port)
}
