package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), config)
	require.Equal(t, 10, config.Documents.Count)
	require.Equal(t, "input.txt", config.Queries.InputFile)
	require.Equal(t, log.InfoLevel, config.LogLevel())
}

func TestLoadConfig_PartialOverlay(t *testing.T) {
	path := writeConfig(t, `
[documents]
dir = "corpus"
count = 3

[queries]
workers = 4

[log]
level = "debug"
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "corpus", config.Documents.Dir)
	require.Equal(t, 3, config.Documents.Count)
	require.Equal(t, "en", config.Documents.Language)
	require.Equal(t, 4, config.Queries.Workers)
	require.Equal(t, "result.txt", config.Queries.ResultFile)
	require.Equal(t, log.DebugLevel, config.LogLevel())
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "[documents]\ncount = 0\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadConfig(writeConfig(t, "[log]\nlevel = \"loud\"\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadConfig(writeConfig(t, "[documents\ncount = 3\n"))
	require.ErrorIs(t, err, ErrParsingConfig)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, ErrParsingConfig)
}
