package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/yacht/internal/config"
)

func TestNewFileLogger(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "yacht.log")
	logger, closer, err := New(config.LogConfig{Level: "INFO", File: path})
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, logger.GetLevel())

	logger.Debug().Msg("hidden")
	logger.Info().Int("round", 3).Msg("score registered")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, `"round":3`)
	require.Contains(t, out, `"message":"score registered"`)
	require.Equal(t, 1, strings.Count(out, "\n"))
}

func TestNewDefaultsToWarn(t *testing.T) {
	t.Parallel()

	logger, closer, err := New(config.LogConfig{})
	require.NoError(t, err)
	require.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	require.NoError(t, closer.Close())
}

func TestNewRejectsBadLevel(t *testing.T) {
	t.Parallel()

	_, _, err := New(config.LogConfig{Level: "loud"})
	require.ErrorContains(t, err, "invalid log level")
}
