package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestComponentFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.DebugLevel)
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}, zerolog.Disabled) })

	logger := Component("theme")
	logger.Debug().Str("requested", "sepia").Msg("theme fallback")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "theme", line["component"])
	require.Equal(t, Session(), line["session"])
	require.Equal(t, "sepia", line["requested"])
	require.Equal(t, "debug", line["level"])
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.InfoLevel)
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}, zerolog.Disabled) })

	logger := Component("overlay")
	logger.Debug().Msg("hidden")
	require.Zero(t, buf.Len())
}

func TestInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "folio.log")
	closer, err := Init(Config{Level: "debug", File: path})
	require.NoError(t, err)
	t.Cleanup(func() { SetOutput(&bytes.Buffer{}, zerolog.Disabled) })

	logger := Component("cli")
	logger.Info().Msg("started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"component":"cli"`)
}

func TestInitRejectsBadLevel(t *testing.T) {
	_, err := Init(Config{Level: "loud"})
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, level)

	level, err = ParseLevel(" WARN ")
	require.NoError(t, err)
	require.Equal(t, zerolog.WarnLevel, level)
}
