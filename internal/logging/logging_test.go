package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, clog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, clog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, clog.WarnLevel, ParseLevel("nonsense"))
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test", "warn")
	l.Info("hidden")
	l.Warn("shown", "setup", "vwap-bounce")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "vwap-bounce")
}

func TestForTUIWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "edgefinder.log")
	l, closeFn, err := ForTUI(path, "info")
	require.NoError(t, err)
	l.Info("started")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "started")
}

func TestForTUIDiscards(t *testing.T) {
	l, closeFn, err := ForTUI("", "debug")
	require.NoError(t, err)
	l.Info("nowhere")
	assert.NoError(t, closeFn())
}
