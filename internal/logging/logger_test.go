package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rickdex.log")

	l, err := New(path, "debug")
	require.NoError(t, err)
	l.Debug("hello from test")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestNewRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rickdex.log")

	l, err := New(path, "warn")
	require.NoError(t, err)
	l.Info("quiet")
	l.Warn("loud")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "loud")
}

func TestNewEmptyPathIsNop(t *testing.T) {
	l, err := New("", "info")
	require.NoError(t, err)
	require.NotNil(t, l)
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x.log"), "chatty")
	require.Error(t, err)
}
