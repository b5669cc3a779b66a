package logging

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFilePath(t *testing.T) {
	path, err := logFilePath("concertina")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))

	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		assert.Equal(t, filepath.Join(home, "Library", "Logs", "concertina", "concertina.log"), path)
	case "linux":
		assert.Equal(t, filepath.Join(home, ".local", "state", "concertina", "concertina.log"), path)
	default:
		assert.Contains(t, path, "concertina")
	}
}

func TestNewWritesToLogFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", tmp)
		t.Setenv("LOCALAPPDATA", filepath.Join(tmp, "AppData", "Local"))
	}

	logger, err := New("concertina-test", false)
	require.NoError(t, err)

	logger.Info("hello")

	path, err := logFilePath("concertina-test")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestRotateIfNeeded(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "test.log")

	// Small files are left alone.
	require.NoError(t, os.WriteFile(path, []byte("small"), 0o644))
	require.NoError(t, rotateIfNeeded(path))
	_, err := os.Stat(path)
	assert.NoError(t, err)

	// Oversized files move aside as .old.
	big := make([]byte, maxLogSize)
	require.NoError(t, os.WriteFile(path, big, 0o644))
	require.NoError(t, rotateIfNeeded(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "rotated log should be gone")
	_, err = os.Stat(path + ".old")
	assert.NoError(t, err)

	// Missing files are a no-op.
	require.NoError(t, rotateIfNeeded(filepath.Join(tmp, "absent.log")))
}

func TestNop(t *testing.T) {
	logger := Nop()
	assert.NotNil(t, logger)
	logger.Info("discarded")
}
