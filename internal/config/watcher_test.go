package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[appearance]\nblur = true\n"), 0644))

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)

	var (
		mu   sync.Mutex
		last *File
	)
	w.SetChangeCallback(func(f *File) {
		mu.Lock()
		last = f
		mu.Unlock()
	})
	require.NoError(t, w.Start())
	defer func() { _ = w.Stop() }()

	require.NoError(t, os.WriteFile(path, []byte("[appearance]\nblur = false\n"), 0644))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return last != nil && !last.Appearance.Blur
	}, 2*time.Second, 20*time.Millisecond)
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := NewWatcher("/nonexistent/glassyclock/config.toml", nil)
	require.NoError(t, err)
	assert.Error(t, w.Start())
	assert.NoError(t, w.Stop())
}

func TestWatcher_SkipsReloadWhileFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)

	calls := 0
	w.SetChangeCallback(func(*File) { calls++ })

	// renamed away mid-save
	w.reload()
	assert.Equal(t, 0, calls)

	require.NoError(t, os.WriteFile(path, []byte("[appearance]\nblur = false\n"), 0644))
	w.reload()
	assert.Equal(t, 1, calls)
	assert.NoError(t, w.Stop())
}
