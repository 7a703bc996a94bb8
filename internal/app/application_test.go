package app

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hades-save-manager/internal/config"
	"hades-save-manager/internal/logger"
	"hades-save-manager/internal/models"
	"hades-save-manager/internal/paths"
)

func noHomeEnv() paths.Env {
	return paths.Env{
		HomeDir: func() (string, error) { return "", os.ErrNotExist },
		Getenv:  func(string) string { return "" },
		Exists:  func(string) bool { return false },
	}
}

func newTestApplication(t *testing.T, saveDir string) *Application {
	t.Helper()
	fyneApp := test.NewTempApp(t)
	a, err := newApplication(fyneApp, config.Config{SaveDir: saveDir}, noHomeEnv(), logger.NoOpLogger{})
	require.NoError(t, err)
	t.Cleanup(func() {
		a.stopped.Store(true)
		a.Shutdown()
	})
	return a
}

func TestNewApplicationWiresSaveFolder(t *testing.T) {
	saveDir := t.TempDir()
	a := newTestApplication(t, saveDir)

	assert.Equal(t, models.NewLocations(saveDir), a.controller.Locations())
	assert.Equal(t, AppName, a.window.Title())
	assert.NotNil(t, a.window.Content())
	assert.NotNil(t, a.window.MainMenu())
	if assert.NotNil(t, a.watcher) {
		assert.Equal(t, []string{saveDir}, a.watcher.Watched())
	}
}

func TestFolderChangeRetargetsWatcher(t *testing.T) {
	a := newTestApplication(t, t.TempDir())
	require.NotNil(t, a.watcher)

	next := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(next, models.BackupDirName), 0o755))
	a.controller.ApplyFolder(next)

	assert.ElementsMatch(t, []string{next, filepath.Join(next, models.BackupDirName)}, a.watcher.Watched())
}

func TestShutdownClosesWatcher(t *testing.T) {
	a := newTestApplication(t, t.TempDir())
	a.stopped.Store(true)

	a.Shutdown()

	assert.Error(t, a.shutdown.Context().Err())
	assert.NoError(t, a.watcher.Close())
}
