package watch

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"hades-save-manager/internal/logger"
	"hades-save-manager/internal/models"
)

const (
	component       = "DirWatcher"
	DefaultDebounce = 100 * time.Millisecond
)

// DirWatcher reports changes inside the save folder and its backup folder.
// Bursts of filesystem events collapse into a single onChange call, made
// from the watcher goroutine.
type DirWatcher struct {
	watcher  *fsnotify.Watcher
	logger   logger.Logger
	onChange func()
	debounce time.Duration

	// ops serializes Add/Remove calls. The event loop never takes it, since
	// some fsnotify backends answer Add/Remove from the goroutine that
	// feeds the loop.
	ops sync.Mutex

	mu       sync.Mutex
	location models.Locations
	watched  []string
	parent   string // watched while the save folder does not exist yet

	done      chan struct{}
	closeOnce sync.Once
}

func NewDirWatcher(log logger.Logger, onChange func()) (*DirWatcher, error) {
	return newDirWatcher(log, onChange, DefaultDebounce)
}

func newDirWatcher(log logger.Logger, onChange func(), debounce time.Duration) (*DirWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}

	w := &DirWatcher{
		watcher:  fsw,
		logger:   log,
		onChange: onChange,
		debounce: debounce,
		done:     make(chan struct{}),
	}
	go w.eventLoop()
	return w, nil
}

// Retarget drops the current watches and watches loc instead. Folders
// that do not exist yet are picked up as soon as they are created.
func (w *DirWatcher) Retarget(loc models.Locations) error {
	w.ops.Lock()
	defer w.ops.Unlock()

	w.mu.Lock()
	old := append([]string(nil), w.watched...)
	if w.parent != "" {
		old = append(old, w.parent)
	}
	w.location = loc
	w.watched = nil
	w.parent = ""
	w.mu.Unlock()

	for _, dir := range old {
		// the folder may be gone already
		_ = w.watcher.Remove(dir)
	}

	err := w.attach(loc)
	w.logger.Debug(component, "watching folders", map[string]interface{}{
		"folders": w.Watched(),
	})
	return err
}

// Watched returns the save and backup folders currently under watch
func (w *DirWatcher) Watched() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.watched...)
}

// attach watches whichever folders of loc exist and are not watched yet.
// While the save folder is missing its parent is watched instead, so its
// creation is noticed. Callers hold w.ops.
func (w *DirWatcher) attach(loc models.Locations) error {
	var firstErr error
	for _, dir := range []string{loc.SaveDir, loc.BackupDir} {
		if dir == "" || w.isWatched(dir) || !isDir(dir) {
			continue
		}
		if err := w.add(dir); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		w.mu.Lock()
		w.watched = append(w.watched, dir)
		w.mu.Unlock()
	}

	w.mu.Lock()
	parent := w.parent
	w.mu.Unlock()
	saveWatched := w.isWatched(loc.SaveDir)

	switch {
	case saveWatched && parent != "":
		_ = w.watcher.Remove(parent)
		w.mu.Lock()
		w.parent = ""
		w.mu.Unlock()
	case !saveWatched && parent == "" && loc.SaveDir != "":
		dir := filepath.Dir(loc.SaveDir)
		if isDir(dir) && w.add(dir) == nil {
			w.mu.Lock()
			w.parent = dir
			w.mu.Unlock()
		}
	}
	return firstErr
}

// adopt attaches folders of loc created after Retarget
func (w *DirWatcher) adopt(loc models.Locations) {
	w.ops.Lock()
	defer w.ops.Unlock()

	select {
	case <-w.done:
		return
	default:
	}

	w.mu.Lock()
	current := w.location
	w.mu.Unlock()
	if current != loc {
		return
	}
	_ = w.attach(loc)
}

func (w *DirWatcher) add(dir string) error {
	if err := w.watcher.Add(dir); err != nil {
		w.logger.Warning(component, "cannot watch folder", map[string]interface{}{
			"folder": dir,
			"error":  err.Error(),
		})
		return err
	}
	return nil
}

func (w *DirWatcher) isWatched(dir string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, d := range w.watched {
		if d == dir {
			return true
		}
	}
	return false
}

// handleEvent reports whether ev concerns the save or backup folder. When
// one of them has just been created it is attached off the event loop.
func (w *DirWatcher) handleEvent(ev fsnotify.Event) bool {
	w.mu.Lock()
	loc := w.location
	w.mu.Unlock()

	saveDir := filepath.Clean(loc.SaveDir)
	backupDir := filepath.Clean(loc.BackupDir)
	name := filepath.Clean(ev.Name)

	if name == saveDir || name == backupDir {
		if ev.Has(fsnotify.Create) {
			go w.adopt(loc)
		}
		return true
	}
	dir := filepath.Dir(name)
	return dir == saveDir || dir == backupDir
}

func (w *DirWatcher) eventLoop() {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.handleEvent(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warning(component, "watch error", map[string]interface{}{
				"error": err.Error(),
			})
		case <-fire:
			fire = nil
			if w.onChange != nil {
				w.onChange()
			}
		}
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *DirWatcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

// Shutdown lets the shutdown manager close the watcher
func (w *DirWatcher) Shutdown() {
	if err := w.Close(); err != nil {
		w.logger.Error(component, err, nil)
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
