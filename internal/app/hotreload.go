package app

import (
	"log"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// HotReloader watches the running binary and reports when a newer build
// replaces it, so a developer can restart straight into it.
type HotReloader struct {
	execPath     string
	startupTime  time.Time
	tickInterval time.Duration
	stopCh       chan struct{}
	onNewBinary  func() // called from the watcher goroutine
	onTick       func() // called from the watcher goroutine
}

// NewHotReloader creates a reloader for the current executable.
// Returns nil if the executable path cannot be determined.
func NewHotReloader(tickInterval time.Duration) *HotReloader {
	execPath, err := os.Executable()
	if err != nil {
		return nil
	}

	// go build replaces the file, so watch the resolved path
	if realPath, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = realPath
	}

	info, err := os.Stat(execPath)
	if err != nil {
		return nil
	}

	return &HotReloader{
		execPath:     execPath,
		startupTime:  info.ModTime(),
		tickInterval: tickInterval,
	}
}

// OnNewBinary sets the callback invoked once a newer binary is detected.
func (h *HotReloader) OnNewBinary(callback func()) {
	h.onNewBinary = callback
}

// OnTick sets a callback invoked every tick interval while watching.
func (h *HotReloader) OnTick(callback func()) {
	h.onTick = callback
}

// Start begins watching in a background goroutine.
func (h *HotReloader) Start() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("Hot reload: %v", err)
		return
	}
	// Watch the directory: builds rename a new file over the old one.
	if err := watcher.Add(filepath.Dir(h.execPath)); err != nil {
		log.Printf("Hot reload: %v", err)
		watcher.Close()
		return
	}

	h.stopCh = make(chan struct{})
	go h.watchLoop(watcher, h.stopCh)
}

// Stop stops the watcher goroutine.
func (h *HotReloader) Stop() {
	if h.stopCh != nil {
		close(h.stopCh)
		h.stopCh = nil
	}
}

func (h *HotReloader) watchLoop(watcher *fsnotify.Watcher, stop <-chan struct{}) {
	defer watcher.Close()

	ticker := time.NewTicker(h.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if h.onTick != nil {
				h.onTick()
			}
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != h.execPath || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			if h.checkForUpdate() && h.onNewBinary != nil {
				h.onNewBinary()
				// Only trigger once
				return
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Hot reload: %v", err)
		}
	}
}

// checkForUpdate returns true if the binary has been modified since startup.
func (h *HotReloader) checkForUpdate() bool {
	info, err := os.Stat(h.execPath)
	if err != nil {
		return false
	}
	return info.ModTime().After(h.startupTime)
}

// ExecPath returns the path to the current executable.
func (h *HotReloader) ExecPath() string {
	return h.execPath
}

// StartupTime returns when the binary was last modified at program start.
func (h *HotReloader) StartupTime() time.Time {
	return h.startupTime
}

// ResetBaseline adopts the current binary's mod time, so a declined restart
// is not offered again for the same build.
func (h *HotReloader) ResetBaseline() {
	if info, err := os.Stat(h.execPath); err == nil {
		h.startupTime = info.ModTime()
	}
}

// Restart replaces the current process with a new instance of the binary.
// It does not return on success.
func (h *HotReloader) Restart() error {
	return syscall.Exec(h.execPath, os.Args, os.Environ())
}
