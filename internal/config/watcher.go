// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// KEY FILE WATCHER
// =============================================================================

// KeyWatcher watches the license key file and reports new key values,
// so a rotated key takes effect without restarting the shell.
type KeyWatcher interface {
	// Watch starts watching; onChange receives each new key value.
	Watch(onChange func(key string)) error

	// Close stops watching and releases resources.
	Close() error
}

// debounce interval for editors that write the key file in bursts
const keyWatchDebounce = 250 * time.Millisecond

// FsnotifyKeyWatcher implements KeyWatcher using fsnotify. The parent
// directory is watched rather than the file itself, since atomic saves
// (write temp, rename) replace the inode the file watch would follow.
type FsnotifyKeyWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	ctx     context.Context
	cancel  context.CancelFunc

	mu      sync.Mutex
	pending time.Time
}

// NewKeyWatcher creates an fsnotify watcher for the key file at path,
// falling back to polling when fsnotify is unavailable.
func NewKeyWatcher(path string) (KeyWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return NewPollingKeyWatcher(path, 5*time.Second), nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &FsnotifyKeyWatcher{
		path:    path,
		watcher: w,
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// Watch starts watching for key file changes.
func (kw *FsnotifyKeyWatcher) Watch(onChange func(key string)) error {
	if err := kw.watcher.Add(filepath.Dir(kw.path)); err != nil {
		return err
	}

	go kw.processEvents()
	go kw.processPending(onChange)
	return nil
}

func (kw *FsnotifyKeyWatcher) processEvents() {
	for {
		select {
		case <-kw.ctx.Done():
			return

		case event, ok := <-kw.watcher.Events:
			if !ok {
				return
			}
			if event.Name != kw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				kw.mu.Lock()
				kw.pending = time.Now()
				kw.mu.Unlock()
			}

		case _, ok := <-kw.watcher.Errors:
			if !ok {
				return
			}
			// non-fatal
		}
	}
}

func (kw *FsnotifyKeyWatcher) processPending(onChange func(key string)) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-kw.ctx.Done():
			return

		case <-ticker.C:
			kw.mu.Lock()
			fire := !kw.pending.IsZero() && time.Since(kw.pending) >= keyWatchDebounce
			if fire {
				kw.pending = time.Time{}
			}
			kw.mu.Unlock()

			if fire {
				if key, err := ReadKeyFile(kw.path); err == nil {
					onChange(key)
				}
			}
		}
	}
}

// Close stops watching and releases resources.
func (kw *FsnotifyKeyWatcher) Close() error {
	kw.cancel()
	if kw.watcher != nil {
		return kw.watcher.Close()
	}
	return nil
}

// =============================================================================
// POLLING WATCHER (FALLBACK)
// =============================================================================

// PollingKeyWatcher implements KeyWatcher by polling the file's mod time.
type PollingKeyWatcher struct {
	path     string
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	lastMod  time.Time
}

// NewPollingKeyWatcher creates a polling-based key watcher.
func NewPollingKeyWatcher(path string, interval time.Duration) *PollingKeyWatcher {
	ctx, cancel := context.WithCancel(context.Background())
	pw := &PollingKeyWatcher{
		path:     path,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
	if info, err := os.Stat(path); err == nil {
		pw.lastMod = info.ModTime()
	}
	return pw
}

// Watch starts polling for key file changes.
func (pw *PollingKeyWatcher) Watch(onChange func(key string)) error {
	go func() {
		ticker := time.NewTicker(pw.interval)
		defer ticker.Stop()

		for {
			select {
			case <-pw.ctx.Done():
				return

			case <-ticker.C:
				info, err := os.Stat(pw.path)
				if err != nil {
					continue
				}
				if info.ModTime().Equal(pw.lastMod) {
					continue
				}
				pw.lastMod = info.ModTime()
				if key, err := ReadKeyFile(pw.path); err == nil {
					onChange(key)
				}
			}
		}
	}()
	return nil
}

// Close stops polling.
func (pw *PollingKeyWatcher) Close() error {
	pw.cancel()
	return nil
}
