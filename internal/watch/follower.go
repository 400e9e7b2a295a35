// Package watch tails a growing file into a writer.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/andyrewlee/termgrid/internal/logging"
)

// Follower copies a file's content into a writer and keeps copying bytes
// appended to it. A file that shrinks is treated as truncated and re-read
// from the start.
type Follower struct {
	path string
	dst  io.Writer

	watcher *fsnotify.Watcher

	// OnUpdate, if set, is called after each batch of bytes is written.
	OnUpdate func(n int)

	mu        sync.Mutex
	offset    int64
	closeOnce sync.Once
}

// NewFollower watches path. The file's directory must exist; the file
// itself may appear later.
func NewFollower(path string, dst io.Writer) (*Follower, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	path = filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	return &Follower{path: path, dst: dst, watcher: watcher}, nil
}

// Path returns the followed file.
func (f *Follower) Path() string {
	return f.path
}

// Offset returns how many bytes of the file have been copied.
func (f *Follower) Offset() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.offset
}

// Run copies the current content and then follows changes until ctx is done
// or the watcher is closed.
func (f *Follower) Run(ctx context.Context) error {
	if err := f.catchUp(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-f.watcher.Events:
			if !ok {
				return nil
			}
			if !f.isFileEvent(event) {
				continue
			}
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				f.mu.Lock()
				f.offset = 0
				f.mu.Unlock()
				continue
			}
			if err := f.catchUp(); err != nil {
				return err
			}
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warn("watch %s: %v", f.path, err)
		}
	}
}

// Close stops the watcher.
func (f *Follower) Close() error {
	var err error
	f.closeOnce.Do(func() {
		err = f.watcher.Close()
	})
	return err
}

func (f *Follower) isFileEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != f.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}

// catchUp writes everything past the current offset.
func (f *Follower) catchUp() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open %s: %w", f.path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", f.path, err)
	}
	if info.Size() < f.offset {
		logging.Info("watch %s: truncated from %d to %d bytes", f.path, f.offset, info.Size())
		f.offset = 0
	}
	if info.Size() == f.offset {
		return nil
	}
	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return fmt.Errorf("seek %s: %w", f.path, err)
	}
	n, err := io.Copy(f.dst, file)
	f.offset += n
	if err != nil {
		return fmt.Errorf("copy %s: %w", f.path, err)
	}
	if n > 0 && f.OnUpdate != nil {
		f.OnUpdate(int(n))
	}
	return nil
}
