package fixtures

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nfrund/hive/internal/dashboard"
	"github.com/spf13/afero"
)

const defaultDebounce = 200 * time.Millisecond

// Store holds the current dataset. Sets handed out by Current are never
// mutated; a reload swaps in a new one.
type Store struct {
	fs       afero.Fs
	debounce time.Duration

	mu  sync.RWMutex
	set *dashboard.Set
}

// NewStore loads fsys once and fails if the fixtures are unusable.
func NewStore(fsys afero.Fs) (*Store, error) {
	set, err := Load(fsys)
	if err != nil {
		return nil, err
	}
	return &Store{fs: fsys, debounce: defaultDebounce, set: set}, nil
}

// Current returns the dataset loaded most recently.
func (s *Store) Current() *dashboard.Set {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set
}

// Reload re-reads the fixtures. On failure the previous dataset stays in place.
func (s *Store) Reload() error {
	set, err := Load(s.fs)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.set = set
	s.mu.Unlock()
	return nil
}

// Watch reloads the store whenever a YAML file in dir changes, until ctx is
// done. Bursts of events within the debounce window trigger a single reload.
func (s *Store) Watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fixture watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	slog.Info("Watching fixtures for changes", "dir", dir)

	var (
		timer  *time.Timer
		reload <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Fixture watcher stopped", "dir", dir)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isFixtureFile(event.Name) || event.Op == fsnotify.Chmod {
				continue
			}
			slog.Debug("Fixture file event", "event", event.Op.String(), "path", event.Name)
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				timer.Reset(s.debounce)
			}
			reload = timer.C

		case <-reload:
			reload = nil
			if err := s.Reload(); err != nil {
				slog.Warn("Fixture reload failed, keeping previous data", "dir", dir, "error", err)
				continue
			}
			slog.Info("Fixtures reloaded", "dir", dir)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				slog.Warn("Fixture watcher overflowed, reloading", "dir", dir)
				if err := s.Reload(); err != nil {
					slog.Warn("Fixture reload failed, keeping previous data", "dir", dir, "error", err)
				}
				continue
			}
			slog.Error("Fixture watcher error", "error", err)
		}
	}
}
