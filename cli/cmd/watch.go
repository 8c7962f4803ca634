package cmd

import (
	"context"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ardnew/morph/log"
)

// settleDelay is how long a burst of changes must be quiet before the
// burst counts as one change. Editors often write a file in several steps.
const settleDelay = 50 * time.Millisecond

// watch sends the path of each changed file on the returned channel until ctx
// is done, then closes it. Paths must be absolute. It uses file system events
// when available and falls back to polling modification times.
func watch(
	ctx context.Context,
	paths []string,
	interval time.Duration,
	logger log.Logger,
) <-chan string {
	changes := make(chan string)

	w, err := notify(paths)
	if err != nil {
		logger.DebugContext(ctx, "file events unavailable, polling",
			slog.Any("error", err),
			slog.Duration("interval", interval),
		)

		go poll(ctx, snapshot(paths), interval, changes)

		return changes
	}

	go events(ctx, w, paths, changes, logger)

	return changes
}

// notify returns a watcher on the directory of each path. Watching
// directories keeps reporting files that editors replace by renaming.
func notify(paths []string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dirs := make(map[string]struct{})

	for _, path := range paths {
		dir := filepath.Dir(path)
		if _, ok := dirs[dir]; ok {
			continue
		}

		dirs[dir] = struct{}{}

		if err := w.Add(dir); err != nil {
			_ = w.Close()

			return nil, err
		}
	}

	return w, nil
}

func events(
	ctx context.Context,
	w *fsnotify.Watcher,
	paths []string,
	changes chan<- string,
	logger log.Logger,
) {
	defer close(changes)
	defer w.Close()

	watched := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		watched[filepath.Clean(path)] = struct{}{}
	}

	const modified = fsnotify.Write | fsnotify.Create | fsnotify.Rename

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.Events:
			if !ok {
				return
			}

			if _, ok := watched[filepath.Clean(ev.Name)]; !ok || ev.Op&modified == 0 {
				continue
			}

			select {
			case changes <- ev.Name:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.Errors:
			if !ok {
				return
			}

			logger.WarnContext(ctx, "file events", slog.Any("error", err))
		}
	}
}

// snapshot returns the modification time of every path.
func snapshot(paths []string) map[string]time.Time {
	mtime := make(map[string]time.Time, len(paths))
	for _, path := range paths {
		mtime[path] = modTime(path)
	}

	return mtime
}

// poll compares the modification time of every path in mtime once per
// interval.
func poll(
	ctx context.Context,
	mtime map[string]time.Time,
	interval time.Duration,
	changes chan<- string,
) {
	defer close(changes)

	if interval <= 0 {
		interval = time.Second
	}

	paths := slices.Sorted(maps.Keys(mtime))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			for _, path := range paths {
				m := modTime(path)
				if m.Equal(mtime[path]) {
					continue
				}

				mtime[path] = m

				select {
				case changes <- path:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

// modTime returns the modification time of path, or the zero time if it
// cannot be read.
func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}

	return info.ModTime()
}

// settle drains changes until none arrive for delay.
func settle(ctx context.Context, changes <-chan string, delay time.Duration) {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-timer.C:
			return

		case _, ok := <-changes:
			if !ok {
				return
			}

			timer.Reset(delay)
		}
	}
}
