package project

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/translint/translint/pkg/rule"
)

// debounceDelay batches bursts of filesystem events (editors typically emit
// several per save) into a single re-lint.
const debounceDelay = 250 * time.Millisecond

// Watch re-lints root whenever a file under it changes, calling onResult
// with the fresh findings after each pass. It blocks until ctx is canceled.
// Only create, write, remove, and rename events for paths whose file type
// has a parser trigger a pass.
func (p *Project) Watch(ctx context.Context, root string, onResult func([]rule.Finding, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	defer func() {
		closeErr := watcher.Close()
		if closeErr != nil {
			p.logger.Error("close watcher", slog.Any("error", closeErr))
		}
	}()

	err = watchTree(watcher, root)
	if err != nil {
		return err
	}

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !event.Op.Has(fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename) {
				continue
			}

			if !p.relevant(root, event.Name) {
				continue
			}

			p.logger.Debug("file event",
				slog.String("path", event.Name),
				slog.String("op", event.Op.String()),
			)

			if timer == nil {
				timer = time.NewTimer(debounceDelay)
				timerCh = timer.C
			} else {
				timer.Reset(debounceDelay)
			}

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			p.logger.Warn("watch error", slog.Any("error", watchErr))

		case <-timerCh:
			timer = nil
			timerCh = nil

			onResult(p.Lint(root))

			// New directories may have appeared.
			err := watchTree(watcher, root)
			if err != nil {
				p.logger.Warn("refresh watch tree", slog.Any("error", err))
			}
		}
	}
}

// relevant reports whether a change to path can affect lint results: either
// it resolves to a checked file type, or it is a directory event.
func (p *Project) relevant(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	if p.resolver.Resolve(rel).Parser != "" {
		return true
	}

	// Directory creations have no extension to resolve; take them so the
	// tree refresh picks up new files.
	return filepath.Ext(path) == ""
}

func watchTree(watcher *fsnotify.Watcher, root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
			return filepath.SkipDir
		}

		return watcher.Add(path)
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}

	return nil
}
