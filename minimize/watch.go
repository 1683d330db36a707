package minimize

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/gnolang/qmc/internal/types"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher minimizes function files again whenever they are written.
type Watcher struct {
	engine   MinimizeEngine
	logger   *zap.Logger
	watcher  *fsnotify.Watcher
	report   func(filename string, outcomes []tt.Outcome)
	debounce time.Duration
}

// NewWatcher creates a watcher passing every fresh set of outcomes to
// report.
func NewWatcher(engine MinimizeEngine, logger *zap.Logger, report func(string, []tt.Outcome)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		engine:   engine,
		logger:   logger,
		watcher:  fw,
		report:   report,
		debounce: defaultDebounce,
	}, nil
}

// Add watches a function file, or every directory below path.
func (w *Watcher) Add(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error accessing %s: %w", path, err)
	}
	if !info.IsDir() {
		return w.watcher.Add(path)
	}

	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error adding directory to watcher: %w", err)
	}
	return nil
}

// Run dispatches file events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleFileEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if !hasDesiredExtension(event.Name) {
		return
	}

	// editors often write a file in several steps
	time.Sleep(w.debounce)

	outcomes, err := w.engine.Run(event.Name)
	if err != nil {
		w.logger.Error("Error processing file", zap.String("file", event.Name), zap.Error(err))
		return
	}
	w.logger.Debug("Processed file", zap.String("file", event.Name), zap.Int("functions", len(outcomes)))
	if w.report != nil {
		w.report(event.Name, outcomes)
	}
}
