package commands

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/graphkit/cxport/errors"
	"github.com/graphkit/cxport/export"
	"github.com/graphkit/cxport/logger"
)

// watchDebouncePeriod coalesces the bursts of fsnotify events editors
// produce for one save
const watchDebouncePeriod = 500 * time.Millisecond

// watchAndExport exports once, then re-exports whenever the input file
// changes, until interrupted. Export failures in watch mode are logged
// rather than fatal: a half-saved input will usually be followed by a
// good one.
func watchAndExport(exporter export.Exporter, input, output string) error {
	if err := exportOnce(exporter, input, output); err != nil {
		logger.Errorw("initial export failed", "error", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create fsnotify watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(input); err != nil {
		return errors.Wrapf(err, "failed to watch input file %s", input)
	}
	logger.Infow("watching for changes", "input", input, "output", output)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	var mu sync.Mutex
	var debounceTimer *time.Timer

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Editors often replace the file, which drops the watch;
			// re-add so subsequent saves are still seen
			if event.Op&fsnotify.Rename != 0 {
				_ = watcher.Add(input)
			}

			mu.Lock()
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(watchDebouncePeriod, func() {
				logger.Infow("input changed, re-exporting", "input", input)
				if err := exportOnce(exporter, input, output); err != nil {
					logger.Errorw("re-export failed", "error", err)
				}
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("watcher error", "error", err)

		case sig := <-signals:
			logger.Infow("stopping watch", "signal", sig.String())
			return nil
		}
	}
}
