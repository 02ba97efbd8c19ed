// Package scanner provides the background scan service with file watching.
package scanner

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mwaldt/clinespend/internal/aggregate"
	"github.com/mwaldt/clinespend/internal/logger"
	"github.com/mwaldt/clinespend/internal/models"
)

// Event represents a scanner service event.
type Event struct {
	Type   EventType
	Report *models.Report
	Error  error
}

// EventType defines the type of scanner event.
type EventType int

const (
	EventScanStarted EventType = iota
	EventScanFinished
	EventError
)

// Service scans the tasks directory and rescans when it changes. Every
// scan is a full recomputation; nothing incremental is kept between runs.
type Service struct {
	mu            sync.RWMutex
	basePath      string
	opts          aggregate.Options
	report        *models.Report
	watcher       *fsnotify.Watcher
	watched       map[string]bool
	eventChan     chan Event
	stopChan      chan struct{}
	debounce      time.Duration
	debounceTimer *time.Timer
	closeOnce     sync.Once
}

// New creates a scanner service and starts watching the tasks directory.
// A base path that does not exist yet is not an error here; scans against
// it will report the failure instead.
func New(basePath string, debounce time.Duration, opts aggregate.Options) (*Service, error) {
	s := &Service{
		basePath:  basePath,
		opts:      opts,
		watched:   make(map[string]bool),
		eventChan: make(chan Event, 100),
		stopChan:  make(chan struct{}),
		debounce:  debounce,
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	s.watcher = watcher

	if err := watcher.Add(basePath); err != nil {
		logger.Warn("cannot watch tasks directory, live refresh disabled",
			"path", basePath, "error", err)
	} else {
		s.watched[basePath] = true
	}

	go s.watchLoop()
	return s, nil
}

// Events returns the event channel for subscribing to scan results.
func (s *Service) Events() <-chan Event {
	return s.eventChan
}

// BasePath returns the scanned directory.
func (s *Service) BasePath() string {
	return s.basePath
}

// Report returns the most recent scan result, or nil before the first scan.
func (s *Service) Report() *models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report
}

// Rescan performs a full scan and stores the result. The report is always
// non-nil; the error carries the missing-base-path condition.
func (s *Service) Rescan() (*models.Report, error) {
	s.sendEvent(Event{Type: EventScanStarted})

	report, err := aggregate.Run(s.basePath, s.opts)

	s.mu.Lock()
	s.report = report
	s.mu.Unlock()

	if err != nil {
		s.sendEvent(Event{Type: EventError, Error: err})
		return report, err
	}

	s.refreshWatches(report)
	s.sendEvent(Event{Type: EventScanFinished, Report: report})
	return report, nil
}

// refreshWatches adds watches for task folders seen by the last scan.
// fsnotify does not recurse, so each folder is watched individually to
// catch message-log appends inside running tasks.
func (s *Service) refreshWatches(report *models.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.watched[s.basePath] {
		if err := s.watcher.Add(s.basePath); err == nil {
			s.watched[s.basePath] = true
		}
	}

	entries := report.Counters.Processed + report.Counters.Skipped
	if entries == 0 {
		return
	}
	for _, dir := range s.taskDirs() {
		if s.watched[dir] {
			continue
		}
		if err := s.watcher.Add(dir); err != nil {
			logger.Debug("cannot watch task folder", "path", dir, "error", err)
			continue
		}
		s.watched[dir] = true
	}
}

// taskDirs lists current task folder paths, best effort.
func (s *Service) taskDirs() []string {
	matches, err := filepath.Glob(filepath.Join(s.basePath, "*"))
	if err != nil {
		return nil
	}
	return matches
}

// watchLoop handles file system events with debouncing.
func (s *Service) watchLoop() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				// Debounce rapid changes
				s.mu.Lock()
				if s.debounceTimer != nil {
					s.debounceTimer.Stop()
				}
				s.debounceTimer = time.AfterFunc(s.debounce, func() {
					_, _ = s.Rescan()
				})
				s.mu.Unlock()
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.sendEvent(Event{Type: EventError, Error: err})

		case <-s.stopChan:
			return
		}
	}
}

// sendEvent sends an event to the event channel non-blocking.
func (s *Service) sendEvent(event Event) {
	select {
	case s.eventChan <- event:
	default:
		// Channel full, drop oldest event
		select {
		case <-s.eventChan:
		default:
		}
		select {
		case s.eventChan <- event:
		default:
		}
	}
}

// Close stops the file watcher and cleans up resources.
func (s *Service) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.stopChan)

		s.mu.Lock()
		if s.debounceTimer != nil {
			s.debounceTimer.Stop()
		}
		s.mu.Unlock()

		if s.watcher != nil {
			err = s.watcher.Close()
		}
	})
	return err
}
