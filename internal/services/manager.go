// Package services provides service orchestration for the TUI.
package services

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/mwaldt/clinespend/internal/aggregate"
	"github.com/mwaldt/clinespend/internal/config"
	"github.com/mwaldt/clinespend/internal/models"
	"github.com/mwaldt/clinespend/internal/services/scanner"
)

type (
	// ScanStartedEvent is emitted when a scan of the tasks directory begins.
	ScanStartedEvent struct{}

	// ReportUpdatedEvent is emitted when a scan finishes with fresh results.
	ReportUpdatedEvent struct {
		Report *models.Report
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (ScanStartedEvent) isServiceEvent()   {}
func (ReportUpdatedEvent) isServiceEvent() {}
func (ErrorEvent) isServiceEvent()         {}

// Manager orchestrates services and event routing.
type Manager struct {
	mu              sync.RWMutex
	scanner         *scanner.Service
	cfg             *config.Config
	eventChan       chan ServiceEvent
	stopChan        chan struct{}
	subscribers     []chan<- ServiceEvent
	previousAverage float64
	budgetNotified  bool
}

// NewManager creates a new service manager.
func NewManager(cfg *config.Config, opts aggregate.Options) (*Manager, error) {
	m := &Manager{
		cfg:       cfg,
		eventChan: make(chan ServiceEvent, 100),
		stopChan:  make(chan struct{}),
	}

	var err error
	m.scanner, err = scanner.New(cfg.TasksPath, cfg.RefreshDebounce, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize scanner: %w", err)
	}

	go m.routeEvents()

	return m, nil
}

// routeEvents routes events from individual services to subscribers.
func (m *Manager) routeEvents() {
	for {
		select {
		case event := <-m.scanner.Events():
			m.handleScannerEvent(event)

		case <-m.stopChan:
			return
		}
	}
}

// handleScannerEvent converts and broadcasts scanner events.
func (m *Manager) handleScannerEvent(event scanner.Event) {
	switch event.Type {
	case scanner.EventScanStarted:
		m.broadcast(ScanStartedEvent{})

	case scanner.EventScanFinished:
		m.broadcast(ReportUpdatedEvent{Report: event.Report})
		if event.Report != nil {
			m.checkBudget(event.Report)
		}

	case scanner.EventError:
		m.broadcast(ErrorEvent{
			Service: "scanner",
			Error:   event.Error,
		})
	}
}

// checkBudget fires a desktop notification the first time the monthly
// average crosses the configured budget from below.
func (m *Manager) checkBudget(report *models.Report) {
	budget := m.cfg.MonthlyBudget
	if budget <= 0 || !report.Period.HasData {
		return
	}

	m.mu.Lock()
	previous := m.previousAverage
	m.previousAverage = report.Period.MonthlyAverage
	if report.Period.MonthlyAverage < budget {
		m.budgetNotified = false
		m.mu.Unlock()
		return
	}
	if m.budgetNotified || previous >= budget {
		m.mu.Unlock()
		return
	}
	m.budgetNotified = true
	m.mu.Unlock()

	title := "clinespend: monthly budget exceeded"
	body := fmt.Sprintf("Monthly average $%.2f is over your $%.2f budget",
		report.Period.MonthlyAverage, budget)
	_ = beeep.Notify(title, body, "")
}

// broadcast sends an event to all subscribers.
func (m *Manager) broadcast(event ServiceEvent) {
	// Send to main event channel
	select {
	case m.eventChan <- event:
	default:
	}

	// Send to subscribers
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events.
// Returns a tea.Cmd that can be used in Bubble Tea's Init or Update.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch, waitForEvent(ch)
}

// waitForEvent returns a tea.Cmd that waits for the next event.
func waitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// WaitForEvent returns a tea.Cmd for the next event on a channel.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return waitForEvent(ch)
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Rescan performs a full synchronous scan.
func (m *Manager) Rescan() (*models.Report, error) {
	return m.scanner.Rescan()
}

// Report returns the most recent scan result, or nil before the first scan.
func (m *Manager) Report() *models.Report {
	return m.scanner.Report()
}

// Scanner returns the scanner service.
func (m *Manager) Scanner() *scanner.Service {
	return m.scanner
}

// Config returns the loaded configuration.
func (m *Manager) Config() *config.Config {
	return m.cfg
}

// Close closes the manager and all its services.
func (m *Manager) Close() error {
	close(m.stopChan)

	m.mu.Lock()
	for _, sub := range m.subscribers {
		close(sub)
	}
	m.subscribers = nil
	m.mu.Unlock()

	return m.scanner.Close()
}
