package dbus

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/godbus/dbus/v5"
)

// logind identifiers.
const (
	LogindPath      = "/org/freedesktop/login1"
	LogindInterface = "org.freedesktop.login1.Manager"
	PrepareForSleep = "PrepareForSleep"
)

// ResumeHandler is called after the system wakes up.
type ResumeHandler func()

// SleepMonitor reports resume-from-suspend using logind's PrepareForSleep
// signal. The handler runs on the monitor goroutine.
type SleepMonitor struct {
	conn   *dbus.Conn
	logger *slog.Logger
	sigCh  chan *dbus.Signal

	mu       sync.Mutex
	onResume ResumeHandler
}

// NewSleepMonitor creates a new sleep monitor.
func NewSleepMonitor(logger *slog.Logger) *SleepMonitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &SleepMonitor{
		logger: logger,
	}
}

// SetResumeHandler sets the callback for resume events.
func (m *SleepMonitor) SetResumeHandler(handler ResumeHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onResume = handler
}

// Start connects to the system bus and subscribes to PrepareForSleep.
func (m *SleepMonitor) Start() error {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return fmt.Errorf("failed to connect to system bus: %w", err)
	}

	err = conn.AddMatchSignal(
		dbus.WithMatchObjectPath(LogindPath),
		dbus.WithMatchInterface(LogindInterface),
		dbus.WithMatchMember(PrepareForSleep),
	)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to subscribe to %s: %w", PrepareForSleep, err)
	}

	m.conn = conn
	m.sigCh = make(chan *dbus.Signal, 8)
	conn.Signal(m.sigCh)

	go m.processSignals()

	m.logger.Debug("sleep monitor started")
	return nil
}

// Stop disconnects from the system bus. Closing the connection also
// closes the signal channel, which ends processSignals.
func (m *SleepMonitor) Stop() error {
	if m.conn == nil {
		return nil
	}
	err := m.conn.Close()
	m.conn = nil
	return err
}

func (m *SleepMonitor) processSignals() {
	// the channel is closed when the connection goes away
	for sig := range m.sigCh {
		if !isResume(sig) {
			continue
		}

		m.logger.Info("system resumed from sleep")

		m.mu.Lock()
		handler := m.onResume
		m.mu.Unlock()
		if handler != nil {
			handler()
		}
	}
}

// isResume reports whether sig is PrepareForSleep(false), which logind
// emits once the system is running again.
func isResume(sig *dbus.Signal) bool {
	if sig == nil || sig.Name != LogindInterface+"."+PrepareForSleep {
		return false
	}
	if len(sig.Body) < 1 {
		return false
	}
	sleeping, ok := sig.Body[0].(bool)
	return ok && !sleeping
}
