// Package debug provides development logging for the phonebook CLI.
//
// Logging is off until Enable is called; every helper is a no-op until then,
// so callers never need to check IsEnabled first.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

const timeLayout = "15:04:05.000"

var (
	enabled   bool
	out       io.WriteCloser
	mu        sync.Mutex
	logPath   string
	sessionID string
)

// Enable turns on debug logging to the specified file.
func Enable(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if enabled {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	//nolint:gosec // G304: path comes from the XDG data directory or a flag.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	start(f, path)
	return nil
}

// EnableWriter turns on debug logging to w. Used by tests.
func EnableWriter(w io.WriteCloser) {
	mu.Lock()
	defer mu.Unlock()

	if enabled {
		return
	}
	start(w, "")
}

// start writes the session header directly (can't call Log() - would deadlock).
func start(w io.WriteCloser, path string) {
	out = w
	logPath = path
	sessionID = uuid.New().String()
	enabled = true

	ts := time.Now().Format(timeLayout)
	fmt.Fprintf(out, "[%s] === phonebook debug session %s ===\n", ts, sessionID)
	fmt.Fprintf(out, "[%s] Time: %s\n", ts, time.Now().Format(time.RFC3339))
	if path != "" {
		fmt.Fprintf(out, "[%s] Log file: %s\n", ts, path)
	}
	if f, ok := out.(*os.File); ok {
		_ = f.Sync()
	}
}

// Disable turns off debug logging and closes the output.
func Disable() {
	mu.Lock()
	defer mu.Unlock()

	if !enabled {
		return
	}
	if out != nil {
		_ = out.Close()
		out = nil
	}
	enabled = false
}

// IsEnabled returns whether debug logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// SessionID returns the id written in the current log header.
func SessionID() string {
	mu.Lock()
	defer mu.Unlock()
	return sessionID
}

// LogPath returns the path to the log file.
func LogPath() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Log writes a debug message if logging is enabled.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || out == nil {
		return
	}

	fmt.Fprintf(out, "[%s] %s\n", time.Now().Format(timeLayout), fmt.Sprintf(format, args...))
	if f, ok := out.(*os.File); ok {
		_ = f.Sync() // Flush immediately for real-time viewing
	}
}

// Event logs an event with component context.
func Event(component, eventType, details string) {
	Log("[%s] %s: %s", component, eventType, details)
}

// Error logs an error with context.
func Error(component string, err error, context string) {
	Log("[%s] ERROR: %s - %v", component, context, err)
}
