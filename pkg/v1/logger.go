package v1

import (
	"fmt"
	"log"
	"os"
)

// LogType defines the category of the log.
type LogType string

const (
	LogTypeSuite  LogType = "Suite"
	LogTypeCase   LogType = "Case"
	LogTypeAssert LogType = "Assert"
	LogTypeError  LogType = "Error"
	LogTypeInfo   LogType = "Info"
)

// LogEntry represents a single log event.
type LogEntry struct {
	Type    LogType
	Summary string
	Detail  string
}

// LogHandler is a function that handles log entries (e.g., UI updater or
// remote sink).
type LogHandler func(entry LogEntry)

// RegisterLogHandler adds a handler that receives every log entry of this run.
func (r *Runner) RegisterLogHandler(h LogHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logHandlers = append(r.logHandlers, h)
}

// LogOn opens the run log file. Call it before any suite runs. The returned
// error is informational only: on failure the runner stays usable and file
// output is silently skipped, so callers may ignore it.
func (r *Runner) LogOn(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	r.logFile = f
	return nil
}

// LogOff closes the run log file. Call it after the last suite ends.
func (r *Runner) LogOff() {
	if r.logFile != nil {
		r.logFile.Close()
		r.logFile = nil
	}
}

// logEntry writes one entry to the console, the log file and all registered
// handlers. Output is best effort: without an open log file the console and
// file writes are skipped, and write errors never surface to the run.
func (r *Runner) logEntry(t LogType, summary string, detail string) {
	if r.logFile != nil {
		if detail != "" {
			log.Printf("[%s] %s - %s", t, summary, detail)
			fmt.Fprintf(r.logFile, "[%s] %s - %s\n", t, summary, detail)
		} else {
			log.Printf("[%s] %s", t, summary)
			fmt.Fprintf(r.logFile, "[%s] %s\n", t, summary)
		}
	}

	entry := LogEntry{
		Type:    t,
		Summary: summary,
		Detail:  detail,
	}

	r.mu.Lock()
	handlers := r.logHandlers
	r.mu.Unlock()
	for _, h := range handlers {
		h(entry)
	}
}

// logf is a helper to log formatted simple info.
func (r *Runner) logf(t LogType, format string, v ...interface{}) {
	r.logEntry(t, fmt.Sprintf(format, v...), "")
}
