package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable that enables logging at startup.
const EnvVar = "FLEX_DEBUG"

var (
	logFile *os.File
	logger  *slog.Logger
	envOnce sync.Once
	mu      sync.Mutex
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	logFile = f
	logger = newLogger(f)
	return nil
}

// SetOutput routes debug messages to w. A nil writer disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	if w != nil {
		logger = newLogger(w)
	}
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Enabled reports whether messages are currently written anywhere.
func Enabled() bool {
	initFromEnv()
	mu.Lock()
	defer mu.Unlock()
	return logger != nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	initFromEnv()
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		return
	}
	logger.Debug(fmt.Sprintf(format, args...))
	if logFile != nil {
		_ = logFile.Sync()
	}
}

// initFromEnv opens the file named by EnvVar the first time logging is used.
func initFromEnv() {
	envOnce.Do(func() {
		path := os.Getenv(EnvVar)
		if path == "" {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if logger != nil {
			return
		}
		if err := initLocked(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", EnvVar, err)
		}
	})
}
