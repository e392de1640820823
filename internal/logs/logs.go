package logs

import (
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

const logFile = "netscope.log"

var (
	runOnce sync.Once
	runID   string
)

// RunID identifies a single invocation; every file log record carries it.
func RunID() string {
	runOnce.Do(func() {
		runID = uuid.NewString()
	})
	return runID
}

// ConsoleLogger returns a tinted logger on stderr and installs it as the
// slog default.
func ConsoleLogger() *slog.Logger {
	w := os.Stderr

	logger := slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
			NoColor:    !isatty.IsTerminal(w.Fd()),
		}),
	)
	slog.SetDefault(logger)
	return logger
}

// FileLogger returns a JSON logger appending debug records to netscope.log,
// tagged with the run id. The caller owns closing the returned file.
func FileLogger() (*slog.Logger, *os.File, error) {
	f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}

	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug,
	}
	logger := slog.New(slog.NewJSONHandler(f, opts)).With("run_id", RunID())
	return logger, f, nil
}
