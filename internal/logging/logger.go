// Package logging builds the slog loggers used by the desktop app and the CLI.
package logging

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// FileName is the name of the application log inside the log directory.
const FileName = "aura.log"

const (
	defaultMaxSize = 5 << 20
	defaultBackups = 3
)

// Options configures the application log file.
type Options struct {
	// Dir holds the log file. Empty means DefaultDir.
	Dir string
	// Debug lowers the level to DEBUG and records source locations.
	Debug bool
	// MaxSize is the size in bytes at which the file is rotated on open.
	MaxSize int64
	// Backups is how many rotated files are kept.
	Backups int
}

func (o Options) withDefaults() (Options, error) {
	if o.Dir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return o, err
		}
		o.Dir = dir
	}
	if o.MaxSize <= 0 {
		o.MaxSize = defaultMaxSize
	}
	if o.Backups <= 0 {
		o.Backups = defaultBackups
	}
	return o, nil
}

// DefaultDir returns the per-user log directory:
//   - macOS:   ~/Library/Logs/aura
//   - Windows: %LOCALAPPDATA%\aura\Logs
//   - others:  $XDG_STATE_HOME/aura, or ~/.local/state/aura
func DefaultDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locate home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Logs", "aura"), nil
	case "windows":
		base, err := os.UserCacheDir()
		if err != nil {
			return "", fmt.Errorf("locate local app data: %w", err)
		}
		return filepath.Join(base, "aura", "Logs"), nil
	default:
		if state := os.Getenv("XDG_STATE_HOME"); state != "" {
			return filepath.Join(state, "aura"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locate home directory: %w", err)
		}
		return filepath.Join(home, ".local", "state", "aura"), nil
	}
}

// InitLogger opens the application log and returns a JSON logger writing to
// it. Every record carries app=aura. The first record names the file and level
// so a support log shows where a session started.
func InitLogger(opts Options) (*slog.Logger, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory %s: %w", opts.Dir, err)
	}

	path := filepath.Join(opts.Dir, FileName)
	if err := rotate(path, opts.MaxSize, opts.Backups); err != nil {
		return nil, fmt.Errorf("rotate %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:     level,
		AddSource: opts.Debug,
	})).With(slog.String("app", "aura"))

	logger.Info("log opened",
		slog.String("path", path),
		slog.String("log_level", level.String()),
		slog.Int("pid", os.Getpid()),
		slog.String("os", runtime.GOOS),
	)
	return logger, nil
}

// rotate moves path to path.1 once it has reached limit bytes. Older
// backups shift up by one and the backup past keep is dropped.
func rotate(path string, limit int64, keep int) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() < limit {
		return nil
	}

	if err := os.Remove(backupName(path, keep)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	for n := keep - 1; n >= 1; n-- {
		err := os.Rename(backupName(path, n), backupName(path, n+1))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return os.Rename(path, backupName(path, 1))
}

func backupName(path string, n int) string {
	return path + "." + strconv.Itoa(n)
}

// NewConsoleLogger returns a text logger for the command line.
//
//   - quiet:   WARN and above
//   - verbose: DEBUG and above
//   - default: INFO and above
//
// quiet wins when both flags are set.
func NewConsoleLogger(w io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewNopLogger returns a logger that discards everything, for tests.
func NewNopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
