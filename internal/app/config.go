package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"github.com/BurntSushi/toml"

	apperrors "github.com/shhac/aura/internal/errors"
	"github.com/shhac/aura/internal/tooltip/geometry"
	"github.com/shhac/aura/internal/tooltip/trigger"
)

// Preference keys shared with the preferences dialog.
const (
	PrefHoverDelay    = "hoverDelayMs"
	PrefReducedMotion = "reducedMotion"
	PrefTouchMode     = "touchMode"
	PrefTheme         = "appTheme"
)

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and additional diagnostics
	Debug bool

	// StoragePath is the directory where the dashboard snapshot is cached
	StoragePath string

	// LogDir is where aura.log is written; empty means the platform default
	LogDir string

	// APIURL is the base address of the scoring backend
	APIURL string

	// HoverDelay is how long the pointer must rest on a trigger before its
	// tooltip opens
	HoverDelay time.Duration

	// ReducedMotion disables tooltip fade and move transitions
	ReducedMotion bool

	// TouchMode shows close buttons and treats taps as toggles
	TouchMode bool

	// Side is the default placement for tooltips
	Side geometry.Side

	// ConfigFile is the TOML file that was loaded, if any
	ConfigFile string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:       false,
		StoragePath: "", // Will use DefaultStoragePath() from storage package
		APIURL:      "http://localhost:8000",
		HoverDelay:  trigger.DefaultDelay,
		Side:        geometry.SideTop,
	}
}

// fileConfig is the on-disk shape. Pointer fields distinguish "unset" from
// zero values so a file only overrides what it names.
type fileConfig struct {
	Debug         *bool   `toml:"debug"`
	StoragePath   *string `toml:"storage_path"`
	LogDir        *string `toml:"log_dir"`
	APIURL        *string `toml:"api_url"`
	HoverDelay    *string `toml:"hover_delay"`
	ReducedMotion *bool   `toml:"reduced_motion"`
	TouchMode     *bool   `toml:"touch"`
	Side          *string `toml:"side"`
}

// DefaultConfigPath returns $AURA_CONFIG, or config.toml under the user
// config directory.
func DefaultConfigPath() (string, error) {
	if p := os.Getenv("AURA_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "aura", "config.toml"), nil
}

// LoadConfigFile applies the TOML file at path on top of cfg. A missing file
// is not an error.
func LoadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("%w: parse %s: %w", apperrors.ErrInvalidConfig, path, err)
	}

	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
	if fc.StoragePath != nil {
		cfg.StoragePath = *fc.StoragePath
	}
	if fc.LogDir != nil {
		cfg.LogDir = *fc.LogDir
	}
	if fc.APIURL != nil {
		cfg.APIURL = *fc.APIURL
	}
	if fc.HoverDelay != nil {
		d, err := time.ParseDuration(*fc.HoverDelay)
		if err != nil {
			return fmt.Errorf("%w: hover_delay: %w", apperrors.ErrInvalidConfig, err)
		}
		cfg.HoverDelay = d
	}
	if fc.ReducedMotion != nil {
		cfg.ReducedMotion = *fc.ReducedMotion
	}
	if fc.TouchMode != nil {
		cfg.TouchMode = *fc.TouchMode
	}
	if fc.Side != nil {
		side, err := geometry.ParseSide(*fc.Side)
		if err != nil {
			return fmt.Errorf("%w: side: %w", apperrors.ErrInvalidConfig, err)
		}
		cfg.Side = side
	}

	cfg.ConfigFile = path
	return nil
}

// ApplyEnv overrides cfg from AURA_* environment variables. Unparseable
// values are ignored.
func ApplyEnv(cfg *Config) {
	if debugStr := os.Getenv("AURA_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}

	if storagePath := os.Getenv("AURA_STORAGE_PATH"); storagePath != "" {
		cfg.StoragePath = storagePath
	}

	if logDir := os.Getenv("AURA_LOG_DIR"); logDir != "" {
		cfg.LogDir = logDir
	}

	if apiURL := os.Getenv("AURA_API_URL"); apiURL != "" {
		cfg.APIURL = apiURL
	}

	if delayStr := os.Getenv("AURA_HOVER_DELAY"); delayStr != "" {
		if d, err := time.ParseDuration(delayStr); err == nil {
			cfg.HoverDelay = d
		}
	}

	if rmStr := os.Getenv("AURA_REDUCED_MOTION"); rmStr != "" {
		if rm, err := strconv.ParseBool(rmStr); err == nil {
			cfg.ReducedMotion = rm
		}
	}

	if touchStr := os.Getenv("AURA_TOUCH"); touchStr != "" {
		if touch, err := strconv.ParseBool(touchStr); err == nil {
			cfg.TouchMode = touch
		}
	}
}

// ConfigFromEnv creates a configuration from defaults, the config file and
// environment variables, in that order.
func ConfigFromEnv() (*Config, error) {
	cfg := DefaultConfig()

	path, err := DefaultConfigPath()
	if err == nil {
		if err := LoadConfigFile(cfg, path); err != nil {
			return nil, err
		}
	}

	ApplyEnv(cfg)
	return cfg, cfg.Validate()
}

// ApplyPreferences lets values saved in the preferences dialog override cfg.
func ApplyPreferences(cfg *Config, prefs fyne.Preferences) {
	ms := prefs.IntWithFallback(PrefHoverDelay, int(cfg.HoverDelay/time.Millisecond))
	cfg.HoverDelay = time.Duration(ms) * time.Millisecond
	cfg.ReducedMotion = prefs.BoolWithFallback(PrefReducedMotion, cfg.ReducedMotion)
	cfg.TouchMode = prefs.BoolWithFallback(PrefTouchMode, cfg.TouchMode)
}

// Validate reports configuration values the application cannot run with.
func (c *Config) Validate() error {
	if c.HoverDelay < 0 {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidConfig,
			apperrors.ValidationError{Field: "hover_delay", Message: "must not be negative"})
	}
	if c.Side < geometry.SideTop || c.Side > geometry.SideLeft {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidConfig,
			apperrors.ValidationError{Field: "side", Message: "unknown side " + strconv.Itoa(int(c.Side))})
	}
	return nil
}
