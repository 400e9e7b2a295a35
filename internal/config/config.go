package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/andyrewlee/termgrid/internal/logging"
	"github.com/andyrewlee/termgrid/internal/termbuf"
)

// BufferSettings sizes the terminal buffer.
type BufferSettings struct {
	Width         int `json:"width"`
	Height        int `json:"height"`
	MaxScrollback int `json:"max_scrollback"`
	TabWidth      int `json:"tab_width"`
}

// LogSettings controls the file logger.
type LogSettings struct {
	Level string `json:"level"`
}

// RenderSettings holds the attributes used for text written by drivers.
type RenderSettings struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// PerfSettings toggles perf collection.
type PerfSettings struct {
	Enabled bool `json:"enabled"`
}

// Config holds the application configuration
type Config struct {
	Paths  *Paths
	Buffer BufferSettings
	Log    LogSettings
	Render RenderSettings
	Perf   PerfSettings
}

// DefaultConfig returns the default configuration
func DefaultConfig() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return defaultConfigAt(paths), nil
}

func defaultConfigAt(paths *Paths) *Config {
	return &Config{
		Paths: paths,
		Buffer: BufferSettings{
			Width:         80,
			Height:        24,
			MaxScrollback: 1000,
			TabWidth:      8,
		},
		Log: LogSettings{Level: "info"},
		Render: RenderSettings{
			Foreground: termbuf.ColorDefault.String(),
			Background: termbuf.ColorDefault.String(),
		},
	}
}

// ValidationError names the setting that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// MaxDimension bounds buffer width and height; PTY window sizes are
// 16-bit.
const MaxDimension = math.MaxUint16

// Validate reports settings that cannot be used to build a buffer. Each
// problem is a *ValidationError; all are joined.
func (c *Config) Validate() error {
	var errs []error
	if c.Buffer.Width < 1 || c.Buffer.Width > MaxDimension {
		errs = append(errs, invalid("buffer.width", "must be between 1 and %d, got %d", MaxDimension, c.Buffer.Width))
	}
	if c.Buffer.Height < 1 || c.Buffer.Height > MaxDimension {
		errs = append(errs, invalid("buffer.height", "must be between 1 and %d, got %d", MaxDimension, c.Buffer.Height))
	}
	if c.Buffer.MaxScrollback < 0 {
		errs = append(errs, invalid("buffer.max_scrollback", "must not be negative, got %d", c.Buffer.MaxScrollback))
	}
	if c.Buffer.TabWidth < 1 {
		errs = append(errs, invalid("buffer.tab_width", "must be positive, got %d", c.Buffer.TabWidth))
	}
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		errs = append(errs, invalid("log.level", "unknown level %q", c.Log.Level))
	}
	if _, ok := termbuf.ParseColor(c.Render.Foreground); !ok {
		errs = append(errs, invalid("render.foreground", "unknown color %q", c.Render.Foreground))
	}
	if _, ok := termbuf.ParseColor(c.Render.Background); !ok {
		errs = append(errs, invalid("render.background", "unknown color %q", c.Render.Background))
	}
	return errors.Join(errs...)
}

// LogLevel returns the parsed log level, defaulting to info.
func (c *Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Log.Level)
	return level
}

// Attributes returns the configured write attributes.
func (c *Config) Attributes() termbuf.Attributes {
	fg, _ := termbuf.ParseColor(c.Render.Foreground)
	bg, _ := termbuf.ParseColor(c.Render.Background)
	return termbuf.Attributes{Fg: fg, Bg: bg}
}

// NewBuffer builds a buffer sized by the config with its write attributes
// applied.
func (c *Config) NewBuffer() *termbuf.Buffer {
	b := termbuf.New(c.Buffer.Width, c.Buffer.Height, c.Buffer.MaxScrollback)
	b.SetAttributes(c.Attributes())
	return b
}
