package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// fileSettings mirrors config.json. Pointer fields distinguish "absent" from
// zero so a partial file only overrides what it names.
type fileSettings struct {
	Buffer struct {
		Width         *int `json:"width"`
		Height        *int `json:"height"`
		MaxScrollback *int `json:"max_scrollback"`
		TabWidth      *int `json:"tab_width"`
	} `json:"buffer"`
	Log struct {
		Level *string `json:"level"`
	} `json:"log"`
	Render struct {
		Foreground *string `json:"foreground"`
		Background *string `json:"background"`
	} `json:"render"`
	Perf struct {
		Enabled *bool `json:"enabled"`
	} `json:"perf"`
}

// Load loads config overrides from the config file if present.
// TERMGRID_CONFIG names an alternative file.
func Load() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	if alt := os.Getenv("TERMGRID_CONFIG"); alt != "" {
		paths.ConfigPath = alt
	}
	return LoadFrom(paths)
}

// LoadFrom overlays paths.ConfigPath onto the defaults. A missing file is
// not an error.
func LoadFrom(paths *Paths) (*Config, error) {
	cfg := defaultConfigAt(paths)

	data, err := os.ReadFile(paths.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var raw fileSettings
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	applyFileSettings(cfg, raw)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFileSettings(cfg *Config, raw fileSettings) {
	if raw.Buffer.Width != nil {
		cfg.Buffer.Width = *raw.Buffer.Width
	}
	if raw.Buffer.Height != nil {
		cfg.Buffer.Height = *raw.Buffer.Height
	}
	if raw.Buffer.MaxScrollback != nil {
		cfg.Buffer.MaxScrollback = *raw.Buffer.MaxScrollback
	}
	if raw.Buffer.TabWidth != nil {
		cfg.Buffer.TabWidth = *raw.Buffer.TabWidth
	}
	if raw.Log.Level != nil {
		cfg.Log.Level = *raw.Log.Level
	}
	if raw.Render.Foreground != nil {
		cfg.Render.Foreground = *raw.Render.Foreground
	}
	if raw.Render.Background != nil {
		cfg.Render.Background = *raw.Render.Background
	}
	if raw.Perf.Enabled != nil {
		cfg.Perf.Enabled = *raw.Perf.Enabled
	}
}

// Save writes the config to its config file, keeping unknown top-level keys
// already present in the file.
func (c *Config) Save() error {
	if c == nil || c.Paths == nil {
		return nil
	}
	path := c.Paths.ConfigPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	payload := map[string]any{}
	if existing, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(existing, &payload)
	}
	payload["buffer"] = map[string]any{
		"width":          c.Buffer.Width,
		"height":         c.Buffer.Height,
		"max_scrollback": c.Buffer.MaxScrollback,
		"tab_width":      c.Buffer.TabWidth,
	}
	payload["log"] = map[string]any{"level": c.Log.Level}
	payload["render"] = map[string]any{
		"foreground": c.Render.Foreground,
		"background": c.Render.Background,
	}
	payload["perf"] = map[string]any{"enabled": c.Perf.Enabled}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
