package config

import (
	"os"
	"path/filepath"
)

// Paths holds all the file system paths used by the application
type Paths struct {
	Home       string // ~/.termgrid
	ConfigPath string // ~/.termgrid/config.json
	LogsRoot   string // ~/.termgrid/logs
}

// DefaultPaths returns the default paths configuration. TERMGRID_HOME
// overrides the home directory.
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("TERMGRID_HOME")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		root = filepath.Join(home, ".termgrid")
	}
	return PathsAt(root), nil
}

// PathsAt returns the paths rooted at dir.
func PathsAt(dir string) *Paths {
	return &Paths{
		Home:       dir,
		ConfigPath: filepath.Join(dir, "config.json"),
		LogsRoot:   filepath.Join(dir, "logs"),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Home, p.LogsRoot} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
