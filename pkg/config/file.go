package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// File is the on-disk configuration, read from
// ~/.config/cterm/config.toml when present. Flags override whatever
// the file provides.
type File struct {
	TimeoutMs int      `toml:"timeout_ms"`
	Exclude   []string `toml:"exclude"`
	Restore   *bool    `toml:"restore"`
	Verbose   bool     `toml:"verbose"`
}

// DefaultTimeout bounds a single osascript run when neither the config
// file nor the flags say otherwise.
const DefaultTimeout = 10 * time.Second

// Path returns the default config file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("os.UserConfigDir(): %s", err)
	}

	return filepath.Join(dir, "cterm", "config.toml"), nil
}

// Load reads the config file at path. A missing file is not an error
// and yields an empty File.
func Load(path string) (*File, error) {
	var f File

	if _, err := toml.DecodeFile(path, &f); err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("parsing %s: %s", path, err)
	}

	return &f, nil
}

// Fork turns the file contents into a session config, filling every
// unset field with its default.
func (f *File) Fork() *Fork {
	cfg := &Fork{
		Timeout:  DefaultTimeout,
		Excludes: f.Exclude,
		Restore:  true,
		Verbose:  f.Verbose,
	}

	if f.TimeoutMs > 0 {
		cfg.Timeout = time.Duration(f.TimeoutMs) * time.Millisecond
	}
	if f.Restore != nil {
		cfg.Restore = *f.Restore
	}

	return cfg
}
