package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the CLI settings, loadable from a TOML file.
type Config struct {
	// Backend selects the persistence backend: "file", "sqlite", or "memory".
	Backend string `toml:"backend"`
	// StateDir is where the file backend keeps its session files.
	StateDir string `toml:"state_dir"`
	// Database is the sqlite database path.
	Database string `toml:"database"`
	// Renderer is the default preview renderer name.
	Renderer string `toml:"renderer"`
	// Template preselects a catalog template for fresh sessions.
	Template string `toml:"template"`
	// SaveDelayMS overrides the debounce applied to form edits before they
	// persist. Zero keeps the library default.
	SaveDelayMS int `toml:"save_delay_ms"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	base := stateBaseDir()
	return Config{
		Backend:  "file",
		StateDir: filepath.Join(base, "session"),
		Database: filepath.Join(base, "biodata.db"),
		Renderer: "html",
	}
}

// LoadConfig reads the TOML file at path, layering it over the defaults. An
// empty path means the default location; a missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if path == "" {
		path = filepath.Join(stateBaseDir(), "config.toml")
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %q: %w", path, err)
	}
	return cfg, nil
}

func stateBaseDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "biodata")
	}
	return ".biodata"
}
