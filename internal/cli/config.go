package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// fileConfig holds convert defaults loaded from a TOML file.
//
// Example:
//
//	mode = "plain"
//	verbose = true
type fileConfig struct {
	Mode    string `toml:"mode"`
	Verbose bool   `toml:"verbose"`
}

// loadConfig parses a TOML config file. Unknown keys are rejected so typos
// surface instead of being silently ignored.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fileConfig{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Mode != "" && cfg.Mode != modePlain && cfg.Mode != modeNetwork {
		return fileConfig{}, fmt.Errorf("config %s: mode must be %q or %q", path, modePlain, modeNetwork)
	}

	return cfg, nil
}
