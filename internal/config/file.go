package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/sqve/gx/internal/fs"
)

const FileName = ".gx.toml"

// FileConfig mirrors Config for the repository-level TOML file. Pointer
// fields distinguish "unset" from a zero value.
type FileConfig struct {
	Plain   *bool `toml:"plain,omitempty" comment:"Disable colors and symbols"`
	Debug   *bool `toml:"debug,omitempty" comment:"Print every git invocation"`
	Confirm *bool `toml:"confirm,omitempty" comment:"Ask before reset-hard, sync, push-force and cleanup --untracked"`

	Push struct {
		ForceWithLease *bool `toml:"force_with_lease,omitempty" comment:"push-force uses --force-with-lease instead of --force"`
	} `toml:"push"`

	Merge struct {
		NoFF *bool `toml:"no_ff,omitempty" comment:"merge and merge-to always create a merge commit"`
	} `toml:"merge"`

	Git struct {
		Timeout string `toml:"timeout,omitempty" comment:"Per-command timeout such as \"2m\"; 0s disables it"`
	} `toml:"git"`
}

// LoadFromFile returns empty config if file missing, error if file invalid.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func LoadFromFile(dir string) (FileConfig, error) {
	var cfg FileConfig
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path) //nolint:gosec // Path is the repository root plus a fixed name
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return cfg, fmt.Errorf("unknown keys in %s:\n%s", path, strictErr.String())
		}
		return cfg, err
	}

	if cfg.Git.Timeout != "" {
		if _, err := time.ParseDuration(cfg.Git.Timeout); err != nil {
			return cfg, fmt.Errorf("git.timeout: %w", err)
		}
	}

	return cfg, nil
}

func FileConfigExists(dir string) bool {
	path := filepath.Join(dir, FileName)
	_, err := os.Stat(path)
	return err == nil
}

// settings flattens the set fields into a nested map for viper.
func (f FileConfig) settings() map[string]any {
	settings := make(map[string]any)
	setBool := func(key string, value *bool) {
		if value != nil {
			setNested(settings, key, *value)
		}
	}

	setBool("plain", f.Plain)
	setBool("debug", f.Debug)
	setBool("confirm", f.Confirm)
	setBool("push.force_with_lease", f.Push.ForceWithLease)
	setBool("merge.no_ff", f.Merge.NoFF)
	if f.Git.Timeout != "" {
		setNested(settings, "git.timeout", f.Git.Timeout)
	}

	return settings
}

// Template returns a FileConfig holding cfg's values, used for --init.
func Template(cfg *Config) FileConfig {
	var f FileConfig
	f.Plain = &cfg.Plain
	f.Debug = &cfg.Debug
	f.Confirm = &cfg.Confirm
	f.Push.ForceWithLease = &cfg.Push.ForceWithLease
	f.Merge.NoFF = &cfg.Merge.NoFF
	f.Git.Timeout = cfg.Git.Timeout.String()
	return f
}

// WriteTemplateToFile writes a commented config file into dir. It refuses
// to overwrite an existing file.
func WriteTemplateToFile(dir string, cfg *Config) (string, error) {
	path := filepath.Join(dir, FileName)

	data, err := toml.Marshal(Template(cfg))
	if err != nil {
		return path, err
	}

	return path, fs.WriteFileExclusive(path, data, fs.FileGit)
}

func setNested(m map[string]any, key string, value any) {
	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		next, ok := m[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[part] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value
}
