package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Global holds the process-wide output state read by the logger and styles.
var Global struct {
	Plain bool // Disable colors and symbols
	Debug bool // Enable debug logging
}

// IsPlain returns true if plain output mode is enabled
func IsPlain() bool {
	return Global.Plain
}

// IsDebug returns true if debug logging is enabled
func IsDebug() bool {
	return Global.Debug
}

// Config is the effective configuration for one invocation.
type Config struct {
	Plain   bool `mapstructure:"plain"`
	Debug   bool `mapstructure:"debug"`
	Confirm bool `mapstructure:"confirm"`

	Push struct {
		ForceWithLease bool `mapstructure:"force_with_lease"`
	} `mapstructure:"push"`

	Merge struct {
		NoFF bool `mapstructure:"no_ff"`
	} `mapstructure:"merge"`

	Git struct {
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"git"`
}

// Sources locates the optional layers above the defaults. Zero values skip
// the corresponding layer.
type Sources struct {
	// UserFile is the user-level TOML file.
	UserFile string
	// RepoDir is the directory holding .gx.toml, usually the repository root.
	RepoDir string
	// GitConfig returns gx.* git config entries keyed by lowercased name.
	GitConfig func() (map[string]string, error)
	// Flags are the persistent flags (plain, debug, yes).
	Flags *pflag.FlagSet
	// IsTTY overrides the stdout terminal check.
	IsTTY func() bool
}

// Load builds the configuration from, lowest to highest precedence:
// defaults, user file, repository file, git config, GX_* environment, flags.
func Load(src Sources) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	if src.UserFile != "" {
		if _, err := os.Stat(src.UserFile); err == nil {
			v.SetConfigFile(src.UserFile)
			v.SetConfigType("toml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", src.UserFile, err)
			}
		}
	}

	if src.RepoDir != "" {
		fc, err := LoadFromFile(src.RepoDir)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
		}
		if err := v.MergeConfigMap(fc.settings()); err != nil {
			return nil, err
		}
	}

	if src.GitConfig != nil {
		entries, err := src.GitConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read git config: %w", err)
		}
		if err := v.MergeConfigMap(gitConfigSettings(entries)); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix("GX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if src.Flags != nil {
		if err := bindFlags(v, src.Flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if !plainExplicit(v, src.Flags) {
		isTTY := src.IsTTY
		if isTTY == nil {
			isTTY = StdoutIsTerminal
		}
		cfg.Plain = cfg.Plain || !isTTY()
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Apply publishes the output settings of cfg to Global.
func Apply(cfg *Config) {
	Global.Plain = cfg.Plain
	Global.Debug = cfg.Debug
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, name := range []string{"plain", "debug"} {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(name, f); err != nil {
				return fmt.Errorf("failed to bind --%s: %w", name, err)
			}
		}
	}

	// --yes answers every confirmation up front.
	if f := flags.Lookup("yes"); f != nil && f.Changed && f.Value.String() == "true" {
		v.Set("confirm", false)
	}

	return nil
}

// plainExplicit reports whether plain output was chosen on purpose, in which
// case terminal detection must not override it.
func plainExplicit(v *viper.Viper, flags *pflag.FlagSet) bool {
	if flags != nil {
		if f := flags.Lookup("plain"); f != nil && f.Changed {
			return true
		}
	}
	if _, ok := os.LookupEnv("GX_PLAIN"); ok {
		return true
	}
	return v.InConfig("plain")
}

// StdoutIsTerminal reports whether stdout is attached to a terminal.
func StdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// StdinIsTerminal reports whether stdin is attached to a terminal.
func StdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
