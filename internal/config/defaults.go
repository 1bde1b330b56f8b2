package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

func SetDefaults(v *viper.Viper) {
	// Output defaults.
	v.SetDefault("plain", false)
	v.SetDefault("debug", false)

	// Ask before history-rewriting or file-deleting workflows.
	v.SetDefault("confirm", true)

	// Workflow defaults.
	v.SetDefault("push.force_with_lease", false)
	v.SetDefault("merge.no_ff", false)

	// Git defaults. Zero disables the per-command timeout.
	v.SetDefault("git.timeout", time.Duration(0))
}

func DefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should never happen with defaults, but handle gracefully.
		return &Config{Confirm: true}
	}
	return &cfg
}

// gitConfigKeys maps lowercased git config names to configuration keys. Git
// forbids underscores in variable names, so the git spelling is camelCase.
var gitConfigKeys = map[string]string{
	"gx.plain":               "plain",
	"gx.debug":               "debug",
	"gx.confirm":             "confirm",
	"gx.push.forcewithlease": "push.force_with_lease",
	"gx.merge.noff":          "merge.no_ff",
	"gx.git.timeout":         "git.timeout",
}

// GitConfigPattern is the regexp passed to git config --get-regexp.
const GitConfigPattern = `^gx\.`

func gitConfigSettings(entries map[string]string) map[string]any {
	settings := make(map[string]any)
	for name, value := range entries {
		key, ok := gitConfigKeys[name]
		if !ok {
			continue
		}
		setNested(settings, key, gitConfigValue(key, value))
	}
	return settings
}

func gitConfigValue(key, value string) any {
	if key == "git.timeout" {
		return value
	}
	return isTruthy(value)
}

// isTruthy follows git's boolean parsing: case-insensitive, and a key
// without a value is true.
func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "true", "yes", "on", "1":
		return true
	default:
		return false
	}
}
