package config

import (
	"strconv"
	"strings"
)

// Setting is one effective configuration value in display form.
type Setting struct {
	Key   string
	Value string
}

// Keys lists the configuration keys in display order.
func Keys() []string {
	return []string{"plain", "debug", "confirm", "push.force_with_lease", "merge.no_ff", "git.timeout"}
}

// IsValidKey reports whether key names a configuration key.
func IsValidKey(key string) bool {
	key = strings.ToLower(key)
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Settings returns every key of c with its value, in Keys order.
func (c *Config) Settings() []Setting {
	values := map[string]string{
		"plain":                 strconv.FormatBool(c.Plain),
		"debug":                 strconv.FormatBool(c.Debug),
		"confirm":               strconv.FormatBool(c.Confirm),
		"push.force_with_lease": strconv.FormatBool(c.Push.ForceWithLease),
		"merge.no_ff":           strconv.FormatBool(c.Merge.NoFF),
		"git.timeout":           c.Git.Timeout.String(),
	}

	settings := make([]Setting, 0, len(values))
	for _, key := range Keys() {
		settings = append(settings, Setting{Key: key, Value: values[key]})
	}
	return settings
}

// Get returns the display value of key.
func (c *Config) Get(key string) (string, bool) {
	key = strings.ToLower(key)
	for _, s := range c.Settings() {
		if s.Key == key {
			return s.Value, true
		}
	}
	return "", false
}
