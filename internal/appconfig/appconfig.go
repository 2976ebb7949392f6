// Package appconfig loads the YAML-backed device configuration core.Device
// initializers read through core.ConfigSource. The on-disk shape mirrors
// the renderer's own scoping: a top-level map keyed by device name (the
// empty string "" is the global fallback section), each holding named
// sections of free-form key/value pairs.
package appconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is a parsed configuration document. The zero value has no entries
// and behaves like an always-empty core.ConfigSource.
type Config struct {
	devices map[string]map[string]map[string]string
}

// Load reads and parses a YAML configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("appconfig: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document already in memory, the shape used by tests
// and by callers embedding configuration rather than reading it from disk.
func Parse(data []byte) (*Config, error) {
	var raw map[string]map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("appconfig: parse: %w", err)
	}

	c := &Config{devices: make(map[string]map[string]map[string]string, len(raw))}
	for device, sections := range raw {
		secs := make(map[string]map[string]string, len(sections))
		for section, kv := range sections {
			entries := make(map[string]string, len(kv))
			for k, v := range kv {
				entries[k] = fmt.Sprint(v)
			}
			secs[section] = entries
		}
		c.devices[device] = secs
	}
	return c, nil
}

// lookup checks the device-scoped section first, then falls back to the
// global "" device, the same precedence the renderer expects from a
// per-device override layered on top of shared defaults.
func (c *Config) lookup(device, section, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	for _, dev := range []string{device, ""} {
		if secs, ok := c.devices[dev]; ok {
			if kv, ok := secs[section]; ok {
				if v, ok := kv[key]; ok {
					return v, true
				}
			}
		}
	}
	return "", false
}

// GetStr implements core.ConfigSource.
func (c *Config) GetStr(device, section, key string) (string, bool) {
	return c.lookup(device, section, key)
}

// GetBool implements core.ConfigSource. "true"/"1"/"yes" parse true,
// anything else present parses false; an absent key reports !ok.
func (c *Config) GetBool(device, section, key string) (bool, bool) {
	v, ok := c.lookup(device, section, key)
	if !ok {
		return false, false
	}
	switch v {
	case "true", "1", "yes":
		return true, true
	default:
		return false, true
	}
}

// GetInt implements core.ConfigSource. A malformed integer value reports
// !ok rather than a zero, so callers can distinguish "absent" from "bad".
func (c *Config) GetInt(device, section, key string) (int, bool) {
	v, ok := c.lookup(device, section, key)
	if !ok {
		return 0, false
	}
	n := 0
	neg := false
	for i, r := range v {
		if i == 0 && r == '-' {
			neg = true
			continue
		}
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}
