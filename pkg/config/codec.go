package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Supported encodings for Marshal.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

const yamlIndent = 2

// Marshal encodes the configuration as YAML or JSON. JSON output uses the
// YAML key names, so the loader reads either.
func (c *Config) Marshal(format string) ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	switch format {
	case "", FormatYAML:
		return buf.Bytes(), nil
	case FormatJSON:
		var generic map[string]any
		if err := yaml.Unmarshal(buf.Bytes(), &generic); err != nil {
			return nil, fmt.Errorf("re-read config: %w", err)
		}
		out, err := json.MarshalIndent(generic, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode config as json: %w", err)
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}
}

// Overlay decodes data on top of a copy of c. Keys present in data replace
// the copied values, false booleans and empty lists included; absent keys
// keep them. A nil receiver overlays onto the zero Config.
func (c *Config) Overlay(data []byte) (*Config, error) {
	out := c.Clone()
	if out == nil {
		out = &Config{}
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return out, nil
}

// Parse decodes a configuration file. Fields absent from data keep their
// zero value; defaults are applied by the loader.
func Parse(data []byte) (*Config, error) {
	var zero *Config
	return zero.Overlay(data)
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	out := *c
	if c.Ignore != nil {
		out.Ignore = append([]string(nil), c.Ignore...)
	}
	return &out
}
