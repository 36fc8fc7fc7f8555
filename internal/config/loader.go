package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"identgen/internal/lang"
	"identgen/internal/namegen"
)

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Language == "" {
		f.Language = lang.NameJavaScript
	}

	if f.Policy == "" {
		f.Policy = namegen.DefaultPolicy.String()
	}

	if f.Hexadecimal.Prefix == "" {
		f.Hexadecimal.Prefix = namegen.DefaultHexPrefix
	}
}

// ApplyEnv overrides f with IDENTGEN_* variables. A nil environ reads the
// process environment. Unset variables leave the current values untouched.
func ApplyEnv(f *File, environ map[string]string) error {
	if err := env.ParseWithOptions(f, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("failed to apply environment: %w", err)
	}

	applyDefaults(f)

	return nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
