package config

import (
	"fmt"

	"identgen/internal/lang"
	"identgen/internal/namegen"
)

// File is the on-disk configuration.
type File struct {
	Version     string      `yaml:"version"`
	Language    string      `yaml:"language" env:"IDENTGEN_LANGUAGE"`
	Policy      string      `yaml:"policy" env:"IDENTGEN_POLICY"`
	Dictionary  []string    `yaml:"dictionary,omitempty" env:"IDENTGEN_DICTIONARY" envSeparator:","`
	Hexadecimal Hexadecimal `yaml:"hexadecimal"`
	Reserved    []string    `yaml:"reserved,omitempty" env:"IDENTGEN_RESERVED" envSeparator:","`
	Preserved   []string    `yaml:"preserved,omitempty" env:"IDENTGEN_PRESERVED" envSeparator:","`
}

// Hexadecimal configures the hexadecimal strategy.
type Hexadecimal struct {
	Prefix string `yaml:"prefix" env:"IDENTGEN_HEX_PREFIX"`
	Base   uint64 `yaml:"base,omitempty" env:"IDENTGEN_HEX_BASE"`
}

// Default returns the built-in configuration.
func Default() *File {
	f := &File{}
	applyDefaults(f)

	return f
}

// GenerationPolicy returns the parsed policy. Unknown names yield the zero
// Policy, which a Selector resolves like namegen.DefaultPolicy.
func (f *File) GenerationPolicy() namegen.Policy {
	p, _ := namegen.ParsePolicy(f.Policy)
	return p
}

// TargetLanguage returns the configured language with the extra reserved
// names merged in.
func (f *File) TargetLanguage() (*lang.Language, error) {
	l, err := lang.Lookup(f.Language)
	if err != nil {
		return nil, err
	}

	return l.WithReserved(f.Reserved...), nil
}

// SelectorOptions converts the configuration into namegen options.
func (f *File) SelectorOptions() ([]namegen.Option, error) {
	l, err := f.TargetLanguage()
	if err != nil {
		return nil, fmt.Errorf("config language: %w", err)
	}

	return []namegen.Option{
		namegen.WithLanguage(l),
		namegen.WithDictionary(f.Dictionary...),
		namegen.WithHexPrefix(f.Hexadecimal.Prefix),
		namegen.WithHexBase(f.Hexadecimal.Base),
		namegen.WithPreserved(f.Preserved...),
	}, nil
}
