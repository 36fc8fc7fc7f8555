package namegen

import (
	"log/slog"

	"identgen/internal/lang"
)

// Default hexadecimal settings.
const (
	DefaultHexPrefix = "_0x"
	DefaultHexBase   = 0
)

// Options configures the strategies a Selector can construct.
type Options struct {
	// Language supplies the identifier grammar and reserved words.
	Language *lang.Language
	// Dictionary is the ordered word list used by PolicyDictionary.
	Dictionary []string
	// HexPrefix is prepended to every hexadecimal name.
	HexPrefix string
	// HexBase is the counter value before the first hexadecimal name.
	HexBase uint64
	// Preserved names are registered with Preserve on the resolved generator.
	Preserved []string

	logger    *slog.Logger
	factories map[Policy]Factory
}

// Option configures a Selector.
type Option func(*Options)

// WithLanguage sets the target language. Nil is ignored.
func WithLanguage(l *lang.Language) Option {
	return func(o *Options) {
		if l != nil {
			o.Language = l
		}
	}
}

// WithDictionary sets the word list used by PolicyDictionary.
func WithDictionary(words ...string) Option {
	return func(o *Options) {
		o.Dictionary = append([]string(nil), words...)
	}
}

// WithHexPrefix sets the prefix of hexadecimal names.
func WithHexPrefix(prefix string) Option {
	return func(o *Options) { o.HexPrefix = prefix }
}

// WithHexBase sets the counter value before the first hexadecimal name.
func WithHexBase(base uint64) Option {
	return func(o *Options) { o.HexBase = base }
}

// WithPreserved registers names the resolved generator must never return.
func WithPreserved(names ...string) Option {
	return func(o *Options) {
		o.Preserved = append(o.Preserved, names...)
	}
}

// WithLogger sets the logger used by the Selector. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFactory registers the constructor used for policy, replacing the
// built-in one. Registering a factory for an unknown policy makes that policy
// resolvable instead of falling back to DefaultPolicy.
func WithFactory(policy Policy, f Factory) Option {
	return func(o *Options) {
		if f != nil {
			o.factories[policy] = f
		}
	}
}

func defaultOptions() *Options {
	return &Options{
		Language:  lang.JavaScript(),
		HexPrefix: DefaultHexPrefix,
		HexBase:   DefaultHexBase,
		logger:    slog.Default(),
		factories: map[Policy]Factory{
			PolicyDictionary:  newDictionaryFactory,
			PolicyHexadecimal: newHexadecimalFactory,
			PolicyMangled:     newMangledFactory,
		},
	}
}
