package segment

import (
	"errors"
	"fmt"
	"io"

	"github.com/dlclark/regexp2"
	"github.com/npillmayer/tokinfer"
	"github.com/npillmayer/tokinfer/delimit"
	"github.com/npillmayer/tokinfer/pattern"
	"gopkg.in/yaml.v3"
)

// Config configures an Analyzer.
type Config struct {
	// Patterns selected for matching tokens; delimiters are inferred from the
	// material between tokens.
	Patterns []pattern.Name `yaml:"patterns"`
	// Character class enclosing in-word separators, e.g. "[0-9a-zA-Z]".
	Enclosing string `yaml:"enclosing"`
	// Patterns selected for splitting tokens into runs of letters or digits.
	WordPatterns []pattern.Name `yaml:"word_patterns"`
	// Look up words case-insensitively.
	FoldCase bool `yaml:"fold_case"`
}

// DefaultConfig returns the configuration used if clients do not provide
// one.
func DefaultConfig() Config {
	return Config{
		Patterns:  append([]pattern.Name(nil), pattern.DefaultSelection...),
		Enclosing: delimit.DefaultEnclosing,
		WordPatterns: []pattern.Name{
			pattern.Compose(pattern.Upper, pattern.Lower),
			pattern.Compose(pattern.Lower),
			pattern.Compose(pattern.Upper),
			pattern.Compose(pattern.Digit),
		},
		FoldCase: true,
	}
}

// LoadConfig reads a YAML configuration. Fields missing in the YAML document
// are taken from DefaultConfig(). Unknown fields are an error.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return DefaultConfig(), fmt.Errorf("segment: reading configuration: %w", err)
	}
	return cfg, nil
}

// validate checks that all pattern names are known to set and that the
// enclosing class compiles.
func (cfg Config) validate(set *pattern.Set) error {
	if len(cfg.Patterns) == 0 {
		return fmt.Errorf("%w: no token patterns selected", tokinfer.ErrInvalidArgument)
	}
	if len(cfg.WordPatterns) == 0 {
		return fmt.Errorf("%w: no word patterns selected", tokinfer.ErrInvalidArgument)
	}
	for _, names := range [][]pattern.Name{cfg.Patterns, cfg.WordPatterns} {
		for _, name := range names {
			if _, err := set.Lookup(name); err != nil {
				return err
			}
		}
	}
	if cfg.Enclosing != "" {
		if _, err := regexp2.Compile(cfg.Enclosing, regexp2.None); err != nil {
			return fmt.Errorf("%w: enclosing class %q: %v", tokinfer.ErrInvalidArgument,
				cfg.Enclosing, err)
		}
	}
	return nil
}

// Option configures an Analyzer.
type Option func(*Config)

// WithConfig replaces the configuration as a whole.
func WithConfig(c Config) Option {
	return func(cfg *Config) {
		*cfg = c
	}
}

// WithPatterns selects the patterns for matching tokens.
func WithPatterns(names ...pattern.Name) Option {
	return func(cfg *Config) {
		cfg.Patterns = names
	}
}

// WithWordPatterns selects the patterns for splitting tokens into runs.
func WithWordPatterns(names ...pattern.Name) Option {
	return func(cfg *Config) {
		cfg.WordPatterns = names
	}
}

// WithEnclosing sets the character class enclosing in-word separators.
func WithEnclosing(class string) Option {
	return func(cfg *Config) {
		cfg.Enclosing = class
	}
}

// WithCaseFolding switches case-insensitive word lookup on or off.
func WithCaseFolding(on bool) Option {
	return func(cfg *Config) {
		cfg.FoldCase = on
	}
}
