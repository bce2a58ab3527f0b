package likematcher

import "fmt"

// Config controls compilation limits and optional debug behavior.
//
// Example:
//
//	cfg := likematcher.DefaultConfig()
//	cfg.MaxStates = 2000
//	m, err := likematcher.CompileWithConfig("a%b_c", nil, cfg)
type Config struct {
	// MaxStates caps the number of states subset construction may produce
	// for a single pattern's DFA. Exceeding it fails compilation rather
	// than building an unbounded table; a well-formed LIKE pattern never
	// legitimately needs more than a small multiple of its length.
	// Default: 10000
	MaxStates int

	// Debug makes a compiled matcher's String() rendering include its DFA
	// state count, at the cost of retaining the DFA states after
	// compilation. String() works either way. Default: false
	Debug bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxStates: 10000,
		Debug:     false,
	}
}

// Validate reports whether c's fields are within allowed ranges.
func (c Config) Validate() error {
	if c.MaxStates < 1 {
		return &ConfigError{Field: "MaxStates", Message: "must be at least 1"}
	}
	return nil
}

// ConfigError describes an invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("likematcher: invalid config field %s: %s", e.Field, e.Message)
}
