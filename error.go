package likematcher

import (
	"fmt"

	"github.com/martint/likematcher/internal/dfa"
	"github.com/martint/likematcher/internal/pattern"
)

// ErrInvalidEscape is returned (wrapped in a *CompileError) when a pattern's
// escape character is not followed by '%', '_', or itself.
var ErrInvalidEscape = pattern.ErrInvalidEscape

// ErrTooManyStates is returned (wrapped in a *CompileError) when a pattern
// requires more DFA states than Config.MaxStates allows.
var ErrTooManyStates = dfa.ErrTooManyStates

// CompileError reports a failure to compile a LIKE pattern, identifying the
// pattern and, when available, the byte offset of the offending character.
type CompileError struct {
	Pattern string
	Offset  int
	Err     error
}

func (e *CompileError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("likematcher: cannot compile %q at offset %d: %v", e.Pattern, e.Offset, e.Err)
	}
	return fmt.Sprintf("likematcher: cannot compile %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }
