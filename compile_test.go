package likematcher

import (
	"strings"
	"testing"
)

func TestMatchLiterals(t *testing.T) {
	m := MustCompile("abc")

	cases := map[string]bool{
		"abc":  true,
		"abcd": false,
		"ab":   false,
		"":     false,
		"abd":  false,
	}
	for input, want := range cases {
		if got := m.MatchString(input); got != want {
			t.Errorf("MatchString(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestMatchSingleWildcard(t *testing.T) {
	m := MustCompile("a_c")

	cases := map[string]bool{
		"abc": true,
		"axc": true,
		"ac":  false,
		"aéc": true,
	}
	for input, want := range cases {
		if got := m.MatchString(input); got != want {
			t.Errorf("MatchString(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestMatchPercent(t *testing.T) {
	m := MustCompile("a%c")

	cases := map[string]bool{
		"ac":     true,
		"abc":    true,
		"abbbbc": true,
		"a":      false,
		"ca":     false,
	}
	for input, want := range cases {
		if got := m.MatchString(input); got != want {
			t.Errorf("MatchString(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestMatchLeadingAndTrailingWildcard(t *testing.T) {
	m := MustCompile("%abc%")

	cases := map[string]bool{
		"abc":       true,
		"xabcx":     true,
		"xxxabcxxx": true,
		"ab":        false,
		"xyz":       false,
	}
	for input, want := range cases {
		if got := m.MatchString(input); got != want {
			t.Errorf("MatchString(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestMatchEscape(t *testing.T) {
	m := MustCompileEscape(`100\%`, '\\')

	if !m.MatchString("100%") {
		t.Error(`pattern 100\% should match literal "100%"`)
	}
	if m.MatchString("100x") {
		t.Error(`pattern 100\% should not match "100x"`)
	}
}

func TestCompileInvalidEscape(t *testing.T) {
	_, err := CompileEscape(`abc\x`, '\\')
	if err == nil {
		t.Fatal("expected an error for an invalid escape sequence")
	}
	var compileErr *CompileError
	if ce, ok := err.(*CompileError); ok {
		compileErr = ce
	} else {
		t.Fatalf("error type = %T, want *CompileError", err)
	}
	if compileErr.Offset != 3 {
		t.Errorf("Offset = %d, want 3", compileErr.Offset)
	}
}

func TestCompileTrailingEscape(t *testing.T) {
	_, err := CompileEscape(`abc\`, '\\')
	if err == nil {
		t.Fatal("expected an error for a trailing escape character")
	}
}

func TestPatternAndEscapeAccessors(t *testing.T) {
	m := MustCompile("abc%")
	if m.Pattern() != "abc%" {
		t.Errorf("Pattern() = %q, want abc%%", m.Pattern())
	}
	if _, ok := m.Escape(); ok {
		t.Error("Escape() should report false for a pattern with no escape")
	}

	withEscape := MustCompileEscape(`a\%`, '\\')
	escape, ok := withEscape.Escape()
	if !ok || escape != '\\' {
		t.Errorf("Escape() = %q, %v, want '\\\\', true", escape, ok)
	}
}

func TestLengthBoundsShortCircuit(t *testing.T) {
	m := MustCompile("abc_")

	// Too short to possibly match, regardless of content: this should
	// never reach the DFA.
	if m.MatchString("ab") {
		t.Error("input shorter than minimum size should not match")
	}

	m2 := MustCompile("abc") // fixed length, finite max
	if m2.MatchString("abcd") {
		t.Error("input longer than a fixed-length pattern should not match")
	}
}

func TestOptimizerCollapsesAdjacentWildcards(t *testing.T) {
	// "__%" requires at least 2 codepoints, unbounded further; equivalent
	// to "_ _%" collapsed into one Any(min=2, unbounded=true).
	m := MustCompile("__%")

	cases := map[string]bool{
		"ab":   true,
		"abc":  true,
		"a":    false,
		"":     false,
		"abcd": true,
	}
	for input, want := range cases {
		if got := m.MatchString(input); got != want {
			t.Errorf("MatchString(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestMustCompileEscapePanicsOnInvalidPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompileEscape should panic on an invalid pattern")
		}
	}()
	MustCompileEscape(`a\x`, '\\')
}

func TestCompileWithConfigRejectsInvalidConfig(t *testing.T) {
	cfg := Config{MaxStates: 0}
	_, err := CompileWithConfig("abc", nil, cfg)
	if err == nil {
		t.Fatal("expected an error for an invalid Config")
	}
}

func TestCompileWithConfigDebugIncludesStateCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Debug = true
	m, err := CompileWithConfig("a%b", nil, cfg)
	if err != nil {
		t.Fatalf("CompileWithConfig: %v", err)
	}
	if s := m.String(); !strings.Contains(s, "states=") {
		t.Errorf("String() = %q, want it to mention a state count when Debug is enabled", s)
	}
}

func TestStringWithoutDebugOmitsStateCount(t *testing.T) {
	m := MustCompile("abc")
	if s := m.String(); strings.Contains(s, "states=") {
		t.Errorf("String() = %q, should not mention a state count without Config.Debug", s)
	}
}
