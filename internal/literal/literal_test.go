package literal

import (
	"bytes"
	"testing"

	"github.com/martint/likematcher/internal/pattern"
)

func TestPeelPrefix(t *testing.T) {
	elements := []pattern.Element{
		pattern.NewLiteral([]byte("abc")),
		pattern.NewAny(0, true),
	}

	prefix, rest, ok := PeelPrefix(elements)
	if !ok || !bytes.Equal(prefix, []byte("abc")) {
		t.Fatalf("PeelPrefix = %q, %v, want abc, true", prefix, ok)
	}
	if len(rest) != 1 || rest[0].Kind() != pattern.KindAny {
		t.Fatalf("rest = %v, want single Any", rest)
	}
}

func TestPeelPrefixNoLeadingLiteral(t *testing.T) {
	elements := []pattern.Element{pattern.NewAny(0, true)}
	_, _, ok := PeelPrefix(elements)
	if ok {
		t.Error("PeelPrefix should fail when pattern starts with a wildcard")
	}
}

func TestPeelSuffix(t *testing.T) {
	elements := []pattern.Element{
		pattern.NewAny(0, true),
		pattern.NewLiteral([]byte("xyz")),
	}

	suffix, rest, ok := PeelSuffix(elements)
	if !ok || !bytes.Equal(suffix, []byte("xyz")) {
		t.Fatalf("PeelSuffix = %q, %v, want xyz, true", suffix, ok)
	}
	if len(rest) != 1 || rest[0].Kind() != pattern.KindAny {
		t.Fatalf("rest = %v, want single Any", rest)
	}
}

func TestPeelSuffixSingleElement(t *testing.T) {
	elements := []pattern.Element{pattern.NewLiteral([]byte("abc"))}
	_, _, ok := PeelSuffix(elements)
	if ok {
		t.Error("PeelSuffix should fail on a single-element pattern (it's the prefix, not a suffix)")
	}
}

func TestMostSelective(t *testing.T) {
	cases := []struct {
		prefix, suffix, want []byte
		ok                   bool
	}{
		{nil, nil, nil, false},
		{[]byte("ab"), nil, []byte("ab"), true},
		{nil, []byte("cd"), []byte("cd"), true},
		{[]byte("ab"), []byte("cde"), []byte("cde"), true},
		{[]byte("abc"), []byte("de"), []byte("abc"), true},
	}
	for _, c := range cases {
		got, ok := MostSelective(c.prefix, c.suffix)
		if ok != c.ok || !bytes.Equal(got, c.want) {
			t.Errorf("MostSelective(%q, %q) = %q, %v, want %q, %v", c.prefix, c.suffix, got, ok, c.want, c.ok)
		}
	}
}
