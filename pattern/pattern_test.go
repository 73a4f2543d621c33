package pattern

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tokinfer"
	"pgregory.net/rapid"
)

func ExampleSet_Select() {
	set := Default()
	fmt.Println(set.Select(DefaultSelection...))
	// Output: ([A-Z]+[a-z]+[0-9]+|[a-z]+[0-9]+|[A-Z]+[a-z]+|[a-z]+|[0-9]+)
}

func TestComposerCompleteness(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	set := Build(DefaultAlphabet())
	byDegree := map[int]int{}
	for _, name := range set.Names() {
		byDegree[set.Degree(name)]++
	}
	if byDegree[1] != 4 || byDegree[2] != 12 || byDegree[3] != 36 {
		t.Errorf("expected 4|12|36 patterns of degree 1|2|3, have %d|%d|%d",
			byDegree[1], byDegree[2], byDegree[3])
	}
	if set.Len() != 52 {
		t.Errorf("expected 52 patterns, have %d", set.Len())
	}
}

func TestComposedPatterns(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	set := Default()
	tests := []struct {
		name    Name
		pattern string
	}{
		{"Lower", "[a-z]+"},
		{"Special", "[-_*%]+"},
		{"LowerUpper", "[a-z]+[A-Z]+"},
		{"UpperLower", "[A-Z]+[a-z]+"},
		{"UpperLowerUpper", "[A-Z]+[a-z]+[A-Z]+"},
		{"UpperLowerDigit", "[A-Z]+[a-z]+[0-9]+"},
		{"DigitSpecialDigit", "[0-9]+[-_*%]+[0-9]+"},
	}
	for _, tt := range tests {
		p, err := set.Lookup(tt.name)
		if err != nil {
			t.Errorf("lookup of %q failed: %v", tt.name, err)
			continue
		}
		if p != tt.pattern {
			t.Errorf("pattern %q should be %q, is %q", tt.name, tt.pattern, p)
		}
	}
	for _, name := range []Name{"LowerLower", "UpperUpperLower", "Letter"} {
		if _, err := set.Lookup(name); !errors.Is(err, ErrUnknownPattern) {
			t.Errorf("expected %q to be unknown, error is %v", name, err)
		}
	}
	if set.Alphabet != "[a-zA-Z]+" {
		t.Errorf("Alphabet pattern is %q", set.Alphabet)
	}
	if set.AlphabetDigit != "[a-zA-Z0-9]+" {
		t.Errorf("AlphabetDigit pattern is %q", set.AlphabetDigit)
	}
}

func TestPatternKeysAreComposedOfClasses(t *testing.T) {
	set := Default()
	for _, name := range set.Names() {
		p, _ := set.Lookup(name)
		if countBracketed(p) != set.Degree(name) {
			t.Errorf("pattern %q has %d brackets, degree is %d", name, countBracketed(p), set.Degree(name))
		}
		if !strings.HasSuffix(p, "]+") {
			t.Errorf("pattern %q should end with a one-or-more bracket, is %q", name, p)
		}
	}
}

func TestCompose(t *testing.T) {
	if n := Compose(Upper, Lower, Digit); n != "UpperLowerDigit" {
		t.Errorf("expected UpperLowerDigit, have %q", n)
	}
	if n := Compose(); n != "" {
		t.Errorf("expected empty name, have %q", n)
	}
}

func TestCustomAlphabet(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	a, err := NewAlphabet(ClassRange{Lower, "a-z"}, ClassRange{Digit, "0-9"})
	if err != nil {
		t.Fatal(err)
	}
	if c := a.Classes(); !reflect.DeepEqual(c, []Class{Lower, Digit}) {
		t.Errorf("expected classes [lower digit], have %v", c)
	}
	if r, ok := a.Range(Digit); !ok || r != "0-9" {
		t.Errorf("expected range 0-9 for digits, have %q", r)
	}
	if _, ok := a.Range(Upper); ok {
		t.Error("expected no range for upper-case letters")
	}
	set := Build(a)
	if set.Len() != 2+2+2 {
		t.Errorf("expected 6 patterns for 2 classes, have %d: %v", set.Len(), set.Names())
	}
	if set.Alphabet != "[a-z]+" || set.AlphabetDigit != "[a-z0-9]+" {
		t.Errorf("derived patterns are %q and %q", set.Alphabet, set.AlphabetDigit)
	}
	a, _ = NewAlphabet(ClassRange{Special, ".:"})
	set = Build(a)
	if set.Alphabet != "" || set.AlphabetDigit != "" {
		t.Errorf("expected no derived patterns without letters and digits, have %q and %q",
			set.Alphabet, set.AlphabetDigit)
	}
	if p, _ := set.Lookup("Special"); p != "[.:]+" {
		t.Errorf("pattern Special is %q", p)
	}
	if _, err := NewAlphabet(ClassRange{"lower", "a-z"}, ClassRange{"lower", "x"}); !errors.Is(err, tokinfer.ErrInvalidArgument) {
		t.Errorf("expected duplicate class to be rejected, error is %v", err)
	}
	if _, err := NewAlphabet(); !errors.Is(err, tokinfer.ErrInvalidArgument) {
		t.Errorf("expected empty alphabet to be rejected, error is %v", err)
	}
	if _, err := NewAlphabet(ClassRange{"x", ""}); !errors.Is(err, tokinfer.ErrInvalidArgument) {
		t.Errorf("expected empty range to be rejected, error is %v", err)
	}
}

func TestSelectSkipsUnknownNames(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	set := Default()
	p := set.Select("Lower", "NoSuchPattern", "UpperLower")
	if p != "([A-Z]+[a-z]+|[a-z]+)" {
		t.Errorf("unexpected pattern %q", p)
	}
	if p = set.Select("NoSuchPattern"); p != "" {
		t.Errorf("expected empty pattern for unknown names only, have %q", p)
	}
}

func TestSelectorOrdering(t *testing.T) {
	set := Default()
	names := set.Names()
	rapid.Check(t, func(t *rapid.T) {
		selection := rapid.SliceOfN(rapid.SampledFrom(names), 1, 20).Draw(t, "selection")
		p := set.Select(selection...)
		if !strings.HasPrefix(p, "(") || !strings.HasSuffix(p, ")") {
			t.Fatalf("pattern not wrapped in a group: %q", p)
		}
		alternatives := strings.Split(p[1:len(p)-1], "|")
		if len(alternatives) != len(selection) {
			t.Fatalf("expected %d alternatives, have %d", len(selection), len(alternatives))
		}
		last := 4
		for _, alt := range alternatives {
			cnt := countBracketed(alt)
			if cnt > last {
				t.Fatalf("degree %d pattern after degree %d in %q", cnt, last, p)
			}
			last = cnt
		}
	})
}

func TestDefaultIsMemoized(t *testing.T) {
	if Default() != Default() {
		t.Error("expected Default() to return the same set")
	}
}
