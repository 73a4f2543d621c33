package pattern

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name is the name of a composed pattern, e.g. "UpperLowerDigit".
type Name string

// Compose returns the name of the pattern concatenating the given classes,
// in order. Compose(Upper, Lower) is "UpperLower".
func Compose(classes ...Class) Name {
	title := cases.Title(language.Und)
	var sb strings.Builder
	for _, c := range classes {
		sb.WriteString(title.String(string(c)))
	}
	return Name(sb.String())
}

// Patterns of the default alphabet which are selected for tokenizing, if
// clients do not ask for a different selection.
var DefaultSelection = []Name{
	Compose(Lower),
	Compose(Digit),
	Compose(Lower, Digit),
	Compose(Upper, Lower),
	Compose(Upper, Lower, Digit),
}

// ErrUnknownPattern is returned (wrapped) by Set.Lookup for names not in the set.
var ErrUnknownPattern = errors.New("pattern: unknown pattern name")

// Set is a collection of named regular expressions, composed from the classes
// of an alphabet. A Set is a read-only data structure and may be shared
// between goroutines.
//
// Patterns of degree 1 match a run of characters of a single class.
// Patterns of degree 2 and 3 match runs of characters of two or three
// classes, concatenated. Adjacent classes are always different, but for
// degree 3 the first and the last class may be identical ("UpperLowerUpper").
type Set struct {
	patterns      map[Name]string
	degrees       map[Name]int
	names         []Name // in order of generation
	Alphabet      string // one or more of lower|upper; empty if neither class exists
	AlphabetDigit string // one or more of lower|upper|digit; empty if none exists
}

// Build composes all patterns of degree 1, 2 and 3 for alphabet a.
// For an alphabet of n classes, this will result in
// n + n·(n-1) + n·(n-1)·(n-1) patterns.
//
// Patterns are not compiled or validated; composition is purely a matter of
// string concatenation.
func Build(a *Alphabet) *Set {
	if a == nil {
		a = DefaultAlphabet()
	}
	n := a.Len()
	set := &Set{
		patterns: make(map[Name]string, n+n*(n-1)+n*(n-1)*(n-1)),
		degrees:  make(map[Name]int, n+n*(n-1)+n*(n-1)*(n-1)),
	}
	classes := a.classes
	for _, k0 := range classes {
		set.add(a, k0)
	}
	for _, k0 := range classes {
		for _, k1 := range classes {
			if k0 == k1 {
				continue
			}
			set.add(a, k0, k1)
		}
	}
	for _, k0 := range classes {
		for _, k1 := range classes {
			if k0 == k1 {
				continue
			}
			for _, k2 := range classes {
				if k1 == k2 {
					continue
				}
				set.add(a, k0, k1, k2)
			}
		}
	}
	letters := a.ranges[Lower] + a.ranges[Upper]
	if letters != "" {
		set.Alphabet = "[" + letters + "]+"
	}
	if alnum := letters + a.ranges[Digit]; alnum != "" {
		set.AlphabetDigit = "[" + alnum + "]+"
	}
	CT().Debugf("pattern set: composed %d patterns from %d classes", len(set.names), n)
	return set
}

func (set *Set) add(a *Alphabet, classes ...Class) {
	var sb strings.Builder
	for _, c := range classes {
		sb.WriteString(a.bracket(c))
	}
	name := Compose(classes...)
	set.patterns[name] = sb.String()
	set.degrees[name] = len(classes)
	set.names = append(set.names, name)
}

// Lookup returns the regular expression for a pattern name.
func (set *Set) Lookup(name Name) (string, error) {
	p, ok := set.patterns[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// Degree returns the number of character classes pattern name is composed of,
// or 0 for unknown names.
func (set *Set) Degree(name Name) int {
	return set.degrees[name]
}

// Names returns all pattern names, in order of generation.
func (set *Set) Names() []Name {
	names := make([]Name, len(set.names))
	copy(names, set.names)
	return names
}

// Len returns the number of named patterns.
func (set *Set) Len() int {
	return len(set.names)
}

var defaultSet struct {
	once sync.Once
	set  *Set
}

// Default returns the pattern set for the default alphabet. It is built once
// and shared process-wide.
func Default() *Set {
	defaultSet.once.Do(func() {
		defaultSet.set = Build(DefaultAlphabet())
	})
	return defaultSet.set
}
