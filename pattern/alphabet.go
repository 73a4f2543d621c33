package pattern

import (
	"fmt"
	"strings"

	"github.com/npillmayer/tokinfer"
)

// Class is the name of a primitive character class.
type Class string

// Primitive character classes of the default alphabet.
const (
	Lower   Class = "lower"
	Upper   Class = "upper"
	Digit   Class = "digit"
	Special Class = "special"
)

// ClassRange pairs a character class with a character-range expression, i.e.
// the content of a bracket expression without the brackets ("a-z").
type ClassRange struct {
	Class Class
	Range string
}

// Alphabet is an ordered set of primitive character classes. The order of
// classes determines the order in which patterns are generated.
// An Alphabet is a read-only data structure.
type Alphabet struct {
	classes []Class
	ranges  map[Class]string
}

// DefaultAlphabet returns the alphabet of lower-case and upper-case ASCII
// letters, ASCII digits and the special characters "-_*%".
func DefaultAlphabet() *Alphabet {
	a, _ := NewAlphabet(
		ClassRange{Lower, "a-z"},
		ClassRange{Upper, "A-Z"},
		ClassRange{Digit, "0-9"},
		ClassRange{Special, "-_*%"},
	)
	return a
}

// NewAlphabet creates an alphabet from a list of class ranges.
// Class names must be unique and non-empty, ranges must be non-empty.
// Violations are reported as tokinfer.ErrInvalidArgument.
func NewAlphabet(ranges ...ClassRange) (*Alphabet, error) {
	if len(ranges) == 0 {
		return nil, fmt.Errorf("%w: alphabet without classes", tokinfer.ErrInvalidArgument)
	}
	a := &Alphabet{
		classes: make([]Class, 0, len(ranges)),
		ranges:  make(map[Class]string, len(ranges)),
	}
	for _, cr := range ranges {
		if strings.TrimSpace(string(cr.Class)) == "" || cr.Range == "" {
			return nil, fmt.Errorf("%w: empty character class %q", tokinfer.ErrInvalidArgument, cr.Class)
		}
		if _, dup := a.ranges[cr.Class]; dup {
			return nil, fmt.Errorf("%w: duplicate character class %q", tokinfer.ErrInvalidArgument, cr.Class)
		}
		a.classes = append(a.classes, cr.Class)
		a.ranges[cr.Class] = cr.Range
	}
	return a, nil
}

// Classes returns the classes of the alphabet, in order.
func (a *Alphabet) Classes() []Class {
	c := make([]Class, len(a.classes))
	copy(c, a.classes)
	return c
}

// Range returns the character-range expression for a class.
func (a *Alphabet) Range(c Class) (string, bool) {
	r, ok := a.ranges[c]
	return r, ok
}

// Len is the number of classes.
func (a *Alphabet) Len() int {
	return len(a.classes)
}

// bracket returns "[range]+" for class c.
func (a *Alphabet) bracket(c Class) string {
	return "[" + a.ranges[c] + "]+"
}
