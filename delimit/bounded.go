package delimit

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/npillmayer/tokinfer"
)

// delimGroup names the capture group of the delimiter alternation. Enclosing
// classes must not use this group name.
const delimGroup = "delim"

// DefaultEnclosing is the character class which is expected to enclose an
// in-word delimiter, if clients do not provide one.
const DefaultEnclosing = "[0-9a-zA-Z]"

// BoundedToken is a delimiter together with the characters enclosing it.
type BoundedToken struct {
	Leading   string // text matched by the leading enclosing class
	Delimiter string // the delimiter literal
	Trailing  string // text matched by the trailing enclosing class
}

func (bt BoundedToken) String() string {
	return bt.Leading + bt.Delimiter + bt.Trailing
}

// Bounded is the result of Tokenize.
type Bounded struct {
	Pattern string         // the regular expression used for tokenizing
	Tokens  []BoundedToken // matches, from left to right
}

// Delimiters returns the delimiters which have been found between enclosing
// characters, without duplicates, in order of first occurrence.
func (b Bounded) Delimiters() []string {
	d := make([]string, len(b.Tokens))
	for i, t := range b.Tokens {
		d[i] = t.Delimiter
	}
	return distinct(d)
}

// Tokenize finds occurrences of delimiters which are flanked by a character
// of class enclosing on both sides. The regular expression used is
//
//    enclosing + "(?<delim>" + d1|d2|…|dn + ")" + enclosing
//
// where the delimiters di are escaped to match literally. Duplicate
// delimiters are removed. An empty enclosing class selects DefaultEnclosing.
//
// An empty set of delimiters does not result in a well-formed alternation and
// is rejected with an error wrapping tokinfer.ErrInvalidArgument. The same is
// true for an empty delimiter string or a malformed enclosing class.
func Tokenize(input string, delimiters []string, enclosing string) (Bounded, error) {
	if len(delimiters) == 0 {
		return Bounded{}, fmt.Errorf("%w: empty set of delimiters", tokinfer.ErrInvalidArgument)
	}
	if enclosing == "" {
		enclosing = DefaultEnclosing
	}
	if _, err := compile(enclosing); err != nil {
		return Bounded{}, err
	}
	literals := make([]string, 0, len(delimiters))
	for _, d := range distinct(delimiters) {
		if d == "" {
			return Bounded{}, fmt.Errorf("%w: empty delimiter", tokinfer.ErrInvalidArgument)
		}
		literals = append(literals, regexp2.Escape(d))
	}
	pattern := enclosing + "(?<" + delimGroup + ">" + strings.Join(literals, "|") + ")" + enclosing
	re, err := compile(pattern)
	if err != nil {
		return Bounded{}, err
	}
	result := Bounded{Pattern: pattern}
	runes := []rune(input)
	m, err := re.FindRunesMatch(runes)
	for err == nil && m != nil {
		g := m.GroupByName(delimGroup)
		end := m.Index + m.Length
		result.Tokens = append(result.Tokens, BoundedToken{
			Leading:   string(runes[m.Index:g.Index]),
			Delimiter: g.String(),
			Trailing:  string(runes[g.Index+g.Length : end]),
		})
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return Bounded{}, fmt.Errorf("matching %q: %w", pattern, err)
	}
	CT().Debugf("bounded delimiters in %q: %d matches for %s", input, len(result.Tokens), pattern)
	return result, nil
}
