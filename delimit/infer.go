package delimit

import (
	"fmt"
	"strconv"
	"strings"
)

// Sentinel is substituted for tokens before splitting an input string into
// delimiter candidates. It should be as unusual as possible, as input
// containing it will be split at it.
const Sentinel = "|*R*|*E*|*P*|*L*|*A|*C*|*E*|*D*|"

// Part is a piece of an input string, either a token or the material between
// two tokens.
type Part struct {
	Text  string
	Token bool
}

// Inference is the result of delimiter inference.
// The zero value is the empty result, signalling that no delimiters could be
// inferred.
type Inference struct {
	Delimiters []string // delimiter candidates, from left to right
	Tokens     []string // tokens matched, from left to right
	Parts      []Part   // tokens and material between them, in input order
}

// IsEmpty is true if no delimiters could be inferred.
func (inf Inference) IsEmpty() bool {
	return len(inf.Delimiters) == 0
}

// Infer finds the tokens of input matching pattern and infers delimiter
// candidates, i.e. the non-empty substrings between tokens.
//
// Tokens are the whole (non-overlapping) matches of pattern, in order of
// occurrence; zero-length matches are ignored. If pattern does not match at
// all, or if the tokens cover the input without any material between them,
// Infer returns the empty Inference and no error.
//
// Parts lists tokens and the material between them in input order, such that
// their concatenation is the input.
//
// An empty or malformed pattern results in an error wrapping
// tokinfer.ErrInvalidArgument.
func Infer(input string, pattern string) (Inference, error) {
	re, err := compile(pattern)
	if err != nil {
		return Inference{}, err
	}
	runes := []rune(input)
	var tokens []string
	var parts []Part
	var sb strings.Builder
	last := 0
	m, err := re.FindRunesMatch(runes)
	for err == nil && m != nil {
		if m.Length > 0 {
			tokens = append(tokens, m.String())
			if m.Index > last {
				parts = append(parts, Part{Text: string(runes[last:m.Index])})
			}
			parts = append(parts, Part{Text: m.String(), Token: true})
			sb.WriteString(string(runes[last:m.Index]))
			sb.WriteString(Sentinel)
			last = m.Index + m.Length
		}
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return Inference{}, fmt.Errorf("matching %q: %w", pattern, err)
	}
	if len(tokens) == 0 {
		CT().Debugf("no tokens for %q in %q", pattern, input)
		return Inference{}, nil
	}
	sb.WriteString(string(runes[last:]))
	if last < len(runes) {
		parts = append(parts, Part{Text: string(runes[last:])})
	}
	var delimiters []string
	for _, part := range strings.Split(sb.String(), Sentinel) {
		if len(part) != 0 {
			delimiters = append(delimiters, part)
		}
	}
	if len(delimiters) == 0 {
		return Inference{}, nil
	}
	CT().P("tokens", strconv.Itoa(len(tokens))).Debugf("delimiters in %q = %q", input, delimiters)
	return Inference{
		Delimiters: delimiters,
		Tokens:     tokens,
		Parts:      parts,
	}, nil
}

// Distinct returns the delimiter candidates without duplicates, in order of
// first occurrence.
func (inf Inference) Distinct() []string {
	return distinct(inf.Delimiters)
}

func distinct(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(s))
	d := make([]string, 0, len(s))
	for _, x := range s {
		if !seen[x] {
			seen[x] = true
			d = append(d, x)
		}
	}
	return d
}
