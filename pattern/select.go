package pattern

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/emirpasic/gods/maps/treemap"
)

var bracketed = regexp2.MustCompile(`\[(.*?)\]`, regexp2.None)

// countBracketed counts the bracket expressions "[...]" in a pattern.
func countBracketed(pattern string) int {
	n := 0
	m, err := bracketed.FindStringMatch(pattern)
	for err == nil && m != nil {
		n++
		m, err = bracketed.FindNextMatch(m)
	}
	return n
}

// Select joins the patterns for a list of names into a single alternation
// pattern, wrapped in a capturing group.
//
// Patterns are grouped by the number of bracket expressions they consist of.
// Groups with more bracket expressions are emitted first; within a group,
// patterns keep the order of names. Alternations match the first successful
// branch, so this ordering prevents a generic pattern like "[a-z]+" from
// pre-empting a more specific one like "[A-Z]+[a-z]+[0-9]+" at the same
// position of the input.
//
// Unknown names are skipped, with an error message to the tracer. If none of
// the names is known, Select returns the empty string.
func (set *Set) Select(names ...Name) string {
	groups := treemap.NewWithIntComparator()
	for _, name := range names {
		p, ok := set.patterns[name]
		if !ok {
			CT().Errorf("pattern %q is not defined", name)
			continue
		}
		cnt := countBracketed(p)
		var group []string
		if g, found := groups.Get(cnt); found {
			group = g.([]string)
		}
		groups.Put(cnt, append(group, p))
	}
	if groups.Empty() {
		CT().Errorf("no pattern selected from %v", names)
		return ""
	}
	alternatives := make([]string, 0, groups.Size())
	it := groups.Iterator()
	for it.End(); it.Prev(); {
		alternatives = append(alternatives, strings.Join(it.Value().([]string), "|"))
	}
	pattern := "(" + strings.Join(alternatives, "|") + ")"
	CT().P("names", strconv.Itoa(len(names))).Debugf("selected pattern %s", pattern)
	return pattern
}
