package wordcost

import (
	"fmt"
	"math"
	"sort"
	"unicode/utf8"

	"github.com/npillmayer/tokinfer"
)

// Model is a word cost model. Lower cost means higher probability of a word.
// Models are read-only data structures.
type Model struct {
	costs         map[string]float64
	maxWordLength int     // in runes
	unknown       float64 // cost for words not in costs
}

// ModelOption configures a Model during construction.
type ModelOption func(*Model)

// WithUnknownCost sets the cost of words unknown to the model.
// The default is tokinfer.InfiniteCost.
func WithUnknownCost(c float64) ModelOption {
	return func(m *Model) {
		m.unknown = c
	}
}

// WithMaxWordLength binds the maximum word length of a model, instead of
// measuring the longest word. Words longer than n will never be found by a
// Segmenter.
func WithMaxWordLength(n int) ModelOption {
	return func(m *Model) {
		m.maxWordLength = n
	}
}

// New creates a cost model from a mapping word → cost. The mapping is
// copied. Costs have to be non-negative numbers, otherwise New returns an
// error wrapping tokinfer.ErrInvalidArgument.
func New(costs map[string]float64, opts ...ModelOption) (*Model, error) {
	m := &Model{
		costs:   make(map[string]float64, len(costs)),
		unknown: tokinfer.InfiniteCost,
	}
	for w, c := range costs {
		if math.IsNaN(c) || c < 0 {
			return nil, fmt.Errorf("%w: cost %v for word %q", tokinfer.ErrInvalidArgument, c, w)
		}
		m.costs[w] = c
		if l := utf8.RuneCountInString(w); l > m.maxWordLength {
			m.maxWordLength = l
		}
	}
	for _, opt := range opts {
		opt(m)
	}
	if math.IsNaN(m.unknown) || m.unknown < 0 {
		return nil, fmt.Errorf("%w: unknown-word cost %v", tokinfer.ErrInvalidArgument, m.unknown)
	}
	if m.maxWordLength < 0 {
		return nil, fmt.Errorf("%w: max word length %d", tokinfer.ErrInvalidArgument, m.maxWordLength)
	}
	CT().Debugf("cost model with %d words, max word length %d", len(m.costs), m.maxWordLength)
	return m, nil
}

// Cost returns the cost of a word, or the unknown-word cost.
func (m *Model) Cost(word string) float64 {
	if c, ok := m.costs[word]; ok {
		return c
	}
	return m.unknown
}

// Lookup returns the cost of a word and a flag, signalling if the word is
// known to the model.
func (m *Model) Lookup(word string) (float64, bool) {
	c, ok := m.costs[word]
	return c, ok
}

// MaxWordLength is the length of the longest word of the model, in runes.
func (m *Model) MaxWordLength() int {
	return m.maxWordLength
}

// UnknownCost is the cost for words not known to the model.
func (m *Model) UnknownCost() float64 {
	return m.unknown
}

// Len is the number of words known to the model.
func (m *Model) Len() int {
	return len(m.costs)
}

// Costs returns a copy of the mapping word → cost.
func (m *Model) Costs() map[string]float64 {
	c := make(map[string]float64, len(m.costs))
	for w, x := range m.costs {
		c[w] = x
	}
	return c
}

// Words returns the words of the model, cheapest first. Words of equal cost
// are sorted alphabetically.
func (m *Model) Words() []string {
	words := make([]string, 0, len(m.costs))
	for w := range m.costs {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		ci, cj := m.costs[words[i]], m.costs[words[j]]
		if ci != cj {
			return ci < cj
		}
		return words[i] < words[j]
	})
	return words
}

// --- Providers -------------------------------------------------------------

// Provider supplies a cost model, usually from durable storage.
// Segmenters only need read access to a model once it is loaded.
type Provider interface {
	Load() (*Model, error)
}

// StaticProvider provides an in-memory model.
type StaticProvider struct {
	Model *Model
}

// Load returns the static model. It is an error for the model to be nil.
func (p StaticProvider) Load() (*Model, error) {
	if p.Model == nil {
		return nil, fmt.Errorf("%w: no model", tokinfer.ErrInvalidArgument)
	}
	return p.Model, nil
}
