package wordcost

import (
	"strings"
	"unicode"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/tokinfer"
)

// Segmenter splits runs of characters into words of minimum total cost.
// A Segmenter is immutable and may be shared between goroutines.
type Segmenter struct {
	model    *Model
	foldCase bool
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithCaseFolding makes a Segmenter look up words in lower case. Words are
// still returned in their original case.
func WithCaseFolding() Option {
	return func(s *Segmenter) {
		s.foldCase = true
	}
}

// NewSegmenter creates a segmenter for a cost model. A nil model is treated as
// a model without any words.
func NewSegmenter(model *Model, opts ...Option) *Segmenter {
	if model == nil {
		model, _ = New(nil)
	}
	s := &Segmenter{model: model}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Model returns the cost model of the segmenter.
func (s *Segmenter) Model() *Model {
	return s.model
}

// Segment splits a run of characters into words and joins them with single
// spaces.
func (s *Segmenter) Segment(run string) string {
	return strings.Join(s.Split(run), " ")
}

// Split splits a run of characters into the sequence of words with minimum
// total cost. The concatenation of the words is identical to run.
//
// For each prefix of length i, all final words of length k = 1 … m are
// considered, where m is the maximum word length of the model. The cost of
// the prefix is the minimum of cost(i-k) + cost(final word). If more than one
// k results in the minimum cost, the smallest k is chosen, i.e. the shortest
// final word wins.
//
// Words unknown to the model are penalized with the model's unknown-word cost.
// With an infinite unknown-word cost, a run of unknown characters is split
// into single characters.
func (s *Segmenter) Split(run string) []string {
	words, _ := s.SplitCost(run)
	return words
}

// SplitCost is like Split, but returns the total cost of the segmentation as
// well. The cost is infinite if a run cannot be split into known words and the
// model's unknown-word cost is infinite.
func (s *Segmenter) SplitCost(run string) ([]string, float64) {
	runes := []rune(run)
	n := len(runes)
	if n == 0 {
		return []string{}, 0
	}
	ws := tokinfer.BorrowWorkspace(n)
	defer ws.Release()
	s.forward(s.keys(runes), ws)
	// walk backwards along the cached splits
	stack := arraystack.New()
	for i := n; i > 0; {
		k := ws.Split[i]
		stack.Push(string(runes[i-k : i]))
		i -= k
	}
	words := make([]string, 0, stack.Size())
	for !stack.Empty() {
		w, _ := stack.Pop()
		words = append(words, w.(string))
	}
	CT().Debugf("split %q into %d words, cost = %g", run, len(words), ws.Cost[n])
	return words, ws.Cost[n]
}

// Cost returns the minimum total cost of run.
func (s *Segmenter) Cost(run string) float64 {
	runes := []rune(run)
	if len(runes) == 0 {
		return 0
	}
	ws := tokinfer.BorrowWorkspace(len(runes))
	defer ws.Release()
	s.forward(s.keys(runes), ws)
	return ws.Cost[len(runes)]
}

// forward fills the workspace: ws.Cost[i] is the minimum cost of the first i
// characters, ws.Split[i] the length of the final word for this minimum.
func (s *Segmenter) forward(keys []rune, ws *tokinfer.Workspace) {
	maxLen := s.model.maxWordLength
	if maxLen < 1 {
		maxLen = 1 // single characters are always a candidate
	}
	ws.Cost[0] = 0
	for i := 1; i < len(ws.Cost); i++ {
		best, bestK := ws.Cost[i-1]+s.model.Cost(string(keys[i-1:i])), 1
		for k := 2; k <= i && k <= maxLen; k++ {
			c := ws.Cost[i-k] + s.model.Cost(string(keys[i-k:i]))
			if c < best { // strict: ties go to the smaller k
				best, bestK = c, k
			}
		}
		ws.Cost[i], ws.Split[i] = best, bestK
	}
}

// keys returns the runes to use for model lookup.
func (s *Segmenter) keys(runes []rune) []rune {
	if !s.foldCase {
		return runes
	}
	folded := make([]rune, len(runes))
	for i, r := range runes {
		folded[i] = unicode.ToLower(r)
	}
	return folded
}
