package wordcost

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/npillmayer/tokinfer/internal/freqparse"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Corpus holds word frequencies of a corpus, words ranked by descending
// frequency.
type Corpus struct {
	words  []string // ranked
	counts map[string]int64
	total  float64
}

// Errors for corpora which do not allow for a cost model.
var (
	ErrEmptyCorpus      = errors.New("wordcost: corpus without words")
	ErrDegenerateCorpus = errors.New("wordcost: corpus too small for non-negative costs")
)

// ReadCorpus reads a word frequency list, one word and its count per line.
// Words are lower-cased. If a word occurs more than once, the first
// occurrence wins.
func ReadCorpus(r io.Reader) (*Corpus, error) {
	lower := cases.Lower(language.Und)
	var words []string
	counts := make(map[string]int64)
	err := freqparse.Parse(r, func(e *freqparse.Entry) {
		w := lower.String(e.Word)
		if _, dup := counts[w]; dup {
			CT().Debugf("corpus: duplicate word %q in line %d", w, e.LineNo)
			return
		}
		counts[w] = e.Count
		words = append(words, w)
	})
	if err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	return NewCorpus(words, counts)
}

// NewCorpus creates a corpus from a list of words and their counts.
// Words missing in counts are counted as 0. Words are ranked by descending
// count; words of equal count keep their order.
func NewCorpus(words []string, counts map[string]int64) (*Corpus, error) {
	if len(words) == 0 {
		return nil, ErrEmptyCorpus
	}
	c := &Corpus{
		words:  make([]string, 0, len(words)),
		counts: make(map[string]int64, len(words)),
	}
	for _, w := range words {
		if _, dup := c.counts[w]; dup {
			continue
		}
		c.counts[w] = counts[w]
		c.words = append(c.words, w)
		c.total += float64(counts[w])
	}
	sort.SliceStable(c.words, func(i, j int) bool {
		return c.counts[c.words[i]] > c.counts[c.words[j]]
	})
	return c, nil
}

// Len is the number of distinct words.
func (c *Corpus) Len() int {
	return len(c.words)
}

// Total is the sum of all word counts.
func (c *Corpus) Total() float64 {
	return c.total
}

// Words returns the words, ranked by descending count.
func (c *Corpus) Words() []string {
	w := make([]string, len(c.words))
	copy(w, c.words)
	return w
}

// Counts returns a copy of the mapping word → count.
func (c *Corpus) Counts() map[string]int64 {
	m := make(map[string]int64, len(c.counts))
	for w, n := range c.counts {
		m[w] = n
	}
	return m
}

// RankCost is the cost of the word of rank r (0 for the most frequent word)
// within a corpus of total word count total:
//
//    ln( (r+1) · ln(total) )
//
// This is Zipf's law: the probability of the word of rank r is about
// 1/(r·ln(N)).
func RankCost(rank int, total float64) float64 {
	return math.Log(float64(rank+1) * math.Log(total))
}

// Model derives a cost model from the corpus. Costs are assigned by rank
// (see RankCost) and therefore do not decrease from one rank to the next.
//
// If the total count is smaller than e, the most frequent words would get a
// negative cost. Model returns ErrDegenerateCorpus in this case.
func (c *Corpus) Model(opts ...ModelOption) (*Model, error) {
	if math.Log(c.total) < 1 {
		return nil, fmt.Errorf("%w: total count %v", ErrDegenerateCorpus, c.total)
	}
	costs := make(map[string]float64, len(c.words))
	for rank, w := range c.words {
		costs[w] = RankCost(rank, c.total)
	}
	return New(costs, opts...)
}
