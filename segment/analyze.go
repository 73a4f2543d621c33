package segment

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/npillmayer/tokinfer"
	"github.com/npillmayer/tokinfer/delimit"
	"github.com/npillmayer/tokinfer/pattern"
	"github.com/npillmayer/tokinfer/wordcost"
)

// Analysis is the result of analyzing a string.
type Analysis struct {
	Input      string   // the string analyzed
	Pattern    string   // regular expression used for matching tokens
	Tokens     []string // tokens between delimiters
	Delimiters []string // delimiters between tokens, from left to right
	Separators []string // delimiters enclosed by letters or digits
	Words      []string // words of all tokens, from left to right
}

// Text returns the words of the analysis, separated by single spaces.
func (a *Analysis) Text() string {
	return strings.Join(a.Words, " ")
}

// Analyzer splits strings into words. An Analyzer is immutable and may be
// shared between goroutines.
type Analyzer struct {
	config    Config
	tokens    string              // selected token pattern
	runs      *regexp2.Regexp     // selected word-run pattern
	segmenter *wordcost.Segmenter // splits letter runs
}

// NewAnalyzer creates an analyzer for a cost model. A nil model is treated as
// a model without any words.
//
// Options are applied to DefaultConfig(). Unknown pattern names result in an
// error wrapping pattern.ErrUnknownPattern, empty selections or a malformed
// enclosing class in an error wrapping tokinfer.ErrInvalidArgument.
func NewAnalyzer(model *wordcost.Model, opts ...Option) (*Analyzer, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	set := pattern.Default()
	if err := cfg.validate(set); err != nil {
		return nil, err
	}
	runs, err := regexp2.Compile(set.Select(cfg.WordPatterns...), regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tokinfer.ErrInvalidArgument, err)
	}
	var segopts []wordcost.Option
	if cfg.FoldCase {
		segopts = append(segopts, wordcost.WithCaseFolding())
	}
	a := &Analyzer{
		config:    cfg,
		tokens:    set.Select(cfg.Patterns...),
		runs:      runs,
		segmenter: wordcost.NewSegmenter(model, segopts...),
	}
	CT().Debugf("analyzer: token pattern = %s", a.tokens)
	return a, nil
}

// Config returns the configuration of the analyzer.
func (a *Analyzer) Config() Config {
	return a.config
}

// Analyze splits input into words.
//
// Delimiters are inferred first. If delimiters are found, the tokens and the
// material between them are processed further, in input order, otherwise
// input is treated as a single token.
// Every piece is split into runs of characters with the word patterns, and
// every run is split into words using the cost model. Runs which cannot be
// split into known words at finite cost, as e.g. runs of digits, are kept
// whole. Characters not matched by any word pattern, i.e. punctuation, are not
// part of the words.
func (a *Analyzer) Analyze(input string) (*Analysis, error) {
	analysis := &Analysis{Input: input, Pattern: a.tokens}
	inf, err := delimit.Infer(input, a.tokens)
	if err != nil {
		return nil, err
	}
	pieces := []string{input}
	if inf.IsEmpty() {
		if input != "" {
			analysis.Tokens = []string{input}
		}
	} else {
		analysis.Tokens = inf.Tokens
		analysis.Delimiters = inf.Delimiters
		bounded, err := delimit.Tokenize(input, inf.Distinct(), a.config.Enclosing)
		if err != nil {
			return nil, err
		}
		analysis.Separators = bounded.Delimiters()
		pieces = pieces[:0]
		for _, part := range inf.Parts {
			pieces = append(pieces, part.Text)
		}
	}
	for _, piece := range pieces {
		words, err := a.split(piece)
		if err != nil {
			return nil, err
		}
		analysis.Words = append(analysis.Words, words...)
	}
	CT().P("words", strconv.Itoa(len(analysis.Words))).Debugf("analyzed %q", input)
	return analysis, nil
}

func (a *Analyzer) split(token string) ([]string, error) {
	var words []string
	m, err := a.runs.FindRunesMatch([]rune(token))
	for err == nil && m != nil {
		if m.Length > 0 {
			run := m.String()
			split, cost := a.segmenter.SplitCost(run)
			if math.IsInf(cost, 1) {
				words = append(words, run)
			} else {
				words = append(words, split...)
			}
		}
		m, err = a.runs.FindNextMatch(m)
	}
	return words, err
}
