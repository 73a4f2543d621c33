/*
Package segment splits text into words, combining delimiter inference and
cost-based word segmentation.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Please refer to the license of package tokinfer.

Typical Usage

An Analyzer examines a single string, e.g. an identifier or a file name.
It first infers the delimiters between the tokens of the string, then splits
every token into runs of letters and digits, and finally splits runs of
letters into words, using a cost model:

  analyzer, err := segment.NewAnalyzer(model)
  analysis, err := analyzer.Analyze("user-fileName_2020")
  // analysis.Words = [user file Name 2020]

Segmenter provides an interface similar to bufio.Scanner for reading data
such as a file of Unicode text.
Similar to Scanner's Scan() function, successive calls to a segmenter's
Next() method will step through the words of a file.
Clients are able to get the bytes of a word by calling Bytes() or Text().

  segmenter := segment.NewSegmenter(analyzer)
  segmenter.Init(...)
  for segmenter.Next() {
    // do something with segmenter.Text() or segmenter.Bytes()
  }

How it works

The segmenter reads runes up to the next white space and hands the
collected chunk to its analyzer. Words of the analysis are queued and
delivered one at a time. White space is never part of a word.
*/
package segment

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// A Segmenter receives a sequence of code-points from an io.RuneReader and
// segments it into words.
type Segmenter struct {
	analyzer      *Analyzer       // splits chunks into words
	reader        io.RuneReader   // where we get the next runes from
	chunk         *bytes.Buffer   // runes up to the next white space
	pending       *arraylist.List // words not yet delivered
	activeSegment []byte          // the most recent word
	maxSegmentLen int             // maximum length allowed for chunks
	err           error
	atEOF         bool
	inUse         bool // Next() has been called; buffer is in use.
}

// MaxSegmentSize is the maximum size used to buffer a chunk of text
// unless the user provides an explicit buffer with Segmenter.Buffer().
const MaxSegmentSize = 64 * 1024
const startBufSize = 256 // Size of initial allocation for buffer.

// ErrTooLong flags a buffer overflow.
// ErrNotInitialized is returned if a segmenters Next-function is called without
// first setting an input source.
var (
	ErrTooLong        = errors.New("segmenter: chunk of text too long for buffer")
	ErrNotInitialized = errors.New("segmenter not initialized; must call Init(...) first")
)

// NewSegmenter creates a new Segmenter for an analyzer. A nil analyzer
// results in an analyzer with default configuration and an empty cost model,
// which will keep runs of letters whole.
//
// Before using newly created segmenters, clients will have to call Init(...)
// on them, i.e. initialize them for a rune reader.
func NewSegmenter(analyzer *Analyzer) *Segmenter {
	if analyzer == nil {
		analyzer, _ = NewAnalyzer(nil)
	}
	return &Segmenter{
		analyzer:      analyzer,
		maxSegmentLen: MaxSegmentSize,
	}
}

// Init initializes a Segmenter with an io.RuneReader to read from.
// s is either a newly created segmenter to be initialized, or we may
// re-initializes a segmenter already in use.
func (s *Segmenter) Init(reader io.RuneReader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	s.reader = reader
	if s.pending == nil {
		s.pending = arraylist.New()
	} else {
		s.pending.Clear()
	}
	if s.chunk == nil {
		s.chunk = bytes.NewBuffer(make([]byte, 0, startBufSize))
	} else {
		s.chunk.Reset()
	}
	s.activeSegment = nil
	s.err = nil
	s.atEOF = false
	s.inUse = false
}

// Buffer sets the initial buffer to use when reading chunks of text and the
// maximum size of a chunk. The maximum chunk size is the larger of max and
// cap(buf).
//
// Buffer panics if it is called after scanning has started. Clients will have
// to call Init(...) again to permit re-setting the buffer.
func (s *Segmenter) Buffer(buf []byte, max int) {
	if s.inUse {
		panic("segment.Buffer: buffer already in use; cannot be re-set")
	}
	s.chunk = bytes.NewBuffer(buf[:0])
	if max < cap(buf) {
		max = cap(buf)
	}
	s.maxSegmentLen = max
}

// Err returns the first non-EOF error that was encountered by the
// Segmenter.
func (s *Segmenter) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Next advances the Segmenter to the next word, which will then be available
// through the Bytes() or Text() method. It returns false when the segmenting
// stops, either by reaching the end of the input or an error.
// After Next() returns false, the Err() method will return any error
// that occurred during scanning, except for io.EOF.
// For the latter case Err() will return nil.
func (s *Segmenter) Next() bool {
	if s.reader == nil {
		s.setErr(ErrNotInitialized)
		return false
	}
	s.inUse = true
	for s.pending.Empty() {
		if s.atEOF || s.err != nil {
			s.activeSegment = nil
			return false
		}
		if err := s.readChunk(); err != nil {
			s.setErr(err)
			s.activeSegment = nil
			return false
		}
	}
	w, _ := s.pending.Get(0)
	s.pending.Remove(0)
	s.activeSegment = append(s.activeSegment[:0], w.(string)...)
	CT().P("length", strconv.Itoa(len(s.activeSegment))).Debugf("Next() = \"%v\"", string(s.activeSegment))
	return true
}

// readChunk reads runes up to the next white space and queues the words
// found in them.
func (s *Segmenter) readChunk() error {
	s.chunk.Reset()
	for {
		r, _, err := s.reader.ReadRune()
		if err == io.EOF {
			s.atEOF = true
			break
		} else if err != nil {
			return err
		}
		if unicode.IsSpace(r) {
			if s.chunk.Len() > 0 {
				break
			}
			continue
		}
		if s.chunk.Len() >= s.maxSegmentLen {
			return ErrTooLong
		}
		s.chunk.WriteRune(r)
	}
	if s.chunk.Len() == 0 {
		return nil
	}
	analysis, err := s.analyzer.Analyze(s.chunk.String())
	if err != nil {
		return err
	}
	for _, w := range analysis.Words {
		s.pending.Add(w)
	}
	return nil
}

// Bytes returns the most recent word generated by a call to Next().
// The underlying array may point to data that will be overwritten by a
// subsequent call to Next(). No allocation is performed.
func (s *Segmenter) Bytes() []byte {
	return s.activeSegment
}

// Text returns the most recent word generated by a call to Next()
// as a newly allocated string holding its bytes.
func (s *Segmenter) Text() string {
	return string(s.activeSegment)
}

// setErr() records the first error encountered.
func (s *Segmenter) setErr(err error) {
	if s.err == nil || s.err == io.EOF {
		s.err = err
	}
}
