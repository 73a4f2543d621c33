package freqparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// --- Line level scanner ----------------------------------------------------

// Scanner is a type for a line-level scanner.
//
// Our line-level scanner will operate by calling scanning steps in a chain, iteratively.
// Each step function inspects the fields of the current line and then possibly
// branches out to a subsequent step function.
//
type Scanner struct {
	lines     *bufio.Scanner // line source
	fields    []string       // white-space separated fields of the current line
	lineNo    int            // current line number
	Step      scannerStep    // the next scanner step to execute in a chain
	LastError error          // last error, if any
	Entry     *Entry         // last entry produced by scanner
}

// We're building up a scanner from chains of scanner step functions.
// Entries may be modified by a step function.
// A scanner step will return the next step in the chain, or nil to stop/accept.
//
type scannerStep func(*Entry) (*Entry, scannerStep)

// ErrSyntax is wrapped by errors for malformed lines.
var ErrSyntax = errors.New("frequency list: syntax error")

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*Scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	sc := &Scanner{lines: bufio.NewScanner(inputReader)}
	sc.lines.Buffer(make([]byte, 0, 4096), 1024*1024)
	return sc, nil
}

// Parse iterates over each data line of the input and calls callback f on it.
func Parse(r io.Reader, f func(entry *Entry)) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Entry)
	}
	return sc.LastError
}

// Next is called to receive the next data entry. Comment lines and empty
// lines are skipped.
//
// Next will iterate over a chain of step functions until it reaches an
// accepting state. Acceptance is signalled by getting a nil-step return value from a
// step function, meaning there is no further step applicable in this chain.
//
// If a step function returns an error-signalling entry, scanning stops and
// the error is available as LastError.
//
func (sc *Scanner) Next() bool {
	for sc.LastError == nil {
		if !sc.lines.Scan() {
			if err := sc.lines.Err(); err != nil {
				sc.LastError = err
			}
			return false
		}
		sc.lineNo++
		sc.Entry = newEntry(sc.lineNo)
		sc.Step = sc.ScanLine
		for sc.Step != nil {
			sc.Entry, sc.Step = sc.Step(sc.Entry)
			if sc.Entry == nil {
				break // skip line
			}
			if sc.Entry.Error != nil {
				sc.LastError = sc.Entry.Error
				return false
			}
		}
		if sc.Entry != nil {
			return true
		}
	}
	return false
}

// ScanLine splits the current line into fields and strips comments.
//
//    line:
//      -> empty:   skip
//      -> comment: skip
//      -> other:   word
//
func (sc *Scanner) ScanLine(entry *Entry) (*Entry, scannerStep) {
	sc.fields = strings.Fields(sc.lines.Text())
	for i, f := range sc.fields {
		if strings.HasPrefix(f, "#") {
			entry.Comment = strings.TrimSpace(strings.Join(sc.fields[i:], " ")[1:])
			sc.fields = sc.fields[:i]
			break
		}
	}
	if len(sc.fields) == 0 {
		return nil, nil
	}
	return entry, sc.ScanWord
}

// ScanWord reads the word of a data line.
func (sc *Scanner) ScanWord(entry *Entry) (*Entry, scannerStep) {
	entry.Word = sc.fields[0]
	if len(sc.fields) < 2 {
		entry.Error = fmt.Errorf("%w: line %d: missing count for word %q", ErrSyntax, entry.LineNo, entry.Word)
		return entry, nil
	}
	return entry, sc.ScanCount
}

// ScanCount reads the number of occurrences of a word.
func (sc *Scanner) ScanCount(entry *Entry) (*Entry, scannerStep) {
	n, err := strconv.ParseInt(sc.fields[1], 10, 64)
	if err != nil || n < 0 {
		entry.Error = fmt.Errorf("%w: line %d: invalid count %q", ErrSyntax, entry.LineNo, sc.fields[1])
		return entry, nil
	}
	entry.Count = n
	if len(sc.fields) > 2 {
		entry.Fields = append([]string{}, sc.fields[2:]...)
	}
	return entry, nil
}
