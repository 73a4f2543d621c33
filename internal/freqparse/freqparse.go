/* Package freqparse provides a parser for word frequency lists.

A word frequency list is a plain text file with one word per line, followed
by the number of occurrences of this word within a corpus:

   the      53097401461
   of       30966074232
   and      22632024504

Fields are separated by white-space. Lines starting with '#' are comments,
as is everything after a field starting with '#'. Empty lines are ignored.
Additional fields after the count are kept, but have no meaning to the
parser.
*/
package freqparse

import "fmt"

// Entry is a type for communicating between the line-level scanner and its
// clients. The scanner will read lines and wrap the content of each data line
// into an entry.
type Entry struct {
	LineNo  int      // line of the entry within the input source, starting at 1
	Word    string   // the word, as found in the input
	Count   int64    // number of occurrences
	Fields  []string // additional fields, if any
	Comment string   // rest-of-line comment, if any
	Error   error    // error condition, if any
}

// newEntry creates an entry initialized with a line number.
func newEntry(line int) *Entry {
	return &Entry{
		LineNo: line,
	}
}

func (e *Entry) String() string {
	return fmt.Sprintf("entry[at %d %q=%d %#v]", e.LineNo, e.Word, e.Count, e.Fields)
}
