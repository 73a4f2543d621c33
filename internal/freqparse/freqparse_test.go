package freqparse

import (
	"errors"
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	input := strings.NewReader("the 53097401461   # most frequent\n")
	sc, err := New(input)
	if err != nil {
		t.Fatal(err)
	}
	if !sc.Next() {
		t.Fatal(sc.LastError)
	}
	t.Logf("entry = %v", sc.Entry)
	if sc.Entry.Word != "the" {
		t.Errorf("expected word to be 'the', is %q", sc.Entry.Word)
	}
	if sc.Entry.Count != 53097401461 {
		t.Errorf("expected count to be 53097401461, is %d", sc.Entry.Count)
	}
	if sc.Entry.Comment != "most frequent" {
		t.Errorf("expected comment 'most frequent', is %q", sc.Entry.Comment)
	}
	if sc.Next() {
		t.Errorf("expected end of input, have %v", sc.Entry)
	}
}

func TestParseSkipsCommentsAndBlankLines(t *testing.T) {
	input := "# word list\n\nthe 10\n   \nof 5 extra\n#and 3\nand\t2\n"
	var words []string
	err := Parse(strings.NewReader(input), func(e *Entry) {
		words = append(words, e.Word)
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(words, ",") != "the,of,and" {
		t.Errorf("expected the,of,and, have %v", words)
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"the\n", "the ten\n", "a 1\nthe -3\n"} {
		err := Parse(strings.NewReader(input), func(e *Entry) {})
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("expected syntax error for %q, have %v", input, err)
		}
	}
	if _, err := New(nil); err == nil {
		t.Error("expected error for missing input")
	}
}

func TestParseLineNumbers(t *testing.T) {
	input := "# header\nthe 10\n\nof 5\n"
	var lines []int
	_ = Parse(strings.NewReader(input), func(e *Entry) {
		lines = append(lines, e.LineNo)
	})
	if len(lines) != 2 || lines[0] != 2 || lines[1] != 4 {
		t.Errorf("expected line numbers [2 4], have %v", lines)
	}
}
