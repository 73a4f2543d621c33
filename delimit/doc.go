/*
Package delimit infers delimiters between the tokens of a string.

Given a regular expression for tokens (usually composed with package
pattern), Infer finds all tokens of an input string. Everything between
two tokens is considered to be a delimiter candidate:

   inf, _ := delimit.Infer("my-file_2020", "([a-z]+|[0-9]+)")
   // inf.Tokens     = [my file 2020]
   // inf.Delimiters = [- _]

Not every candidate is a delimiter in the usual sense. Tokenize checks
which candidates occur between two alphanumeric characters, i.e. act as
separators within a compound word, rather than as leading or trailing
punctuation.

All operations are pure functions of their input. Compiled regular
expressions are cached process-wide.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Please refer to the license of package tokinfer.
*/
package delimit

import (
	"fmt"
	"sync"

	"github.com/dlclark/regexp2"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tokinfer"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

var compiled sync.Map // pattern string -> *regexp2.Regexp

// compile returns a compiled regular expression for pattern, either from the
// cache or freshly compiled. Empty or malformed patterns are reported as
// tokinfer.ErrInvalidArgument.
func compile(pattern string) (*regexp2.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", tokinfer.ErrInvalidArgument)
	}
	if re, ok := compiled.Load(pattern); ok {
		return re.(*regexp2.Regexp), nil
	}
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %v", tokinfer.ErrInvalidArgument, pattern, err)
	}
	actual, _ := compiled.LoadOrStore(pattern, re)
	return actual.(*regexp2.Regexp), nil
}
