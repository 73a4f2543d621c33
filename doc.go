/*
Package tokinfer is about inferring token and word boundaries in text which
lacks them.

Description

Identifiers, file names, hash-tags, domain names and log fields frequently
glue words together: "helloworld123", "getUserName", "my-file_2020".
A human reader will recognize "hello world 123" without effort; a program
has to infer where the boundaries are.

Two kinds of boundaries are handled. Structural boundaries are changes in
character class (lower-case letters, upper-case letters, digits, special
characters) or explicit delimiters between runs of such characters. Lexical
boundaries are word boundaries inside a run of letters, which can only be
found with knowledge about the words of a language.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

The work is done in the various sub-packages of tokinfer.

Package pattern composes regular expressions from primitive character
classes. Single-class patterns like "[a-z]+" are combined into patterns of
two or three classes, e.g. "[A-Z]+[a-z]+[0-9]+" for tokens like "Hello123".
A selection of these patterns is then joined into a single alternation,
most specific patterns first, to be used as a tokenizing expression.

Package delimit uses such an expression to find tokens within a string and
to infer the material between tokens as delimiter candidates. A second
operation confirms delimiters which occur between alphanumeric characters,
i.e. delimiters acting as in-word separators.

Package wordcost holds a word cost model, derived from word frequencies,
and a segmenter which splits a run of letters into the sequence of words
with minimum total cost. This is a classic shortest-path problem, solved
with dynamic programming.

Package segment is the driver type, combining all of the above: it splits
text at structural boundaries first and then splits runs of letters at
lexical boundaries. It provides an interface similar to bufio.Scanner.

Base package tokinfer provides some of the helpers shared by the
sub-packages: a tracer, error values and pooled work areas for the dynamic
programming algorithm.

Costs

Word costs are negative log-likelihoods, loosely speaking. Lower cost means
a more probable word. Substrings which are not known to a cost model are
assigned a sentinel cost, which by default is InfiniteCost. Unknown
substrings are therefore never forbidden, but are chosen only if there is
no other way to cover a run of letters.
*/
package tokinfer

import (
	"errors"
	"math"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// InfiniteCost is the default cost for words unknown to a cost model.
var InfiniteCost = math.Inf(1)

// ErrInvalidArgument is returned (wrapped) whenever an operation is called
// with arguments which do not allow for a well-formed result, e.g., an
// empty set of delimiters or a malformed regular expression.
var ErrInvalidArgument = errors.New("tokinfer: invalid argument")
