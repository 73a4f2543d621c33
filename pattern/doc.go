/*
Package pattern composes regular expressions from primitive character classes.

An Alphabet defines named character classes, e.g. class "lower" with range
"a-z". Build combines the classes of an alphabet into patterns of one, two
or three classes, where each class is matched one or more times:

   Lower            [a-z]+
   UpperLower       [A-Z]+[a-z]+
   UpperLowerDigit  [A-Z]+[a-z]+[0-9]+

Clients then select the patterns they are interested in and join them into
a single regular expression with Set.Select. The resulting expression is
suitable for finding tokens with package delimit.

   set := pattern.Default()
   expr := set.Select(pattern.DefaultSelection...)
   // expr = ([A-Z]+[a-z]+[0-9]+|[a-z]+[0-9]+|[A-Z]+[a-z]+|[a-z]+|[0-9]+)

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Please refer to the license of package tokinfer.
*/
package pattern

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
