/*
Package wordcost splits runs of letters into words, using a cost model.

A cost model assigns a cost to every word it knows. Costs are derived
from word frequencies: frequent words are cheap, rare words are expensive.
Words unknown to a model are assigned a sentinel cost, which by default is
infinite.

A Segmenter finds the partition of a run of characters into words with
minimum total cost. This is done by dynamic programming, in time
O(n·m) for a run of n characters and a maximum word length of m.

   model, _ := corpus.Model()
   seg := wordcost.NewSegmenter(model)
   fmt.Println(seg.Segment("thecatsatonthemat"))
   // the cat sat on the mat

Models are immutable and may be shared between goroutines, as may
Segmenters.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Please refer to the license of package tokinfer.
*/
package wordcost

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
