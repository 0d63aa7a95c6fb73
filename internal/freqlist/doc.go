// Package freqlist loads raw word-frequency files into per-list token→rank
// mappings.
//
// Each input file carries one token per line, pre-sorted by descending
// frequency; the loader assigns 1-based ranks from line position and applies
// the early exclusion rules (repeated single characters, serialization-unsafe
// characters, rare-and-short tokens) before a token enters the list. A token
// appearing twice in one source file is a data-integrity error and aborts the
// run.
package freqlist
