// Package corpus tokenizes raw corpus text into token counts.
//
// Tokens are whitespace-delimited and Unicode case-folded before counting, so
// "The", "the", and "THE" accumulate together. The counter flushes batches to
// a sink (typically the count store) so arbitrarily large corpora can be
// processed with bounded memory.
package corpus

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
)

// defaultFlushThreshold bounds the in-memory batch before counts are handed
// to the sink.
const defaultFlushThreshold = 100_000

// scannerBufSize accommodates corpus files with very long lines.
const scannerBufSize = 4 * 1024 * 1024

// FlushFunc receives a batch of accumulated counts. The batch map must not be
// retained after the call returns.
type FlushFunc func(ctx context.Context, counts map[string]int) error

// Counter accumulates case-folded token counts and periodically flushes them.
type Counter struct {
	caser     cases.Caser
	counts    map[string]int
	threshold int
	flush     FlushFunc
	tokens    int64
}

// NewCounter returns a Counter flushing to the given sink. A threshold of
// zero uses the default batch size.
func NewCounter(threshold int, flush FlushFunc) *Counter {
	if threshold <= 0 {
		threshold = defaultFlushThreshold
	}
	return &Counter{
		caser:     cases.Fold(),
		counts:    make(map[string]int),
		threshold: threshold,
		flush:     flush,
	}
}

// Consume tokenizes one reader's worth of corpus text into the counter.
func (c *Counter) Consume(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), scannerBufSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, field := range strings.Fields(scanner.Text()) {
			c.counts[c.caser.String(field)]++
			c.tokens++
		}
		if len(c.counts) >= c.threshold {
			if err := c.Flush(ctx); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan corpus: %w", err)
	}
	return nil
}

// Flush hands the in-memory batch to the sink and starts a fresh one. Call it
// once after the final Consume.
func (c *Counter) Flush(ctx context.Context) error {
	if len(c.counts) == 0 {
		return nil
	}
	if err := c.flush(ctx, c.counts); err != nil {
		return err
	}
	c.counts = make(map[string]int)
	return nil
}

// Tokens reports the total number of tokens consumed so far.
func (c *Counter) Tokens() int64 {
	return c.tokens
}
