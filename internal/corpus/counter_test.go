package corpus

import (
	"context"
	"strings"
	"testing"
)

func collect(t *testing.T, threshold int, text string) map[string]int {
	t.Helper()
	total := make(map[string]int)
	counter := NewCounter(threshold, func(_ context.Context, counts map[string]int) error {
		for token, n := range counts {
			total[token] += n
		}
		return nil
	})

	ctx := context.Background()
	if err := counter.Consume(ctx, strings.NewReader(text)); err != nil {
		t.Fatal(err)
	}
	if err := counter.Flush(ctx); err != nil {
		t.Fatal(err)
	}
	return total
}

func TestConsumeCountsTokens(t *testing.T) {
	total := collect(t, 0, "the cat sat\nthe cat\n")

	want := map[string]int{"the": 2, "cat": 2, "sat": 1}
	for token, n := range want {
		if total[token] != n {
			t.Errorf("count[%q] = %d, want %d", token, total[token], n)
		}
	}
}

func TestConsumeCaseFolds(t *testing.T) {
	total := collect(t, 0, "The THE the\nStraße STRASSE\n")

	if total["the"] != 3 {
		t.Errorf("count[the] = %d, want 3", total["the"])
	}
	// Case folding maps ß and SS to the same form.
	for token, n := range total {
		if strings.Contains(token, "stra") && n != 2 {
			t.Errorf("count[%q] = %d, want 2", token, n)
		}
	}
}

func TestConsumeFlushesAtThreshold(t *testing.T) {
	flushes := 0
	counter := NewCounter(2, func(_ context.Context, counts map[string]int) error {
		flushes++
		return nil
	})

	ctx := context.Background()
	if err := counter.Consume(ctx, strings.NewReader("aa bb\ncc dd\n")); err != nil {
		t.Fatal(err)
	}
	if err := counter.Flush(ctx); err != nil {
		t.Fatal(err)
	}

	if flushes < 2 {
		t.Errorf("got %d flushes, want at least 2", flushes)
	}
	if counter.Tokens() != 4 {
		t.Errorf("Tokens() = %d, want 4", counter.Tokens())
	}
}

func TestFlushEmptyIsNoop(t *testing.T) {
	counter := NewCounter(0, func(context.Context, map[string]int) error {
		t.Fatal("flush called with no counts")
		return nil
	})
	if err := counter.Flush(context.Background()); err != nil {
		t.Fatal(err)
	}
}
