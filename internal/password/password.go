// Package password counts candidate passwords in a numeric range.
package password

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// Predicate reports whether n is an acceptable password.
type Predicate func(n int) bool

// digitRuns walks the decimal digits of n from the least significant one and
// reports whether they never increase in that direction, together with the
// lengths of runs of equal digits.
func digitRuns(n int) (bool, []int) {
	if n < 0 {
		return false, nil
	}

	runs := make([]int, 0, 6)
	last := -1

	for rest := n; rest > 0; rest /= 10 {
		digit := rest % 10

		switch {
		case last != -1 && digit > last:
			return false, nil
		case digit == last:
			runs[len(runs)-1]++
		default:
			runs = append(runs, 1)
		}

		last = digit
	}

	return true, runs
}

// NonDecreasingWithPair accepts numbers whose digits never decrease from left
// to right and that have at least two equal adjacent digits.
func NonDecreasingWithPair(n int) bool {
	ok, runs := digitRuns(n)
	if !ok {
		return false
	}

	for _, r := range runs {
		if r >= 2 {
			return true
		}
	}

	return false
}

// NonDecreasingWithExactPair is NonDecreasingWithPair where some group of equal
// adjacent digits has length exactly two.
func NonDecreasingWithExactPair(n int) bool {
	ok, runs := digitRuns(n)
	if !ok {
		return false
	}

	for _, r := range runs {
		if r == 2 {
			return true
		}
	}

	return false
}

const minChunkSize = 4096

// width returns the number of integers in [lo, hi], with lo <= hi.
func width(lo, hi int) (int, error) {
	span := uint(hi) - uint(lo)
	if span >= math.MaxInt {
		return 0, ErrRangeTooWide{Min: lo, Max: hi}
	}

	return int(span) + 1, nil
}

func countChunk(ctx context.Context, from, to int, pred Predicate) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count := 0
	for n := from; ; n++ {
		if n%minChunkSize == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		if pred(n) {
			count++
		}

		if n == to {
			return count, nil
		}
	}
}

// Count returns how many numbers of [lo, hi] satisfy pred, scanning the range
// with at most workers goroutines.
func Count(ctx context.Context, lo, hi int, pred Predicate, workers int) (int, error) {
	if lo > hi {
		return 0, nil
	}

	total, err := width(lo, hi)
	if err != nil {
		return 0, err
	}

	workers = max(workers, 1)

	chunkSize := total / workers
	if total%workers != 0 {
		chunkSize++
	}

	chunkSize = max(chunkSize, minChunkSize)

	chunks := total / chunkSize
	if total%chunkSize != 0 {
		chunks++
	}

	counts := make([]int, chunks)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i := range chunks {
		// offsets from lo stay below total, so neither bound overflows
		start := i * chunkSize
		end := start + min(chunkSize-1, total-1-start)
		from, to := lo+start, lo+end

		eg.Go(func() error {
			c, err := countChunk(egCtx, from, to, pred)
			counts[i] = c

			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return 0, fmt.Errorf("eg.Wait(): %w", err)
	}

	matching := 0
	for _, c := range counts {
		matching += c
	}

	return matching, nil
}
