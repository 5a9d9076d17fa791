package password_test

import (
	"context"
	"math"
	"testing"

	"github.com/LLIEPJIOK/adventofcode2019/internal/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPredicates(t *testing.T) {
	tt := []struct {
		name      string
		number    int
		pair      bool
		exactPair bool
	}{
		{name: "all equal", number: 111111, pair: true, exactPair: false},
		{name: "decreasing tail", number: 223450, pair: false, exactPair: false},
		{name: "no pair", number: 123789, pair: false, exactPair: false},
		{name: "three pairs", number: 112233, pair: true, exactPair: true},
		{name: "triple only", number: 123444, pair: true, exactPair: false},
		{name: "quadruple and pair", number: 111122, pair: true, exactPair: true},
		{name: "zero", number: 0, pair: false, exactPair: false},
		{name: "two digits", number: 11, pair: true, exactPair: true},
		{name: "negative", number: -11, pair: false, exactPair: false},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.pair, password.NonDecreasingWithPair(tc.number), "pair")
			assert.Equal(t, tc.exactPair, password.NonDecreasingWithExactPair(tc.number), "exact pair")
		})
	}
}

func countSequential(lo, hi int, pred password.Predicate) int {
	count := 0
	for n := lo; n <= hi; n++ {
		if pred(n) {
			count++
		}
	}

	return count
}

func TestCount(t *testing.T) {
	tt := []struct {
		name    string
		lo      int
		hi      int
		workers int
		pred    password.Predicate
	}{
		{name: "single worker", lo: 100000, hi: 200000, workers: 1, pred: password.NonDecreasingWithPair},
		{name: "many workers", lo: 357253, hi: 892942, workers: 8, pred: password.NonDecreasingWithPair},
		{name: "exact pair", lo: 357253, hi: 892942, workers: 3, pred: password.NonDecreasingWithExactPair},
		{name: "zero workers", lo: 10, hi: 100, workers: 0, pred: password.NonDecreasingWithPair},
		{name: "single number", lo: 111111, hi: 111111, workers: 4, pred: password.NonDecreasingWithPair},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := password.Count(context.Background(), tc.lo, tc.hi, tc.pred, tc.workers)
			require.NoError(t, err)

			assert.Equal(t, countSequential(tc.lo, tc.hi, tc.pred), got)
		})
	}
}

func TestCountCustomPredicate(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	got, err := password.Count(context.Background(), 1, 100000, even, 4)
	require.NoError(t, err)
	assert.Equal(t, 50000, got)
}

func TestCountEmptyRange(t *testing.T) {
	got, err := password.Count(context.Background(), 10, 1, password.NonDecreasingWithPair, 4)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCountCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := password.Count(ctx, 0, 1_000_000, password.NonDecreasingWithPair, 4)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCountIntBounds(t *testing.T) {
	always := func(int) bool { return true }

	tt := []struct {
		name    string
		lo      int
		hi      int
		workers int
		want    int
	}{
		{name: "below max int", lo: math.MaxInt - 9, hi: math.MaxInt - 1, workers: 1, want: 9},
		{name: "up to max int", lo: math.MaxInt - 9, hi: math.MaxInt, workers: 3, want: 10},
		{name: "single max int", lo: math.MaxInt, hi: math.MaxInt, workers: 2, want: 1},
		{name: "from min int", lo: math.MinInt, hi: math.MinInt + 9, workers: 2, want: 10},
		{name: "across zero", lo: -5000, hi: 5000, workers: 4, want: 10001},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := password.Count(context.Background(), tc.lo, tc.hi, always, tc.workers)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCountRangeTooWide(t *testing.T) {
	tt := []struct {
		name string
		lo   int
		hi   int
	}{
		{name: "whole int range", lo: math.MinInt, hi: math.MaxInt},
		{name: "one past max int numbers", lo: -1, hi: math.MaxInt - 1},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := password.Count(context.Background(), tc.lo, tc.hi, password.NonDecreasingWithPair, 1)

			var wideErr password.ErrRangeTooWide
			require.ErrorAs(t, err, &wideErr)
			assert.Equal(t, tc.lo, wideErr.Min)
			assert.Equal(t, tc.hi, wideErr.Max)
		})
	}
}
