package fuel_test

import (
	"testing"

	"github.com/LLIEPJIOK/adventofcode2019/internal/fuel"
	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	tt := []struct {
		name      string
		mass      int
		plain     int
		recursive int
	}{
		{name: "small", mass: 12, plain: 2, recursive: 2},
		{name: "rounded down", mass: 14, plain: 2, recursive: 2},
		{name: "medium", mass: 1969, plain: 654, recursive: 966},
		{name: "large", mass: 100756, plain: 33583, recursive: 50346},
		{name: "no fuel needed", mass: 6, plain: 0, recursive: 0},
		{name: "zero mass", mass: 0, plain: -2, recursive: 0},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.plain, fuel.Required(tc.mass))
			assert.Equal(t, tc.recursive, fuel.RequiredRecursive(tc.mass))
		})
	}
}

func TestTotals(t *testing.T) {
	plain, recursive := fuel.Totals([]int{12, 14, 1969, 100756})

	assert.Equal(t, 2+2+654+33583, plain)
	assert.Equal(t, 2+2+966+50346, recursive)

	plain, recursive = fuel.Totals(nil)
	assert.Zero(t, plain)
	assert.Zero(t, recursive)
}
