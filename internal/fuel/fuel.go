// Package fuel computes launch fuel requirements for module masses.
package fuel

import "github.com/samber/lo"

// minMass is the largest mass whose fuel requirement is not positive.
const minMass = 6

// Required returns the fuel needed to launch mass, ignoring the mass of the fuel itself.
func Required(mass int) int {
	return mass/3 - 2
}

// RequiredRecursive also accounts for the fuel needed to carry the added fuel.
func RequiredRecursive(mass int) int {
	total := 0
	for cur := mass; cur > minMass; {
		cur = Required(cur)
		total += cur
	}

	return total
}

func Totals(masses []int) (plain, recursive int) {
	plain = lo.SumBy(masses, Required)
	recursive = lo.SumBy(masses, RequiredRecursive)

	return plain, recursive
}
