package demo

import (
	"math/rand/v2"
	"slices"
)

// Generate returns size values drawn uniformly from [0, maxValue). With
// presorted set the values come back in ascending order, which makes the
// tree degenerate into a chain.
func Generate(rng *rand.Rand, size, maxValue int, presorted bool) []int {
	values := make([]int, size)

	for i := range values {
		values[i] = rng.IntN(maxValue)
	}

	if presorted {
		slices.Sort(values)
	}

	return values
}
