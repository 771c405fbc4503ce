package service

import "math/rand"

// Rand is the randomness source used for shuffling and tie-break fallback.
type Rand interface {
	Intn(n int) int
}

// globalRand uses the package-level math/rand source, which is safe for
// concurrent use.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// Shuffle returns a random permutation of items using Fisher-Yates over a
// copy. The input slice is left untouched.
func Shuffle[T any](r Rand, items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}
