package curp

import "math/rand/v2"

// Differentiator supplies the random suffix that separates codes generated
// from identical records.
type Differentiator interface {
	Letter() rune
	Digit() rune
}

// RandomDifferentiator draws uniformly from the process-wide generator, which
// is safe for concurrent use.
type RandomDifferentiator struct{}

// Letter returns a uniformly random letter in A-Z.
func (RandomDifferentiator) Letter() rune {
	return 'A' + rune(rand.IntN(26))
}

// Digit returns a uniformly random digit in 0-9.
func (RandomDifferentiator) Digit() rune {
	return '0' + rune(rand.IntN(10))
}
