// Package dice provides the randomness abstraction used for loot, gold, and
// any other chance-based combat outcome.
package dice

import (
	"crypto/rand"
	"math/big"
)

// Source is the randomness provider.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Between returns a uniform int in the inclusive range [lo, hi].
//
// Precondition: lo <= hi.
// Postcondition: lo <= result <= hi; src is not consulted when lo == hi.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

type cryptoSource struct{}

// NewCryptoSource returns the production Source, drawing from crypto/rand.
func NewCryptoSource() Source {
	return cryptoSource{}
}

// Intn panics when n <= 0 or crypto/rand cannot be read; neither is
// recoverable by a caller rolling loot.
func (cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(v.Int64())
}
