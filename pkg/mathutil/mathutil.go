// Package mathutil provides small numeric helpers.
package mathutil

import (
	"math"

	"github.com/zhangyunhao116/fastrand"
)

// Mod returns x mod n normalized to [0, n), unlike the built-in remainder
// operator which keeps the sign of x.
func Mod(x, n int) int {
	return ((x % n) + n) % n
}

// RandFloat returns a uniform value in [0, 1], a pseudo-random integer
// divided by its maximum. Not seeded here and not cryptographically secure.
func RandFloat() float32 {
	return float32(fastrand.Uint32()) / float32(math.MaxUint32)
}
