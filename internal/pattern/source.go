package pattern

import (
	"math/rand"
	"time"
)

// NewSource returns a seeded random source. A zero seed draws one from the
// clock so each process gets its own layout.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
