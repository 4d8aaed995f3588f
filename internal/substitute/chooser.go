package substitute

import (
	"math/rand"
	"time"
)

// Chooser picks an index in [0, n).
type Chooser interface {
	Choose(n int) int
}

// RandChooser chooses uniformly with its own seeded source.
type RandChooser struct {
	rng *rand.Rand
}

// NewRandChooser seeds a chooser; seed 0 seeds from the clock.
func NewRandChooser(seed int64) *RandChooser {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandChooser{rng: rand.New(rand.NewSource(seed))}
}

func (c *RandChooser) Choose(n int) int {
	return c.rng.Intn(n)
}
