package localization

import (
	"math/rand"
	"sync"
	"time"
)

// Picker selects one variant index out of n. Production code uses a
// seeded random source; tests substitute a fixed picker.
type Picker interface {
	Intn(n int) int
}

type randomPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomPicker returns a time-seeded Picker safe for concurrent use.
func NewRandomPicker() Picker {
	return &randomPicker{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (p *randomPicker) Intn(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Intn(n)
}

// FixedPicker always returns the same index, clamped to the variant
// count. Used by tests to make variant selection deterministic.
type FixedPicker int

func (f FixedPicker) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}
