package catch

import "time"

// Rand is the randomness source the spawner draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// ObjectSpec describes an object the caller should instantiate.
type ObjectSpec struct {
	X, Y float64
}

// MaybeSpawn decides whether a new object appears this frame. It fires only
// when strictly more than interval has elapsed since lastSpawn, and never
// while the session is over. The caller tracks the object and moves
// lastSpawn forward.
func MaybeSpawn(now, lastSpawn time.Time, interval time.Duration, over bool, rnd Rand, t Tuning) (ObjectSpec, bool) {
	if over || rnd == nil {
		return ObjectSpec{}, false
	}
	if now.Sub(lastSpawn) <= interval {
		return ObjectSpec{}, false
	}
	return ObjectSpec{
		X: rnd.Float64()*2*t.SpawnRange - t.SpawnRange,
		Y: t.SpawnHeight,
	}, true
}
