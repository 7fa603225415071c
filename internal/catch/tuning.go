package catch

import "time"

// Default gameplay constants. World units are the renderer's; the basket sits
// near the bottom of a 30-unit tall play field centred on the origin.
const (
	DefaultTotalLevels      = 10
	DefaultMissLimit        = 2
	DefaultCatchesPerLevel  = 2
	DefaultSpawnInterval    = 3000 * time.Millisecond
	DefaultIntervalStep     = 200 * time.Millisecond
	DefaultMinSpawnInterval = 200 * time.Millisecond
	DefaultFallSpeed        = 0.1  // units per frame
	DefaultFallSpeedStep    = 0.02 // added per level
	DefaultBasketSpeed      = 0.5
	DefaultBasketBoundary   = 30.0
	DefaultBasketWidth      = 5.0
	DefaultBasketHeight     = 0.5
	DefaultBasketY          = -15.0
	DefaultObjectRadius     = 0.5
	DefaultSpawnHeight      = 15.0
	DefaultSpawnRange       = 30.0 // x is drawn from [-range, +range)
	DefaultMissHeight       = -17.0
)

// Tuning holds every constant the state machine consults. A Game never
// mutates its Tuning; per-session difficulty lives in State.
type Tuning struct {
	TotalLevels      int
	MissLimit        int
	CatchesPerLevel  int
	SpawnInterval    time.Duration
	IntervalStep     time.Duration
	MinSpawnInterval time.Duration
	FallSpeed        float64
	FallSpeedStep    float64

	BasketSpeed    float64
	BasketBoundary float64
	BasketWidth    float64
	BasketHeight   float64
	BasketY        float64

	ObjectRadius float64
	SpawnHeight  float64
	SpawnRange   float64
	MissHeight   float64
}

// DefaultTuning returns the classic ten-level setup.
func DefaultTuning() Tuning {
	return Tuning{
		TotalLevels:      DefaultTotalLevels,
		MissLimit:        DefaultMissLimit,
		CatchesPerLevel:  DefaultCatchesPerLevel,
		SpawnInterval:    DefaultSpawnInterval,
		IntervalStep:     DefaultIntervalStep,
		MinSpawnInterval: DefaultMinSpawnInterval,
		FallSpeed:        DefaultFallSpeed,
		FallSpeedStep:    DefaultFallSpeedStep,
		BasketSpeed:      DefaultBasketSpeed,
		BasketBoundary:   DefaultBasketBoundary,
		BasketWidth:      DefaultBasketWidth,
		BasketHeight:     DefaultBasketHeight,
		BasketY:          DefaultBasketY,
		ObjectRadius:     DefaultObjectRadius,
		SpawnHeight:      DefaultSpawnHeight,
		SpawnRange:       DefaultSpawnRange,
		MissHeight:       DefaultMissHeight,
	}
}

// Curve computes the difficulty of a freshly entered level.
// level is the new level number; interval and fallSpeed are the values
// carried over from the level just completed.
type Curve interface {
	Next(level int, interval time.Duration, fallSpeed float64) (time.Duration, float64)
}

// FixedStep shortens the spawn interval and raises the fall speed by constant
// amounts on every level-advance.
type FixedStep struct {
	IntervalStep time.Duration
	FallStep     float64
}

func (f FixedStep) Next(_ int, interval time.Duration, fallSpeed float64) (time.Duration, float64) {
	return interval - f.IntervalStep, fallSpeed + f.FallStep
}
