package catch

import "time"

// Event is something a frame or lifecycle transition produced that the
// presentation layer may want to react to. The core never disposes visuals
// itself; it reports removals and lets the presenter clean up.
type Event interface {
	event()
}

type ObjectSpawned struct {
	ID   ObjectID
	X, Y float64
}

type ObjectCaught struct {
	ID   ObjectID
	X, Y float64
}

type ObjectMissed struct {
	ID   ObjectID
	X, Y float64
}

// ObjectCleared reports an object removed by a bulk clear (level reset,
// restart or game over) rather than by catch or miss.
type ObjectCleared struct {
	ID ObjectID
}

type LevelAdvanced struct {
	Level         int
	SpawnInterval time.Duration
	FallSpeed     float64
}

// LevelReset reports a manual soft reset.
type LevelReset struct {
	Level int
}

type GameOver struct {
	Reason       OverReason
	Level        int
	TotalCatches int
}

type Restarted struct{}

func (ObjectSpawned) event() {}
func (ObjectCaught) event()  {}
func (ObjectMissed) event()  {}
func (ObjectCleared) event() {}
func (LevelAdvanced) event() {}
func (LevelReset) event()    {}
func (GameOver) event()      {}
func (Restarted) event()     {}
