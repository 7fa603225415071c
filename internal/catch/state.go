package catch

import "time"

// ObjectID is an opaque handle for a falling object. IDs are never reused
// within a session; 0 is never issued.
type ObjectID uint64

type FallingObject struct {
	ID ObjectID
	X  float64 // fixed at spawn
	Y  float64
}

// Basket is the player-controlled catcher. The intent flags are written by the
// input collaborator and read once per frame.
type Basket struct {
	X           float64
	MovingLeft  bool
	MovingRight bool
}

// Phase is the top-level session state.
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	}
	return "unknown"
}

// OverReason records why a session entered PhaseOver.
type OverReason uint8

const (
	ReasonNone      OverReason = iota
	ReasonMissLimit            // too many misses in one level
	ReasonCompleted            // catch quota met on the final level
)

func (r OverReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonMissLimit:
		return "miss_limit"
	case ReasonCompleted:
		return "completed"
	}
	return "unknown"
}

// State is the whole session. It is a plain value: Game methods take a State
// and return the next one, so a recorded input sequence replays exactly.
type State struct {
	Catches      int // since last level reset
	TotalCatches int // session lifetime
	Misses       int // since last level reset
	Level        int

	SpawnInterval time.Duration
	FallSpeed     float64

	Phase      Phase
	OverReason OverReason

	// LastSpawn is zero until the first running frame stamps it.
	LastSpawn time.Time
	NextID    ObjectID

	Basket  Basket
	Objects []FallingObject
}

// IsOver reports whether the session is in the terminal phase.
func (s State) IsOver() bool { return s.Phase == PhaseOver }

// Input is what the input collaborator hands the core each frame.
// ResetRequested and RestartRequested are one-shot triggers.
type Input struct {
	MovingLeft       bool
	MovingRight      bool
	ResetRequested   bool
	RestartRequested bool
}
