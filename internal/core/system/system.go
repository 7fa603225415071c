package system

import "time"

// Phase defines execution ordering within a single frame.
type Phase int

const (
	PhaseInput      Phase = iota // 0: drain input queue, apply triggers
	PhaseUpdate                  // 1: spawn, physics, progression
	PhasePostUpdate              // 2: derived state (HUD)
	PhaseOutput                  // 3: deliver events to the presenter
	PhaseCleanup                 // 4: end-of-frame housekeeping
)

// System is the interface every frame system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
