package system

import (
	"time"

	"github.com/fallcatch/fallcatch/internal/catch"
	coresys "github.com/fallcatch/fallcatch/internal/core/system"
	"github.com/fallcatch/fallcatch/internal/core/event"
	"github.com/fallcatch/fallcatch/internal/input"
	"go.uber.org/zap"
)

// FrameSystem runs one step of the state machine per frame and queues the
// resulting events on the bus. Phase 1 (Update).
type FrameSystem struct {
	session *Session
	clock   Clock
	bus     *event.Bus
	log     *zap.Logger
}

func NewFrameSystem(session *Session, clock Clock, bus *event.Bus, log *zap.Logger) *FrameSystem {
	return &FrameSystem{session: session, clock: clock, bus: bus, log: log}
}

func (s *FrameSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *FrameSystem) Update(_ time.Duration) {
	sess := s.session
	if sess.Game == nil || s.clock == nil {
		return
	}

	next, events := sess.Game.Step(sess.State, sess.Input, s.clock.Now())
	sess.State = next
	sess.View = next.View()
	input.ClearTriggers(&sess.Input)

	for _, ev := range events {
		s.trace(ev)
		event.EmitAny(s.bus, ev)
	}
}

func (s *FrameSystem) trace(ev catch.Event) {
	switch e := ev.(type) {
	case catch.LevelAdvanced:
		s.log.Info("level advanced",
			zap.Int("level", e.Level),
			zap.Duration("spawn_interval", e.SpawnInterval),
			zap.Float64("fall_speed", e.FallSpeed))
	case catch.GameOver:
		s.log.Info("game over",
			zap.Stringer("reason", e.Reason),
			zap.Int("level", e.Level),
			zap.Int("total_catches", e.TotalCatches))
	case catch.Restarted:
		s.log.Info("session restarted")
	case catch.LevelReset:
		s.log.Info("level reset", zap.Int("level", e.Level))
	}
}
