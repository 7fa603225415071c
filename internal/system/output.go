package system

import (
	"time"

	"github.com/fallcatch/fallcatch/internal/catch"
	coresys "github.com/fallcatch/fallcatch/internal/core/system"
	"github.com/fallcatch/fallcatch/internal/core/event"
	"go.uber.org/zap"
)

// HUDSystem derives the overlay strings from the latest view and logs them
// when they change. Phase 2 (PostUpdate).
type HUDSystem struct {
	session *Session
	hud     catch.HUD
	log     *zap.Logger
}

func NewHUDSystem(session *Session, log *zap.Logger) *HUDSystem {
	return &HUDSystem{session: session, hud: session.View.HUD(), log: log}
}

func (s *HUDSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *HUDSystem) Update(_ time.Duration) {
	hud := s.session.View.HUD()
	if hud == s.hud {
		return
	}
	s.hud = hud
	fields := []zap.Field{
		zap.String("catches", hud.Catch),
		zap.String("misses", hud.Miss),
		zap.String("level", hud.Level),
	}
	if hud.FinalScore != "" {
		fields = append(fields, zap.String("final", hud.FinalScore))
	}
	s.log.Info("hud", fields...)
}

// HUD returns the strings computed on the last update.
func (s *HUDSystem) HUD() catch.HUD { return s.hud }

// DispatchSystem delivers the frame's events to bus subscribers.
// Phase 3 (Output).
type DispatchSystem struct {
	bus *event.Bus
}

func NewDispatchSystem(bus *event.Bus) *DispatchSystem {
	return &DispatchSystem{bus: bus}
}

func (s *DispatchSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *DispatchSystem) Update(_ time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}
