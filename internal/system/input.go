package system

import (
	"time"

	coresys "github.com/fallcatch/fallcatch/internal/core/system"
	"github.com/fallcatch/fallcatch/internal/input"
	"go.uber.org/zap"
)

// InputSystem drains the command queue into the session's pending input.
// Phase 0 (Input).
type InputSystem struct {
	session    *Session
	cmds       <-chan input.Command
	maxPerTick int
	log        *zap.Logger
}

func NewInputSystem(session *Session, cmds <-chan input.Command, maxPerTick int, log *zap.Logger) *InputSystem {
	if maxPerTick < 1 {
		maxPerTick = 1
	}
	return &InputSystem{
		session:    session,
		cmds:       cmds,
		maxPerTick: maxPerTick,
		log:        log,
	}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(_ time.Duration) {
	for i := 0; i < s.maxPerTick; i++ {
		select {
		case cmd, ok := <-s.cmds:
			if !ok {
				s.cmds = nil
				return
			}
			s.apply(cmd)
		default:
			return
		}
	}
}

func (s *InputSystem) apply(cmd input.Command) {
	s.log.Debug("input", zap.Stringer("command", cmd))
	if cmd == input.CmdQuit {
		s.session.RequestQuit()
		return
	}
	cmd.Apply(&s.session.Input)
}
