package system

import (
	"time"

	"github.com/fallcatch/fallcatch/internal/catch"
)

// Clock is the frame loop's time source, read once per frame.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Session is the state shared by the frame systems. Only the frame loop
// goroutine touches it.
type Session struct {
	Game  *catch.Game
	State catch.State
	Input catch.Input // pending input for the next frame
	View  catch.View  // snapshot after the last frame

	quit bool
}

func NewSession(g *catch.Game) *Session {
	s := &Session{Game: g}
	if g != nil {
		s.State = g.NewState()
		s.View = s.State.View()
	}
	return s
}

// RequestQuit asks the host loop to stop after the current frame.
func (s *Session) RequestQuit() { s.quit = true }

// QuitRequested reports whether a quit command was received.
func (s *Session) QuitRequested() bool { return s.quit }
