package system

import (
	"testing"
	"time"

	"github.com/fallcatch/fallcatch/internal/catch"
	coresys "github.com/fallcatch/fallcatch/internal/core/system"
	"github.com/fallcatch/fallcatch/internal/core/event"
	"github.com/fallcatch/fallcatch/internal/input"
	"github.com/fallcatch/fallcatch/internal/present"
	"go.uber.org/zap/zaptest"
)

// fakeClock advances by a fixed step every time it is read.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	now := c.now
	c.now = c.now.Add(c.step)
	return now
}

type halfRand struct{}

func (halfRand) Float64() float64 { return 0.5 }

type host struct {
	session *Session
	runner  *coresys.Runner
	cmds    chan input.Command
	tracker *present.Tracker
	hud     *HUDSystem
}

func newHost(t *testing.T, tun catch.Tuning) *host {
	t.Helper()
	log := zaptest.NewLogger(t)
	bus := event.NewBus()
	sess := NewSession(catch.New(tun, halfRand{}))
	cmds := make(chan input.Command, 16)
	tracker := present.NewTracker(bus, nil, log)
	hud := NewHUDSystem(sess, log)

	r := coresys.NewRunner()
	r.Register(NewCleanupSystem(sess, tracker))
	r.Register(NewDispatchSystem(bus))
	r.Register(hud)
	r.Register(NewFrameSystem(sess, &fakeClock{
		now:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		step: 16 * time.Millisecond,
	}, bus, log))
	r.Register(NewInputSystem(sess, cmds, 8, log))

	return &host{session: sess, runner: r, cmds: cmds, tracker: tracker, hud: hud}
}

func (h *host) frames(n int) {
	for i := 0; i < n; i++ {
		h.runner.Tick(16 * time.Millisecond)
	}
}

func TestHostSpawnsAndTracks(t *testing.T) {
	h := newHost(t, catch.DefaultTuning())

	// First spawn happens once more than 3s has elapsed: frame 188.
	h.frames(190)

	if got := len(h.session.State.Objects); got != 1 {
		t.Fatalf("core objects = %d, want 1", got)
	}
	if h.tracker.Visible() != 1 {
		t.Fatalf("tracked objects = %d, want 1", h.tracker.Visible())
	}
	if len(h.session.View.Objects) != 1 {
		t.Fatalf("view objects = %d, want 1", len(h.session.View.Objects))
	}
}

func TestHostCatchesCentredObject(t *testing.T) {
	h := newHost(t, catch.DefaultTuning())

	// halfRand spawns every object at x=0, straight into the idle basket.
	h.frames(188 + 300)

	if h.session.State.TotalCatches != 1 {
		t.Fatalf("total catches = %d, want 1", h.session.State.TotalCatches)
	}
	// The second object (spawned at frame 376) is still falling.
	if h.tracker.Visible() != 1 || h.tracker.Disposed() != 1 {
		t.Fatalf("tracker visible=%d disposed=%d", h.tracker.Visible(), h.tracker.Disposed())
	}
	if got := h.hud.HUD().Catch; got != "Catches: 1" {
		t.Fatalf("hud catch = %q", got)
	}
}

func TestHostInputMovesBasket(t *testing.T) {
	h := newHost(t, catch.DefaultTuning())

	h.cmds <- input.CmdRightDown
	h.frames(10)
	if got := h.session.State.Basket.X; got != 5 {
		t.Fatalf("basket x = %v, want 5", got)
	}

	h.cmds <- input.CmdRightUp
	h.frames(10)
	if got := h.session.State.Basket.X; got != 5 {
		t.Fatalf("basket kept moving after release: x = %v", got)
	}
}

func TestHostRestartAndQuit(t *testing.T) {
	h := newHost(t, catch.DefaultTuning())
	h.session.State.Misses = 2
	h.session.State.TotalCatches = 6
	h.frames(1)
	if !h.session.State.IsOver() {
		t.Fatal("expected game over")
	}
	if got := h.hud.HUD().Level; got != "GAME OVER!" {
		t.Fatalf("hud level = %q", got)
	}

	h.cmds <- input.CmdRestart
	h.frames(1)
	if h.session.State.IsOver() || h.session.State.TotalCatches != 0 {
		t.Fatalf("restart not applied: %+v", h.session.State)
	}
	if h.session.Input.RestartRequested {
		t.Fatal("restart trigger left pending")
	}

	h.cmds <- input.CmdQuit
	h.frames(1)
	if !h.session.QuitRequested() {
		t.Fatal("quit not recorded")
	}
}

func TestInputSystemHonoursLimit(t *testing.T) {
	sess := NewSession(catch.New(catch.DefaultTuning(), halfRand{}))
	cmds := make(chan input.Command, 4)
	cmds <- input.CmdLeftDown
	cmds <- input.CmdReset
	cmds <- input.CmdRightDown

	s := NewInputSystem(sess, cmds, 2, zaptest.NewLogger(t))
	s.Update(0)
	if sess.Input.MovingRight || !sess.Input.ResetRequested {
		t.Fatalf("after first drain: %+v", sess.Input)
	}
	s.Update(0)
	if !sess.Input.MovingRight {
		t.Fatal("second drain missed a command")
	}

	close(cmds)
	s.Update(0)
	s.Update(0)
}

func TestFrameSystemWithoutGame(t *testing.T) {
	sess := NewSession(nil)
	fs := NewFrameSystem(sess, SystemClock{}, event.NewBus(), zaptest.NewLogger(t))
	fs.Update(0)
	if sess.State.Level != 0 {
		t.Fatalf("frame ran without a game: %+v", sess.State)
	}
}
