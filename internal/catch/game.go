// Package catch is the state machine of a falling-object catch game:
// spawning, per-frame physics, level progression and the session lifecycle.
// It knows nothing about rendering; the host feeds it Input once per frame
// and forwards the returned events and View to a presenter.
package catch

import "time"

// Game holds the immutable rules of a session plus its collaborators.
// All session data lives in State.
type Game struct {
	tuning Tuning
	rnd    Rand
	curve  Curve
}

type Option func(*Game)

// WithCurve replaces the fixed-step difficulty curve.
func WithCurve(c Curve) Option {
	return func(g *Game) {
		if c != nil {
			g.curve = c
		}
	}
}

// New creates a Game. A nil rnd yields a Game whose Step is a no-op.
func New(t Tuning, rnd Rand, opts ...Option) *Game {
	g := &Game{
		tuning: t,
		rnd:    rnd,
		curve:  FixedStep{IntervalStep: t.IntervalStep, FallStep: t.FallSpeedStep},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) Tuning() Tuning { return g.tuning }

// NewState returns the state of a fresh session at level 1.
func (g *Game) NewState() State {
	return State{
		Level:         1,
		SpawnInterval: g.tuning.SpawnInterval,
		FallSpeed:     g.tuning.FallSpeed,
		Phase:         PhaseRunning,
		NextID:        1,
	}
}

// ready reports whether the collaborators a frame needs are present.
func (g *Game) ready() bool {
	return g != nil && g.rnd != nil && g.curve != nil
}

// Step advances the session by one frame at time now.
//
// Order within a frame:
//  1. pending reset/restart triggers from in
//  2. spawn
//  3. object physics and collision
//  4. basket movement
//  5. progression (miss limit first, then catch quota)
//
// An Over session only reacts to a restart trigger.
func (g *Game) Step(s State, in Input, now time.Time) (State, []Event) {
	if !g.ready() {
		return s, nil
	}
	t := g.tuning
	var events []Event

	s.Basket.MovingLeft = in.MovingLeft
	s.Basket.MovingRight = in.MovingRight

	if in.RestartRequested {
		var ev []Event
		s, ev, _ = g.Restart(s)
		events = append(events, ev...)
	}
	if in.ResetRequested {
		var ev []Event
		s, ev = g.LevelReset(s)
		events = append(events, ev...)
	}

	if s.IsOver() {
		return s, events
	}
	if s.Misses >= t.MissLimit {
		return g.enterOver(s, ReasonMissLimit, events)
	}

	if s.LastSpawn.IsZero() {
		s.LastSpawn = now
	} else if spec, ok := MaybeSpawn(now, s.LastSpawn, s.SpawnInterval, s.IsOver(), g.rnd, t); ok {
		obj := FallingObject{ID: s.NextID, X: spec.X, Y: spec.Y}
		s.NextID++
		s.Objects = append(s.Objects[:len(s.Objects):len(s.Objects)], obj)
		s.LastSpawn = now
		events = append(events, ObjectSpawned{ID: obj.ID, X: obj.X, Y: obj.Y})
	}

	res := StepObjects(s.Objects, s.FallSpeed, BasketBounds(s.Basket, t), t.MissHeight, t.ObjectRadius)
	s.Objects = res.InFlight
	for _, o := range res.Caught {
		s.Catches++
		s.TotalCatches++
		events = append(events, ObjectCaught{ID: o.ID, X: o.X, Y: o.Y})
	}
	for _, o := range res.Missed {
		if s.Misses < t.MissLimit {
			s.Misses++
		}
		events = append(events, ObjectMissed{ID: o.ID, X: o.X, Y: o.Y})
	}

	s.Basket = MoveBasket(s.Basket, t.BasketSpeed, t.BasketBoundary)

	return g.progress(s, events)
}
