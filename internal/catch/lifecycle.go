package catch

// LevelReset is the manual soft reset: counters for the current level are
// zeroed, in-flight objects cleared and the basket recentred. Level,
// difficulty and TotalCatches are kept. It is ignored once the session is
// over; use Restart there.
func (g *Game) LevelReset(s State) (State, []Event) {
	if s.IsOver() {
		return s, nil
	}
	s, events := g.softReset(s, nil)
	return s, append(events, LevelReset{Level: s.Level})
}

// Restart is the hard reset back to level 1. It is only valid from
// PhaseOver; on a running session it returns s unchanged and ok=false.
// Object IDs keep counting so handles stay unique across restarts.
func (g *Game) Restart(s State) (next State, events []Event, ok bool) {
	if !s.IsOver() {
		return s, nil, false
	}
	events = clearObjects(s.Objects, nil)

	next = g.NewState()
	next.NextID = s.NextID
	next.Basket.MovingLeft = s.Basket.MovingLeft
	next.Basket.MovingRight = s.Basket.MovingRight

	return next, append(events, Restarted{}), true
}

func (g *Game) softReset(s State, events []Event) (State, []Event) {
	s.Catches = 0
	s.Misses = 0
	events = clearObjects(s.Objects, events)
	s.Objects = nil
	s.Basket.X = 0
	return s, events
}

// enterOver is the only way into PhaseOver. Entering twice is a no-op.
func (g *Game) enterOver(s State, reason OverReason, events []Event) (State, []Event) {
	if s.IsOver() {
		return s, events
	}
	s.Phase = PhaseOver
	s.OverReason = reason
	events = clearObjects(s.Objects, events)
	s.Objects = nil
	return s, append(events, GameOver{
		Reason:       reason,
		Level:        s.Level,
		TotalCatches: s.TotalCatches,
	})
}

func clearObjects(objects []FallingObject, events []Event) []Event {
	for _, o := range objects {
		events = append(events, ObjectCleared{ID: o.ID})
	}
	return events
}
