package catch

// progress applies the end-of-frame transitions of a running session.
// The miss limit wins over the catch quota when both are reached together.
func (g *Game) progress(s State, events []Event) (State, []Event) {
	switch {
	case s.IsOver():
		return s, events
	case s.Misses >= g.tuning.MissLimit:
		return g.enterOver(s, ReasonMissLimit, events)
	case s.Catches >= g.tuning.CatchesPerLevel:
		return g.advanceLevel(s, events)
	}
	return s, events
}

// advanceLevel moves to the next level, or finishes the session when the
// quota was met on the last one. Level never exceeds TotalLevels.
func (g *Game) advanceLevel(s State, events []Event) (State, []Event) {
	if s.Level >= g.tuning.TotalLevels {
		return g.enterOver(s, ReasonCompleted, events)
	}
	s.Level++
	s, events = g.softReset(s, events)

	interval, speed := g.curve.Next(s.Level, s.SpawnInterval, s.FallSpeed)
	if interval < g.tuning.MinSpawnInterval {
		interval = g.tuning.MinSpawnInterval
	}
	s.SpawnInterval = interval
	s.FallSpeed = speed

	return s, append(events, LevelAdvanced{
		Level:         s.Level,
		SpawnInterval: s.SpawnInterval,
		FallSpeed:     s.FallSpeed,
	})
}
