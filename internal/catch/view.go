package catch

import "fmt"

// View is the read-only snapshot a presenter draws from. Objects is a copy;
// changing it does not affect the session.
type View struct {
	Objects      []FallingObject
	BasketX      float64
	Catches      int
	Misses       int
	Level        int
	TotalCatches int
	Phase        Phase
	OverReason   OverReason
}

func (s State) View() View {
	objs := make([]FallingObject, len(s.Objects))
	copy(objs, s.Objects)
	return View{
		Objects:      objs,
		BasketX:      s.Basket.X,
		Catches:      s.Catches,
		Misses:       s.Misses,
		Level:        s.Level,
		TotalCatches: s.TotalCatches,
		Phase:        s.Phase,
		OverReason:   s.OverReason,
	}
}

func (v View) CatchText() string { return fmt.Sprintf("Catches: %d", v.Catches) }

func (v View) MissText() string { return fmt.Sprintf("Misses: %d", v.Misses) }

// LevelText is replaced by the game over banner once the session ends.
func (v View) LevelText() string {
	if v.Phase == PhaseOver {
		return "GAME OVER!"
	}
	return fmt.Sprintf("Level %d", v.Level)
}

// FinalScoreText is empty while the session is running.
func (v View) FinalScoreText() string {
	if v.Phase != PhaseOver {
		return ""
	}
	return fmt.Sprintf("Final Score: %d Catches", v.TotalCatches)
}

// HUD bundles the overlay strings for one frame.
type HUD struct {
	Catch      string
	Miss       string
	Level      string
	FinalScore string
}

func (v View) HUD() HUD {
	return HUD{
		Catch:      v.CatchText(),
		Miss:       v.MissText(),
		Level:      v.LevelText(),
		FinalScore: v.FinalScoreText(),
	}
}
