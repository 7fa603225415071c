// Package replay runs scripted input against the state machine without a
// renderer or wall clock. Scripts are YAML so they can be written by hand and
// kept next to the tests that use them.
package replay

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/fallcatch/fallcatch/internal/catch"
	"github.com/fallcatch/fallcatch/internal/input"
	"gopkg.in/yaml.v3"
)

const defaultFrameMs = 16

// ErrExpectation is wrapped by Check when a run does not meet the script's
// expectations.
var ErrExpectation = errors.New("replay expectation failed")

// Step feeds one command at the start of the given frame.
type Step struct {
	Frame   int    `yaml:"frame"`
	Command string `yaml:"command"`
}

// Expect lists optional assertions on the final state.
type Expect struct {
	Over            *bool    `yaml:"over"`
	Level           int      `yaml:"level"`             // 0 = not checked
	MinTotalCatches int      `yaml:"min_total_catches"` // 0 = not checked
	MaxMisses       *int     `yaml:"max_misses"`
	BasketX         *float64 `yaml:"basket_x"`
}

type Script struct {
	Name    string `yaml:"name"`
	Seed    uint64 `yaml:"seed"`
	FrameMs int    `yaml:"frame_ms"`
	Frames  int    `yaml:"frames"`
	Steps   []Step `yaml:"steps"`
	Expect  Expect `yaml:"expect"`

	parsed map[int][]input.Command
}

// Load reads and validates a replay script.
func Load(path string) (*Script, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read replay: %w", err)
	}
	sc, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("replay %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a replay script from YAML.
func Parse(raw []byte) (*Script, error) {
	var sc Script
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("parse replay: %w", err)
	}
	if sc.FrameMs <= 0 {
		sc.FrameMs = defaultFrameMs
	}
	if sc.Frames <= 0 {
		return nil, fmt.Errorf("frames must be positive, got %d", sc.Frames)
	}
	sc.parsed = make(map[int][]input.Command, len(sc.Steps))
	for i, st := range sc.Steps {
		cmd, err := input.Parse(st.Command)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if st.Frame < 0 || st.Frame >= sc.Frames {
			return nil, fmt.Errorf("step %d: frame %d outside [0, %d)", i, st.Frame, sc.Frames)
		}
		sc.parsed[st.Frame] = append(sc.parsed[st.Frame], cmd)
	}
	return &sc, nil
}

// Result summarises a run.
type Result struct {
	State  catch.State
	Frames int // frames actually stepped; a quit command stops early
	Counts map[string]int
}

// NewGame builds the Game a script runs against: tuning t and a PCG source
// seeded from the script, so the same script always plays out the same way.
func (sc *Script) NewGame(t catch.Tuning, opts ...catch.Option) *catch.Game {
	return catch.New(t, rand.New(rand.NewPCG(sc.Seed, sc.Seed)), opts...)
}

// Run plays the script on g starting at start.
func (sc *Script) Run(g *catch.Game, start time.Time) Result {
	res := Result{State: g.NewState(), Counts: make(map[string]int)}
	var in catch.Input
	frame := time.Duration(sc.FrameMs) * time.Millisecond

	for f := 0; f < sc.Frames; f++ {
		quit := false
		for _, cmd := range sc.parsed[f] {
			if cmd == input.CmdQuit {
				quit = true
				break
			}
			cmd.Apply(&in)
		}
		if quit {
			break
		}

		var events []catch.Event
		res.State, events = g.Step(res.State, in, start.Add(time.Duration(f)*frame))
		input.ClearTriggers(&in)
		for _, ev := range events {
			res.Counts[kind(ev)]++
		}
		res.Frames++
	}
	return res
}

// Check compares the result against the script's expectations.
func (r Result) Check(e Expect) error {
	var errs []error
	s := r.State
	if e.Over != nil && s.IsOver() != *e.Over {
		errs = append(errs, fmt.Errorf("over = %v, want %v", s.IsOver(), *e.Over))
	}
	if e.Level != 0 && s.Level != e.Level {
		errs = append(errs, fmt.Errorf("level = %d, want %d", s.Level, e.Level))
	}
	if s.TotalCatches < e.MinTotalCatches {
		errs = append(errs, fmt.Errorf("total catches = %d, want >= %d", s.TotalCatches, e.MinTotalCatches))
	}
	if e.MaxMisses != nil && s.Misses > *e.MaxMisses {
		errs = append(errs, fmt.Errorf("misses = %d, want <= %d", s.Misses, *e.MaxMisses))
	}
	if e.BasketX != nil && s.Basket.X != *e.BasketX {
		errs = append(errs, fmt.Errorf("basket x = %v, want %v", s.Basket.X, *e.BasketX))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrExpectation, errors.Join(errs...))
}

func kind(ev catch.Event) string {
	switch ev.(type) {
	case catch.ObjectSpawned:
		return "spawned"
	case catch.ObjectCaught:
		return "caught"
	case catch.ObjectMissed:
		return "missed"
	case catch.ObjectCleared:
		return "cleared"
	case catch.LevelAdvanced:
		return "level_advanced"
	case catch.LevelReset:
		return "level_reset"
	case catch.GameOver:
		return "game_over"
	case catch.Restarted:
		return "restarted"
	}
	return "unknown"
}
