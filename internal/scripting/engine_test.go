package scripting

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fallcatch/fallcatch/internal/catch"
	"go.uber.org/zap/zaptest"
)

var fixed = catch.FixedStep{IntervalStep: 200 * time.Millisecond, FallStep: 0.02}

func newEngine(t *testing.T, script string) *Engine {
	t.Helper()
	dir := t.TempDir()
	if script != "" {
		sub := filepath.Join(dir, "difficulty")
		if err := os.MkdirAll(sub, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(sub, "curve.lua"), []byte(script), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	e, err := NewEngine(dir, fixed, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

func TestNextFromScript(t *testing.T) {
	e := newEngine(t, `
function next_level(level, interval_ms, fall_speed)
  return { interval_ms = interval_ms - 100 * level, fall_speed = fall_speed * 2 }
end
`)
	if !e.HasCurve() {
		t.Fatal("next_level not loaded")
	}
	interval, speed := e.Next(2, 3000*time.Millisecond, 0.1)
	if interval != 2800*time.Millisecond {
		t.Errorf("interval = %v, want 2.8s", interval)
	}
	if math.Abs(speed-0.2) > 1e-9 {
		t.Errorf("speed = %v, want 0.2", speed)
	}
}

func TestNextPartialTableKeepsFallback(t *testing.T) {
	e := newEngine(t, `
function next_level(level, interval_ms, fall_speed)
  return { fall_speed = 1 }
end
`)
	interval, speed := e.Next(2, 3000*time.Millisecond, 0.1)
	if interval != 2800*time.Millisecond || speed != 1 {
		t.Fatalf("got %v / %v, want 2.8s / 1", interval, speed)
	}
}

func TestNextFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"no scripts", ""},
		{"runtime error", "function next_level() error('boom') end"},
		{"non-table", "function next_level() return 5 end"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, tt.script)
			interval, speed := e.Next(2, 3000*time.Millisecond, 0.1)
			if interval != 2800*time.Millisecond || math.Abs(speed-0.12) > 1e-9 {
				t.Fatalf("got %v / %v, want fixed-step 2.8s / 0.12", interval, speed)
			}
		})
	}
}

func TestNewEngineSyntaxError(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "difficulty")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "bad.lua"), []byte("function ("), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewEngine(dir, fixed, zaptest.NewLogger(t)); err == nil {
		t.Fatal("expected load error")
	}
}

func TestEngineDrivesGame(t *testing.T) {
	e := newEngine(t, `
function next_level(level, interval_ms, fall_speed)
  return { interval_ms = 1000, fall_speed = 0.5 }
end
`)
	tun := catch.DefaultTuning()
	g := catch.New(tun, constRand{}, catch.WithCurve(e))
	s := g.NewState()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.LastSpawn = now
	s.Catches = tun.CatchesPerLevel

	s, _ = g.Step(s, catch.Input{}, now)
	if s.Level != 2 || s.SpawnInterval != time.Second || s.FallSpeed != 0.5 {
		t.Fatalf("level=%d interval=%v speed=%v", s.Level, s.SpawnInterval, s.FallSpeed)
	}
}

type constRand struct{}

func (constRand) Float64() float64 { return 0.5 }

func TestShippedCurveMatchesFixedStep(t *testing.T) {
	e, err := NewEngine("../../scripts", fixed, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	defer e.Close()
	if !e.HasCurve() {
		t.Fatal("shipped script defines no next_level")
	}

	interval, speed := 3000*time.Millisecond, 0.1
	for level := 2; level <= 10; level++ {
		wantI, wantS := fixed.Next(level, interval, speed)
		gotI, gotS := e.Next(level, interval, speed)
		if gotI != wantI || math.Abs(gotS-wantS) > 1e-12 {
			t.Fatalf("level %d: got (%v, %v), want (%v, %v)", level, gotI, gotS, wantI, wantS)
		}
		interval, speed = wantI, wantS
	}
}
