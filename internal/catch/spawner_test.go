package catch

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"
)

// fixedRand always returns the same draw.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestMaybeSpawnRespectsInterval(t *testing.T) {
	tun := DefaultTuning()
	tests := []struct {
		name    string
		elapsed time.Duration
		over    bool
		want    bool
	}{
		{"before interval", 2999 * time.Millisecond, false, false},
		{"exactly interval", 3000 * time.Millisecond, false, false},
		{"after interval", 3001 * time.Millisecond, false, true},
		{"over suppresses", time.Minute, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := MaybeSpawn(t0.Add(tt.elapsed), t0, 3000*time.Millisecond, tt.over, fixedRand(0.5), tun)
			if ok != tt.want {
				t.Fatalf("spawned = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestMaybeSpawnPosition(t *testing.T) {
	tun := DefaultTuning()
	now := t0.Add(time.Hour)

	tests := []struct {
		draw  float64
		wantX float64
	}{
		{0, -30},
		{0.5, 0},
		{0.75, 15},
	}
	for _, tt := range tests {
		spec, ok := MaybeSpawn(now, t0, time.Second, false, fixedRand(tt.draw), tun)
		if !ok {
			t.Fatalf("draw %v: expected spawn", tt.draw)
		}
		if !approx(spec.X, tt.wantX) {
			t.Errorf("draw %v: x = %v, want %v", tt.draw, spec.X, tt.wantX)
		}
		if spec.Y != tun.SpawnHeight {
			t.Errorf("draw %v: y = %v, want %v", tt.draw, spec.Y, tun.SpawnHeight)
		}
	}
}

func TestMaybeSpawnRangeRandom(t *testing.T) {
	tun := DefaultTuning()
	rnd := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		spec, _ := MaybeSpawn(t0.Add(time.Hour), t0, 0, false, rnd, tun)
		if spec.X < -tun.SpawnRange || spec.X >= tun.SpawnRange {
			t.Fatalf("x = %v outside [-%v, %v)", spec.X, tun.SpawnRange, tun.SpawnRange)
		}
	}
}

func TestMaybeSpawnNilRand(t *testing.T) {
	if _, ok := MaybeSpawn(t0.Add(time.Hour), t0, 0, false, nil, DefaultTuning()); ok {
		t.Fatal("spawned without a random source")
	}
}

func TestSpawnCadence(t *testing.T) {
	tun := DefaultTuning()
	// Keep the interval fixed for the whole run.
	tun.CatchesPerLevel = 1 << 20
	tun.MissLimit = 1 << 20
	g := New(tun, rand.New(rand.NewPCG(7, 7)))
	s := g.NewState()

	const frame = 16 * time.Millisecond
	var spawns []time.Time
	now := t0
	for i := 0; i < 2000; i++ {
		var events []Event
		s, events = g.Step(s, Input{}, now)
		for _, ev := range events {
			if _, ok := ev.(ObjectSpawned); ok {
				spawns = append(spawns, now)
			}
		}
		now = now.Add(frame)
	}

	if len(spawns) < 5 {
		t.Fatalf("got %d spawns in %v, want at least 5", len(spawns), 2000*frame)
	}
	for i := 1; i < len(spawns); i++ {
		if gap := spawns[i].Sub(spawns[i-1]); gap < tun.SpawnInterval {
			t.Fatalf("spawns %d and %d are %v apart, want >= %v", i-1, i, gap, tun.SpawnInterval)
		}
	}
}

func TestFirstFrameDoesNotSpawn(t *testing.T) {
	g := New(DefaultTuning(), fixedRand(0.5))
	s, events := g.Step(g.NewState(), Input{}, t0)
	if len(events) != 0 {
		t.Fatalf("first frame produced %d events, want 0", len(events))
	}
	if !s.LastSpawn.Equal(t0) {
		t.Fatalf("LastSpawn = %v, want %v", s.LastSpawn, t0)
	}
}
