package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fallcatch/fallcatch/internal/catch"
)

type Config struct {
	Game    GameConfig    `toml:"game"`
	Loop    LoopConfig    `toml:"loop"`
	Script  ScriptConfig  `toml:"script"`
	Input   InputConfig   `toml:"input"`
	Logging LoggingConfig `toml:"logging"`
}

// GameConfig mirrors catch.Tuning. Durations are whole milliseconds.
type GameConfig struct {
	TotalLevels        int     `toml:"total_levels"`
	MissLimit          int     `toml:"miss_limit"`
	CatchesPerLevel    int     `toml:"catches_per_level"`
	SpawnIntervalMs    int     `toml:"spawn_interval_ms"`
	IntervalStepMs     int     `toml:"interval_step_ms"`
	MinSpawnIntervalMs int     `toml:"min_spawn_interval_ms"`
	FallSpeed          float64 `toml:"fall_speed"`      // units per frame
	FallSpeedStep      float64 `toml:"fall_speed_step"` // added per level
	BasketSpeed        float64 `toml:"basket_speed"`
	BasketBoundary     float64 `toml:"basket_boundary"`
	BasketWidth        float64 `toml:"basket_width"`
	BasketHeight       float64 `toml:"basket_height"`
	BasketY            float64 `toml:"basket_y"`
	ObjectRadius       float64 `toml:"object_radius"`
	SpawnHeight        float64 `toml:"spawn_height"`
	SpawnRange         float64 `toml:"spawn_range"`
	MissHeight         float64 `toml:"miss_height"`
	Seed               uint64  `toml:"seed"` // 0 = seed from the clock
}

type LoopConfig struct {
	FrameRate time.Duration `toml:"frame_rate"`
}

type ScriptConfig struct {
	Dir string `toml:"dir"` // empty = fixed-step difficulty
}

type InputConfig struct {
	QueueSize int `toml:"queue_size"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults returns the built-in configuration; Load overlays the file on it.
func Defaults() *Config {
	t := catch.DefaultTuning()
	return &Config{
		Game: GameConfig{
			TotalLevels:        t.TotalLevels,
			MissLimit:          t.MissLimit,
			CatchesPerLevel:    t.CatchesPerLevel,
			SpawnIntervalMs:    int(t.SpawnInterval / time.Millisecond),
			IntervalStepMs:     int(t.IntervalStep / time.Millisecond),
			MinSpawnIntervalMs: int(t.MinSpawnInterval / time.Millisecond),
			FallSpeed:          t.FallSpeed,
			FallSpeedStep:      t.FallSpeedStep,
			BasketSpeed:        t.BasketSpeed,
			BasketBoundary:     t.BasketBoundary,
			BasketWidth:        t.BasketWidth,
			BasketHeight:       t.BasketHeight,
			BasketY:            t.BasketY,
			ObjectRadius:       t.ObjectRadius,
			SpawnHeight:        t.SpawnHeight,
			SpawnRange:         t.SpawnRange,
			MissHeight:         t.MissHeight,
		},
		Loop: LoopConfig{
			FrameRate: 16 * time.Millisecond,
		},
		Input: InputConfig{
			QueueSize: 64,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate rejects settings the state machine cannot run with.
func (c *Config) Validate() error {
	g := c.Game
	var errs []error
	if g.TotalLevels < 1 {
		errs = append(errs, fmt.Errorf("game.total_levels must be >= 1, got %d", g.TotalLevels))
	}
	if g.MissLimit < 1 {
		errs = append(errs, fmt.Errorf("game.miss_limit must be >= 1, got %d", g.MissLimit))
	}
	if g.CatchesPerLevel < 1 {
		errs = append(errs, fmt.Errorf("game.catches_per_level must be >= 1, got %d", g.CatchesPerLevel))
	}
	if g.SpawnIntervalMs < 0 || g.MinSpawnIntervalMs < 0 {
		errs = append(errs, errors.New("game spawn intervals must not be negative"))
	}
	if g.BasketBoundary < 0 {
		errs = append(errs, fmt.Errorf("game.basket_boundary must not be negative, got %v", g.BasketBoundary))
	}
	if c.Loop.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("loop.frame_rate must be positive, got %s", c.Loop.FrameRate))
	}
	if c.Input.QueueSize < 1 {
		errs = append(errs, fmt.Errorf("input.queue_size must be >= 1, got %d", c.Input.QueueSize))
	}
	return errors.Join(errs...)
}

// Tuning converts the game section into the state machine's constants.
func (c *Config) Tuning() catch.Tuning {
	g := c.Game
	return catch.Tuning{
		TotalLevels:      g.TotalLevels,
		MissLimit:        g.MissLimit,
		CatchesPerLevel:  g.CatchesPerLevel,
		SpawnInterval:    time.Duration(g.SpawnIntervalMs) * time.Millisecond,
		IntervalStep:     time.Duration(g.IntervalStepMs) * time.Millisecond,
		MinSpawnInterval: time.Duration(g.MinSpawnIntervalMs) * time.Millisecond,
		FallSpeed:        g.FallSpeed,
		FallSpeedStep:    g.FallSpeedStep,
		BasketSpeed:      g.BasketSpeed,
		BasketBoundary:   g.BasketBoundary,
		BasketWidth:      g.BasketWidth,
		BasketHeight:     g.BasketHeight,
		BasketY:          g.BasketY,
		ObjectRadius:     g.ObjectRadius,
		SpawnHeight:      g.SpawnHeight,
		SpawnRange:       g.SpawnRange,
		MissHeight:       g.MissHeight,
	}
}
