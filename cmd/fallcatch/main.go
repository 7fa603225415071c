package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fallcatch/fallcatch/internal/catch"
	"github.com/fallcatch/fallcatch/internal/config"
	coresys "github.com/fallcatch/fallcatch/internal/core/system"
	"github.com/fallcatch/fallcatch/internal/core/event"
	"github.com/fallcatch/fallcatch/internal/input"
	"github.com/fallcatch/fallcatch/internal/logging"
	"github.com/fallcatch/fallcatch/internal/present"
	"github.com/fallcatch/fallcatch/internal/scripting"
	"github.com/fallcatch/fallcatch/internal/system"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner() {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m             fallcatch  v0.1.0             \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m        catch what falls, miss twice       \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, value any) {
	valStr := fmt.Sprint(value)
	dotsLen := 42 - len(label) - len(valStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), valStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main loop ──────────────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/fallcatch.toml"
	if p := os.Getenv("FALLCATCH_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner()

	// 3. Difficulty curve
	printSection("Difficulty")
	tuning := cfg.Tuning()
	var opts []catch.Option
	if cfg.Script.Dir != "" {
		engine, err := scripting.NewEngine(cfg.Script.Dir, catch.FixedStep{
			IntervalStep: tuning.IntervalStep,
			FallStep:     tuning.FallSpeedStep,
		}, log)
		if err != nil {
			return fmt.Errorf("scripting: %w", err)
		}
		defer engine.Close()
		if engine.HasCurve() {
			opts = append(opts, catch.WithCurve(engine))
			printOK("Lua difficulty curve loaded")
		} else {
			printOK("no next_level script, using fixed steps")
		}
	} else {
		printOK("fixed-step difficulty")
	}
	printStat("Levels", tuning.TotalLevels)
	printStat("Catches per level", tuning.CatchesPerLevel)
	printStat("Miss limit", tuning.MissLimit)
	printStat("Spawn interval", tuning.SpawnInterval)
	fmt.Println()

	// 4. Game session
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	game := catch.New(tuning, rand.New(rand.NewPCG(seed, seed)), opts...)
	session := system.NewSession(game)

	bus := event.NewBus()
	tracker := present.NewTracker(bus, nil, log)

	// 5. Input
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := input.NewReader(os.Stdin, cfg.Input.QueueSize, log)
	go reader.ReadLoop(ctx)

	// 6. Register systems
	runner := coresys.NewRunner()
	runner.Register(system.NewInputSystem(session, reader.Commands(), cfg.Input.QueueSize, log))
	runner.Register(system.NewFrameSystem(session, system.SystemClock{}, bus, log))
	runner.Register(system.NewHUDSystem(session, log))
	runner.Register(system.NewDispatchSystem(bus))
	runner.Register(system.NewCleanupSystem(session, tracker))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Loop.FrameRate)
	defer ticker.Stop()

	printSection("Ready")
	printStat("Seed", seed)
	printStat("Frame rate", cfg.Loop.FrameRate)
	printReady("commands: left -left right -right reset restart quit")
	fmt.Println()

	for {
		select {
		case <-ticker.C:
			runner.Tick(cfg.Loop.FrameRate)
			if session.QuitRequested() {
				log.Info("quit requested")
				return finish(session, runner, log)
			}

		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			return finish(session, runner, log)
		}
	}
}

func finish(session *system.Session, runner *coresys.Runner, log *zap.Logger) error {
	s := session.State
	log.Info("session ended",
		zap.Uint64("frames", runner.Frames()),
		zap.Int("level", s.Level),
		zap.Int("total_catches", s.TotalCatches),
		zap.Stringer("phase", s.Phase))
	hud := s.View().HUD()
	fmt.Printf("  %s  %s  %s\n", hud.Level, hud.Catch, hud.Miss)
	if hud.FinalScore != "" {
		fmt.Printf("  %s\n", hud.FinalScore)
	}
	return nil
}
