// Command fallcatch-replay plays a YAML replay script headlessly and checks
// its expectations.
//
//	fallcatch-replay <script.yaml> [config.toml]
package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fallcatch/fallcatch/internal/catch"
	"github.com/fallcatch/fallcatch/internal/config"
	"github.com/fallcatch/fallcatch/internal/logging"
	"github.com/fallcatch/fallcatch/internal/replay"
	"github.com/fallcatch/fallcatch/internal/scripting"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: fallcatch-replay <script.yaml> [config.toml]")
	}

	cfg := config.Defaults()
	if len(args) == 2 {
		var err error
		if cfg, err = config.Load(args[1]); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	sc, err := replay.Load(args[0])
	if err != nil {
		return err
	}

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
		opts = append(opts, catch.WithCurve(engine))
	}

	// Replays run on a fixed epoch so results never depend on the wall clock.
	res := sc.Run(sc.NewGame(tuning, opts...), time.Unix(0, 0).UTC())

	s := res.State
	log.Info("replay finished",
		zap.String("script", sc.Name),
		zap.Int("frames", res.Frames),
		zap.Stringer("phase", s.Phase),
		zap.Stringer("reason", s.OverReason))

	hud := s.View().HUD()
	fmt.Printf("%s  %s  %s", hud.Level, hud.Catch, hud.Miss)
	if hud.FinalScore != "" {
		fmt.Printf("  %s", hud.FinalScore)
	}
	fmt.Println()

	kinds := make([]string, 0, len(res.Counts))
	for k := range res.Counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Printf("  %-15s %d\n", k, res.Counts[k])
	}

	return res.Check(sc.Expect)
}
