package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fallcatch/fallcatch/internal/catch"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM holding the difficulty scripts.
// Single-goroutine access only (frame loop).
type Engine struct {
	vm       *lua.LState
	log      *zap.Logger
	fallback catch.Curve
}

// NewEngine creates a Lua engine and loads every .lua file under
// scriptsDir/difficulty. fallback answers whenever a script is missing or
// misbehaves, so a broken script never stalls a level-advance.
func NewEngine(scriptsDir string, fallback catch.Curve, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log, fallback: fallback}

	if err := e.loadDir(filepath.Join(scriptsDir, "difficulty")); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load difficulty scripts: %w", err)
	}
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// HasCurve reports whether a next_level function was loaded.
func (e *Engine) HasCurve() bool {
	return e.vm.GetGlobal("next_level") != lua.LNil
}

// Next calls the Lua next_level(level, interval_ms, fall_speed) function,
// which must return a table {interval_ms=, fall_speed=}. Missing keys keep
// the fallback's value.
func (e *Engine) Next(level int, interval time.Duration, fallSpeed float64) (time.Duration, float64) {
	defInterval, defSpeed := e.fallback.Next(level, interval, fallSpeed)

	fn := e.vm.GetGlobal("next_level")
	if fn == lua.LNil {
		e.log.Error("lua function next_level not found")
		return defInterval, defSpeed
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(level), lua.LNumber(float64(interval)/float64(time.Millisecond)), lua.LNumber(fallSpeed)); err != nil {
		e.log.Error("lua next_level error", zap.Error(err))
		return defInterval, defSpeed
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua next_level returned non-table", zap.String("type", result.Type().String()))
		return defInterval, defSpeed
	}

	next, speed := defInterval, defSpeed
	if v, ok := lNumber(rt, "interval_ms"); ok {
		next = time.Duration(v * float64(time.Millisecond))
	}
	if v, ok := lNumber(rt, "fall_speed"); ok {
		speed = v
	}
	return next, speed
}

func lNumber(t *lua.LTable, key string) (float64, bool) {
	n, ok := t.RawGetString(key).(lua.LNumber)
	return float64(n), ok
}

func (e *Engine) Close() {
	e.vm.Close()
}
