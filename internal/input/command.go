package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fallcatch/fallcatch/internal/catch"
)

// ErrUnknownCommand is returned by Parse for unrecognised text.
var ErrUnknownCommand = errors.New("unknown command")

// Command is one discrete input event: a key edge or a button press.
type Command uint8

const (
	CmdNone Command = iota
	CmdLeftDown
	CmdLeftUp
	CmdRightDown
	CmdRightUp
	CmdReset
	CmdRestart
	CmdQuit
)

var commandNames = map[Command]string{
	CmdLeftDown:  "left",
	CmdLeftUp:    "-left",
	CmdRightDown: "right",
	CmdRightUp:   "-right",
	CmdReset:     "reset",
	CmdRestart:   "restart",
	CmdQuit:      "quit",
}

var commandsByName = func() map[string]Command {
	m := make(map[string]Command, len(commandNames))
	for c, name := range commandNames {
		m[name] = c
	}
	return m
}()

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "none"
}

// Parse maps a text command ("left", "-left", "right", "-right", "reset",
// "restart", "quit") to a Command. Case and surrounding space are ignored.
func Parse(s string) (Command, error) {
	c, ok := commandsByName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return CmdNone, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
	}
	return c, nil
}

// Apply folds the command into the pending frame input. Movement flags are
// latched until the matching release; reset and restart stay set until the
// consumer clears them after a frame. Quit does not touch in.
func (c Command) Apply(in *catch.Input) {
	switch c {
	case CmdLeftDown:
		in.MovingLeft = true
	case CmdLeftUp:
		in.MovingLeft = false
	case CmdRightDown:
		in.MovingRight = true
	case CmdRightUp:
		in.MovingRight = false
	case CmdReset:
		in.ResetRequested = true
	case CmdRestart:
		in.RestartRequested = true
	}
}

// ClearTriggers drops the one-shot requests once a frame has consumed them.
func ClearTriggers(in *catch.Input) {
	in.ResetRequested = false
	in.RestartRequested = false
}
