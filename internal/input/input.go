// Package input maps user actions onto scheduler commands independently of
// the front end that captured them.
package input

import (
	"context"
	"fmt"

	"gol-torus/internal/life"
)

// Action enumerates the commands a front end can issue.
type Action int

const (
	None Action = iota
	TogglePause
	Restart
	SpeedUp
	SpeedDown
	Step
	Select
	Quit
)

func (a Action) String() string {
	switch a {
	case TogglePause:
		return "toggle-pause"
	case Restart:
		return "restart"
	case SpeedUp:
		return "speed-up"
	case SpeedDown:
		return "speed-down"
	case Step:
		return "step"
	case Select:
		return "select"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}

// Command is an action plus the pattern it selects, if any.
type Command struct {
	Action  Action
	Pattern life.PatternID
}

// Controller is the scheduler surface commands act on.
type Controller interface {
	TogglePause() bool
	SpeedUp()
	SpeedDown()
	Step()
	Restart(ctx context.Context, id life.PatternID) error
}

// Session remembers the selected pattern so Restart reuses it.
type Session struct {
	ctrl    Controller
	pattern life.PatternID
}

// NewSession binds a controller with the initially selected pattern.
func NewSession(ctrl Controller, pattern life.PatternID) *Session {
	return &Session{ctrl: ctrl, pattern: pattern}
}

// Pattern returns the currently selected pattern.
func (s *Session) Pattern() life.PatternID { return s.pattern }

// Dispatch applies cmd. It reports quit=true for Quit. A rejected selection
// keeps the previous pattern.
func (s *Session) Dispatch(ctx context.Context, cmd Command) (quit bool, err error) {
	switch cmd.Action {
	case TogglePause:
		s.ctrl.TogglePause()
	case Restart:
		return false, s.ctrl.Restart(ctx, s.pattern)
	case SpeedUp:
		s.ctrl.SpeedUp()
	case SpeedDown:
		s.ctrl.SpeedDown()
	case Step:
		s.ctrl.Step()
	case Select:
		if err := s.ctrl.Restart(ctx, cmd.Pattern); err != nil {
			return false, fmt.Errorf("select pattern: %w", err)
		}
		s.pattern = cmd.Pattern
	case Quit:
		return true, nil
	}
	return false, nil
}

// FromRune translates a printable key into a command. Digits 1..n select the
// registered patterns in menu order.
func FromRune(r rune) Command {
	switch r {
	case ' ':
		return Command{Action: TogglePause}
	case 'r', 'R':
		return Command{Action: Restart}
	case 'n', 'N':
		return Command{Action: Step}
	case '+':
		return Command{Action: SpeedUp}
	case '-':
		return Command{Action: SpeedDown}
	case 'q', 'Q':
		return Command{Action: Quit}
	}
	if r >= '1' && r <= '9' {
		patterns := life.Patterns()
		if i := int(r - '1'); i < len(patterns) {
			return Command{Action: Select, Pattern: patterns[i]}
		}
	}
	return Command{}
}
