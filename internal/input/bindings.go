package input

import "github.com/gdamore/tcell/v2"

// Action is a discrete or held command produced by a key or button
type Action int

const (
	ActionNone Action = iota

	// Held movement. P1 is W/S, P2 the arrow keys.
	ActionP1Up
	ActionP1Down
	ActionP2Up
	ActionP2Down

	ActionStart
	ActionPause
	ActionMenu
	ActionQuit
	ActionCycleRuleset
	ActionCycleDifficulty
	ActionCycleColor
	ActionSpeedUp
	ActionSpeedDown
)

var actionNames = map[Action]string{
	ActionNone:            "none",
	ActionP1Up:            "p1-up",
	ActionP1Down:          "p1-down",
	ActionP2Up:            "p2-up",
	ActionP2Down:          "p2-down",
	ActionStart:           "start",
	ActionPause:           "pause",
	ActionMenu:            "menu",
	ActionQuit:            "quit",
	ActionCycleRuleset:    "cycle-ruleset",
	ActionCycleDifficulty: "cycle-difficulty",
	ActionCycleColor:      "cycle-color",
	ActionSpeedUp:         "speed-up",
	ActionSpeedDown:       "speed-down",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Held reports whether the action is a movement that stays active while
// its key is down
func (a Action) Held() bool {
	return a >= ActionP1Up && a <= ActionP2Down
}

// opposite returns the reverse direction of a held action
func (a Action) opposite() Action {
	switch a {
	case ActionP1Up:
		return ActionP1Down
	case ActionP1Down:
		return ActionP1Up
	case ActionP2Up:
		return ActionP2Down
	case ActionP2Down:
		return ActionP2Up
	}
	return ActionNone
}

// Bindings maps keys to actions. The same table serves the menu and
// gameplay; the session decides what each action means in its mode.
type Bindings struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

// DefaultBindings returns the default key bindings
func DefaultBindings() *Bindings {
	return &Bindings{
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionP2Up,
			tcell.KeyDown:   ActionP2Down,
			tcell.KeyEnter:  ActionStart,
			tcell.KeyEscape: ActionMenu,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'w': ActionP1Up,
			'W': ActionP1Up,
			's': ActionP1Down,
			'S': ActionP1Down,
			'p': ActionPause,
			'P': ActionPause,
			' ': ActionPause,
			'q': ActionQuit,
			'Q': ActionQuit,
			'm': ActionCycleRuleset,
			'M': ActionCycleRuleset,
			'd': ActionCycleDifficulty,
			'D': ActionCycleDifficulty,
			'c': ActionCycleColor,
			'C': ActionCycleColor,
			'+': ActionSpeedUp,
			'=': ActionSpeedUp,
			'-': ActionSpeedDown,
			'_': ActionSpeedDown,
		},
	}
}

// Lookup converts a key event to an action
func (b *Bindings) Lookup(key tcell.Key, r rune) Action {
	if key == tcell.KeyRune {
		return b.Runes[r]
	}
	return b.Keys[key]
}
