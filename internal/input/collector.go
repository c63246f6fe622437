package input

import "github.com/gdamore/tcell/v2"

// DefaultHoldTicks is how long a movement key stays held after its last
// key event (~133ms at 60Hz). Terminals report presses and auto-repeats
// but never releases.
const DefaultHoldTicks = 8

// State is the input snapshot the session reads once per tick
type State struct {
	PointerY      float64
	PointerActive bool

	P1Up, P1Down bool
	P2Up, P2Down bool

	// Discrete actions in arrival order, consumed by a single tick
	Actions []Action
}

// Collector turns terminal events into per-tick snapshots. Handle and
// Snapshot must be called from the same goroutine.
type Collector struct {
	bindings  *Bindings
	holdTicks int
	held      map[Action]int
	actions   []Action

	pointerY      float64
	pointerActive bool
	buttonDown    bool

	// MapY converts a screen row to a playfield y coordinate
	MapY func(row int) float64
}

func NewCollector(b *Bindings, holdTicks int) *Collector {
	if b == nil {
		b = DefaultBindings()
	}
	if holdTicks < 1 {
		holdTicks = DefaultHoldTicks
	}
	return &Collector{
		bindings:  b,
		holdTicks: holdTicks,
		held:      make(map[Action]int),
		MapY:      func(row int) float64 { return float64(row) },
	}
}

// Handle records a single terminal event
func (c *Collector) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		c.Press(c.bindings.Lookup(ev.Key(), ev.Rune()))

	case *tcell.EventMouse:
		_, row := ev.Position()
		c.pointerY = c.MapY(row)
		c.pointerActive = true

		down := ev.Buttons()&tcell.Button1 != 0
		if down && !c.buttonDown {
			c.actions = append(c.actions, ActionStart)
		}
		c.buttonDown = down
	}
}

// Press records an action as if its key had been pressed
func (c *Collector) Press(a Action) {
	switch {
	case a == ActionNone:
	case a.Held():
		c.held[a] = c.holdTicks
		delete(c.held, a.opposite())
	default:
		c.actions = append(c.actions, a)
	}
}

// Snapshot returns the input for this tick, ages held keys, and clears
// the discrete action queue
func (c *Collector) Snapshot() State {
	st := State{
		PointerY:      c.pointerY,
		PointerActive: c.pointerActive,
		P1Up:          c.held[ActionP1Up] > 0,
		P1Down:        c.held[ActionP1Down] > 0,
		P2Up:          c.held[ActionP2Up] > 0,
		P2Down:        c.held[ActionP2Down] > 0,
		Actions:       c.actions,
	}

	for a, n := range c.held {
		if n <= 1 {
			delete(c.held, a)
		} else {
			c.held[a] = n - 1
		}
	}
	c.actions = nil
	return st
}
