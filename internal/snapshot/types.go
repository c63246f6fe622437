package snapshot

import (
	"time"

	"github.com/diegok/arcadepong/internal/control"
	"github.com/diegok/arcadepong/internal/game"
)

// Mode is the session state
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game-over"
	}
	return "unknown"
}

// Ruleset governs the win condition and who controls the right paddle
type Ruleset int

const (
	RulesetSingle    Ruleset = iota // player vs computer, first to max score
	RulesetTwoPlayer                // two humans on one keyboard
	RulesetTimed                    // player vs computer against the clock
)

// Rulesets lists every ruleset in menu order
var Rulesets = []Ruleset{RulesetSingle, RulesetTwoPlayer, RulesetTimed}

func (r Ruleset) String() string {
	switch r {
	case RulesetSingle:
		return "single"
	case RulesetTwoPlayer:
		return "two-player"
	case RulesetTimed:
		return "timed"
	}
	return "unknown"
}

// Next returns the following ruleset, wrapping around
func (r Ruleset) Next() Ruleset {
	return Rulesets[(int(r)+1)%len(Rulesets)]
}

// Timed reports whether the game ends on the clock instead of the score
func (r Ruleset) Timed() bool {
	return r == RulesetTimed
}

// AI reports whether the right paddle is computer controlled
func (r Ruleset) AI() bool {
	return r != RulesetTwoPlayer
}

// PaddleState represents a paddle's state
type PaddleState struct {
	Side   game.Side
	X      float64
	Y      float64
	Width  float64
	Height float64
	Squash float64
}

// BallState represents the ball's position and velocity
type BallState struct {
	X      float64
	Y      float64
	Radius float64
	DX     float64
	DY     float64
}

// Particle is a spark to draw; Life counts down to zero
type Particle struct {
	X, Y float64
	Life int
}

// Point is a trail sample
type Point struct {
	X, Y float64
}

// Colors are the cosmetic colors as #rrggbb strings
type Colors struct {
	Paddle     string
	Ball       string
	Background string
}

// Snapshot is everything a renderer needs for one frame
type Snapshot struct {
	Tick        uint64
	Mode        Mode
	Ruleset     Ruleset
	Difficulty  control.Difficulty
	FieldWidth  float64
	FieldHeight float64

	Left  PaddleState
	Right PaddleState
	Ball  BallState

	PlayerScore   int
	OpponentScore int
	MaxScore      int
	Remaining     time.Duration // timed ruleset only

	HighScore    int  // best for the active ruleset and difficulty
	NewHighScore bool // set on the game-over frame that beat it
	Winner       game.Side
	Draw         bool

	SpeedMultiplier float64
	Colors          Colors
	Particles       []Particle
	Trail           []Point // oldest first
}
