package control

import (
	"fmt"
	"strings"

	"github.com/diegok/arcadepong/internal/game"
)

// KeyStep is how far a held key moves a paddle per tick
const KeyStep = 8.0

// Source selects what drives a paddle on a given tick
type Source int

const (
	SourcePointer Source = iota
	SourceKeys
	SourceAI
)

func (s Source) String() string {
	switch s {
	case SourcePointer:
		return "pointer"
	case SourceKeys:
		return "keys"
	case SourceAI:
		return "ai"
	}
	return "unknown"
}

// Difficulty is the computer opponent's skill tier. The zero value is not
// a tier; callers treat it as Medium.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

// Difficulties lists every tier in menu order
var Difficulties = []Difficulty{Easy, Medium, Hard}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return "unknown"
}

// Valid reports whether d is one of the known tiers
func (d Difficulty) Valid() bool {
	_, ok := Profiles[d]
	return ok
}

// Next returns the following tier, wrapping around
func (d Difficulty) Next() Difficulty {
	for i, t := range Difficulties {
		if t == d {
			return Difficulties[(i+1)%len(Difficulties)]
		}
	}
	return Medium
}

// ParseDifficulty converts a tier name back to a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return Medium, fmt.Errorf("unknown difficulty %q", s)
}

// Profile tunes the AI: how fast it moves and how far the ball may drift
// from the paddle center before it reacts
type Profile struct {
	Speed    float64
	DeadZone float64
}

// Profiles holds the tuning per tier. These are gameplay constants, not
// physics; adjust freely.
var Profiles = map[Difficulty]Profile{
	Easy:   {Speed: 3, DeadZone: 50},
	Medium: {Speed: 5, DeadZone: 35},
	Hard:   {Speed: 8, DeadZone: 15},
}

// ProfileFor returns the tuning for d, falling back to Medium
func ProfileFor(d Difficulty) Profile {
	if p, ok := Profiles[d]; ok {
		return p
	}
	return Profiles[Medium]
}

// Intent is the human input relevant to a single paddle for one tick
type Intent struct {
	PointerY      float64
	PointerActive bool
	Up            bool
	Down          bool
}

// Keys reports whether a discrete movement key is held
func (in Intent) Keys() bool {
	return in.Up || in.Down
}

// Resolve computes the paddle's desired top edge for this tick.
// The result is not clamped; Apply does that.
func Resolve(src Source, p *game.Paddle, in Intent, ball *game.Ball, prof Profile) float64 {
	switch src {
	case SourcePointer:
		if !in.PointerActive {
			return p.Y
		}
		return in.PointerY - p.Height/2

	case SourceKeys:
		// Up and down held together cancel out
		switch {
		case in.Up && !in.Down:
			return p.Y - KeyStep
		case in.Down && !in.Up:
			return p.Y + KeyStep
		}
		return p.Y

	case SourceAI:
		offset := ball.Y - p.CenterY()
		if offset > prof.DeadZone {
			return p.Y + prof.Speed
		}
		if offset < -prof.DeadZone {
			return p.Y - prof.Speed
		}
		return p.Y
	}
	return p.Y
}

// Apply moves the paddle to target, clamped to the playfield
func Apply(p *game.Paddle, target float64, field game.Playfield) {
	p.MoveTo(target, field, KeyStep)
}

// HumanSource picks the source for a human paddle: held keys win over
// the pointer while they are down
func HumanSource(in Intent) Source {
	if in.Keys() {
		return SourceKeys
	}
	return SourcePointer
}
