package game

// Default playfield and entity dimensions, in playfield units.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 400.0

	PaddleWidth  = 10.0
	PaddleHeight = 100.0
	PaddleMargin = 10.0 // gap between a paddle and its wall

	BallRadius    = 8.0
	BaseBallSpeed = 5.0
)

// Side identifies which half of the court a paddle defends
type Side int

const (
	SideLeft  Side = 0 // player
	SideRight Side = 1 // opponent
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Opposite returns the other side
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Playfield is the rectangular simulation area
type Playfield struct {
	Width  float64
	Height float64
}

// DefaultPlayfield returns the standard 800x400 court
func DefaultPlayfield() Playfield {
	return Playfield{Width: DefaultWidth, Height: DefaultHeight}
}

// Center returns the middle point of the playfield
func (f Playfield) Center() (float64, float64) {
	return f.Width / 2, f.Height / 2
}

// Rand is the random source used for ball launches and particle bursts.
// *rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	Float64() float64
}

// Score holds the points of both sides
type Score struct {
	Player   int
	Opponent int
}

// Add gives one point to the given side
func (s *Score) Add(side Side) {
	if side == SideLeft {
		s.Player++
	} else {
		s.Opponent++
	}
}

// Of returns the points of the given side
func (s Score) Of(side Side) int {
	if side == SideLeft {
		return s.Player
	}
	return s.Opponent
}

// Max returns the higher of the two scores
func (s Score) Max() int {
	if s.Player > s.Opponent {
		return s.Player
	}
	return s.Opponent
}

// Reset zeroes both scores
func (s *Score) Reset() {
	s.Player = 0
	s.Opponent = 0
}
