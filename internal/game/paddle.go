package game

import "math"

const (
	MaxSquash   = 0.25 // extra stretch at full speed
	SquashDecay = 0.2  // fraction of the remaining stretch removed per idle tick
)

// Paddle is a vertical bat. X is fixed per side, Y is the top edge.
type Paddle struct {
	Side   Side
	X      float64
	Y      float64
	Width  float64
	Height float64
	DY     float64 // movement applied on the last tick
	Squash float64 // cosmetic scale factor, 1.0 at rest
}

// NewPaddle creates a paddle for the given side, vertically centered
func NewPaddle(side Side, field Playfield) *Paddle {
	p := &Paddle{
		Side:   side,
		Width:  PaddleWidth,
		Height: PaddleHeight,
		Squash: 1,
	}
	if side == SideLeft {
		p.X = PaddleMargin
	} else {
		p.X = field.Width - PaddleWidth - PaddleMargin
	}
	p.Center(field)
	return p
}

// Center moves the paddle to the vertical middle and stops it
func (p *Paddle) Center(field Playfield) {
	p.Y = field.Height/2 - p.Height/2
	p.DY = 0
	p.Squash = 1
}

// MaxY returns the lowest allowed top edge
func (p *Paddle) MaxY(field Playfield) float64 {
	return math.Max(0, field.Height-p.Height)
}

// ClampY returns y constrained to the paddle's legal range
func (p *Paddle) ClampY(y float64, field Playfield) float64 {
	if y < 0 {
		return 0
	}
	if maxY := p.MaxY(field); y > maxY {
		return maxY
	}
	return y
}

// MoveTo places the paddle at y (clamped) and records the movement.
// The squash factor follows the movement speed and relaxes toward 1.0
// when the paddle is idle.
func (p *Paddle) MoveTo(y float64, field Playfield, fullSpeed float64) {
	prev := p.Y
	p.Y = p.ClampY(y, field)
	p.DY = p.Y - prev

	if p.DY == 0 || fullSpeed <= 0 {
		p.Squash += (1 - p.Squash) * SquashDecay
		if math.Abs(p.Squash-1) < 0.001 {
			p.Squash = 1
		}
		return
	}
	target := 1 + MaxSquash*math.Min(math.Abs(p.DY)/fullSpeed, 1)
	if target > p.Squash {
		p.Squash = target
	}
}

// CenterY returns the vertical middle of the paddle
func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

