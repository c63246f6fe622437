package game

import "math"

const (
	MaxBounceAngle = math.Pi / 4 // 45 degrees max
	MinSpeedScale  = 0.5
	MaxSpeedScale  = 2.0
)

type Ball struct {
	X, Y            float64
	Radius          float64
	DX, DY          float64
	BaseSpeed       float64
	SpeedMultiplier float64
}

func NewBall(field Playfield, multiplier float64) *Ball {
	cx, cy := field.Center()
	return &Ball{
		X:               cx,
		Y:               cy,
		Radius:          BallRadius,
		BaseSpeed:       BaseBallSpeed,
		SpeedMultiplier: ClampMultiplier(multiplier),
	}
}

// ClampMultiplier limits a speed multiplier to [0.5, 2.0]. NaN has no
// position in that range and maps to the default of 1.
func ClampMultiplier(m float64) float64 {
	if math.IsNaN(m) {
		return 1
	}
	return math.Max(MinSpeedScale, math.Min(MaxSpeedScale, m))
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceVertical reverses vertical direction (wall bounce)
func (b *Ball) BounceVertical() {
	b.DY = -b.DY
}

// Speed returns current speed
func (b *Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

// LaunchSpeed is the base speed scaled by the current multiplier
func (b *Ball) LaunchSpeed() float64 {
	return b.BaseSpeed * b.SpeedMultiplier
}

// BounceOffPaddle rebounds the ball off p. The impact offset from the
// paddle center (+1 at the top edge, -1 at the bottom) maps linearly to
// an angle in [-45, +45] degrees; positive angles send the ball upward.
// The horizontal direction is forced away from the paddle.
func (b *Ball) BounceOffPaddle(p *Paddle) {
	half := p.Height / 2
	offset := (p.CenterY() - b.Y) / half
	if offset < -1 {
		offset = -1
	}
	if offset > 1 {
		offset = 1
	}

	angle := offset * MaxBounceAngle
	speed := b.Speed()
	if speed == 0 {
		speed = b.LaunchSpeed()
	}

	away := 1.0
	if p.Side == SideRight {
		away = -1.0
	}
	b.DX = away * math.Abs(speed*math.Cos(angle))
	b.DY = speed * -math.Sin(angle)

	// tunnel guard
	if p.Side == SideLeft {
		b.X = p.X + p.Width + b.Radius
	} else {
		b.X = p.X - b.Radius
	}
}

// Reset places ball at center and launches it in a random direction:
// horizontal sign +-1, vertical component uniform in [-1, 1], both scaled
// by the launch speed.
func (b *Ball) Reset(field Playfield, rng Rand) {
	b.X, b.Y = field.Center()

	speed := b.LaunchSpeed()
	sign := 1.0
	if rng.Float64() < 0.5 {
		sign = -1.0
	}
	b.DX = sign * speed
	b.DY = (rng.Float64()*2 - 1) * speed
}

