package effects

import (
	"math"

	"github.com/diegok/arcadepong/internal/game"
)

const (
	BurstCount    = 12
	ParticleLife  = 30 // ticks
	ParticleSpeed = 4.0
	TrailLength   = 10
)

// Particle is a short-lived spark
type Particle struct {
	X, Y   float64
	DX, DY float64
	Life   int
}

// Point is a sampled ball position
type Point struct {
	X, Y float64
}

// Trail keeps the most recent ball positions in a fixed-size ring
type Trail struct {
	points []Point
	start  int
	count  int
}

func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{points: make([]Point, capacity)}
}

// Push records a position, evicting the oldest once full
func (t *Trail) Push(x, y float64) {
	capacity := len(t.points)
	if t.count < capacity {
		t.points[(t.start+t.count)%capacity] = Point{X: x, Y: y}
		t.count++
		return
	}
	t.points[t.start] = Point{X: x, Y: y}
	t.start = (t.start + 1) % capacity
}

// Points returns the stored positions, oldest first
func (t *Trail) Points() []Point {
	out := make([]Point, t.count)
	for i := 0; i < t.count; i++ {
		out[i] = t.points[(t.start+i)%len(t.points)]
	}
	return out
}

// Len returns the number of stored samples
func (t *Trail) Len() int {
	return t.count
}

func (t *Trail) Reset() {
	t.start = 0
	t.count = 0
}

// System owns every cosmetic effect. It never touches physics state.
type System struct {
	Particles []Particle
	Trail     *Trail
	rng       game.Rand
}

func NewSystem(rng game.Rand) *System {
	return &System{
		Particles: make([]Particle, 0, BurstCount*2),
		Trail:     NewTrail(TrailLength),
		rng:       rng,
	}
}

// Burst spawns BurstCount particles at (x, y) flying in random directions
func (s *System) Burst(x, y float64) {
	for i := 0; i < BurstCount; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := ParticleSpeed * (0.5 + s.rng.Float64()/2)
		s.Particles = append(s.Particles, Particle{
			X:    x,
			Y:    y,
			DX:   math.Cos(angle) * speed,
			DY:   math.Sin(angle) * speed,
			Life: ParticleLife,
		})
	}
}

// Update integrates every particle, ages it, and drops the expired ones
func (s *System) Update() {
	alive := s.Particles[:0]
	for _, p := range s.Particles {
		p.X += p.DX
		p.Y += p.DY
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	s.Particles = alive
}

// Sample records the ball's current position in the trail
func (s *System) Sample(ball *game.Ball) {
	s.Trail.Push(ball.X, ball.Y)
}

// Reset clears particles and trail
func (s *System) Reset() {
	s.Particles = s.Particles[:0]
	s.Trail.Reset()
}
