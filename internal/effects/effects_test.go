package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegok/arcadepong/internal/game"
)

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func TestTrail_EvictsOldest(t *testing.T) {
	tr := NewTrail(3)
	for i := 1; i <= 5; i++ {
		tr.Push(float64(i), float64(i*10))
	}

	require.Equal(t, 3, tr.Len())
	assert.Equal(t, []Point{{3, 30}, {4, 40}, {5, 50}}, tr.Points())
}

func TestTrail_PartialAndReset(t *testing.T) {
	tr := NewTrail(4)
	tr.Push(1, 1)
	tr.Push(2, 2)

	assert.Equal(t, []Point{{1, 1}, {2, 2}}, tr.Points())
	assert.Equal(t, 2, tr.Len())

	tr.Reset()
	assert.Equal(t, 0, tr.Len())
	assert.Empty(t, tr.Points())
}

func TestSystem_BurstAndPrune(t *testing.T) {
	s := NewSystem(fixedRand(0.25))
	s.Burst(100, 50)
	require.Len(t, s.Particles, BurstCount)

	for _, p := range s.Particles {
		assert.Equal(t, ParticleLife, p.Life)
	}

	s.Update()
	assert.Len(t, s.Particles, BurstCount)
	assert.Greater(t, s.Particles[0].Y, 50.0, "particles move")

	for i := 1; i < ParticleLife; i++ {
		s.Update()
	}
	assert.Empty(t, s.Particles, "all particles expire after their lifetime")
}

func TestSystem_MixedLifetimes(t *testing.T) {
	s := NewSystem(fixedRand(0.5))
	s.Burst(0, 0)
	for i := 0; i < 10; i++ {
		s.Update()
	}
	s.Burst(0, 0)

	for i := 0; i < ParticleLife-10; i++ {
		s.Update()
	}
	assert.Len(t, s.Particles, BurstCount, "only the second burst survives")
	for _, p := range s.Particles {
		assert.Equal(t, 10, p.Life)
	}
}

func TestSystem_SampleAndReset(t *testing.T) {
	s := NewSystem(fixedRand(0.5))
	ball := game.NewBall(game.DefaultPlayfield(), 1)

	for i := 0; i < TrailLength+5; i++ {
		ball.X = float64(i)
		s.Sample(ball)
	}
	assert.Equal(t, TrailLength, s.Trail.Len())
	assert.Equal(t, float64(TrailLength+4), s.Trail.Points()[TrailLength-1].X)

	s.Burst(1, 1)
	s.Reset()
	assert.Empty(t, s.Particles)
	assert.Equal(t, 0, s.Trail.Len())
}
