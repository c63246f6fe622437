package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaddle(t *testing.T) {
	field := DefaultPlayfield()

	left := NewPaddle(SideLeft, field)
	assert.Equal(t, PaddleMargin, left.X)
	assert.Equal(t, 150.0, left.Y, "centered vertically")
	assert.Equal(t, 1.0, left.Squash)

	right := NewPaddle(SideRight, field)
	assert.Equal(t, field.Width-PaddleWidth-PaddleMargin, right.X)
}

func TestPaddle_MoveTo_StaysInBounds(t *testing.T) {
	field := DefaultPlayfield()

	tests := []struct {
		name   string
		target float64
		want   float64
	}{
		{"inside", 120, 120},
		{"above top", -40, 0},
		{"below bottom", 390, 300},
		{"exact bottom", 300, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaddle(SideLeft, field)
			p.MoveTo(tt.target, field, 8)
			assert.Equal(t, tt.want, p.Y)
			assert.GreaterOrEqual(t, p.Y, 0.0)
			assert.LessOrEqual(t, p.Y, field.Height-p.Height)
		})
	}
}

func TestPaddle_MoveTo_RecordsDY(t *testing.T) {
	field := DefaultPlayfield()
	p := NewPaddle(SideLeft, field)

	p.MoveTo(140, field, 8)
	assert.Equal(t, -10.0, p.DY)

	p.MoveTo(0, field, 8)
	p.MoveTo(-50, field, 8)
	assert.Equal(t, 0.0, p.DY, "pinned at top")
}

func TestPaddle_Squash(t *testing.T) {
	field := DefaultPlayfield()
	p := NewPaddle(SideLeft, field)

	p.MoveTo(p.Y+8, field, 8)
	assert.Equal(t, 1+MaxSquash, p.Squash, "full squash at full speed")

	prev := p.Squash
	for i := 0; i < 5; i++ {
		p.MoveTo(p.Y, field, 8)
		assert.LessOrEqual(t, p.Squash, prev, "squash grew while idle")
		prev = p.Squash
	}
	for i := 0; i < 100; i++ {
		p.MoveTo(p.Y, field, 8)
	}
	assert.Equal(t, 1.0, p.Squash, "settles at rest")
}

func TestPaddle_CenterY(t *testing.T) {
	p := NewPaddle(SideLeft, DefaultPlayfield())
	p.Y = 40
	assert.Equal(t, 90.0, p.CenterY())
}

func TestSide_Opposite(t *testing.T) {
	assert.Equal(t, SideRight, SideLeft.Opposite())
	assert.Equal(t, SideLeft, SideRight.Opposite())
}

func TestScore(t *testing.T) {
	var s Score
	s.Add(SideLeft)
	s.Add(SideRight)
	s.Add(SideRight)

	assert.Equal(t, 1, s.Player)
	assert.Equal(t, 2, s.Opponent)
	assert.Equal(t, 1, s.Of(SideLeft))
	assert.Equal(t, 2, s.Of(SideRight))
	assert.Equal(t, 2, s.Max())

	s.Reset()
	assert.Equal(t, Score{}, s)
}
