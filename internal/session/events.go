package session

import (
	"github.com/diegok/arcadepong/internal/game"
	"github.com/diegok/arcadepong/internal/snapshot"
)

// EventKind classifies what a tick produced for the host's sinks
type EventKind int

const (
	EventWallBounce EventKind = iota
	EventPaddleHit
	EventScored
	EventModeChanged
	EventGameOver
	EventHighScore
	EventSettingsChanged
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall-bounce"
	case EventPaddleHit:
		return "paddle-hit"
	case EventScored:
		return "scored"
	case EventModeChanged:
		return "mode-changed"
	case EventGameOver:
		return "game-over"
	case EventHighScore:
		return "high-score"
	case EventSettingsChanged:
		return "settings-changed"
	case EventQuit:
		return "quit"
	}
	return "unknown"
}

// Event is a notable occurrence during a tick
type Event struct {
	Kind  EventKind
	Side  game.Side     // paddle hit, scorer, or winner
	Mode  snapshot.Mode // new mode for EventModeChanged
	Score int           // new best for EventHighScore
	X, Y  float64
}

// Frame is the result of one tick
type Frame struct {
	Snapshot snapshot.Snapshot
	Events   []Event
}

// Has reports whether the frame carries an event of kind k
func (f Frame) Has(k EventKind) bool {
	for _, ev := range f.Events {
		if ev.Kind == k {
			return true
		}
	}
	return false
}

// Snapshot copies the current world into a render-ready value
func (s *Session) Snapshot() snapshot.Snapshot {
	snap := snapshot.Snapshot{
		Tick:            s.tick,
		Mode:            s.mode,
		Ruleset:         s.ruleset,
		Difficulty:      s.difficulty,
		FieldWidth:      s.field.Width,
		FieldHeight:     s.field.Height,
		Left:            paddleState(s.left),
		Right:           paddleState(s.right),
		Ball:            snapshot.BallState{X: s.ball.X, Y: s.ball.Y, Radius: s.ball.Radius, DX: s.ball.DX, DY: s.ball.DY},
		PlayerScore:     s.score.Player,
		OpponentScore:   s.score.Opponent,
		MaxScore:        s.opts.MaxScore,
		Remaining:       s.remaining,
		HighScore:       s.settings.HighScores.Best(s.HighScoreKey()),
		NewHighScore:    s.newHigh,
		Winner:          s.winner(),
		Draw:            s.score.Player == s.score.Opponent,
		SpeedMultiplier: s.settings.BallSpeedMultiplier,
		Colors: snapshot.Colors{
			Paddle:     s.settings.PaddleColor,
			Ball:       s.settings.BallColor,
			Background: s.settings.BackgroundColor,
		},
	}

	snap.Particles = make([]snapshot.Particle, len(s.effects.Particles))
	for i, p := range s.effects.Particles {
		snap.Particles[i] = snapshot.Particle{X: p.X, Y: p.Y, Life: p.Life}
	}
	snap.Trail = make([]snapshot.Point, 0, s.effects.Trail.Len())
	for _, p := range s.effects.Trail.Points() {
		snap.Trail = append(snap.Trail, snapshot.Point{X: p.X, Y: p.Y})
	}
	return snap
}

func paddleState(p *game.Paddle) snapshot.PaddleState {
	return snapshot.PaddleState{
		Side:   p.Side,
		X:      p.X,
		Y:      p.Y,
		Width:  p.Width,
		Height: p.Height,
		Squash: p.Squash,
	}
}
