package session

import (
	"time"

	"github.com/diegok/arcadepong/internal/control"
	"github.com/diegok/arcadepong/internal/effects"
	"github.com/diegok/arcadepong/internal/game"
	"github.com/diegok/arcadepong/internal/input"
	"github.com/diegok/arcadepong/internal/settings"
	"github.com/diegok/arcadepong/internal/snapshot"
)

// Default rules
const (
	DefaultMaxScore  = 5
	DefaultTimeLimit = 60 * time.Second
)

// Options are the rules fixed for the lifetime of a session
type Options struct {
	MaxScore   int
	TimeLimit  time.Duration
	Ruleset    snapshot.Ruleset
	Difficulty control.Difficulty
}

// DefaultOptions returns single player against a medium computer, first to 5
func DefaultOptions() Options {
	return Options{
		MaxScore:   DefaultMaxScore,
		TimeLimit:  DefaultTimeLimit,
		Ruleset:    snapshot.RulesetSingle,
		Difficulty: control.Medium,
	}
}

// Session is the whole simulated world plus the mode state machine.
// It is not safe for concurrent use; the host drives it from one loop.
type Session struct {
	opts       Options
	mode       snapshot.Mode
	ruleset    snapshot.Ruleset
	difficulty control.Difficulty

	field game.Playfield
	ball  *game.Ball
	left  *game.Paddle
	right *game.Paddle
	score game.Score

	remaining time.Duration
	effects   *effects.System
	settings  *settings.Settings
	rng       game.Rand

	tick      uint64
	committed bool // high score submitted for the current game
	newHigh   bool
	events    []Event
}

// New creates a session in the menu. st is shared with the caller, which
// persists it when the session reports EventSettingsChanged or
// EventHighScore.
func New(field game.Playfield, st *settings.Settings, opts Options, rng game.Rand) *Session {
	if opts.MaxScore < 1 {
		opts.MaxScore = DefaultMaxScore
	}
	if opts.TimeLimit <= 0 {
		opts.TimeLimit = DefaultTimeLimit
	}
	if !opts.Difficulty.Valid() {
		opts.Difficulty = control.Medium
	}
	if st == nil {
		st = settings.Default()
	}
	st.Sanitize()

	return &Session{
		opts:       opts,
		mode:       snapshot.ModeMenu,
		ruleset:    opts.Ruleset,
		difficulty: opts.Difficulty,
		field:      field,
		ball:       game.NewBall(field, st.BallSpeedMultiplier),
		left:       game.NewPaddle(game.SideLeft, field),
		right:      game.NewPaddle(game.SideRight, field),
		remaining:  opts.TimeLimit,
		effects:    effects.NewSystem(rng),
		settings:   st,
		rng:        rng,
	}
}

func (s *Session) Mode() snapshot.Mode {
	return s.mode
}

func (s *Session) Ruleset() snapshot.Ruleset {
	return s.ruleset
}

func (s *Session) Difficulty() control.Difficulty {
	return s.difficulty
}

func (s *Session) Score() game.Score {
	return s.score
}

func (s *Session) Remaining() time.Duration {
	return s.remaining
}

func (s *Session) Settings() *settings.Settings {
	return s.settings
}

// HighScoreKey is the high-score table key for the active rules
func (s *Session) HighScoreKey() string {
	return settings.Key(s.ruleset.String(), s.difficulty.String())
}

// Tick applies this tick's input actions and, while playing, advances the
// simulation one step. dt only drives the timed ruleset's clock.
func (s *Session) Tick(dt time.Duration, in input.State) Frame {
	s.events = nil

	for _, a := range in.Actions {
		s.handle(a)
	}

	if s.mode == snapshot.ModePlaying {
		s.step(dt, in)
	}

	s.tick++
	return Frame{Snapshot: s.Snapshot(), Events: s.events}
}

// step runs controllers, physics, effects and terminal checks
func (s *Session) step(dt time.Duration, in input.State) {
	if s.ruleset.Timed() {
		s.remaining -= dt
		if s.remaining <= 0 {
			s.remaining = 0
			s.finish()
			return
		}
	}

	s.movePaddles(in)

	for _, ev := range game.Advance(s.ball, []*game.Paddle{s.left, s.right}, s.field, &s.score, s.rng) {
		switch ev.Kind {
		case game.EventWallBounce:
			s.emit(Event{Kind: EventWallBounce, X: ev.X, Y: ev.Y})
		case game.EventPaddleHit:
			s.effects.Burst(ev.X, ev.Y)
			s.emit(Event{Kind: EventPaddleHit, Side: ev.Side, X: ev.X, Y: ev.Y})
		case game.EventScored:
			s.effects.Trail.Reset()
			s.emit(Event{Kind: EventScored, Side: ev.Side, X: ev.X, Y: ev.Y})
		}
	}

	s.effects.Sample(s.ball)
	s.effects.Update()

	if !s.ruleset.Timed() && (s.score.Player >= s.opts.MaxScore || s.score.Opponent >= s.opts.MaxScore) {
		s.finish()
	}
}

func (s *Session) movePaddles(in input.State) {
	left := control.Intent{
		PointerY:      in.PointerY,
		PointerActive: in.PointerActive,
		Up:            in.P1Up,
		Down:          in.P1Down,
	}

	if s.ruleset.AI() {
		// Alone at the keyboard, the arrows drive the player too
		left.Up = left.Up || in.P2Up
		left.Down = left.Down || in.P2Down
	}
	s.resolve(s.left, control.HumanSource(left), left)

	if s.ruleset.AI() {
		s.resolve(s.right, control.SourceAI, control.Intent{})
		return
	}
	s.resolve(s.right, control.SourceKeys, control.Intent{Up: in.P2Up, Down: in.P2Down})
}

func (s *Session) resolve(p *game.Paddle, src control.Source, in control.Intent) {
	target := control.Resolve(src, p, in, s.ball, control.ProfileFor(s.difficulty))
	control.Apply(p, target, s.field)
}

// begin resets every piece of mutable game state and starts play
func (s *Session) begin() {
	s.score.Reset()
	s.left.Center(s.field)
	s.right.Center(s.field)
	s.ball.SpeedMultiplier = game.ClampMultiplier(s.settings.BallSpeedMultiplier)
	s.ball.Reset(s.field, s.rng)
	s.effects.Reset()
	s.remaining = s.opts.TimeLimit
	s.committed = false
	s.newHigh = false
	s.setMode(snapshot.ModePlaying)
}

// finish enters game over and submits the score once per game
func (s *Session) finish() {
	s.setMode(snapshot.ModeGameOver)
	s.emit(Event{Kind: EventGameOver, Side: s.winner()})

	if s.committed {
		return
	}
	s.committed = true

	// Two humans share a table, so the winner's score is what counts
	score := s.score.Of(game.SideLeft)
	if s.ruleset == snapshot.RulesetTwoPlayer {
		score = s.score.Of(s.winner())
	}
	if s.settings.HighScores.Submit(s.HighScoreKey(), score) {
		s.newHigh = true
		s.emit(Event{Kind: EventHighScore, Score: score})
	}
}

func (s *Session) winner() game.Side {
	if s.score.Opponent > s.score.Player {
		return game.SideRight
	}
	return game.SideLeft
}

func (s *Session) setMode(m snapshot.Mode) {
	if s.mode == m {
		return
	}
	s.mode = m
	s.emit(Event{Kind: EventModeChanged, Mode: m})
}

func (s *Session) emit(ev Event) {
	s.events = append(s.events, ev)
}
