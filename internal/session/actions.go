package session

import (
	"github.com/diegok/arcadepong/internal/input"
	"github.com/diegok/arcadepong/internal/snapshot"
)

// handle applies a discrete action according to the current mode
func (s *Session) handle(a input.Action) {
	switch a {
	case input.ActionQuit:
		s.emit(Event{Kind: EventQuit})

	case input.ActionStart:
		switch s.mode {
		case snapshot.ModeMenu, snapshot.ModeGameOver:
			s.begin()
		case snapshot.ModePaused:
			s.setMode(snapshot.ModePlaying)
		}

	case input.ActionPause:
		switch s.mode {
		case snapshot.ModePlaying:
			s.setMode(snapshot.ModePaused)
		case snapshot.ModePaused:
			s.setMode(snapshot.ModePlaying)
		}

	case input.ActionMenu:
		switch s.mode {
		case snapshot.ModeMenu:
			s.emit(Event{Kind: EventQuit})
		case snapshot.ModePlaying:
			s.setMode(snapshot.ModePaused)
		case snapshot.ModePaused, snapshot.ModeGameOver:
			s.setMode(snapshot.ModeMenu)
		}

	default:
		if s.mode == snapshot.ModeMenu {
			s.configure(a)
		}
	}
}

// configure handles the menu-only options
func (s *Session) configure(a input.Action) {
	switch a {
	case input.ActionCycleRuleset:
		s.ruleset = s.ruleset.Next()
	case input.ActionCycleDifficulty:
		s.difficulty = s.difficulty.Next()
	case input.ActionCycleColor:
		s.settings.ApplyPalette(s.settings.NextPalette())
		s.emit(Event{Kind: EventSettingsChanged})
	case input.ActionSpeedUp, input.ActionSpeedDown:
		prev := s.settings.BallSpeedMultiplier
		if a == input.ActionSpeedUp {
			s.settings.AdjustSpeed(1)
		} else {
			s.settings.AdjustSpeed(-1)
		}
		if s.settings.BallSpeedMultiplier != prev {
			s.ball.SpeedMultiplier = s.settings.BallSpeedMultiplier
			s.emit(Event{Kind: EventSettingsChanged})
		}
	}
}
