package config

import (
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegok/arcadepong/internal/control"
	"github.com/diegok/arcadepong/internal/settings"
	"github.com/diegok/arcadepong/internal/snapshot"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultPoints, cfg.PointsToWin)
	assert.Equal(t, DefaultSeconds*time.Second, cfg.TimeLimit)
	assert.Equal(t, DefaultFPS, cfg.FPS)
	assert.Equal(t, snapshot.RulesetSingle, cfg.Ruleset)
	assert.Equal(t, control.Medium, cfg.Difficulty)
	assert.Equal(t, settings.DefaultPath(), cfg.SettingsPath)
	assert.False(t, cfg.Mute)
	assert.Empty(t, cfg.LogPath)
	assert.Empty(t, cfg.RecordPath)
	assert.Zero(t, cfg.Seed)
}

func TestParseArgs_CustomOptions(t *testing.T) {
	args := []string{
		"--points", "21", "--time", "90", "--fps", "120",
		"--mode", "timed", "--difficulty", "hard",
		"--mute", "--log", "/tmp/pong.log", "--record", "/tmp/pong.rec",
		"--settings", "", "--seed", "42",
	}
	cfg, err := ParseArgs(args)
	require.NoError(t, err)

	assert.Equal(t, 21, cfg.PointsToWin)
	assert.Equal(t, 90*time.Second, cfg.TimeLimit)
	assert.Equal(t, 120, cfg.FPS)
	assert.Equal(t, time.Second/120, cfg.TickInterval())
	assert.Equal(t, snapshot.RulesetTimed, cfg.Ruleset)
	assert.Equal(t, control.Hard, cfg.Difficulty)
	assert.True(t, cfg.Mute)
	assert.Equal(t, "/tmp/pong.log", cfg.LogPath)
	assert.Equal(t, "/tmp/pong.rec", cfg.RecordPath)
	assert.Empty(t, cfg.SettingsPath)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestParseArgs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"points zero", []string{"--points", "0"}},
		{"points negative", []string{"--points", "-5"}},
		{"time zero", []string{"--time", "0"}},
		{"fps too low", []string{"--fps", "5"}},
		{"fps too high", []string{"--fps", "241"}},
		{"unknown mode", []string{"--mode", "doubles"}},
		{"unknown difficulty", []string{"--difficulty", "insane"}},
		{"unknown flag", []string{"--server"}},
		{"stray argument", []string{"localhost"}},
		{"record over settings", []string{"--settings", "/tmp/a.toml", "--record", "/tmp/a.toml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs(tt.args)
			assert.Error(t, err, "args %v", tt.args)
		})
	}
}

func TestParseArgs_Help(t *testing.T) {
	_, err := ParseArgs([]string{"-h"})
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

func TestParseArgs_ValidFPSBoundaries(t *testing.T) {
	tests := []struct {
		name string
		fps  string
		want int
	}{
		{"minimum fps", "10", 10},
		{"maximum fps", "240", 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseArgs([]string{"--fps", tt.fps})
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.FPS)
		})
	}
}
