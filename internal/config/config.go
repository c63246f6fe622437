package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/diegok/arcadepong/internal/control"
	"github.com/diegok/arcadepong/internal/settings"
	"github.com/diegok/arcadepong/internal/snapshot"
)

// Default values for configuration
const (
	DefaultPoints  = 5
	DefaultSeconds = 60
	DefaultFPS     = 60
	MinFPS         = 10
	MaxFPS         = 240
)

// Config holds the application configuration
type Config struct {
	SettingsPath string // empty keeps settings in memory only
	PointsToWin  int
	TimeLimit    time.Duration
	FPS          int
	Ruleset      snapshot.Ruleset
	Difficulty   control.Difficulty
	Mute         bool
	LogPath      string
	RecordPath   string
	Seed         int64
}

// TickInterval is the time between ticks
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("arcadepong", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	settingsPath := fs.String("settings", settings.DefaultPath(), "settings file (empty to disable persistence)")
	points := fs.Int("points", DefaultPoints, "points to win (>=1)")
	seconds := fs.Int("time", DefaultSeconds, "timed game length in seconds (>=1)")
	fps := fs.Int("fps", DefaultFPS, fmt.Sprintf("ticks per second (%d-%d)", MinFPS, MaxFPS))
	mode := fs.String("mode", snapshot.RulesetSingle.String(), "initial ruleset: single, two-player or timed")
	difficulty := fs.String("difficulty", control.Medium.String(), "initial AI difficulty: easy, medium or hard")
	mute := fs.Bool("mute", false, "disable sound")
	logPath := fs.String("log", "", "write a log to this file")
	record := fs.String("record", "", "record every frame to this file")
	seed := fs.Int64("seed", 0, "random seed (0 = time based)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	// Validate points
	if *points < 1 {
		return nil, fmt.Errorf("points must be at least 1, got %d", *points)
	}

	if *seconds < 1 {
		return nil, fmt.Errorf("time must be at least 1 second, got %d", *seconds)
	}

	if *fps < MinFPS || *fps > MaxFPS {
		return nil, fmt.Errorf("fps must be between %d and %d, got %d", MinFPS, MaxFPS, *fps)
	}

	ruleset, err := parseRuleset(*mode)
	if err != nil {
		return nil, err
	}

	diff, err := control.ParseDifficulty(*difficulty)
	if err != nil {
		return nil, err
	}

	if *record != "" && *record == *settingsPath {
		return nil, errors.New("record file cannot be the settings file")
	}

	cfg := &Config{
		SettingsPath: *settingsPath,
		PointsToWin:  *points,
		TimeLimit:    time.Duration(*seconds) * time.Second,
		FPS:          *fps,
		Ruleset:      ruleset,
		Difficulty:   diff,
		Mute:         *mute,
		LogPath:      *logPath,
		RecordPath:   *record,
		Seed:         *seed,
	}

	return cfg, nil
}

func parseRuleset(s string) (snapshot.Ruleset, error) {
	for _, r := range snapshot.Rulesets {
		if r.String() == s {
			return r, nil
		}
	}
	return snapshot.RulesetSingle, fmt.Errorf("unknown mode %q", s)
}
