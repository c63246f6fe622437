package settings

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/arcadepong/internal/game"
)

// Defaults, applied on first run and per invalid field
const (
	DefaultPaddleColor     = "#ffffff"
	DefaultBallColor       = "#ffffff"
	DefaultBackgroundColor = "#000000"
	DefaultSpeedMultiplier = 1.0
	SpeedMultiplierStep    = 0.25
)

// Settings is the persisted configuration blob
type Settings struct {
	HighScores          HighScoreTable `toml:"high_scores"`
	PaddleColor         string         `toml:"paddle_color"`
	BallColor           string         `toml:"ball_color"`
	BackgroundColor     string         `toml:"background_color"`
	BallSpeedMultiplier float64        `toml:"ball_speed_multiplier"`
}

// Default returns the first-run settings
func Default() *Settings {
	return &Settings{
		HighScores:          HighScoreTable{},
		PaddleColor:         DefaultPaddleColor,
		BallColor:           DefaultBallColor,
		BackgroundColor:     DefaultBackgroundColor,
		BallSpeedMultiplier: DefaultSpeedMultiplier,
	}
}

// Clone returns a deep copy
func (s *Settings) Clone() *Settings {
	c := *s
	c.HighScores = make(HighScoreTable, len(s.HighScores))
	for k, v := range s.HighScores {
		c.HighScores[k] = v
	}
	return &c
}

// Sanitize replaces every invalid field with its default in place
func (s *Settings) Sanitize() {
	if s.HighScores == nil {
		s.HighScores = HighScoreTable{}
	}
	for k, v := range s.HighScores {
		if v < 0 || k == "" {
			delete(s.HighScores, k)
		}
	}
	s.PaddleColor = ColorOr(s.PaddleColor, DefaultPaddleColor)
	s.BallColor = ColorOr(s.BallColor, DefaultBallColor)
	s.BackgroundColor = ColorOr(s.BackgroundColor, DefaultBackgroundColor)
	s.BallSpeedMultiplier = game.ClampMultiplier(s.BallSpeedMultiplier)
}

// ApplyPalette copies a palette's colors
func (s *Settings) ApplyPalette(p Palette) {
	s.PaddleColor = p.Paddle
	s.BallColor = p.Ball
	s.BackgroundColor = p.Background
}

// Palette returns the index of the palette matching the current colors,
// or -1 when the colors are custom
func (s *Settings) Palette() int {
	for i, p := range Palettes {
		if p.Paddle == s.PaddleColor && p.Ball == s.BallColor && p.Background == s.BackgroundColor {
			return i
		}
	}
	return -1
}

// AdjustSpeed steps the multiplier up or down, staying in range
func (s *Settings) AdjustSpeed(steps int) {
	s.BallSpeedMultiplier = game.ClampMultiplier(s.BallSpeedMultiplier + float64(steps)*SpeedMultiplierStep)
}

// ValidColor reports whether c is a #rgb or #rrggbb hex color
func ValidColor(c string) bool {
	_, err := colorful.Hex(c)
	return err == nil
}

// ColorOr returns c when valid, otherwise fallback
func ColorOr(c, fallback string) string {
	if ValidColor(c) {
		return c
	}
	return fallback
}

// Palette is a named color scheme selectable from the menu
type Palette struct {
	Name       string
	Paddle     string
	Ball       string
	Background string
}

// Palettes lists the menu color schemes; the first is the default
var Palettes = []Palette{
	{"classic", DefaultPaddleColor, DefaultBallColor, DefaultBackgroundColor},
	{"neon", "#00ff9c", "#ff00e6", "#0b0221"},
	{"amber", "#ffb000", "#ffd27f", "#1a1200"},
	{"ocean", "#7fdbff", "#ffffff", "#001f3f"},
	{"retro", "#9bbc0f", "#8bac0f", "#0f380f"},
}

// NextPalette returns the palette after the current one, wrapping around
func (s *Settings) NextPalette() Palette {
	return Palettes[(s.Palette()+1)%len(Palettes)]
}
