package settings

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegok/arcadepong/internal/game"
)

func TestDefault(t *testing.T) {
	st := Default()

	assert.Equal(t, DefaultPaddleColor, st.PaddleColor)
	assert.Equal(t, DefaultBallColor, st.BallColor)
	assert.Equal(t, DefaultBackgroundColor, st.BackgroundColor)
	assert.Equal(t, 1.0, st.BallSpeedMultiplier)
	assert.NotNil(t, st.HighScores)
	assert.Equal(t, 0, st.Palette())
}

func TestSanitize(t *testing.T) {
	st := &Settings{
		HighScores:          HighScoreTable{"single/hard": 4, "single/easy": -2},
		PaddleColor:         "chartreuse-ish",
		BallColor:           "#abc",
		BackgroundColor:     "",
		BallSpeedMultiplier: 7,
	}

	st.Sanitize()

	assert.Equal(t, DefaultPaddleColor, st.PaddleColor)
	assert.Equal(t, "#abc", st.BallColor)
	assert.Equal(t, DefaultBackgroundColor, st.BackgroundColor)
	assert.Equal(t, game.MaxSpeedScale, st.BallSpeedMultiplier)
	assert.Equal(t, HighScoreTable{"single/hard": 4}, st.HighScores)
}

func TestSanitize_SpeedIsMonotonic(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0.5},
		{0.1, 0.5},
		{0.25, 0.5},
		{1.5, 1.5},
		{2.5, 2},
		{math.NaN(), DefaultSpeedMultiplier},
	}

	prev := 0.0
	for _, tt := range tests {
		st := Default()
		st.BallSpeedMultiplier = tt.in
		st.Sanitize()
		assert.Equal(t, tt.want, st.BallSpeedMultiplier, "Sanitize speed %v", tt.in)
		if !math.IsNaN(tt.in) {
			assert.GreaterOrEqual(t, st.BallSpeedMultiplier, prev, "clamp must not decrease for larger input %v", tt.in)
			prev = st.BallSpeedMultiplier
		}
	}
}

func TestAdjustSpeed(t *testing.T) {
	st := Default()
	st.AdjustSpeed(1)
	assert.Equal(t, 1.25, st.BallSpeedMultiplier)

	for i := 0; i < 10; i++ {
		st.AdjustSpeed(1)
	}
	assert.Equal(t, game.MaxSpeedScale, st.BallSpeedMultiplier)

	for i := 0; i < 10; i++ {
		st.AdjustSpeed(-1)
	}
	assert.Equal(t, game.MinSpeedScale, st.BallSpeedMultiplier)
}

func TestNextPalette(t *testing.T) {
	st := Default()
	for i := 1; i <= len(Palettes); i++ {
		st.ApplyPalette(st.NextPalette())
		assert.Equal(t, i%len(Palettes), st.Palette())
	}

	st.PaddleColor = "#123456"
	assert.Equal(t, -1, st.Palette())
	assert.Equal(t, Palettes[0], st.NextPalette())
}

func TestPalettes_Valid(t *testing.T) {
	for _, p := range Palettes {
		assert.True(t, ValidColor(p.Paddle), p.Name)
		assert.True(t, ValidColor(p.Ball), p.Name)
		assert.True(t, ValidColor(p.Background), p.Name)
	}
}

func TestHighScoreTable_Submit(t *testing.T) {
	table := HighScoreTable{}
	key := Key("single", "hard")
	assert.Equal(t, "single/hard", key)

	assert.True(t, table.Submit(key, 5))
	assert.Equal(t, 5, table.Best(key))

	assert.False(t, table.Submit(key, 5), "equal score does not replace")
	assert.False(t, table.Submit(key, 3))
	assert.Equal(t, 5, table.Best(key))

	assert.True(t, table.Submit(key, 6))
	assert.Equal(t, 6, table.Best(key))
	assert.Equal(t, 0, table.Best(Key("timed", "easy")))
}

func TestFileStore_MissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope", "settings.toml"))

	st, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, st)

	st, err = LoadOrDefault(store)
	require.NoError(t, err)
	assert.Equal(t, Default(), st)
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "cfg", "settings.toml"))
	want := &Settings{
		HighScores:          HighScoreTable{"single/hard": 5, "two-player/medium": 11},
		PaddleColor:         "#00ff9c",
		BallColor:           "#ff00e6",
		BackgroundColor:     "#0b0221",
		BallSpeedMultiplier: 1.75,
	}

	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStore_MalformedFieldsFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	content := `
paddle_color = "not a color"
ball_color = 42
background_color = "#102030"
ball_speed_multiplier = "fast"

[high_scores]
"single/hard" = 7
"timed/easy" = "lots"
"single/easy" = -3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	st, err := NewFileStore(path).Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPaddleColor, st.PaddleColor)
	assert.Equal(t, DefaultBallColor, st.BallColor)
	assert.Equal(t, "#102030", st.BackgroundColor)
	assert.Equal(t, DefaultSpeedMultiplier, st.BallSpeedMultiplier)
	assert.Equal(t, HighScoreTable{"single/hard": 7}, st.HighScores)
}

func TestFileStore_HighScoresIntegersOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	content := `
[high_scores]
"single/hard" = 1e30
"single/easy" = 3.9
"single/medium" = 4
"timed/hard" = 2147483647
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	st, err := NewFileStore(path).Load()
	require.NoError(t, err)

	assert.Equal(t, HighScoreTable{"single/medium": 4, "timed/hard": 2147483647}, st.HighScores)
}

func TestFileStore_SpeedClampedOnLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("ball_speed_multiplier = 9\n"), 0o644))

	st, err := NewFileStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, game.MaxSpeedScale, st.BallSpeedMultiplier)

	require.NoError(t, os.WriteFile(path, []byte("ball_speed_multiplier = 0\n"), 0o644))

	st, err = NewFileStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, game.MinSpeedScale, st.BallSpeedMultiplier, "zero clamps to the minimum")
}

func TestFileStore_Unparseable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("this is = = not toml"), 0o644))

	st, err := LoadOrDefault(NewFileStore(path))
	assert.Error(t, err)
	assert.Equal(t, Default(), st, "defaults are still usable")
}

func TestMemoryStore(t *testing.T) {
	var store MemoryStore

	st, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, st)

	want := Default()
	want.HighScores.Submit("single/easy", 3)
	require.NoError(t, store.Save(want))

	want.HighScores.Submit("single/easy", 9)
	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, got.HighScores.Best("single/easy"), "store keeps its own copy")
}
