package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/diegok/arcadepong/internal/game"
)

// Store loads and saves the settings blob. Load returns nil, nil when
// nothing has been saved yet.
type Store interface {
	Load() (*Settings, error)
	Save(*Settings) error
}

// DefaultPath returns ~/.config/arcadepong/settings.toml
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		h, _ := os.UserHomeDir()
		dir = filepath.Join(h, ".config")
	}
	return filepath.Join(dir, "arcadepong", "settings.toml")
}

// FileStore keeps settings in a TOML file
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the file. Fields are decoded one by one so a bad value only
// resets that field to its default.
func (s *FileStore) Load() (*Settings, error) {
	var raw map[string]interface{}
	if _, err := toml.DecodeFile(s.Path, &raw); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", s.Path, err)
	}
	return fromRaw(raw), nil
}

// Save writes the file atomically, creating its directory when needed
func (s *FileStore) Save(st *Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.Path), ".settings-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(st); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("failed to replace settings: %w", err)
	}
	return nil
}

// MemoryStore keeps settings in memory; used when persistence is disabled
type MemoryStore struct {
	saved *Settings
}

func (m *MemoryStore) Load() (*Settings, error) {
	if m.saved == nil {
		return nil, nil
	}
	return m.saved.Clone(), nil
}

func (m *MemoryStore) Save(st *Settings) error {
	m.saved = st.Clone()
	return nil
}

// LoadOrDefault loads from store, falling back to defaults when nothing is
// stored. A load error is returned alongside usable defaults.
func LoadOrDefault(store Store) (*Settings, error) {
	st, err := store.Load()
	if err != nil {
		return Default(), err
	}
	if st == nil {
		return Default(), nil
	}
	st.Sanitize()
	return st, nil
}

func fromRaw(raw map[string]interface{}) *Settings {
	st := Default()

	if v, ok := raw["paddle_color"].(string); ok {
		st.PaddleColor = ColorOr(v, DefaultPaddleColor)
	}
	if v, ok := raw["ball_color"].(string); ok {
		st.BallColor = ColorOr(v, DefaultBallColor)
	}
	if v, ok := raw["background_color"].(string); ok {
		st.BackgroundColor = ColorOr(v, DefaultBackgroundColor)
	}
	if v, ok := number(raw["ball_speed_multiplier"]); ok {
		st.BallSpeedMultiplier = game.ClampMultiplier(v)
	}
	if table, ok := raw["high_scores"].(map[string]interface{}); ok {
		for k, v := range table {
			if n, ok := score(v); ok && k != "" {
				st.HighScores[k] = n
			}
		}
	}
	return st
}

// score accepts only non-negative TOML integers that fit in an int.
// Fractional or out-of-range values are skipped rather than truncated.
func score(v interface{}) (int, bool) {
	n, ok := v.(int64)
	if !ok || n < 0 || n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
