// internal/config/loader.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidSettings wraps every validation failure from LoadSettings.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are host-side knobs. None of them change counter behaviour.
type Settings struct {
	Scale    int     `json:"scale"`
	Haptics  bool    `json:"haptics"`
	FontSize float64 `json:"font_size"`
	FPS      int     `json:"fps"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		Scale:    DefaultScale,
		Haptics:  true,
		FontSize: DefaultFontSize,
		FPS:      DefaultFPS,
	}
}

// LoadSettings reads a JSON settings file on top of the defaults.
// An empty path returns the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := json.Unmarshal(file, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate rejects values no host can work with.
func (s Settings) Validate() error {
	if s.Scale < 1 || s.Scale > 8 {
		return fmt.Errorf("%w: scale %d not in [1,8]", ErrInvalidSettings, s.Scale)
	}
	if s.FontSize <= 0 {
		return fmt.Errorf("%w: font_size %v must be positive", ErrInvalidSettings, s.FontSize)
	}
	if s.FPS <= 0 {
		return fmt.Errorf("%w: fps %d must be positive", ErrInvalidSettings, s.FPS)
	}
	return nil
}
