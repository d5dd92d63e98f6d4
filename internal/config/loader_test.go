package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}
	return path
}

func TestLoadSettingsEmptyPath(t *testing.T) {
	s, err := LoadSettings("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("Expected defaults, got %+v", s)
	}
}

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	path := writeSettings(t, `{"scale": 3, "haptics": false}`)
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Scale != 3 || s.Haptics {
		t.Errorf("Expected scale=3 haptics=false, got %+v", s)
	}
	if s.FontSize != DefaultFontSize || s.FPS != DefaultFPS {
		t.Errorf("Expected untouched fields to keep defaults, got %+v", s)
	}
}

func TestLoadSettingsRejectsBadValues(t *testing.T) {
	path := writeSettings(t, `{"scale": 0}`)
	_, err := LoadSettings(path)
	if !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("Expected ErrInvalidSettings, got %v", err)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestLoadSettingsMalformed(t *testing.T) {
	path := writeSettings(t, `{"scale": `)
	if _, err := LoadSettings(path); err == nil {
		t.Error("Expected an error for malformed JSON")
	}
}
