// Package config is the launcher's settings store: two independent typed
// blobs kept as human-editable YAML files. Reads never fail; any problem
// (missing file, unreadable file, bad YAML) falls back to built-in defaults
// so the launcher always starts.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Window holds window placement and font preferences.
type Window struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	FontName string  `yaml:"font_name"`
}

// Theme holds colors and font sizing. Color channels are 0..1 floats.
type Theme struct {
	Background [3]float64 `yaml:"background"`
	Text       [3]float64 `yaml:"text"`
	Highlight  [3]float64 `yaml:"highlight"`
	FontSize   float64    `yaml:"font_size"`
}

// DefaultWindow returns the built-in window settings.
func DefaultWindow() Window {
	return Window{
		X:        100,
		Y:        100,
		FontName: "Ubuntu-M",
	}
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Background: [3]float64{0.1, 0.1, 0.1},
		Text:       [3]float64{1.0, 1.0, 1.0},
		Highlight:  [3]float64{0.3, 0.3, 0.7},
		FontSize:   16.0,
	}
}

// File names inside the config directory.
const (
	WindowFile = "window.yaml"
	ThemeFile  = "theme.yaml"
)

// Dir resolves and creates the launcher's configuration directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "rmenu")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// LoadWindow reads window settings from path, falling back to defaults on
// any read or decode failure.
func LoadWindow(path string) Window {
	w := DefaultWindow()
	load(path, &w, DefaultWindow)
	return w
}

// LoadTheme reads the theme from path, falling back to defaults on any
// read or decode failure.
func LoadTheme(path string) Theme {
	t := DefaultTheme()
	load(path, &t, DefaultTheme)
	return t
}

// load decodes YAML into out; on any failure it resets out to defaults.
// Missing fields in a well-formed file keep their default values because
// out is pre-populated before decoding.
func load[T any](path string, out *T, defaults func() T) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		*out = defaults()
	}
}

// SaveWindow writes window settings to path.
func SaveWindow(path string, w Window) error {
	return save(path, w)
}

// SaveTheme writes the theme to path.
func SaveTheme(path string, t Theme) error {
	return save(path, t)
}

func save(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
