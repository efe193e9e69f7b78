package main

import (
	"os"
	"reflect"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/walker84837/rmenu-ng/config"
	"github.com/walker84837/rmenu-ng/menu"
)

func TestColorHex(t *testing.T) {
	tests := []struct {
		name string
		in   [3]float64
		want string
	}{
		{"black", [3]float64{0, 0, 0}, "#000000"},
		{"white", [3]float64{1, 1, 1}, "#FFFFFF"},
		{"mixed", [3]float64{0.5, 0, 1}, "#7F00FF"},
		{"clamped_low", [3]float64{-1, 0, 0}, "#000000"},
		{"clamped_high", [3]float64{2, 0, 0}, "#FF0000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorHex(tt.in); got != tt.want {
				t.Errorf("colorHex(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMenuModel_ThemeFeedsStyles(t *testing.T) {
	theme := config.Theme{
		Background: [3]float64{0, 0, 0.25},
		Text:       [3]float64{1, 1, 0},
		Highlight:  [3]float64{0, 1, 0},
	}
	m := newMenuModel(nil, "", theme)

	if got := m.itemStyle.GetBackground(); got != lipgloss.Color("#00003F") {
		t.Errorf("item background = %v, want theme background", got)
	}
	if got := m.itemStyle.GetForeground(); got != lipgloss.Color("#FFFF00") {
		t.Errorf("item foreground = %v, want theme text color", got)
	}
	if got := m.selectedStyle.GetBackground(); got != lipgloss.Color("#00FF00") {
		t.Errorf("selected background = %v, want theme highlight", got)
	}
	if got := m.titleStyle.GetBackground(); got != lipgloss.Color("#00FF00") {
		t.Errorf("title background = %v, want theme highlight", got)
	}
}

func TestSettings_SavedBackAndReloaded(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themePath, windowPath := settingsPaths()
	if themePath == "" || windowPath == "" {
		t.Fatal("settings paths not resolved")
	}

	// First run: nothing on disk yet, loads fall back to defaults and the
	// save-back materializes both files.
	theme := config.LoadTheme(themePath)
	window := config.LoadWindow(windowPath)
	if !reflect.DeepEqual(theme, config.DefaultTheme()) {
		t.Errorf("first load theme = %#v, want defaults", theme)
	}
	saveSettings(themePath, windowPath, theme, window)
	for _, path := range []string{themePath, windowPath} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("settings file not written: %v", err)
		}
	}

	// A user edit survives the next load/save cycle.
	theme.Highlight = [3]float64{1, 0, 0}
	window.FontName = "Terminus"
	saveSettings(themePath, windowPath, theme, window)
	if got := config.LoadTheme(themePath); !reflect.DeepEqual(got, theme) {
		t.Errorf("reloaded theme = %#v, want %#v", got, theme)
	}
	if got := config.LoadWindow(windowPath); !reflect.DeepEqual(got, window) {
		t.Errorf("reloaded window = %#v, want %#v", got, window)
	}
}

func TestFilterCommands(t *testing.T) {
	cmds := []menu.Command{
		{Key: "firefox", Display: "Firefox"},
		{Key: "files", Display: "File Manager"},
		{Key: "gimp", Display: "GNU Image Manipulation Program"},
	}
	if got := filterCommands(cmds, ""); !reflect.DeepEqual(got, cmds) {
		t.Errorf("empty filter = %#v", got)
	}
	got := filterCommands(cmds, "fi")
	if len(got) != 2 || got[0].Key != "firefox" || got[1].Key != "files" {
		t.Errorf("filter fi = %#v", got)
	}
	if got := filterCommands(cmds, "image"); len(got) != 1 || got[0].Key != "gimp" {
		t.Errorf("filter image = %#v", got)
	}
	if got := filterCommands(cmds, "zzz"); got != nil {
		t.Errorf("filter zzz = %#v", got)
	}
}
