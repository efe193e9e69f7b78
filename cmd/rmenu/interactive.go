package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/walker84837/rmenu-ng/config"
	"github.com/walker84837/rmenu-ng/menu"
)

type menuModel struct {
	err      error
	input    textinput.Model
	commands []menu.Command
	filtered []menu.Command
	selected int

	titleStyle    lipgloss.Style
	itemStyle     lipgloss.Style
	selectedStyle lipgloss.Style
	errorStyle    lipgloss.Style
	helpStyle     lipgloss.Style
}

func newMenuModel(cmds []menu.Command, initial string, theme config.Theme) *menuModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Prompt = "> "
	ti.SetValue(initial)
	ti.Focus()

	m := &menuModel{
		input:    ti,
		commands: cmds,
	}
	m.applyTheme(theme)
	m.refilter()
	return m
}

func (m *menuModel) applyTheme(theme config.Theme) {
	background := lipgloss.Color(colorHex(theme.Background))
	text := lipgloss.Color(colorHex(theme.Text))
	highlight := lipgloss.Color(colorHex(theme.Highlight))

	m.titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(highlight).
		Padding(0, 1)
	m.itemStyle = lipgloss.NewStyle().Foreground(text).Background(background)
	m.selectedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(highlight)
	m.errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	m.helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
}

// colorHex converts a 0..1 float RGB triple to a lipgloss hex color.
func colorHex(c [3]float64) string {
	channel := func(v float64) int {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return int(v * 255)
	}
	return fmt.Sprintf("#%02X%02X%02X", channel(c[0]), channel(c[1]), channel(c[2]))
}

func (m *menuModel) refilter() {
	needle := strings.ToLower(m.input.Value())
	m.filtered = m.filtered[:0]
	for _, c := range m.commands {
		if needle == "" ||
			strings.Contains(strings.ToLower(c.Display), needle) ||
			strings.Contains(strings.ToLower(c.Key), needle) {
			m.filtered = append(m.filtered, c)
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = len(m.filtered) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

type launchedMsg struct {
	err error
}

func (m *menuModel) launch() tea.Msg {
	if len(m.filtered) == 0 {
		return launchedMsg{err: fmt.Errorf("nothing to launch")}
	}
	return launchedMsg{err: menu.Run(m.filtered[m.selected])}
}

func (m *menuModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "up", "ctrl+k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down", "ctrl+j":
			if m.selected < len(m.filtered)-1 {
				m.selected++
			}
			return m, nil

		case "enter":
			return m, m.launch
		}

	case launchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refilter()
	return m, cmd
}

func (m *menuModel) View() string {
	var b strings.Builder

	b.WriteString(m.titleStyle.Render("rmenu"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(m.helpStyle.Render("no matches"))
		b.WriteString("\n")
	}
	for i, c := range m.filtered {
		if i == m.selected {
			b.WriteString(m.selectedStyle.Render("> " + c.Display))
		} else {
			b.WriteString(m.itemStyle.Render("  " + c.Display))
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpStyle.Render("↑/↓ select • enter launch • esc quit"))
	return b.String()
}

// settingsPaths resolves the theme and window file locations. Empty paths
// mean no usable config directory; loads then fall back to defaults and
// nothing is written back.
func settingsPaths() (themePath, windowPath string) {
	dir, err := config.Dir()
	if err != nil {
		return "", ""
	}
	return filepath.Join(dir, config.ThemeFile), filepath.Join(dir, config.WindowFile)
}

// saveSettings writes both blobs back, so a first run leaves editable files
// behind and later runs keep user edits.
func saveSettings(themePath, windowPath string, theme config.Theme, window config.Window) {
	if themePath == "" {
		return
	}
	if err := config.SaveTheme(themePath, theme); err != nil {
		fmt.Fprintf(os.Stderr, "rmenu: saving theme: %v\n", err)
	}
	if err := config.SaveWindow(windowPath, window); err != nil {
		fmt.Fprintf(os.Stderr, "rmenu: saving window settings: %v\n", err)
	}
}

func runInteractive(cmds []menu.Command, initial string) error {
	themePath, windowPath := settingsPaths()
	theme := config.LoadTheme(themePath)
	window := config.LoadWindow(windowPath)

	p := tea.NewProgram(newMenuModel(cmds, initial, theme))
	_, err := p.Run()

	saveSettings(themePath, windowPath, theme, window)
	return err
}
