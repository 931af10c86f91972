package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Theme maps cell roles to lipgloss styles.
type Theme map[core.Color]lipgloss.Style

// DefaultTheme is a green snake on a dim floor.
func DefaultTheme() Theme {
	return Theme{
		core.ColorDefault:   lipgloss.NewStyle(),
		core.ColorSnakeHead: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		core.ColorSnakeBody: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		core.ColorFood:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		core.ColorFloor:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		core.ColorBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		core.ColorOverlay:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		core.ColorDanger:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

var defaultTheme = DefaultTheme()

// RenderScreen converts a Screen buffer to a styled string using the default theme.
func RenderScreen(s *core.Screen) string {
	return defaultTheme.Render(s)
}

// Render converts a Screen buffer to a styled string. Adjacent cells sharing
// a role are emitted as one styled run.
func (t Theme) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		for x := 0; x < s.Width(); {
			role := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != role {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(t.style(role).Render(run.String()))
		}
	}
	return sb.String()
}

func (t Theme) style(c core.Color) lipgloss.Style {
	if st, ok := t[c]; ok {
		return st
	}
	return t[core.ColorDefault]
}
