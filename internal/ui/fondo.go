package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tareas/internal/playground"
)

type fondoControl int

const (
	controlBackground fondoControl = iota
	controlText
	controlStyle
	controlAge
	controlOpacity
	controlCount
)

const ballArt = `   _____
  / \ / \
 |---O---|
  \_/ \_/`

type fondoModel struct {
	state playground.State
	keys  keyMap
	focus fondoControl
	bar   progress.Model
}

func newFondoModel(keys keyMap) fondoModel {
	return fondoModel{
		state: playground.New(),
		keys:  keys,
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage()),
	}
}

func (m fondoModel) Update(msg tea.Msg) (fondoModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Down):
		m.focus = (m.focus + 1) % controlCount
	case key.Matches(keyMsg, m.keys.Up):
		m.focus = (m.focus + controlCount - 1) % controlCount
	case key.Matches(keyMsg, m.keys.Confirm), key.Matches(keyMsg, m.keys.Toggle):
		m.state = m.activate(m.focus)
	case key.Matches(keyMsg, m.keys.Left):
		m.state = m.slide(-1)
	case key.Matches(keyMsg, m.keys.Right):
		m.state = m.slide(1)
	}
	return m, nil
}

func (m fondoModel) activate(c fondoControl) playground.State {
	switch c {
	case controlBackground:
		return m.state.ToggleBackground()
	case controlText:
		return m.state.ToggleText()
	case controlStyle:
		return m.state.ToggleStyle()
	default:
		return m.state
	}
}

func (m fondoModel) slide(steps int) playground.State {
	switch m.focus {
	case controlAge:
		return m.state.AdjustAge(steps)
	case controlOpacity:
		return m.state.AdjustOpacity(steps)
	default:
		return m.state
	}
}

func (m fondoModel) helpKeys() []key.Binding {
	return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Confirm, m.keys.Left, m.keys.Right, m.keys.Quit}
}

func (m fondoModel) View() string {
	var b strings.Builder
	b.WriteString(m.button(controlBackground, "Cambiar fondo", false))
	b.WriteString("\n")
	b.WriteString(m.button(controlText, m.state.TextLabel(), false))
	b.WriteString("\n")
	b.WriteString(m.button(controlStyle, m.state.StyleLabel(), m.state.Styled))
	b.WriteString("\n\n")

	b.WriteString(m.slider(controlAge, m.state.AgeLabel(), float64(m.state.Age())/playground.MaxAge))
	b.WriteString(m.slider(controlOpacity, m.state.OpacityLabel(), m.state.Opacity()))
	b.WriteString("\n")
	b.WriteString(imageStyle(m.state.Opacity()).Render(ballArt))

	if m.state.Background {
		return backgroundStyle.Render(b.String())
	}
	return b.String()
}

func (m fondoModel) button(c fondoControl, label string, bordered bool) string {
	style := plainButtonStyle
	if bordered {
		style = borderedButtonStyle
	}
	if c == m.focus {
		style = style.Inherit(focusedButtonStyle)
	}
	return pointer(c == m.focus) + style.Render(label)
}

func (m fondoModel) slider(c fondoControl, label string, pct float64) string {
	return fmt.Sprintf("%s%s\n  %s\n", pointer(c == m.focus), label, m.bar.ViewAs(pct))
}

func pointer(focused bool) string {
	if focused {
		return "> "
	}
	return "  "
}

// imageStyle fades the picture towards black as opacity drops.
func imageStyle(opacity float64) lipgloss.Style {
	v := int(opacity * 255)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", v, v, v)))
}
