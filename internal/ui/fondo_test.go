package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"tareas/internal/config"
)

func sendFondo(m fondoModel, msgs ...tea.Msg) fondoModel {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestFondo_Buttons(t *testing.T) {
	m := newFondoModel(newKeyMap(config.Default().Keys))
	view := m.View()
	assert.Contains(t, view, "Cambiar fondo")
	assert.Contains(t, view, "Cambiar texto")
	assert.Contains(t, view, "Boton con estilo")

	m = sendFondo(m, enterKey)
	assert.True(t, m.state.Background)

	m = sendFondo(m, runes("j"), spaceKey)
	assert.Contains(t, m.View(), "Devolver texto")

	m = sendFondo(m, runes("j"), enterKey)
	assert.Contains(t, m.View(), "Boton sin estilo")
}

func TestFondo_Sliders(t *testing.T) {
	m := newFondoModel(newKeyMap(config.Default().Keys))

	m = sendFondo(m, rightKey)
	assert.Equal(t, 0, m.state.Age())

	m = sendFondo(m, runes("j"), runes("j"), runes("j"), rightKey, rightKey, runes("l"))
	assert.Contains(t, m.View(), "Edad: 3")

	m = sendFondo(m, runes("j"), leftKey, runes("h"))
	assert.Contains(t, m.View(), "Opacidad: 0.98")
}

func TestFondo_FocusWraps(t *testing.T) {
	m := newFondoModel(newKeyMap(config.Default().Keys))
	m = sendFondo(m, runes("k"))
	assert.Equal(t, controlOpacity, m.focus)
	m = sendFondo(m, runes("j"))
	assert.Equal(t, controlBackground, m.focus)
}
