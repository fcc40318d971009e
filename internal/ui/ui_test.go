package ui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tareas/internal/config"
	"tareas/internal/task"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey    = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTabKey = tea.KeyMsg{Type: tea.KeyShiftTab}
	escKey      = tea.KeyMsg{Type: tea.KeyEsc}
	spaceKey    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	rightKey    = tea.KeyMsg{Type: tea.KeyRight}
	leftKey     = tea.KeyMsg{Type: tea.KeyLeft}
	ctrlN       = tea.KeyMsg{Type: tea.KeyCtrlN}
	ctrlP       = tea.KeyMsg{Type: tea.KeyCtrlP}
	ctrlC       = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestApp(t *testing.T, cfg config.Config) (Model, *task.Store) {
	t.Helper()
	store := task.NewStore(task.NewMemoryRepository())
	require.NoError(t, store.Seed(cfg.Seeds()))
	m, err := New(store, cfg, discardLogger())
	require.NoError(t, err)
	return m, store
}

func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNew_StartTab(t *testing.T) {
	tests := []struct {
		tab   string
		title string
	}{
		{config.TabFondo, "Cambiar fondo"},
		{config.TabExamen, "EXAMEN DE BEATBOX"},
		{config.TabTareas, "Lista de Tareas"},
	}

	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			cfg := config.Default()
			cfg.StartTab = tt.tab
			m, _ := newTestApp(t, cfg)
			assert.Equal(t, tt.tab, m.activeTab())
			assert.Contains(t, m.View(), tt.title)
		})
	}
}

func TestNew_InvalidQuiz(t *testing.T) {
	cfg := config.Default()
	cfg.Quiz.Questions = nil
	_, err := New(task.NewStore(nil), cfg, discardLogger())
	assert.Error(t, err)
}

func TestModel_SwitchTabs(t *testing.T) {
	m, _ := newTestApp(t, config.Default())
	require.Equal(t, config.TabTareas, m.activeTab())

	m, _ = press(t, m, ctrlN)
	assert.Equal(t, config.TabFondo, m.activeTab())
	m, _ = press(t, m, ctrlN)
	assert.Equal(t, config.TabExamen, m.activeTab())
	m, _ = press(t, m, ctrlP, ctrlP)
	assert.Equal(t, config.TabTareas, m.activeTab())
}

func TestModel_QuitKey(t *testing.T) {
	m, _ := newTestApp(t, config.Default())
	require.True(t, m.typing())

	m, cmd := press(t, m, runes("q"))
	assert.False(t, isQuit(cmd))
	assert.Equal(t, "q", m.tareas.inputs[0].input.Value())

	m, _ = press(t, m, escKey)
	assert.False(t, m.typing())
	_, cmd = press(t, m, runes("q"))
	assert.True(t, isQuit(cmd))
}

func TestModel_CtrlCAlwaysQuits(t *testing.T) {
	m, _ := newTestApp(t, config.Default())
	require.True(t, m.typing())
	_, cmd := press(t, m, ctrlC)
	assert.True(t, isQuit(cmd))
}

func TestModel_TasksChangedWhileAway(t *testing.T) {
	m, store := newTestApp(t, config.Default())
	m, _ = press(t, m, ctrlN)
	require.Equal(t, config.TabFondo, m.activeTab())

	_, err := store.Add("Casa", "Trapear")
	require.NoError(t, err)
	m, cmd := press(t, m, tasksChangedMsg{})
	assert.NotNil(t, cmd)

	m, _ = press(t, m, ctrlP)
	assert.Contains(t, m.View(), "Casa: Trapear")
}

func TestModel_AddFromSecondCategory(t *testing.T) {
	m, store := newTestApp(t, config.Default())

	m, _ = press(t, m, tabKey, runes("Repasar examen"), enterKey)

	tasks, err := store.List()
	require.NoError(t, err)
	require.Len(t, tasks, 5)
	assert.Equal(t, "Escuela: Repasar examen", tasks[4].Name)
	assert.Contains(t, m.View(), "Escuela: Repasar examen")
}

func TestModel_HelpBar(t *testing.T) {
	m, _ := newTestApp(t, config.Default())
	assert.Contains(t, m.View(), "ctrl+n")

	m, _ = press(t, m, escKey)
	view := m.View()
	assert.Contains(t, view, "space")
	assert.Contains(t, view, "delete")
}

func TestModel_CloseDetachesFromStore(t *testing.T) {
	m, store := newTestApp(t, config.Default())
	m.Close()

	_, err := store.Add("Casa", "Barrer")
	require.NoError(t, err)
	assert.Empty(t, m.tareas.changes)
}
