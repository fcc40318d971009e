package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"tareas/internal/config"
	"tareas/internal/quiz"
	"tareas/internal/task"
)

var tabTitles = map[string]string{
	config.TabFondo:  "Fondo",
	config.TabExamen: "Examen",
	config.TabTareas: "Tareas",
}

// Model switches between the three screens. The to-do screen keeps
// listening for store changes while other tabs are shown.
type Model struct {
	keys   keyMap
	help   help.Model
	logger *log.Logger
	active int
	fondo  fondoModel
	examen examenModel
	tareas todoModel
}

func New(store *task.Store, cfg config.Config, logger *log.Logger) (Model, error) {
	q, err := quiz.New(cfg.QuizQuestions(), cfg.Quiz.PassScore)
	if err != nil {
		return Model{}, fmt.Errorf("build quiz: %w", err)
	}
	active := slices.Index(config.Tabs, cfg.StartTab)
	if active < 0 {
		active = slices.Index(config.Tabs, config.TabTareas)
	}
	keys := newKeyMap(cfg.Keys)
	return Model{
		keys:   keys,
		help:   help.New(),
		logger: logger,
		active: active,
		fondo:  newFondoModel(keys),
		examen: newExamenModel(q, keys),
		tareas: newTodoModel(store, cfg.Categories, keys, logger),
	}, nil
}

func Run(store *task.Store, cfg config.Config, logger *log.Logger) error {
	m, err := New(store, cfg, logger)
	if err != nil {
		return err
	}
	defer m.Close()
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// Close stops forwarding store changes to this model.
func (m Model) Close() {
	m.tareas.close()
}

func (m Model) Init() tea.Cmd {
	return m.tareas.Init()
}

func (m Model) activeTab() string {
	return config.Tabs[m.active]
}

// typing reports whether printable keys belong to a text field.
func (m Model) typing() bool {
	return m.activeTab() == config.TabTareas && m.tareas.inputFocused()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC:
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			return m.switchTab(m.active + 1), nil
		case key.Matches(msg, m.keys.PrevTab):
			return m.switchTab(m.active - 1), nil
		case key.Matches(msg, m.keys.Quit) && !m.typing():
			return m, tea.Quit
		}
		return m.updateActive(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		var cmd tea.Cmd
		m.tareas, cmd = m.tareas.Update(msg)
		return m, cmd
	case tasksChangedMsg:
		m.logger.Debug("task list changed", "kind", msg.change.Kind, "version", msg.change.Version)
		var cmd tea.Cmd
		m.tareas, cmd = m.tareas.Update(msg)
		return m, cmd
	}
	return m.updateActive(msg)
}

func (m Model) switchTab(i int) Model {
	n := len(config.Tabs)
	m.active = ((i % n) + n) % n
	m.logger.Debug("switch tab", "tab", m.activeTab())
	return m
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.activeTab() {
	case config.TabFondo:
		m.fondo, cmd = m.fondo.Update(msg)
	case config.TabExamen:
		m.examen, cmd = m.examen.Update(msg)
	case config.TabTareas:
		m.tareas, cmd = m.tareas.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	var keys []key.Binding
	switch m.activeTab() {
	case config.TabFondo:
		b.WriteString(m.fondo.View())
		keys = m.fondo.helpKeys()
	case config.TabExamen:
		b.WriteString(m.examen.View())
		keys = m.examen.helpKeys()
	case config.TabTareas:
		b.WriteString(m.tareas.View())
		keys = m.tareas.helpKeys()
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView(append(keys, m.keys.NextTab)))
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(config.Tabs))
	for i, name := range config.Tabs {
		if i == m.active {
			tabs = append(tabs, activeTabStyle.Render(tabTitles[name]))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(tabTitles[name]))
		}
	}
	return strings.Join(tabs, " ")
}
