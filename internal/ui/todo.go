package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"tareas/internal/task"
)

// tasksChangedMsg carries a store notification into the event loop.
type tasksChangedMsg struct {
	change task.Change
}

func waitForChange(ch <-chan task.Change) tea.Cmd {
	return func() tea.Msg {
		return tasksChangedMsg{change: <-ch}
	}
}

// categoryInput is the draft box for one category label.
type categoryInput struct {
	category string
	input    textinput.Model
}

func newCategoryInput(category string) categoryInput {
	ti := textinput.New()
	ti.Prompt = category + " > "
	ti.Placeholder = "Nueva tarea"
	ti.CharLimit = 256
	ti.Width = 40
	return categoryInput{category: category, input: ti}
}

// submit adds the draft to the store and clears it. A blank draft is
// ignored; a failed add keeps the draft.
func (c *categoryInput) submit(store *task.Store) (bool, error) {
	draft := c.input.Value()
	if strings.TrimSpace(draft) == "" {
		return false, nil
	}
	if _, err := store.Add(c.category, draft); err != nil {
		return false, err
	}
	c.input.SetValue("")
	return true, nil
}

func (c categoryInput) buttonLabel() string {
	return "Agregar tarea de " + c.category
}

// todoModel is the Tareas screen: one input per category and the task list,
// all bound to the same store.
type todoModel struct {
	store   *task.Store
	keys    keyMap
	logger  *log.Logger
	inputs  []categoryInput
	tasks   []task.Task
	loaded  bool
	version uint64
	focus   int
	cursor  int
	status  string
	changes chan task.Change
	// unsubscribe detaches the model from the store; see Model.Close.
	unsubscribe func()
}

func newTodoModel(store *task.Store, categories []string, keys keyMap, logger *log.Logger) todoModel {
	changes := make(chan task.Change, 1)
	unsubscribe := store.Subscribe(func(c task.Change) {
		select {
		case changes <- c:
		default:
		}
	})

	m := todoModel{
		store:       store,
		keys:        keys,
		logger:      logger,
		changes:     changes,
		unsubscribe: unsubscribe,
		status:      "Escribe una tarea y presiona enter.",
	}
	for _, c := range categories {
		m.inputs = append(m.inputs, newCategoryInput(c))
	}
	m = m.refresh()
	m, _ = m.setFocus(0)
	return m
}

func (m todoModel) close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m todoModel) Init() tea.Cmd {
	return waitForChange(m.changes)
}

func (m todoModel) listFocused() bool {
	return m.focus == len(m.inputs)
}

func (m todoModel) inputFocused() bool {
	return !m.listFocused()
}

func (m todoModel) setFocus(i int) (todoModel, tea.Cmd) {
	n := len(m.inputs) + 1
	m.focus = ((i % n) + n) % n
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].input.Focus()
		} else {
			m.inputs[j].input.Blur()
		}
	}
	return m, cmd
}

// refresh re-reads the store when it has changed since the last snapshot.
func (m todoModel) refresh() todoModel {
	if m.loaded && m.version == m.store.Version() {
		return m
	}
	tasks, err := m.store.List()
	if err != nil {
		m.status = fmt.Sprintf("reload failed: %v", err)
		m.logger.Error("reload tasks", "err", err)
		return m
	}
	m.tasks = tasks
	m.loaded = true
	m.version = m.store.Version()
	m.cursor = clampCursor(m.cursor, len(m.tasks))
	return m
}

func (m todoModel) Update(msg tea.Msg) (todoModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksChangedMsg:
		m = m.refresh()
		return m, waitForChange(m.changes)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.FocusNext):
			return m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.FocusPrev):
			return m.setFocus(m.focus - 1)
		}
		if m.inputFocused() {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	case tea.WindowSizeMsg:
		for i := range m.inputs {
			m.inputs[i].input.Width = max(msg.Width-len(m.inputs[i].input.Prompt)-4, 10)
		}
		return m, nil
	}

	if m.inputFocused() {
		var cmd tea.Cmd
		m.inputs[m.focus].input, cmd = m.inputs[m.focus].input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m todoModel) updateInput(msg tea.KeyMsg) (todoModel, tea.Cmd) {
	in := &m.inputs[m.focus]
	switch {
	case key.Matches(msg, m.keys.Confirm):
		added, err := in.submit(m.store)
		if err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
			m.logger.Warn("add task", "category", in.category, "err", err)
			return m, nil
		}
		if !added {
			return m, nil
		}
		m = m.refresh()
		m.cursor = clampCursor(len(m.tasks)-1, len(m.tasks))
		m.status = "Tarea agregada"
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		return m.setFocus(len(m.inputs))
	default:
		var cmd tea.Cmd
		in.input, cmd = in.input.Update(msg)
		return m, cmd
	}
}

func (m todoModel) updateList(msg tea.KeyMsg) (todoModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(m.tasks))
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(m.tasks))
	case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Confirm):
		if len(m.tasks) == 0 {
			return m, nil
		}
		m = m.dispatch("toggle", m.store.ToggleCompleted, m.tasks[m.cursor].ID)
	case key.Matches(msg, m.keys.Delete):
		if len(m.tasks) == 0 {
			return m, nil
		}
		m = m.dispatch("delete", m.store.Delete, m.tasks[m.cursor].ID)
	}
	return m, nil
}

func (m todoModel) dispatch(op string, fn func(task.ID) error, id task.ID) todoModel {
	err := fn(id)
	switch {
	case errors.Is(err, task.ErrNotFound):
		m.status = "La tarea ya no existe"
		m.logger.Warn(op+" stale task", "id", id)
	case err != nil:
		m.status = fmt.Sprintf("%s failed: %v", op, err)
		m.logger.Error(op+" task", "id", id, "err", err)
	case op == "delete":
		m.status = "Tarea eliminada"
	default:
		m.status = "Tarea actualizada"
	}
	return m.refresh()
}

func (m todoModel) helpKeys() []key.Binding {
	if m.inputFocused() {
		return []key.Binding{m.keys.Confirm, m.keys.FocusNext, m.keys.Cancel}
	}
	return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Toggle, m.keys.Delete, m.keys.FocusNext, m.keys.Quit}
}

func (m todoModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Lista de Tareas"))
	b.WriteString("\n\n")

	for i, in := range m.inputs {
		b.WriteString(in.input.View())
		b.WriteString("\n")
		label := "[" + in.buttonLabel() + "]"
		if i == m.focus {
			b.WriteString(focusedButtonStyle.Render(label))
		} else {
			b.WriteString(label)
		}
		b.WriteString("\n\n")
	}

	b.WriteString(renderTaskList(m.tasks, m.cursor, m.listFocused()))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	return b.String()
}

// renderTaskList draws a snapshot. It holds no state of its own.
func renderTaskList(tasks []task.Task, cursor int, focused bool) string {
	if len(tasks) == 0 {
		return "No hay tareas.\n"
	}
	var b strings.Builder
	for i, t := range tasks {
		pointer := " "
		if focused && i == cursor {
			pointer = ">"
		}
		check := checkTodoStyle.Render("[ ]")
		name := pendingStyle.Render(t.Name)
		if t.Completed {
			check = checkDoneStyle.Render("[x]")
			name = completedStyle.Render(t.Name)
		}
		fmt.Fprintf(&b, "%s %s %s %s\n", pointer, check, name, deleteStyle.Render("(borrar)"))
	}
	return b.String()
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
