package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tareas/internal/quiz"
)

type examenModel struct {
	quiz   *quiz.Quiz
	keys   keyMap
	cursor int
	status string
}

func newExamenModel(q *quiz.Quiz, keys keyMap) examenModel {
	return examenModel{quiz: q, keys: keys}
}

func (m examenModel) Update(msg tea.Msg) (examenModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.quiz.Finished() {
		if key.Matches(keyMsg, m.keys.Retry) || key.Matches(keyMsg, m.keys.Confirm) {
			m.quiz.Retry()
			m.cursor = 0
			m.status = ""
		}
		return m, nil
	}

	cur, _ := m.quiz.Current()
	switch {
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(cur.Options))
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(cur.Options))
	case key.Matches(keyMsg, m.keys.Confirm), key.Matches(keyMsg, m.keys.Toggle):
		if _, answered := m.quiz.Selected(); answered {
			return m.next(), nil
		}
		if err := m.quiz.Select(cur.Options[m.cursor]); err != nil {
			m.status = err.Error()
		}
	}
	return m, nil
}

func (m examenModel) next() examenModel {
	err := m.quiz.Next()
	if err != nil && !errors.Is(err, quiz.ErrFinished) {
		m.status = err.Error()
		return m
	}
	m.cursor = 0
	m.status = ""
	return m
}

func (m examenModel) helpKeys() []key.Binding {
	if m.quiz.Finished() {
		return []key.Binding{m.keys.Retry, m.keys.Quit}
	}
	return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Confirm, m.keys.Quit}
}

func (m examenModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("EXAMEN DE BEATBOX"))
	b.WriteString("\n\n")

	cur, ok := m.quiz.Current()
	if !ok {
		b.WriteString(titleStyle.Render("¡Examen terminado!"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "¡Sacaste %d/%d!\n", m.quiz.Score(), m.quiz.Total())
		if m.quiz.Passed() {
			b.WriteString("¡Aprobaste!")
		} else {
			b.WriteString("¡Reprobaste!")
		}
		b.WriteString("\n\n")
		b.WriteString(retryStyle.Render("Volver a hacer el examen"))
		return b.String()
	}

	fmt.Fprintf(&b, "Pregunta %d\n\n", m.quiz.Number())
	b.WriteString(cur.Prompt)
	b.WriteString("\n\n")
	for i, opt := range cur.Options {
		pointer := "  "
		if i == m.cursor {
			pointer = "> "
		}
		b.WriteString(pointer)
		b.WriteString(optionView(m.quiz.OptionState(opt), opt))
		b.WriteString("\n")
	}
	if _, answered := m.quiz.Selected(); answered {
		b.WriteString("\n")
		b.WriteString(nextStyle.Render("Siguiente pregunta"))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	return b.String()
}

func optionView(state quiz.OptionState, opt string) string {
	switch state {
	case quiz.OptionChosenCorrect, quiz.OptionRevealed:
		return correctStyle.Render(opt)
	case quiz.OptionChosenWrong:
		return wrongStyle.Render(opt)
	default:
		return optionStyle.Render(opt)
	}
}
