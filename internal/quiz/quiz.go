// Package quiz implements the linear question-by-question exam used by the
// Examen screen.
package quiz

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNoQuestions     = errors.New("quiz has no questions")
	ErrFinished        = errors.New("quiz is finished")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrNotAnswered     = errors.New("question not answered")
	ErrUnknownOption   = errors.New("option not offered")
)

type Question struct {
	Prompt  string
	Options []string
	Answer  string
}

func (q Question) Validate() error {
	if q.Prompt == "" {
		return errors.New("question prompt is empty")
	}
	if len(q.Options) == 0 {
		return fmt.Errorf("question %q has no options", q.Prompt)
	}
	if !slices.Contains(q.Options, q.Answer) {
		return fmt.Errorf("question %q: answer %q is not an option", q.Prompt, q.Answer)
	}
	return nil
}

// DefaultQuestions is the built-in beatbox exam.
func DefaultQuestions() []Question {
	return []Question{
		{Prompt: "Primer campeon mundial de Beatbox:", Options: []string{"Skiller", "Dharni", "Thom Thum", "Roxorloops"}, Answer: "Roxorloops"},
		{Prompt: "Donde va a ser el proximo mundial de Beatbox:", Options: []string{"EUA", "Francia", "Japon", "Polonia"}, Answer: "Japon"},
		{Prompt: "Actual campeon mundial:", Options: []string{"Julard", "Tomazacre", "Dlow", "Napom"}, Answer: "Julard"},
		{Prompt: "Pais con mas titulos mundiales:", Options: []string{"EUA", "Francia", "Corea del Sur", "Alemania"}, Answer: "Francia"},
		{Prompt: "Beatboxer con mas titulos mundiales:", Options: []string{"Dharni", "River", "Alexinho", "Alem"}, Answer: "Dharni"},
	}
}

type OptionState int

const (
	OptionIdle OptionState = iota
	OptionChosenCorrect
	OptionChosenWrong
	OptionRevealed
)

type Quiz struct {
	questions []Question
	passScore int
	index     int
	score     int
	selected  string
	answered  bool
}

// New builds a quiz. A passScore <= 0 means every question must be right.
func New(questions []Question, passScore int) (*Quiz, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, err
		}
	}
	if passScore <= 0 || passScore > len(questions) {
		passScore = len(questions)
	}
	return &Quiz{questions: slices.Clone(questions), passScore: passScore}, nil
}

// Current returns the question on screen; ok is false once finished.
func (q *Quiz) Current() (Question, bool) {
	if q.Finished() {
		return Question{}, false
	}
	return q.questions[q.index], true
}

// Number is the 1-based position of the current question.
func (q *Quiz) Number() int {
	return q.index + 1
}

func (q *Quiz) Total() int {
	return len(q.questions)
}

func (q *Quiz) Score() int {
	return q.score
}

func (q *Quiz) PassScore() int {
	return q.passScore
}

func (q *Quiz) Finished() bool {
	return q.index >= len(q.questions)
}

func (q *Quiz) Passed() bool {
	return q.score >= q.passScore
}

func (q *Quiz) Selected() (string, bool) {
	return q.selected, q.answered
}

// Select locks in an answer for the current question. Only the first
// selection counts.
func (q *Quiz) Select(option string) error {
	cur, ok := q.Current()
	if !ok {
		return ErrFinished
	}
	if q.answered {
		return ErrAlreadyAnswered
	}
	if !slices.Contains(cur.Options, option) {
		return fmt.Errorf("%w: %q", ErrUnknownOption, option)
	}
	q.selected = option
	q.answered = true
	return nil
}

// Next scores the current answer and moves to the following question.
func (q *Quiz) Next() error {
	cur, ok := q.Current()
	if !ok {
		return ErrFinished
	}
	if !q.answered {
		return ErrNotAnswered
	}
	if q.selected == cur.Answer {
		q.score++
	}
	q.selected = ""
	q.answered = false
	q.index++
	return nil
}

func (q *Quiz) Retry() {
	q.index = 0
	q.score = 0
	q.selected = ""
	q.answered = false
}

// OptionState reports how option should be shown for the current question.
func (q *Quiz) OptionState(option string) OptionState {
	cur, ok := q.Current()
	if !ok || !q.answered {
		return OptionIdle
	}
	switch {
	case option == q.selected && option == cur.Answer:
		return OptionChosenCorrect
	case option == q.selected:
		return OptionChosenWrong
	case option == cur.Answer:
		return OptionRevealed
	default:
		return OptionIdle
	}
}
