package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefault(t *testing.T) *Quiz {
	t.Helper()
	q, err := New(DefaultQuestions(), 0)
	require.NoError(t, err)
	return q
}

func answerAll(t *testing.T, q *Quiz, correct int) {
	t.Helper()
	for i := 0; !q.Finished(); i++ {
		cur, ok := q.Current()
		require.True(t, ok)
		choice := cur.Answer
		if i >= correct {
			for _, opt := range cur.Options {
				if opt != cur.Answer {
					choice = opt
					break
				}
			}
		}
		require.NoError(t, q.Select(choice))
		require.NoError(t, q.Next())
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		questions []Question
		passScore int
		wantPass  int
		wantErr   bool
	}{
		{name: "defaults require every answer", questions: DefaultQuestions(), wantPass: 5},
		{name: "explicit pass score", questions: DefaultQuestions(), passScore: 3, wantPass: 3},
		{name: "pass score above total is capped", questions: DefaultQuestions(), passScore: 9, wantPass: 5},
		{name: "no questions", wantErr: true},
		{name: "answer missing from options", questions: []Question{{Prompt: "p", Options: []string{"a"}, Answer: "b"}}, wantErr: true},
		{name: "empty prompt", questions: []Question{{Options: []string{"a"}, Answer: "a"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := New(tt.questions, tt.passScore)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPass, q.PassScore())
			assert.Equal(t, 1, q.Number())
		})
	}
}

func TestQuiz_Flow(t *testing.T) {
	q := newDefault(t)
	assert.Equal(t, 5, q.Total())

	assert.ErrorIs(t, q.Next(), ErrNotAnswered)

	require.NoError(t, q.Select("Roxorloops"))
	assert.ErrorIs(t, q.Select("Dharni"), ErrAlreadyAnswered)
	sel, ok := q.Selected()
	assert.True(t, ok)
	assert.Equal(t, "Roxorloops", sel)

	require.NoError(t, q.Next())
	assert.Equal(t, 1, q.Score())
	assert.Equal(t, 2, q.Number())
	_, ok = q.Selected()
	assert.False(t, ok)

	require.NoError(t, q.Select("Francia"))
	require.NoError(t, q.Next())
	assert.Equal(t, 1, q.Score())
}

func TestQuiz_SelectUnknownOption(t *testing.T) {
	q := newDefault(t)
	assert.ErrorIs(t, q.Select("Nadie"), ErrUnknownOption)
	_, ok := q.Selected()
	assert.False(t, ok)
}

func TestQuiz_PassAndFail(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		passed  bool
	}{
		{"all correct", 5, true},
		{"one wrong", 4, false},
		{"all wrong", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newDefault(t)
			answerAll(t, q, tt.correct)

			assert.True(t, q.Finished())
			assert.Equal(t, tt.correct, q.Score())
			assert.Equal(t, tt.passed, q.Passed())
			assert.ErrorIs(t, q.Select("Dharni"), ErrFinished)
			assert.ErrorIs(t, q.Next(), ErrFinished)
			_, ok := q.Current()
			assert.False(t, ok)
		})
	}
}

func TestQuiz_Retry(t *testing.T) {
	q := newDefault(t)
	answerAll(t, q, 3)
	require.True(t, q.Finished())

	q.Retry()
	assert.False(t, q.Finished())
	assert.Equal(t, 1, q.Number())
	assert.Equal(t, 0, q.Score())
	cur, ok := q.Current()
	require.True(t, ok)
	assert.Equal(t, "Primer campeon mundial de Beatbox:", cur.Prompt)
}

func TestQuiz_OptionState(t *testing.T) {
	q := newDefault(t)
	assert.Equal(t, OptionIdle, q.OptionState("Roxorloops"))

	require.NoError(t, q.Select("Skiller"))
	assert.Equal(t, OptionChosenWrong, q.OptionState("Skiller"))
	assert.Equal(t, OptionRevealed, q.OptionState("Roxorloops"))
	assert.Equal(t, OptionIdle, q.OptionState("Dharni"))

	require.NoError(t, q.Next())
	require.NoError(t, q.Select("Japon"))
	assert.Equal(t, OptionChosenCorrect, q.OptionState("Japon"))
	assert.Equal(t, OptionIdle, q.OptionState("EUA"))
}

func TestNew_CopiesQuestions(t *testing.T) {
	questions := DefaultQuestions()
	q, err := New(questions, 0)
	require.NoError(t, err)

	questions[0].Prompt = "changed"
	cur, _ := q.Current()
	assert.Equal(t, "Primer campeon mundial de Beatbox:", cur.Prompt)
}
