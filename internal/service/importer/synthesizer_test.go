package importer

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julisunkan/LearnMan/internal/models"
)

func TestHeuristicEmptyTextYieldsNoQuestions(t *testing.T) {
	h := NewHeuristic(5)

	questions, err := h.Generate(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, questions)
	assert.Empty(t, questions)
}

func TestHeuristicNumberSentenceBecomesMultipleChoice(t *testing.T) {
	h := NewHeuristic(5)

	text := "The adult human skeleton is normally made up of 206 distinct bones."
	questions, err := h.Generate(context.Background(), text)
	require.NoError(t, err)
	require.Len(t, questions, 1)

	q := questions[0]
	assert.Equal(t, models.QuestionTypeMultipleChoice, q.Type)
	assert.Contains(t, q.Prompt, "____")
	assert.NotContains(t, q.Prompt, "206")
	require.Len(t, q.Options, 4)
	require.NotNil(t, q.CorrectIndex)
	assert.Equal(t, "206", q.Options[*q.CorrectIndex])
	assert.NoError(t, q.Validate("questions[0]"))
}

func TestHeuristicFactSentenceBecomesTrueFalse(t *testing.T) {
	h := NewHeuristic(5)

	text := "The theory of general relativity was published by Albert Einstein."
	questions, err := h.Generate(context.Background(), text)
	require.NoError(t, err)
	require.Len(t, questions, 1)

	q := questions[0]
	assert.Equal(t, models.QuestionTypeTrueFalse, q.Type)
	assert.True(t, strings.HasPrefix(q.Prompt, "True or false: "))
	require.NotNil(t, q.CorrectBool)
	assert.True(t, *q.CorrectBool)
}

func TestHeuristicSkipsUnusableSentences(t *testing.T) {
	h := NewHeuristic(5)

	text := "Too short. " + strings.Repeat("An extremely long run-on sentence about Paris ", 10) + "."
	questions, err := h.Generate(context.Background(), text)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestHeuristicCapsQuestionCount(t *testing.T) {
	h := NewHeuristic(5)

	var b strings.Builder
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&b, "The answer to the repeated numeric trivia question number %d is exactly %d0 units. ", i, i+1)
	}

	questions, err := h.Generate(context.Background(), b.String())
	require.NoError(t, err)
	assert.Len(t, questions, 5)
}

func TestHeuristicIsDeterministic(t *testing.T) {
	h := NewHeuristic(5)

	text := "The Great Wall stretches over 21196 kilometers across northern China. " +
		"Construction was ordered by Emperor Qin Shi Huang to guard the frontier."

	first, err := h.Generate(context.Background(), text)
	require.NoError(t, err)
	second, err := h.Generate(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.NotEmpty(t, first)
}
