package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuestionView_CopiesFieldsAndPosition(t *testing.T) {
	question := &models.Question{
		ID:   42,
		Text: "What is the capital of France?",
		Options: []models.QuestionOption{
			{ID: 1, Text: "Paris", IsCorrect: true},
			{ID: 2, Text: "Lyon"},
			{ID: 3, Text: "Marseille"},
		},
	}

	view := NewQuestionView(question, 3, 10)

	assert.Equal(t, uint(42), view.ID)
	assert.Equal(t, "What is the capital of France?", view.Text)
	assert.Equal(t, 3, view.SequenceNumber)
	assert.Equal(t, 10, view.TotalQuestions)

	require.Len(t, view.Options, 3)
	assert.Equal(t, uint(1), view.Options[0].ID)
	assert.Equal(t, "Paris", view.Options[0].Text)
	assert.Equal(t, "Lyon", view.Options[1].Text)
}

func TestNewQuestionView_PreservesOptionOrder(t *testing.T) {
	question := &models.Question{
		ID:   1,
		Text: "ordered",
		Options: []models.QuestionOption{
			{ID: 30, Text: "third"},
			{ID: 10, Text: "first", IsCorrect: true},
			{ID: 20, Text: "second"},
		},
	}

	view := NewQuestionView(question, 1, 1)

	// The mapper copies, it does not re-sort.
	require.Len(t, view.Options, 3)
	assert.Equal(t, uint(30), view.Options[0].ID)
	assert.Equal(t, uint(10), view.Options[1].ID)
	assert.Equal(t, uint(20), view.Options[2].ID)
}

func TestNewQuestionView_SerializationHasNoCorrectnessField(t *testing.T) {
	question := &models.Question{
		ID:   7,
		Text: "leak check",
		Options: []models.QuestionOption{
			{ID: 1, Text: "yes", IsCorrect: true},
			{ID: 2, Text: "no", IsCorrect: false},
		},
	}

	payload, err := json.Marshal(NewQuestionView(question, 1, 1))
	require.NoError(t, err)

	body := string(payload)
	assert.False(t, strings.Contains(body, "is_correct"), "leaked: %s", body)
	assert.False(t, strings.Contains(body, "correct"), "leaked: %s", body)
}
