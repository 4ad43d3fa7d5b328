package services

import (
	"github.com/SAP-F-2025/quiz-service/internal/models"
)

// OptionView is the quiz-taker-facing shape of an option. It deliberately has
// no correctness field.
type OptionView struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// QuestionView is the sanitized representation of a question handed to the
// quiz taker, together with its position in the session.
type QuestionView struct {
	ID             uint         `json:"id"`
	Text           string       `json:"text"`
	Options        []OptionView `json:"options"`
	SequenceNumber int          `json:"sequence_number"`
	TotalQuestions int          `json:"total_questions"`
}

// CurrentQuestionResponse signals either the next question to answer or that
// the session is complete and the result should be fetched.
type CurrentQuestionResponse struct {
	Completed bool          `json:"completed"`
	Question  *QuestionView `json:"question,omitempty"`
}

// NewQuestionView strips correctness metadata from a question and attaches
// positional context. Pure function; assumes a well-formed question.
func NewQuestionView(q *models.Question, sequenceNumber, totalQuestions int) *QuestionView {
	options := make([]OptionView, len(q.Options))
	for i, opt := range q.Options {
		options[i] = OptionView{
			ID:   opt.ID,
			Text: opt.Text,
		}
	}

	return &QuestionView{
		ID:             q.ID,
		Text:           q.Text,
		Options:        options,
		SequenceNumber: sequenceNumber,
		TotalQuestions: totalQuestions,
	}
}
