package models

import (
	"time"

	"gorm.io/datatypes"
)

// Answer records one submitted response. Created once, never mutated, owned
// exclusively by the session document that contains it.
type Answer struct {
	QuestionID       uint `json:"question_id"`
	SelectedOptionID uint `json:"selected_option_id"`
	IsCorrect        bool `json:"is_correct"`
}

// UserSession tracks one user's run through one test. Answers are stored as
// a JSONB document on the session row so the whole session is written back
// with a single full-document replace.
//
// Invariants:
//   - Answers contains at most one entry per question id.
//   - EndTime is set exactly when the session completes and is never cleared.
//   - Score equals the count of correct answers and changes only together
//     with EndTime.
type UserSession struct {
	ID       string `json:"id" gorm:"primaryKey;size:36"`
	UserName string `json:"user_name" gorm:"not null;size:100;index" validate:"required,min=1,max=100"`
	TestID   uint   `json:"test_id" gorm:"not null;index"`

	StartTime time.Time  `json:"start_time" gorm:"not null"`
	EndTime   *time.Time `json:"end_time"`
	Score     int        `json:"score" gorm:"not null;default:0"`

	Answers datatypes.JSONSlice[Answer] `json:"answers" gorm:"type:jsonb"`

	// Version drives the conditional replace in the session store.
	Version int `json:"version" gorm:"not null;default:1"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserSession) TableName() string {
	return "user_sessions"
}

// IsCompleted reports whether the session has been finalized.
func (s *UserSession) IsCompleted() bool {
	return s.EndTime != nil
}

// HasAnswered reports whether an answer for the question is already recorded.
func (s *UserSession) HasAnswered(questionID uint) bool {
	for _, a := range s.Answers {
		if a.QuestionID == questionID {
			return true
		}
	}
	return false
}

// CorrectCount returns the number of correct answers recorded so far.
func (s *UserSession) CorrectCount() int {
	count := 0
	for _, a := range s.Answers {
		if a.IsCorrect {
			count++
		}
	}
	return count
}
