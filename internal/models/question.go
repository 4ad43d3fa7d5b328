package models

import (
	"time"
)

type Question struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	TestID uint   `json:"test_id" gorm:"not null;index"`
	Text   string `json:"text" gorm:"not null;type:text" validate:"required,min=1"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Test    *Test            `json:"test,omitempty" gorm:"foreignKey:TestID"`
	Options []QuestionOption `json:"options" gorm:"foreignKey:QuestionID" validate:"required,min=1,dive"`
}

// QuestionOption carries the correctness flag. It must never be serialized
// into a quiz-taker-facing response; handlers expose QuestionView instead.
type QuestionOption struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	QuestionID uint   `json:"question_id" gorm:"not null;index"`
	Text       string `json:"text" gorm:"not null;type:text" validate:"required,min=1"`
	IsCorrect  bool   `json:"is_correct" gorm:"not null;default:false"`
}

func (Question) TableName() string {
	return "questions"
}

func (QuestionOption) TableName() string {
	return "question_options"
}

// OptionByID returns the option with the given id, or nil when the id does
// not belong to this question.
func (q *Question) OptionByID(optionID uint) *QuestionOption {
	for i := range q.Options {
		if q.Options[i].ID == optionID {
			return &q.Options[i]
		}
	}
	return nil
}
