package events

import (
	"time"

	"github.com/google/uuid"
)

type SessionEventType string

const (
	EventSessionStarted   SessionEventType = "quiz.session.started"
	EventSessionCompleted SessionEventType = "quiz.session.completed"
)

// SessionEvent is the envelope published for session lifecycle changes.
type SessionEvent struct {
	ID        string           `json:"id"`
	Type      SessionEventType `json:"type"`
	Source    string           `json:"source"`
	Version   string           `json:"version"`
	Timestamp time.Time        `json:"timestamp"`
	Data      interface{}      `json:"data"`
}

type SessionStartedEvent struct {
	SessionID string    `json:"session_id"`
	UserName  string    `json:"user_name"`
	TestID    uint      `json:"test_id"`
	StartTime time.Time `json:"start_time"`
}

type SessionCompletedEvent struct {
	SessionID    string    `json:"session_id"`
	UserName     string    `json:"user_name"`
	TestID       uint      `json:"test_id"`
	Score        int       `json:"score"`
	TotalAnswers int       `json:"total_answers"`
	CompletedAt  time.Time `json:"completed_at"`
	DurationSecs int       `json:"duration_secs"`
}

// NewSessionEvent wraps payload data in the standard envelope.
func NewSessionEvent(eventType SessionEventType, data interface{}) *SessionEvent {
	return &SessionEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Source:    "quiz-service",
		Version:   "1.0",
		Timestamp: time.Now(),
		Data:      data,
	}
}
