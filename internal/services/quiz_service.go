package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SAP-F-2025/quiz-service/internal/cache"
	"github.com/SAP-F-2025/quiz-service/internal/events"
	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/SAP-F-2025/quiz-service/internal/repositories"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizService drives one session at a time through its test: question
// sequencing, answer validation and scoring, completion detection and
// finalization. Sessions are independent; there is no cross-session state.
type QuizService interface {
	StartSession(ctx context.Context, req *StartSessionRequest) (string, error)
	GetCurrentQuestion(ctx context.Context, sessionID string) (*CurrentQuestionResponse, error)
	GetQuestion(ctx context.Context, sessionID string, questionID uint) (*QuestionView, error)
	SubmitAnswer(ctx context.Context, sessionID string, req *SubmitAnswerRequest) (*SubmitAnswerResult, error)
	GetResult(ctx context.Context, sessionID string) (*models.UserSession, error)
}

type StartSessionRequest struct {
	UserName string `json:"user_name" validate:"required,min=1,max=100"`
	TestID   uint   `json:"test_id" validate:"required,gt=0"`
}

type SubmitAnswerRequest struct {
	QuestionID       uint `json:"question_id" validate:"required,gt=0"`
	SelectedOptionID uint `json:"selected_option_id" validate:"required,gt=0"`
}

// SubmitAnswerResult reports whether the submitted answer was correct and
// which question comes next. NextQuestionID is nil exactly when the session
// completed on this submission; callers fetch the view separately.
type SubmitAnswerResult struct {
	Correct        bool  `json:"correct"`
	NextQuestionID *uint `json:"next_question_id"`
	Completed      bool  `json:"completed"`
}

type quizService struct {
	repo      repositories.Repository
	cache     cache.QuestionCache
	publisher events.EventPublisher
	logger    utils.Logger
	validator *utils.Validator

	// locks serializes mutations per session id. The session store's
	// version-checked replace is the backstop for writers outside this
	// process.
	locks *utils.KeyedMutex
}

func NewQuizService(
	repo repositories.Repository,
	questionCache cache.QuestionCache,
	publisher events.EventPublisher,
	logger utils.Logger,
	validator *utils.Validator,
) QuizService {
	return &quizService{
		repo:      repo,
		cache:     questionCache,
		publisher: publisher,
		logger:    logger,
		validator: validator,
		locks:     utils.NewKeyedMutex(),
	}
}

// ===== CORE SESSION OPERATIONS =====

func (s *quizService) StartSession(ctx context.Context, req *StartSessionRequest) (string, error) {
	s.logger.Info("Starting quiz session",
		"test_id", req.TestID,
		"user_name", req.UserName)

	if err := s.validator.Validate(req); err != nil {
		return "", err
	}

	if _, err := s.repo.Catalog().GetTestByID(ctx, req.TestID); err != nil {
		if repositories.IsNotFoundError(err) {
			return "", ErrTestNotFound
		}
		return "", fmt.Errorf("failed to get test: %w", err)
	}

	// A test without questions is a catalog configuration error; starting a
	// session against it must fail before anything is persisted.
	total, err := s.repo.Catalog().CountQuestionsByTestID(ctx, req.TestID)
	if err != nil {
		return "", fmt.Errorf("failed to count questions: %w", err)
	}
	if total == 0 {
		return "", ErrTestHasNoQuestions
	}

	session := &models.UserSession{
		ID:        uuid.NewString(),
		UserName:  req.UserName,
		TestID:    req.TestID,
		StartTime: time.Now(),
		Answers:   datatypes.JSONSlice[models.Answer]{},
		Version:   1,
	}

	if err := s.repo.Session().Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	s.publishEvent(ctx, events.NewSessionEvent(events.EventSessionStarted, events.SessionStartedEvent{
		SessionID: session.ID,
		UserName:  session.UserName,
		TestID:    session.TestID,
		StartTime: session.StartTime,
	}))

	s.logger.Info("Quiz session started",
		"session_id", session.ID,
		"test_id", req.TestID,
		"total_questions", total)

	return session.ID, nil
}

func (s *quizService) GetCurrentQuestion(ctx context.Context, sessionID string) (*CurrentQuestionResponse, error) {
	s.locks.Lock(sessionID)
	defer s.locks.Unlock(sessionID)

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionSet(ctx, session.TestID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrTestHasNoQuestions
	}

	next := firstUnanswered(questions, session)
	if next == nil {
		// Terminal condition: everything answered. Finalize here too, so a
		// caller that polls the question endpoint past the end still fixes
		// the score.
		if err := s.finalize(ctx, session); err != nil {
			return nil, err
		}
		return &CurrentQuestionResponse{Completed: true}, nil
	}

	view := NewQuestionView(next, len(session.Answers)+1, len(questions))
	return &CurrentQuestionResponse{Question: view}, nil
}

// GetQuestion returns the sanitized view of one specific question of the
// session's test. The sequence number is the question's position in the
// fixed ordering, independent of what has been answered.
func (s *quizService) GetQuestion(ctx context.Context, sessionID string, questionID uint) (*QuestionView, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	question, err := s.repo.Catalog().GetQuestionByID(ctx, questionID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	if question.TestID != session.TestID {
		return nil, ErrQuestionNotFound
	}

	questions, err := s.questionSet(ctx, session.TestID)
	if err != nil {
		return nil, err
	}

	position := 0
	for i, q := range questions {
		if q.ID == questionID {
			position = i + 1
			break
		}
	}

	return NewQuestionView(question, position, len(questions)), nil
}

func (s *quizService) SubmitAnswer(ctx context.Context, sessionID string, req *SubmitAnswerRequest) (*SubmitAnswerResult, error) {
	s.logger.Info("Submitting answer",
		"session_id", sessionID,
		"question_id", req.QuestionID)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	s.locks.Lock(sessionID)
	defer s.locks.Unlock(sessionID)

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.IsCompleted() {
		return nil, ErrSessionCompleted
	}

	if session.HasAnswered(req.QuestionID) {
		return nil, ErrQuestionAlreadyAnswered
	}

	questions, err := s.questionSet(ctx, session.TestID)
	if err != nil {
		return nil, err
	}

	question := questionByID(questions, req.QuestionID)
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	option := question.OptionByID(req.SelectedOptionID)
	if option == nil {
		return nil, ErrOptionNotFound
	}

	// The authoritative total comes from the catalog store, never from the
	// caller or from a stale session snapshot.
	total, err := s.repo.Catalog().CountQuestionsByTestID(ctx, session.TestID)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}

	session.Answers = append(session.Answers, models.Answer{
		QuestionID:       req.QuestionID,
		SelectedOptionID: req.SelectedOptionID,
		IsCorrect:        option.IsCorrect,
	})

	completed := int64(len(session.Answers)) >= total
	if completed {
		// Score and end time change together, in the same replace as the
		// final answer.
		now := time.Now()
		session.EndTime = &now
		session.Score = session.CorrectCount()
	}

	if err := s.replaceSession(ctx, session); err != nil {
		return nil, err
	}

	result := &SubmitAnswerResult{
		Correct:   option.IsCorrect,
		Completed: completed,
	}

	if completed {
		s.publishCompleted(ctx, session)
		s.logger.Info("Quiz session completed",
			"session_id", session.ID,
			"score", session.Score,
			"total_questions", total)
	} else if next := firstUnanswered(questions, session); next != nil {
		nextID := next.ID
		result.NextQuestionID = &nextID
	}

	return result, nil
}

func (s *quizService) GetResult(ctx context.Context, sessionID string) (*models.UserSession, error) {
	s.locks.Lock(sessionID)
	defer s.locks.Unlock(sessionID)

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Requesting results early forces completion.
	if err := s.finalize(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// ===== INTERNAL HELPERS =====

// finalize sets the end time and authoritative score exactly once. Calling it
// on an already-finalized session is a no-op.
func (s *quizService) finalize(ctx context.Context, session *models.UserSession) error {
	if session.IsCompleted() {
		return nil
	}

	now := time.Now()
	session.EndTime = &now
	session.Score = session.CorrectCount()

	if err := s.replaceSession(ctx, session); err != nil {
		// Discard the in-memory transition; the store is the only durable
		// state the engine owns.
		session.EndTime = nil
		session.Score = 0
		return err
	}

	s.publishCompleted(ctx, session)
	s.logger.Info("Quiz session finalized",
		"session_id", session.ID,
		"score", session.Score,
		"answers", len(session.Answers))

	return nil
}

func (s *quizService) getSession(ctx context.Context, sessionID string) (*models.UserSession, error) {
	session, err := s.repo.Session().GetByID(ctx, sessionID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

func (s *quizService) replaceSession(ctx context.Context, session *models.UserSession) error {
	if err := s.repo.Session().Replace(ctx, session); err != nil {
		if errors.Is(err, repositories.ErrVersionConflict) {
			return ErrSessionConflict
		}
		return fmt.Errorf("failed to replace session: %w", err)
	}
	return nil
}

// questionSet returns the test's questions in the canonical order, going
// through the cache when one is wired. Cache failures fall through to the
// catalog store.
func (s *quizService) questionSet(ctx context.Context, testID uint) ([]*models.Question, error) {
	if s.cache != nil {
		questions, err := s.cache.Get(ctx, testID)
		if err == nil {
			return questions, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("Question cache read failed", "test_id", testID, "error", err)
		}
	}

	questions, err := s.repo.Catalog().GetQuestionsByTestID(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}

	if s.cache != nil && len(questions) > 0 {
		if err := s.cache.Set(ctx, testID, questions); err != nil {
			s.logger.Warn("Question cache write failed", "test_id", testID, "error", err)
		}
	}

	return questions, nil
}

func (s *quizService) publishCompleted(ctx context.Context, session *models.UserSession) {
	completedAt := time.Now()
	if session.EndTime != nil {
		completedAt = *session.EndTime
	}
	s.publishEvent(ctx, events.NewSessionEvent(events.EventSessionCompleted, events.SessionCompletedEvent{
		SessionID:    session.ID,
		UserName:     session.UserName,
		TestID:       session.TestID,
		Score:        session.Score,
		TotalAnswers: len(session.Answers),
		CompletedAt:  completedAt,
		DurationSecs: int(completedAt.Sub(session.StartTime).Seconds()),
	}))
}

// publishEvent is best-effort: a broker outage must never fail the request.
func (s *quizService) publishEvent(ctx context.Context, event *events.SessionEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishSessionEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish session event",
			"event_type", event.Type,
			"error", err)
	}
}

// firstUnanswered walks the canonical ordering and picks the first question
// without a recorded answer. Both "current question" and "next question"
// derive from this one function, so they agree by construction.
func firstUnanswered(questions []*models.Question, session *models.UserSession) *models.Question {
	for _, q := range questions {
		if !session.HasAnswered(q.ID) {
			return q
		}
	}
	return nil
}

func questionByID(questions []*models.Question, id uint) *models.Question {
	for _, q := range questions {
		if q.ID == id {
			return q
		}
	}
	return nil
}
