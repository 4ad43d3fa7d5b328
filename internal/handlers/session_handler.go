package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/quiz-service/internal/services"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	BaseHandler
	quizService services.QuizService
}

func NewSessionHandler(quizService services.QuizService, logger utils.Logger) *SessionHandler {
	return &SessionHandler{
		BaseHandler: NewBaseHandler(logger),
		quizService: quizService,
	}
}

// StartSession creates a new quiz session for a user and test
// @Router /sessions/start [post]
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req services.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Starting session", "test_id", req.TestID, "user_name", req.UserName)

	sessionID, err := h.quizService.StartSession(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Session started",
		Data:    gin.H{"session_id": sessionID},
	})
}

// GetCurrentQuestion returns the next unanswered question, sanitized, or a
// completion signal once every question has an answer
// @Router /sessions/{id}/question [get]
func (h *SessionHandler) GetCurrentQuestion(c *gin.Context) {
	sessionID := h.parseStringIDParam(c, "id")
	if sessionID == "" {
		return
	}

	resp, err := h.quizService.GetCurrentQuestion(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetQuestion returns the sanitized view of a specific question of the
// session's test
// @Router /sessions/{id}/questions/{question_id} [get]
func (h *SessionHandler) GetQuestion(c *gin.Context) {
	sessionID := h.parseStringIDParam(c, "id")
	if sessionID == "" {
		return
	}
	questionID := h.parseUintParam(c, "question_id")
	if questionID == 0 {
		return
	}

	view, err := h.quizService.GetQuestion(c.Request.Context(), sessionID, questionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// SubmitAnswer records an answer and returns the id of the next question,
// or the completion sentinel
// @Router /sessions/{id}/answers [post]
func (h *SessionHandler) SubmitAnswer(c *gin.Context) {
	sessionID := h.parseStringIDParam(c, "id")
	if sessionID == "" {
		return
	}

	var req services.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Submitting answer",
		"session_id", sessionID,
		"question_id", req.QuestionID)

	result, err := h.quizService.SubmitAnswer(c.Request.Context(), sessionID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetResult returns the full session record with its finalized score
// @Router /sessions/{id}/result [get]
func (h *SessionHandler) GetResult(c *gin.Context) {
	sessionID := h.parseStringIDParam(c, "id")
	if sessionID == "" {
		return
	}

	session, err := h.quizService.GetResult(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}
