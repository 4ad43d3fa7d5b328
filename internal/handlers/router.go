package handlers

import (
	"github.com/SAP-F-2025/quiz-service/internal/services"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	sessionHandler *SessionHandler
	catalogHandler *CatalogHandler
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		sessionHandler: NewSessionHandler(serviceManager.Quiz(), logger),
		catalogHandler: NewCatalogHandler(serviceManager.Catalog(), serviceManager.Import(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "quiz-service",
		})
	})

	v1 := router.Group("/api/v1")
	{
		sessions := v1.Group("/sessions")
		{
			sessions.POST("/start", hm.sessionHandler.StartSession)
			sessions.GET("/:id/question", hm.sessionHandler.GetCurrentQuestion)
			sessions.GET("/:id/questions/:question_id", hm.sessionHandler.GetQuestion)
			sessions.POST("/:id/answers", hm.sessionHandler.SubmitAnswer)
			sessions.GET("/:id/result", hm.sessionHandler.GetResult)
		}

		tests := v1.Group("/tests")
		{
			tests.GET("", hm.catalogHandler.ListTests)
			tests.GET("/:id", hm.catalogHandler.GetTest)
			tests.POST("/import", hm.catalogHandler.ImportTest)
		}
	}
}
