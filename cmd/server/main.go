package main

import (
	"log"
	"time"

	"github.com/SAP-F-2025/quiz-service/internal/cache"
	"github.com/SAP-F-2025/quiz-service/internal/config"
	"github.com/SAP-F-2025/quiz-service/internal/events"
	"github.com/SAP-F-2025/quiz-service/internal/handlers"
	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/SAP-F-2025/quiz-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/quiz-service/internal/services"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/SAP-F-2025/quiz-service/pkg"
	"github.com/gin-gonic/gin"
)

const questionCacheTTL = 30 * time.Minute

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger = utils.NewDevelopmentLogger()
	}

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&models.Test{},
		&models.Question{},
		&models.QuestionOption{},
		&models.UserSession{},
	); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		log.Fatal(err)
	}

	repo := postgres.NewRepository(db)

	// The cache and the event publisher are optional collaborators; the
	// service runs degraded without either.
	var questionCache cache.QuestionCache
	if redisClient, err := pkg.NewRedisClient(cfg); err != nil {
		logger.Warn("Running without question cache", "error", err)
	} else {
		questionCache = cache.NewRedisQuestionCache(redisClient, logger, questionCacheTTL)
	}

	var publisher events.EventPublisher
	if kafkaPublisher, err := events.NewKafkaEventPublisher(events.PublisherConfig{
		KafkaBrokers: cfg.KafkaBrokers,
		TopicName:    cfg.KafkaTopic,
		Logger:       utils.ToSlogLogger(logger),
	}); err != nil {
		logger.Warn("Running without session event publishing", "error", err)
	} else {
		publisher = kafkaPublisher
		defer kafkaPublisher.Close()
	}

	validator := utils.NewValidator()
	serviceManager := services.NewServiceManager(repo, questionCache, publisher, logger, validator)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	handlerManager := handlers.NewHandlerManager(serviceManager, logger)
	handlerManager.SetupRoutes(router)

	logger.Info("Starting quiz service", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("Server stopped", "error", err)
		log.Fatal(err)
	}
}
