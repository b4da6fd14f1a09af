package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/scholardesk/research-hub-api/api/swagger"
	"github.com/scholardesk/research-hub-api/internal/handler"
	"github.com/scholardesk/research-hub-api/internal/middleware"
	"github.com/scholardesk/research-hub-api/internal/repository"
	"github.com/scholardesk/research-hub-api/internal/service"
	"github.com/scholardesk/research-hub-api/pkg/config"
	"github.com/scholardesk/research-hub-api/pkg/database"
	"github.com/scholardesk/research-hub-api/pkg/logger"
	corsmiddleware "github.com/scholardesk/research-hub-api/pkg/middleware/cors"
	reqidmiddleware "github.com/scholardesk/research-hub-api/pkg/middleware/requestid"
	"github.com/scholardesk/research-hub-api/pkg/storage"
)

// @title Research Hub API
// @version 1.0.0
// @description CRUD backend for researcher profiles, research papers and topic statistics
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close() //nolint:errcheck

	objectStore, err := storage.NewObjectStorage(context.Background(), cfg.Storage)
	if err != nil {
		logr.Sugar().Fatalw("failed to init object storage", "error", err)
	}

	validate := validator.New()

	researcherRepo := repository.NewResearcherRepository(db)
	paperRepo := repository.NewPaperRepository(db)
	topicRepo := repository.NewTopicRepository(db)

	researcherSvc := service.NewResearcherService(researcherRepo, validate, logr)
	paperSvc := service.NewPaperService(paperRepo, researcherRepo, objectStore, validate, logr, service.PaperServiceConfig{
		MaxFileSize:  cfg.Uploads.MaxFileSizeBytes,
		AllowedMIMEs: cfg.Uploads.AllowedMIMEs,
	})
	topicSvc := service.NewTopicService(topicRepo, logr)
	fileSvc := service.NewFileService(objectStore, logr)
	metricsSvc := service.NewMetricsService()

	researcherHandler := handler.NewResearcherHandler(researcherSvc)
	paperHandler := handler.NewPaperHandler(paperSvc)
	topicHandler := handler.NewTopicHandler(topicSvc)
	fileHandler := handler.NewFileHandler(fileSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	{
		api.GET("/researchers", researcherHandler.List)
		api.GET("/researchers/:id", researcherHandler.Get)
		api.POST("/researchers", researcherHandler.Create)
		api.PUT("/researchers/:id", researcherHandler.Update)
		api.DELETE("/researchers/:id", researcherHandler.Delete)

		api.GET("/topics", topicHandler.List)
		api.GET("/statistics/topics", topicHandler.Stats)

		api.GET("/papers", paperHandler.List)
		api.POST("/papers", paperHandler.Create)
		api.PUT("/papers/:id", paperHandler.Update)
		api.DELETE("/papers/:id", paperHandler.Delete)

		api.GET("/files/*key", fileHandler.Get)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
