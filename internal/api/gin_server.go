package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"translator-backend/internal/metrics"
	"translator-backend/internal/services"
	"translator-backend/internal/translator"
	"translator-backend/pkg/types"
)

type GinServer struct {
	router   *gin.Engine
	logger   *zap.Logger
	services *services.Services
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
}

// NewGinServer builds the router. gatherer backs the /metrics endpoint and
// should be the registry m was registered with.
func NewGinServer(logger *zap.Logger, services *services.Services, m *metrics.Metrics, gatherer prometheus.Gatherer) *GinServer {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(GinLogger(logger))
	router.Use(Metrics(m))
	router.Use(CORS())

	server := &GinServer{
		router:   router,
		logger:   logger,
		services: services,
		metrics:  m,
		gatherer: gatherer,
	}
	server.SetupRoutes()
	return server
}

// GetRouter returns the Gin router
func (s *GinServer) GetRouter() *gin.Engine {
	return s.router
}

func (s *GinServer) SetupRoutes() {
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	s.router.GET("/health", s.HealthCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	s.router.POST("/translate", s.TranslateText)
	s.router.POST("/translate-audio", s.TranslateAudio)
}

// HealthCheck godoc
// @Summary Health check endpoint
// @Description Check if the API server is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (s *GinServer) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "healthy",
		"service": "translator-backend",
	})
}

// TranslateText handles text translation requests
// @Summary Translate text into a target language
// @Description Detects the source language and translates the text with the configured AI provider
// @Tags translation
// @Accept json
// @Produce json
// @Param request body types.TranslateRequest true "Translation request"
// @Success 200 {object} types.TranslationResult
// @Failure 400 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /translate [post]
func (s *GinServer) TranslateText(c *gin.Context) {
	var req types.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	// Work already sent to the provider completes even if the caller leaves.
	ctx := context.WithoutCancel(c.Request.Context())

	result, err := s.services.TranslatorService.TranslateText(ctx, *req.Text, *req.TargetLang)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// TranslateAudio handles audio transcription + translation requests
// @Summary Transcribe audio and translate the transcript
// @Tags translation
// @Accept multipart/form-data
// @Produce json
// @Param target_lang query string true "Target language"
// @Param file formData file true "Audio file"
// @Success 200 {object} types.AudioTranslationResult
// @Failure 400 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /translate-audio [post]
func (s *GinServer) TranslateAudio(c *gin.Context) {
	targetLang, ok := c.GetQuery("target_lang")
	if !ok {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "target_lang query parameter is required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.respondError(c, err)
		return
	}
	defer file.Close()

	ctx := context.WithoutCancel(c.Request.Context())

	result, err := s.services.TranslatorService.TranslateAudio(ctx, file, fileHeader.Filename, targetLang)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// respondError logs err and answers 500 without a translation payload.
func (s *GinServer) respondError(c *gin.Context, err error) {
	requestID := c.GetString(requestIDKey)

	if errors.Is(err, translator.ErrUpstream) {
		s.logger.Error("provider request failed", zap.String("request_id", requestID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "translation provider request failed"})
		return
	}

	s.logger.Error("request failed", zap.String("request_id", requestID), zap.Error(err))
	c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "internal server error"})
}
