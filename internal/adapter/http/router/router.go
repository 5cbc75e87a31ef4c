package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/radishdonuts/Insighta-WebSysLab/internal/adapter/client"
	"github.com/radishdonuts/Insighta-WebSysLab/internal/adapter/http/handler"
	"github.com/radishdonuts/Insighta-WebSysLab/internal/adapter/http/middleware"
	"github.com/radishdonuts/Insighta-WebSysLab/internal/infrastructure/config"
	"github.com/radishdonuts/Insighta-WebSysLab/internal/usecase"
)

// Setup creates and configures the Gin router. nlpClient is nil unless the
// remote classifier backend is configured; readiness then skips the ping.
func Setup(cfg *config.Config, nlpUC usecase.NLPUsecase, nlpClient *client.NLPClient, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(cfg.CORS.AllowOrigin))

	// Health endpoints
	healthHandler := handler.NewHealthHandler(nlpClient)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize handlers
	nlpHandler := handler.NewNLPHandler(nlpUC)

	// NLP routes
	nlp := router.Group("/nlp")
	{
		nlp.POST("/generate", nlpHandler.Generate)
	}

	return router
}
