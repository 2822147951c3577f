package api

import (
	"github.com/gin-gonic/gin"

	"github.com/ChauhanSai/hackrice25/internal/api/handler"
	"github.com/ChauhanSai/hackrice25/internal/api/middleware"
	"github.com/ChauhanSai/hackrice25/internal/logger"
	"github.com/ChauhanSai/hackrice25/internal/metrics"
)

// Services bundles the orchestrators and adapters the HTTP surface exposes.
type Services struct {
	Ingest      handler.Ingestor
	Clips       handler.ClipResolver
	Analyzer    handler.VideoAnalyzer
	Transcripts handler.TranscriptFetcher
	Quizzes     handler.QuizGenerator
	Recordings  handler.RecordingResolver
}

// RouterConfig holds router-level settings.
type RouterConfig struct {
	Mode string
	CORS middleware.CORSConfig
}

// SetupRouter configures the Gin router with all routes
func SetupRouter(svc *Services, m *metrics.Metrics, log *logger.Logger, cfg *RouterConfig) *gin.Engine {
	switch cfg.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORS(cfg.CORS))
	if m != nil {
		r.Use(metrics.RequestMiddleware(m))
	}

	healthHandler := handler.NewHealthHandler()
	uploadHandler := handler.NewUploadHandler(svc.Ingest, m)
	queryHandler := handler.NewQueryHandler(svc.Clips, svc.Analyzer, m)
	darkHandler := handler.NewDarkHandler(svc.Transcripts, svc.Quizzes)
	zoomHandler := handler.NewZoomHandler(svc.Recordings)

	r.GET("/health", healthHandler.Health)
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// Ingestion
	r.POST("/upload", uploadHandler.Upload)

	// Query resolution
	r.POST("/merango", queryHandler.Merango)
	r.POST("/pegasus", queryHandler.Pegasus)

	// Follow-up experience
	r.GET("/dark/transcript", darkHandler.Transcript)
	r.POST("/dark/quiz", darkHandler.Quiz)

	// Meeting recording discovery
	r.GET("/download_zoom_recording", zoomHandler.DownloadRecording)

	return r
}
