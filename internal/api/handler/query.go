package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChauhanSai/hackrice25/internal/domain"
	"github.com/ChauhanSai/hackrice25/internal/metrics"
)

// ClipResolver answers a question with the best-matching clip.
type ClipResolver interface {
	Answer(ctx context.Context, question string) (*domain.SelectedClip, error)
}

// VideoAnalyzer proxies an analysis prompt to the video-understanding
// service.
type VideoAnalyzer interface {
	Analyze(ctx context.Context, videoID, prompt string) (json.RawMessage, error)
}

// QueryHandler handles the clip query and analysis endpoints.
type QueryHandler struct {
	resolver ClipResolver
	analyzer VideoAnalyzer
	metrics  *metrics.Metrics
}

// NewQueryHandler creates a new query handler.
func NewQueryHandler(resolver ClipResolver, analyzer VideoAnalyzer, m *metrics.Metrics) *QueryHandler {
	return &QueryHandler{
		resolver: resolver,
		analyzer: analyzer,
		metrics:  m,
	}
}

// MerangoRequest is the clip query request body.
type MerangoRequest struct {
	Query string `json:"query"`
}

// Merango handles POST /merango: question in, single best clip out.
func (h *QueryHandler) Merango(c *gin.Context) {
	var req MerangoRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		respondError(c, domain.NewValidationError("Missing 'query' in request body"))
		return
	}

	clip, err := h.resolver.Answer(c.Request.Context(), req.Query)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.IncQueries()
	}
	c.JSON(http.StatusOK, clip)
}

// PegasusRequest is the analysis passthrough request body.
type PegasusRequest struct {
	Query   string `json:"query"`
	VideoID string `json:"video_id"`
}

// Pegasus handles POST /pegasus: the analysis payload is returned as-is.
func (h *QueryHandler) Pegasus(c *gin.Context) {
	var req PegasusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" || req.VideoID == "" {
		respondError(c, domain.NewValidationError("Missing 'query' or 'video_id' in request body"))
		return
	}

	data, err := h.analyzer.Analyze(c.Request.Context(), req.VideoID, req.Query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}
