package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChauhanSai/hackrice25/internal/domain"
	"github.com/ChauhanSai/hackrice25/internal/metrics"
	"github.com/ChauhanSai/hackrice25/internal/service"
)

// Ingestor runs one upload through the ingestion lifecycle.
type Ingestor interface {
	Ingest(ctx context.Context, req *service.UploadRequest) (*service.UploadResult, error)
}

// UploadHandler handles the video upload endpoint.
type UploadHandler struct {
	ingest  Ingestor
	metrics *metrics.Metrics
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(ingest Ingestor, m *metrics.Metrics) *UploadHandler {
	return &UploadHandler{
		ingest:  ingest,
		metrics: m,
	}
}

// Upload handles POST /upload?i=<index_id> with multipart file field "file".
// All parameter checks happen before the ingestion pipeline runs.
func (h *UploadHandler) Upload(c *gin.Context) {
	indexID := c.Query("i")
	if indexID == "" {
		respondError(c, domain.NewValidationError("Missing 'index' parameter"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, domain.NewValidationError("No file part in the request"))
		return
	}
	if fileHeader.Filename == "" {
		respondError(c, domain.NewValidationError("No selected file"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, domain.NewValidationError("No file part in the request"))
		return
	}
	defer file.Close()

	result, err := h.ingest.Ingest(c.Request.Context(), &service.UploadRequest{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
		IndexID:     indexID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.IncUploads()
	}
	c.JSON(http.StatusOK, result)
}
