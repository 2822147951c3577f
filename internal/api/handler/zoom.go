package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChauhanSai/hackrice25/internal/domain"
)

// RecordingResolver resolves the download URL for a meeting's main recording.
type RecordingResolver interface {
	LargestRecordingURL(ctx context.Context, meetingID string) (string, error)
}

// ZoomHandler handles the meeting recording discovery endpoint.
type ZoomHandler struct {
	recordings RecordingResolver
}

// NewZoomHandler creates a new zoom handler.
func NewZoomHandler(recordings RecordingResolver) *ZoomHandler {
	return &ZoomHandler{recordings: recordings}
}

// DownloadRecording handles GET /download_zoom_recording?id=<meeting_id>.
func (h *ZoomHandler) DownloadRecording(c *gin.Context) {
	meetingID := c.Query("id")
	if meetingID == "" {
		respondError(c, domain.NewValidationError("Missing 'meeting_id' parameter"))
		return
	}

	downloadURL, err := h.recordings.LargestRecordingURL(c.Request.Context(), meetingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"download_url": downloadURL})
}
