package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChauhanSai/hackrice25/internal/domain"
)

// TranscriptFetcher returns the joined transcript of an indexed video.
type TranscriptFetcher interface {
	Transcript(ctx context.Context, indexID, videoID string) (string, error)
}

// QuizGenerator builds a quiz from a transcription and returns it as raw
// JSON text.
type QuizGenerator interface {
	Generate(ctx context.Context, transcription string) (string, error)
}

// DarkHandler handles the transcript and quiz endpoints backing the
// follow-up experience.
type DarkHandler struct {
	transcripts TranscriptFetcher
	quizzes     QuizGenerator
}

// NewDarkHandler creates a new dark handler.
func NewDarkHandler(transcripts TranscriptFetcher, quizzes QuizGenerator) *DarkHandler {
	return &DarkHandler{
		transcripts: transcripts,
		quizzes:     quizzes,
	}
}

// Transcript handles GET /dark/transcript?v=<video_id>&i=<index_id>.
func (h *DarkHandler) Transcript(c *gin.Context) {
	videoID := c.Query("v")
	indexID := c.Query("i")
	if videoID == "" || indexID == "" {
		respondError(c, domain.NewValidationError("Missing video-id or index-id"))
		return
	}

	transcript, err := h.transcripts.Transcript(c.Request.Context(), indexID, videoID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transcript": transcript})
}

// QuizRequest is the quiz generation request body.
type QuizRequest struct {
	Transcription string `json:"transcription"`
}

// Quiz handles POST /dark/quiz?hsp=<token>. The X-HSP-Header value must be
// byte-exact equal to the hsp query parameter.
func (h *DarkHandler) Quiz(c *gin.Context) {
	hsp := c.Query("hsp")
	if hsp == "" {
		respondError(c, domain.NewValidationError("Missing 'hsp' parameter"))
		return
	}
	if c.GetHeader("X-HSP-Header") != hsp {
		respondError(c, domain.NewAuthError("HSP security check failed"))
		return
	}

	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Transcription == "" {
		respondError(c, domain.NewValidationError("Missing JSON body with 'transcript'"))
		return
	}

	quizJSON, err := h.quizzes.Generate(c.Request.Context(), req.Transcription)
	if err != nil {
		respondError(c, err)
		return
	}

	// The body is the quiz JSON as a string; the frontend parses it a
	// second time client-side.
	c.JSON(http.StatusOK, quizJSON)
}
