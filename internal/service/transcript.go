package service

import (
	"context"
	"strings"

	"github.com/ChauhanSai/hackrice25/internal/domain"
)

// TranscriptionFetcher retrieves transcription segments for an indexed video.
type TranscriptionFetcher interface {
	Transcription(ctx context.Context, indexID, videoID string) ([]TranscriptSegment, error)
}

// TranscriptService turns a video's transcription segments into one joined
// transcript string.
type TranscriptService struct {
	fetcher TranscriptionFetcher
}

// NewTranscriptService creates a new transcript service.
func NewTranscriptService(fetcher TranscriptionFetcher) *TranscriptService {
	return &TranscriptService{fetcher: fetcher}
}

// Transcript fetches and joins the transcript of one indexed video.
func (s *TranscriptService) Transcript(ctx context.Context, indexID, videoID string) (string, error) {
	if videoID == "" || indexID == "" {
		return "", domain.NewValidationError("Missing video-id or index-id")
	}

	segments, err := s.fetcher.Transcription(ctx, indexID, videoID)
	if err != nil {
		return "", err
	}

	return JoinTranscript(segments), nil
}

// JoinTranscript concatenates transcription tokens. A token that already
// contains a space is appended unmodified; any other token gets a single
// leading space as separator. The leading separator of the result is
// stripped. Frontend consumers depend on this exact rule.
func JoinTranscript(segments []TranscriptSegment) string {
	var b strings.Builder
	for _, seg := range segments {
		if strings.Contains(seg.Value, " ") {
			b.WriteString(seg.Value)
		} else {
			b.WriteString(" ")
			b.WriteString(seg.Value)
		}
	}
	return strings.TrimPrefix(b.String(), " ")
}
