package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ChauhanSai/hackrice25/internal/domain"
)

// IndexingService talks to the video-understanding API. SubmitVideo registers
// an asset for indexing; Analyze and Transcription are single-call proxies
// against the same API.
type IndexingService struct {
	client  *resty.Client
	baseURL string
}

// IndexingConfig holds configuration for the video-understanding API client.
type IndexingConfig struct {
	APIKey  string
	BaseURL string
}

// NewIndexingService creates a new indexing service client.
func NewIndexingService(cfg *IndexingConfig) *IndexingService {
	client := resty.New()
	client.SetHeader("x-api-key", cfg.APIKey)
	client.SetTimeout(120 * time.Second)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.twelvelabs.io/v1.3"
	}

	return &IndexingService{
		client:  client,
		baseURL: baseURL,
	}
}

type submitTaskResponse struct {
	ID      string `json:"_id"`
	VideoID string `json:"video_id"`
	Message string `json:"message,omitempty"`
}

// SubmitVideo registers a publicly fetchable video URL for indexing and
// returns the service-assigned video id. The call only registers the asset;
// analysis completes asynchronously on the service side and is not tracked
// here.
func (s *IndexingService) SubmitVideo(ctx context.Context, publicURL, indexID string) (string, error) {
	var result submitTaskResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			"video_url": publicURL,
			"index_id":  indexID,
		}).
		SetResult(&result).
		Post(s.baseURL + "/tasks")

	if err != nil {
		return "", domain.NewUpstreamError("indexing submit", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", domain.NewUpstreamError("indexing submit",
			fmt.Errorf("HTTP %d: %s", resp.StatusCode(), resp.String()))
	}
	if result.VideoID == "" {
		return "", domain.NewUpstreamError("indexing submit",
			fmt.Errorf("no video_id in response: %s", resp.String()))
	}

	return result.VideoID, nil
}

type analyzeResponse struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

// Analyze runs an open-ended analysis prompt against an indexed video and
// returns the service's free-form answer payload untouched.
func (s *IndexingService) Analyze(ctx context.Context, videoID, prompt string) (json.RawMessage, error) {
	var result analyzeResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"video_id": videoID,
			"prompt":   prompt,
		}).
		SetResult(&result).
		Post(s.baseURL + "/analyze")

	if err != nil {
		return nil, domain.NewUpstreamError("video analyze", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, domain.NewUpstreamError("video analyze",
			fmt.Errorf("HTTP %d: %s", resp.StatusCode(), resp.String()))
	}

	return result.Data, nil
}

// TranscriptSegment is one transcription token with its time range.
type TranscriptSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Value string  `json:"value"`
}

type videoDetailResponse struct {
	ID            string              `json:"_id"`
	Transcription []TranscriptSegment `json:"transcription"`
}

// Transcription fetches the transcription segments of an indexed video.
func (s *IndexingService) Transcription(ctx context.Context, indexID, videoID string) ([]TranscriptSegment, error) {
	var result videoDetailResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("transcription", strconv.FormatBool(true)).
		SetResult(&result).
		Get(fmt.Sprintf("%s/indexes/%s/videos/%s", s.baseURL, indexID, videoID))

	if err != nil {
		return nil, domain.NewUpstreamError("transcript fetch", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, domain.NewUpstreamError("transcript fetch",
			fmt.Errorf("HTTP %d: %s", resp.StatusCode(), resp.String()))
	}

	return result.Transcription, nil
}
