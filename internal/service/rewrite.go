package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ChauhanSai/hackrice25/internal/domain"
	"github.com/ChauhanSai/hackrice25/internal/prompts"
)

// RewriteService compresses a free-form question into a short retrieval
// phrase using a generative-text service. The output is trimmed literal
// text; it is generative, so neither determinism nor a fixed token count is
// guaranteed.
type RewriteService struct {
	client  *resty.Client
	baseURL string
	model   string
}

// RewriteConfig holds configuration for the query rewriter.
type RewriteConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// NewRewriteService creates a new query rewrite service.
func NewRewriteService(cfg *RewriteConfig) *RewriteService {
	client := resty.New()
	client.SetHeader("x-goog-api-key", cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(30 * time.Second)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &RewriteService{
		client:  client,
		baseURL: baseURL,
		model:   model,
	}
}

// Rewrite reduces the question to a 1-3 word/phrase retrieval query.
func (s *RewriteService) Rewrite(ctx context.Context, question string) (string, error) {
	req := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompts.QueryRewritePrompt + question}}},
		},
	}

	var result geminiResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post(fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.baseURL, s.model))

	if err != nil {
		return "", domain.NewUpstreamError("query rewrite", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		if result.Error != nil {
			return "", domain.NewUpstreamError("query rewrite",
				fmt.Errorf("HTTP %d: %s", resp.StatusCode(), result.Error.Message))
		}
		return "", domain.NewUpstreamError("query rewrite",
			fmt.Errorf("HTTP %d: %s", resp.StatusCode(), resp.String()))
	}

	phrase := strings.TrimSpace(result.text())
	if phrase == "" {
		return "", domain.NewUpstreamError("query rewrite",
			fmt.Errorf("empty rewrite response"))
	}

	return phrase, nil
}
