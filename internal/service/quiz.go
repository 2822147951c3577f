package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ChauhanSai/hackrice25/internal/domain"
	"github.com/ChauhanSai/hackrice25/internal/prompts"
)

// QuizQuestion is one multiple-choice question in a generated quiz.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  string   `json:"correct"`
}

// Quiz is one quiz generated from a transcript.
type Quiz struct {
	Quiz []QuizQuestion `json:"quiz"`
}

// QuizService generates patient quizzes from session transcripts using a
// generative-text service with structured output. The response is validated
// against the fixed quiz schema post-hoc rather than trusted blindly.
type QuizService struct {
	client  *resty.Client
	baseURL string
	model   string
}

// NewQuizService creates a new quiz generation service.
func NewQuizService(cfg *RewriteConfig) *QuizService {
	client := resty.New()
	client.SetHeader("x-goog-api-key", cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(60 * time.Second)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &QuizService{
		client:  client,
		baseURL: baseURL,
		model:   model,
	}
}

// quizSchema describes the structured output contract: an array of quiz
// objects, each holding question/options/correct entries.
func quizSchema() *geminiSchema {
	return &geminiSchema{
		Type: "ARRAY",
		Items: &geminiSchema{
			Type: "OBJECT",
			Properties: map[string]*geminiSchema{
				"quiz": {
					Type: "ARRAY",
					Items: &geminiSchema{
						Type: "OBJECT",
						Properties: map[string]*geminiSchema{
							"question": {Type: "STRING"},
							"options":  {Type: "ARRAY", Items: &geminiSchema{Type: "STRING"}},
							"correct":  {Type: "STRING"},
						},
						Required: []string{"question", "options", "correct"},
					},
				},
			},
			Required: []string{"quiz"},
		},
	}
}

// Generate builds a quiz from the given transcription text. The return
// value is the raw JSON text of the quiz array, already validated against
// the schema contract; callers serve it as a string and the frontend parses
// it client-side.
func (s *QuizService) Generate(ctx context.Context, transcription string) (string, error) {
	req := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompts.QuizPrompt + transcription}}},
		},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   quizSchema(),
		},
	}

	var result geminiResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post(fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.baseURL, s.model))

	if err != nil {
		return "", domain.NewUpstreamError("quiz generation", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		if result.Error != nil {
			return "", domain.NewUpstreamError("quiz generation",
				fmt.Errorf("HTTP %d: %s", resp.StatusCode(), result.Error.Message))
		}
		return "", domain.NewUpstreamError("quiz generation",
			fmt.Errorf("HTTP %d: %s", resp.StatusCode(), resp.String()))
	}

	text := result.text()
	if text == "" {
		return "", domain.NewUpstreamError("quiz generation",
			fmt.Errorf("empty quiz response"))
	}

	var quizzes []Quiz
	if err := json.Unmarshal([]byte(text), &quizzes); err != nil {
		return "", domain.NewUpstreamError("quiz generation",
			fmt.Errorf("malformed quiz payload: %w", err))
	}
	if err := validateQuizzes(quizzes); err != nil {
		return "", domain.NewUpstreamError("quiz generation", err)
	}

	return text, nil
}

// validateQuizzes checks the generative payload against the quiz schema
// contract. The service is generative, so a well-formed JSON body can still
// violate the shape the frontend expects.
func validateQuizzes(quizzes []Quiz) error {
	if len(quizzes) == 0 {
		return fmt.Errorf("quiz payload is empty")
	}
	for i, q := range quizzes {
		if len(q.Quiz) == 0 {
			return fmt.Errorf("quiz %d has no questions", i)
		}
		for j, question := range q.Quiz {
			if question.Question == "" {
				return fmt.Errorf("quiz %d question %d has no text", i, j)
			}
			if len(question.Options) < 2 {
				return fmt.Errorf("quiz %d question %d needs at least two options", i, j)
			}
			if question.Correct == "" {
				return fmt.Errorf("quiz %d question %d has no correct answer", i, j)
			}
		}
	}
	return nil
}
