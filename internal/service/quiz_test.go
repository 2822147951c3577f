package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ChauhanSai/hackrice25/internal/domain"
)

func validQuizzes() []Quiz {
	return []Quiz{
		{Quiz: []QuizQuestion{
			{
				Question: "What should you avoid before bed?",
				Options:  []string{"Caffeine", "Water", "Reading", "Stretching"},
				Correct:  "Caffeine",
			},
		}},
	}
}

func TestValidateQuizzes(t *testing.T) {
	broken := func(mutate func(q *[]Quiz)) []Quiz {
		quizzes := validQuizzes()
		mutate(&quizzes)
		return quizzes
	}

	tests := []struct {
		name    string
		quizzes []Quiz
		wantErr bool
	}{
		{"valid payload", validQuizzes(), false},
		{"empty payload", nil, true},
		{"quiz without questions", broken(func(q *[]Quiz) { (*q)[0].Quiz = nil }), true},
		{"question without text", broken(func(q *[]Quiz) { (*q)[0].Quiz[0].Question = "" }), true},
		{"single option", broken(func(q *[]Quiz) { (*q)[0].Quiz[0].Options = []string{"only"} }), true},
		{"missing correct answer", broken(func(q *[]Quiz) { (*q)[0].Quiz[0].Correct = "" }), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateQuizzes(tt.quizzes)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateQuizzes() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateParsesStructuredOutput(t *testing.T) {
	payload, _ := json.Marshal(validQuizzes())

	var gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		json.NewEncoder(w).Encode(geminiTextResponse(string(payload)))
	}))
	defer ts.Close()

	svc := NewQuizService(&RewriteConfig{APIKey: "key", BaseURL: ts.URL})

	quizJSON, err := svc.Generate(context.Background(), "Doctor discussed sleep hygiene.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quizJSON != string(payload) {
		t.Errorf("quiz text = %q, want the raw payload back", quizJSON)
	}

	var quizzes []Quiz
	if err := json.Unmarshal([]byte(quizJSON), &quizzes); err != nil {
		t.Fatalf("returned text is not quiz JSON: %v", err)
	}
	if len(quizzes) != 1 || len(quizzes[0].Quiz) != 1 {
		t.Fatalf("unexpected quizzes: %+v", quizzes)
	}
	if quizzes[0].Quiz[0].Correct != "Caffeine" {
		t.Errorf("correct = %q", quizzes[0].Quiz[0].Correct)
	}
	if !strings.Contains(gotBody, `"responseMimeType":"application/json"`) {
		t.Errorf("request missing structured output config: %s", gotBody)
	}
	if !strings.Contains(gotBody, `"responseSchema"`) {
		t.Errorf("request missing response schema: %s", gotBody)
	}
	if !strings.Contains(gotBody, "sleep hygiene") {
		t.Errorf("request body missing transcript: %s", gotBody)
	}
}

func TestGenerateRejectsMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"not json", "here is your quiz!"},
		{"wrong shape", `{"quiz": []}`},
		{"schema violation", `[{"quiz": [{"question": "", "options": [], "correct": ""}]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(geminiTextResponse(tt.text))
			}))
			defer ts.Close()

			svc := NewQuizService(&RewriteConfig{APIKey: "key", BaseURL: ts.URL})

			_, err := svc.Generate(context.Background(), "transcript")
			if !domain.IsUpstream(err) {
				t.Fatalf("expected upstream error, got %v", err)
			}
		})
	}
}
