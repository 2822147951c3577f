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

func geminiTextResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]interface{}{{"text": text}},
				},
			},
		},
	}
}

func TestRewriteReturnsTrimmedPhrase(t *testing.T) {
	var gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1beta/models/gemini-2.5-flash:generateContent" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "key" {
			t.Errorf("api key header = %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		json.NewEncoder(w).Encode(geminiTextResponse("  chest pain triggers\n"))
	}))
	defer ts.Close()

	svc := NewRewriteService(&RewriteConfig{APIKey: "key", BaseURL: ts.URL})

	phrase, err := svc.Rewrite(context.Background(), "What did the doctor say about my chest pain?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if phrase != "chest pain triggers" {
		t.Errorf("phrase = %q", phrase)
	}
	if !strings.Contains(gotBody, "chest pain") {
		t.Errorf("request body missing question: %s", gotBody)
	}
}

func TestRewriteUpstreamFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"message": "quota exceeded"},
		})
	}))
	defer ts.Close()

	svc := NewRewriteService(&RewriteConfig{APIKey: "key", BaseURL: ts.URL})

	_, err := svc.Rewrite(context.Background(), "question")
	if !domain.IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("error should carry upstream message, got %v", err)
	}
}

func TestRewriteEmptyResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer ts.Close()

	svc := NewRewriteService(&RewriteConfig{APIKey: "key", BaseURL: ts.URL})

	_, err := svc.Rewrite(context.Background(), "question")
	if !domain.IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
