package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ChauhanSai/hackrice25/internal/domain"
)

type fakeRewriter struct {
	phrase string
	err    error
	got    string
}

func (f *fakeRewriter) Rewrite(_ context.Context, question string) (string, error) {
	f.got = question
	if f.err != nil {
		return "", f.err
	}
	return f.phrase, nil
}

type fakeSearcher struct {
	results *domain.SearchResultSet
	err     error
	got     string
}

func (f *fakeSearcher) Search(_ context.Context, phrase string) (*domain.SearchResultSet, error) {
	f.got = phrase
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func TestQueryAnswerSelectsTopClipOfTopGroup(t *testing.T) {
	rewriter := &fakeRewriter{phrase: "what medicine"}
	searcher := &fakeSearcher{results: &domain.SearchResultSet{
		Groups: []domain.ResultGroup{
			{
				ID: "abc123",
				Clips: []domain.Clip{
					{VideoID: "abc123", Start: 12.5, End: 31.0, Score: 0.92},
					{VideoID: "abc123", Start: 80.0, End: 95.0, Score: 0.88},
				},
			},
			{
				ID: "zzz999",
				Clips: []domain.Clip{
					// Later groups are larger and higher-scoring on paper; the
					// service ordering still wins.
					{VideoID: "zzz999", Start: 0, End: 10, Score: 0.99},
					{VideoID: "zzz999", Start: 10, End: 20, Score: 0.98},
					{VideoID: "zzz999", Start: 20, End: 30, Score: 0.97},
				},
			},
		},
	}}
	svc := NewQueryService(rewriter, searcher)

	clip, err := svc.Answer(context.Background(), "what medicine should I take")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rewriter.got != "what medicine should I take" {
		t.Errorf("rewriter got %q", rewriter.got)
	}
	if searcher.got != "what medicine" {
		t.Errorf("searcher got %q, want rewritten phrase", searcher.got)
	}
	if clip.ID != "abc123" || clip.Start != 12.5 || clip.End != 31.0 {
		t.Errorf("unexpected selection %+v", clip)
	}
}

func TestQueryAnswerEmptyResultsIsNotFound(t *testing.T) {
	tests := []struct {
		name    string
		results *domain.SearchResultSet
	}{
		{"no groups", &domain.SearchResultSet{}},
		{"first group has no clips", &domain.SearchResultSet{
			Groups: []domain.ResultGroup{{ID: "abc123"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQueryService(&fakeRewriter{phrase: "x"}, &fakeSearcher{results: tt.results})

			_, err := svc.Answer(context.Background(), "anything")
			if !domain.IsNotFound(err) {
				t.Fatalf("expected not-found error, got %v", err)
			}
		})
	}
}

func TestQueryAnswerEmptyQuestion(t *testing.T) {
	searcher := &fakeSearcher{}
	svc := NewQueryService(&fakeRewriter{phrase: "x"}, searcher)

	_, err := svc.Answer(context.Background(), "")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if searcher.got != "" {
		t.Error("search ran despite empty question")
	}
}

func TestQueryAnswerPropagatesUpstreamErrors(t *testing.T) {
	rewriteErr := domain.NewUpstreamError("query rewrite", errors.New("boom"))
	svc := NewQueryService(&fakeRewriter{err: rewriteErr}, &fakeSearcher{})

	_, err := svc.Answer(context.Background(), "anything")
	if !domain.IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}

	searchErr := domain.NewUpstreamError("semantic search", errors.New("boom"))
	svc = NewQueryService(&fakeRewriter{phrase: "x"}, &fakeSearcher{err: searchErr})

	_, err = svc.Answer(context.Background(), "anything")
	if !domain.IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
