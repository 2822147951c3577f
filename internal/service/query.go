package service

import (
	"context"
	"time"

	"github.com/ChauhanSai/hackrice25/internal/domain"
	"github.com/ChauhanSai/hackrice25/internal/logger"
)

// Rewriter reduces a free-form question to a short retrieval phrase.
type Rewriter interface {
	Rewrite(ctx context.Context, question string) (string, error)
}

// ClipSearcher runs a phrase against the indexed library.
type ClipSearcher interface {
	Search(ctx context.Context, phrase string) (*domain.SearchResultSet, error)
}

// QueryService answers a question with the single best-matching clip:
// rewrite -> search -> top-1/top-1 selection. Selection trusts the search
// service's ordering entirely; there is no tie-break logic here.
type QueryService struct {
	rewriter Rewriter
	searcher ClipSearcher
}

// NewQueryService creates a new query orchestrator.
func NewQueryService(rewriter Rewriter, searcher ClipSearcher) *QueryService {
	return &QueryService{
		rewriter: rewriter,
		searcher: searcher,
	}
}

// Answer resolves a question to the first clip of the first result group.
// An empty result set yields a NotFoundError, never a default clip.
func (s *QueryService) Answer(ctx context.Context, question string) (*domain.SelectedClip, error) {
	if question == "" {
		return nil, domain.NewValidationError("Missing 'query' in request body")
	}

	start := time.Now()
	log := logger.FromContext(ctx).WithField(logger.FieldComponent, "query")

	phrase, err := s.rewriter.Rewrite(ctx, question)
	if err != nil {
		return nil, err
	}
	log.Infof("rewrote question to %q", phrase)

	results, err := s.searcher.Search(ctx, phrase)
	if err != nil {
		return nil, err
	}
	if len(results.Groups) == 0 || len(results.Groups[0].Clips) == 0 {
		return nil, domain.NewNotFoundError("no matching clip found")
	}

	top := results.Groups[0].Clips[0]
	log.WithFields(logger.Fields{
		logger.FieldAssetID:    top.VideoID,
		logger.FieldDurationMs: time.Since(start).Milliseconds(),
	}).Infof("selected clip %.2f-%.2f", top.Start, top.End)

	return &domain.SelectedClip{
		Start: top.Start,
		End:   top.End,
		ID:    top.VideoID,
	}, nil
}
