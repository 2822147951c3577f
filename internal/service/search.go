package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ChauhanSai/hackrice25/internal/domain"
)

// SearchService issues multimodal semantic searches against the
// video-understanding API. Results come back grouped by video and pre-ranked
// under the requested sort option; this adapter never re-sorts them.
type SearchService struct {
	client  *resty.Client
	baseURL string

	indexID    string
	options    []string
	groupBy    string
	operator   string
	pageLimit  int
	sortOption string
	// confidenceFloor filters low-confidence matches before ranking.
	// Values <= 0 leave the filter off for permissive recall.
	confidenceFloor float64
}

// SemanticSearchConfig holds the connection and ranking parameters for the
// search adapter.
type SemanticSearchConfig struct {
	APIKey          string
	BaseURL         string
	IndexID         string
	Options         []string
	GroupBy         string
	Operator        string
	PageLimit       int
	SortOption      string
	ConfidenceFloor float64
}

// NewSearchService creates a new semantic search client.
func NewSearchService(cfg *SemanticSearchConfig) *SearchService {
	client := resty.New()
	client.SetHeader("x-api-key", cfg.APIKey)
	client.SetTimeout(60 * time.Second)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.twelvelabs.io/v1.3"
	}

	options := cfg.Options
	if len(options) == 0 {
		options = []string{"visual", "audio"}
	}
	groupBy := cfg.GroupBy
	if groupBy == "" {
		groupBy = "video"
	}
	operator := cfg.Operator
	if operator == "" {
		operator = "or"
	}
	pageLimit := cfg.PageLimit
	if pageLimit <= 0 {
		pageLimit = 5
	}
	sortOption := cfg.SortOption
	if sortOption == "" {
		sortOption = "score"
	}

	return &SearchService{
		client:          client,
		baseURL:         baseURL,
		indexID:         cfg.IndexID,
		options:         options,
		groupBy:         groupBy,
		operator:        operator,
		pageLimit:       pageLimit,
		sortOption:      sortOption,
		confidenceFloor: cfg.ConfidenceFloor,
	}
}

type searchResponse struct {
	Data []domain.ResultGroup `json:"data"`
}

// Search runs the rewritten phrase against the configured index and returns
// the ranked result groups in service order.
func (s *SearchService) Search(ctx context.Context, phrase string) (*domain.SearchResultSet, error) {
	form := url.Values{}
	form.Set("index_id", s.indexID)
	form.Set("query_text", phrase)
	for _, opt := range s.options {
		form.Add("search_options", opt)
	}
	form.Set("group_by", s.groupBy)
	form.Set("operator", s.operator)
	form.Set("page_limit", strconv.Itoa(s.pageLimit))
	form.Set("sort_option", s.sortOption)
	if s.confidenceFloor > 0 {
		form.Set("adjust_confidence_level", strconv.FormatFloat(s.confidenceFloor, 'f', -1, 64))
	}

	var result searchResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetFormDataFromValues(form).
		SetResult(&result).
		Post(s.baseURL + "/search")

	if err != nil {
		return nil, domain.NewUpstreamError("semantic search", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, domain.NewUpstreamError("semantic search",
			fmt.Errorf("HTTP %d: %s", resp.StatusCode(), resp.String()))
	}

	return &domain.SearchResultSet{Groups: result.Data}, nil
}
