package domain

// Clip is a scored time range within one indexed video, returned by the
// semantic search service as a candidate answer.
type Clip struct {
	VideoID string  `json:"video_id"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Score   float64 `json:"score"`
}

// ResultGroup is one matched video asset with its candidate clips, ordered
// by relevance under the requested sort option.
type ResultGroup struct {
	ID    string `json:"id"`
	Clips []Clip `json:"clips"`
}

// SearchResultSet is the ordered collection of result groups returned by the
// search service. Groups arrive pre-ranked; the pipeline never re-sorts them.
type SearchResultSet struct {
	Groups []ResultGroup
}

// SelectedClip is the single clip returned to the caller: the first clip of
// the first result group.
type SelectedClip struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	ID    string  `json:"id"`
}
