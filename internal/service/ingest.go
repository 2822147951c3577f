package service

import (
	"context"
	"io"
	"time"

	"github.com/ChauhanSai/hackrice25/internal/domain"
	"github.com/ChauhanSai/hackrice25/internal/logger"
	"github.com/ChauhanSai/hackrice25/internal/storage"
)

// VideoIndexer registers a publicly fetchable video for indexing.
type VideoIndexer interface {
	SubmitVideo(ctx context.Context, publicURL, indexID string) (string, error)
}

// UploadRequest carries one inbound upload. It lives only for the duration
// of a single ingestion call.
type UploadRequest struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
	IndexID     string
}

// UploadResult is the ingestion outcome returned to the caller.
type UploadResult struct {
	URL     string `json:"url"`
	VideoID string `json:"video_id"`
}

// IngestService drives the upload -> submit -> rename -> publish state
// machine over one AssetRecord per call. Steps are sequential because each
// depends on the previous step's output; there is no rollback, so a failure
// mid-sequence leaves whatever storage state the completed steps produced
// (a submit failure orphans the temporary object).
type IngestService struct {
	store   storage.ObjectStorage
	indexer VideoIndexer
}

// NewIngestService creates a new ingestion orchestrator.
func NewIngestService(store storage.ObjectStorage, indexer VideoIndexer) *IngestService {
	return &IngestService{
		store:   store,
		indexer: indexer,
	}
}

// Ingest runs one upload through the full lifecycle and returns the public
// URL and external asset id of the published object. Validation happens
// before any storage write.
func (s *IngestService) Ingest(ctx context.Context, req *UploadRequest) (*UploadResult, error) {
	if req.IndexID == "" {
		return nil, domain.NewValidationError("Missing 'index' parameter")
	}
	if req.Filename == "" {
		return nil, domain.NewValidationError("No selected file")
	}
	if req.Reader == nil || req.Size == 0 {
		return nil, domain.NewValidationError("No file part in the request")
	}

	start := time.Now()
	record := domain.NewAssetRecord(req.Filename)
	log := logger.FromContext(ctx).WithFields(logger.Fields{
		logger.FieldComponent: "ingest",
		logger.FieldObjectKey: record.TemporaryName,
		logger.FieldIndexID:   req.IndexID,
	})

	// Uploaded: store under the temporary name and make it fetchable. The
	// indexing service pulls the asset by URL, so the object must be public
	// before submission.
	if err := s.store.Put(ctx, record.TemporaryName, req.Reader, req.Size, req.ContentType); err != nil {
		return nil, domain.NewUpstreamError("storage put", err)
	}
	tempURL, err := s.store.MakePublic(ctx, record.TemporaryName)
	if err != nil {
		return nil, domain.NewUpstreamError("storage publish", err)
	}
	record.PublicURL = tempURL
	log.Infof("uploaded %s, public at %s", record.TemporaryName, tempURL)

	// Submitted: register with the indexing service. On failure the object
	// uploaded above stays behind under its temporary name.
	videoID, err := s.indexer.SubmitVideo(ctx, record.PublicURL, req.IndexID)
	if err != nil {
		log.WithError(err).Error("indexing submission failed, temporary object left in storage")
		return nil, err
	}
	record.ExternalAssetID = videoID
	if err := record.Advance(domain.AssetStateSubmitted); err != nil {
		return nil, err
	}
	log = log.WithField(logger.FieldAssetID, videoID)
	log.Infof("indexing accepted video %s", videoID)

	// Renamed: copy to the durable name and drop the temporary object.
	record.FinalName = domain.FinalAssetName(videoID, req.Filename)
	if err := s.store.Copy(ctx, record.TemporaryName, record.FinalName); err != nil {
		return nil, domain.NewUpstreamError("storage copy", err)
	}
	if err := s.store.Delete(ctx, record.TemporaryName); err != nil {
		return nil, domain.NewUpstreamError("storage delete", err)
	}
	if err := record.Advance(domain.AssetStateRenamed); err != nil {
		return nil, err
	}

	// Published: the renamed object gets its own public URL.
	finalURL, err := s.store.MakePublic(ctx, record.FinalName)
	if err != nil {
		return nil, domain.NewUpstreamError("storage publish", err)
	}
	record.PublicURL = finalURL
	if err := record.Advance(domain.AssetStatePublished); err != nil {
		return nil, err
	}

	log.WithFields(logger.Fields{
		logger.FieldDurationMs: time.Since(start).Milliseconds(),
	}).Infof("published %s at %s", record.FinalName, finalURL)

	return &UploadResult{URL: record.PublicURL, VideoID: record.ExternalAssetID}, nil
}
