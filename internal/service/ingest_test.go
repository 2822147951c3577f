package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/ChauhanSai/hackrice25/internal/domain"
)

// fakeStore is an in-memory ObjectStorage that records the operations the
// orchestrator performs.
type fakeStore struct {
	objects map[string]string // key -> content type
	public  map[string]bool
	ops     []string

	putErr    error
	copyErr   error
	deleteErr error
	publicErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		objects: make(map[string]string),
		public:  make(map[string]bool),
	}
}

func (f *fakeStore) Put(_ context.Context, key string, reader io.Reader, _ int64, contentType string) error {
	f.ops = append(f.ops, "put:"+key)
	if f.putErr != nil {
		return f.putErr
	}
	if _, err := io.ReadAll(reader); err != nil {
		return err
	}
	f.objects[key] = contentType
	return nil
}

func (f *fakeStore) MakePublic(_ context.Context, key string) (string, error) {
	f.ops = append(f.ops, "public:"+key)
	if f.publicErr != nil {
		return "", f.publicErr
	}
	f.public[key] = true
	return "https://cdn.example.com/" + key, nil
}

func (f *fakeStore) Copy(_ context.Context, srcKey, dstKey string) error {
	f.ops = append(f.ops, fmt.Sprintf("copy:%s->%s", srcKey, dstKey))
	if f.copyErr != nil {
		return f.copyErr
	}
	f.objects[dstKey] = f.objects[srcKey]
	return nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	f.ops = append(f.ops, "delete:"+key)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, key)
	delete(f.public, key)
	return nil
}

// fakeIndexer returns a fixed video id or error and records the submission.
type fakeIndexer struct {
	videoID   string
	err       error
	gotURL    string
	gotIndex  string
	submitted int
}

func (f *fakeIndexer) SubmitVideo(_ context.Context, publicURL, indexID string) (string, error) {
	f.submitted++
	f.gotURL = publicURL
	f.gotIndex = indexID
	if f.err != nil {
		return "", f.err
	}
	return f.videoID, nil
}

func uploadReq() *UploadRequest {
	return &UploadRequest{
		Filename:    "clip.mp4",
		ContentType: "video/mp4",
		Size:        4,
		Reader:      strings.NewReader("data"),
		IndexID:     "idx1",
	}
}

func TestIngestFullLifecycle(t *testing.T) {
	store := newFakeStore()
	indexer := &fakeIndexer{videoID: "abc123"}
	svc := NewIngestService(store, indexer)

	result, err := svc.Ingest(context.Background(), uploadReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.VideoID != "abc123" {
		t.Errorf("expected video id abc123, got %q", result.VideoID)
	}
	if result.URL != "https://cdn.example.com/abc123.mp4" {
		t.Errorf("unexpected final URL %q", result.URL)
	}

	// The public URL handed to the indexing service must be the temporary
	// object's URL; the service fetches the asset by URL.
	if indexer.gotURL != "https://cdn.example.com/clip.mp4" {
		t.Errorf("indexer got URL %q", indexer.gotURL)
	}
	if indexer.gotIndex != "idx1" {
		t.Errorf("indexer got index %q", indexer.gotIndex)
	}

	// Temporary object is gone, final object exists and is public.
	if _, ok := store.objects["clip.mp4"]; ok {
		t.Error("temporary object still exists after publish")
	}
	if ct := store.objects["abc123.mp4"]; ct != "video/mp4" {
		t.Errorf("final object content type %q, want video/mp4", ct)
	}
	if !store.public["abc123.mp4"] {
		t.Error("final object is not public")
	}

	// The sequence is strictly upload -> publish -> copy -> delete -> publish.
	wantOps := []string{
		"put:clip.mp4",
		"public:clip.mp4",
		"copy:clip.mp4->abc123.mp4",
		"delete:clip.mp4",
		"public:abc123.mp4",
	}
	if len(store.ops) != len(wantOps) {
		t.Fatalf("ops = %v, want %v", store.ops, wantOps)
	}
	for i, op := range wantOps {
		if store.ops[i] != op {
			t.Errorf("op[%d] = %q, want %q", i, store.ops[i], op)
		}
	}
}

func TestIngestValidationFailsBeforeStorage(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*UploadRequest)
	}{
		{"missing index id", func(r *UploadRequest) { r.IndexID = "" }},
		{"empty filename", func(r *UploadRequest) { r.Filename = "" }},
		{"empty file", func(r *UploadRequest) { r.Size = 0 }},
		{"nil reader", func(r *UploadRequest) { r.Reader = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			indexer := &fakeIndexer{videoID: "abc123"}
			svc := NewIngestService(store, indexer)

			req := uploadReq()
			tt.mutate(req)

			_, err := svc.Ingest(context.Background(), req)
			if !domain.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(store.ops) != 0 {
				t.Errorf("storage was touched before validation: %v", store.ops)
			}
			if indexer.submitted != 0 {
				t.Error("indexing was called before validation")
			}
		})
	}
}

func TestIngestSubmitFailureLeavesOrphan(t *testing.T) {
	store := newFakeStore()
	indexer := &fakeIndexer{err: domain.NewUpstreamError("indexing submit", errors.New("boom"))}
	svc := NewIngestService(store, indexer)

	_, err := svc.Ingest(context.Background(), uploadReq())
	if !domain.IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}

	// No rollback: the temporary object stays behind.
	if _, ok := store.objects["clip.mp4"]; !ok {
		t.Error("temporary object was removed on submit failure")
	}
	for _, op := range store.ops {
		if strings.HasPrefix(op, "copy:") || strings.HasPrefix(op, "delete:") {
			t.Errorf("unexpected op after submit failure: %s", op)
		}
	}
}

func TestIngestCopyFailureAborts(t *testing.T) {
	store := newFakeStore()
	store.copyErr = errors.New("copy failed")
	indexer := &fakeIndexer{videoID: "abc123"}
	svc := NewIngestService(store, indexer)

	_, err := svc.Ingest(context.Background(), uploadReq())
	if !domain.IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}

	// The temporary object must not be deleted when the copy never landed.
	if _, ok := store.objects["clip.mp4"]; !ok {
		t.Error("temporary object deleted despite failed copy")
	}
}

func TestIngestPutFailureSurfacesStorageError(t *testing.T) {
	store := newFakeStore()
	store.putErr = errors.New("bucket unavailable")
	indexer := &fakeIndexer{videoID: "abc123"}
	svc := NewIngestService(store, indexer)

	_, err := svc.Ingest(context.Background(), uploadReq())
	if !domain.IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if indexer.submitted != 0 {
		t.Error("indexing was called after failed upload")
	}
}
