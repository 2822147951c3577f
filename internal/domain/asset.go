package domain

import (
	"fmt"
	"path/filepath"
)

// AssetState represents the position of an asset in the ingestion lifecycle.
// Transitions are strictly forward-only: Uploaded -> Submitted -> Renamed -> Published.
type AssetState string

const (
	AssetStateUploaded  AssetState = "uploaded"
	AssetStateSubmitted AssetState = "submitted"
	AssetStateRenamed   AssetState = "renamed"
	AssetStatePublished AssetState = "published"
)

// assetStateOrder maps each state to its position in the lifecycle.
var assetStateOrder = map[AssetState]int{
	AssetStateUploaded:  0,
	AssetStateSubmitted: 1,
	AssetStateRenamed:   2,
	AssetStatePublished: 3,
}

// AssetRecord tracks a video asset through its naming lifecycle during one
// ingestion call. The ingestion orchestrator exclusively owns and mutates a
// record; nothing else touches it.
type AssetRecord struct {
	TemporaryName   string     // filename as received
	ExternalAssetID string     // assigned by the indexing service on submit
	FinalName       string     // ExternalAssetID + original extension
	PublicURL       string     // set once the current object is publicly readable
	State           AssetState // current lifecycle state
}

// NewAssetRecord creates a record in the Uploaded state for the given
// temporary object name.
func NewAssetRecord(temporaryName string) *AssetRecord {
	return &AssetRecord{
		TemporaryName: temporaryName,
		State:         AssetStateUploaded,
	}
}

// Advance moves the record to the next lifecycle state. Only the immediate
// successor is accepted; there is no rollback transition.
func (r *AssetRecord) Advance(next AssetState) error {
	cur, ok := assetStateOrder[r.State]
	if !ok {
		return fmt.Errorf("unknown asset state %q", r.State)
	}
	want, ok := assetStateOrder[next]
	if !ok {
		return fmt.Errorf("unknown asset state %q", next)
	}
	if want != cur+1 {
		return fmt.Errorf("invalid asset transition %s -> %s", r.State, next)
	}
	r.State = next
	return nil
}

// FinalAssetName derives the durable object name from the external asset id
// and the original filename's extension. A filename without an extension
// yields the bare id.
func FinalAssetName(externalAssetID, originalFilename string) string {
	return externalAssetID + filepath.Ext(originalFilename)
}
