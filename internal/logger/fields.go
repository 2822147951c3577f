package logger

// Fields is an alias for map[string]interface{} for convenience.
type Fields map[string]interface{}

// Standard tracing fields propagated through the call chain.
const (
	// FieldRequestID is the HTTP request ID (UUID)
	FieldRequestID = "request_id"

	// FieldComponent is the component/module name
	FieldComponent = "component"

	// FieldAssetID is the external asset id assigned by the indexing service
	FieldAssetID = "asset_id"

	// FieldIndexID is the target index/collection id
	FieldIndexID = "index_id"

	// FieldObjectKey is the object-storage key being operated on
	FieldObjectKey = "object_key"
)

// Standard metric fields used for aggregation.
const (
	// FieldDurationMs is the execution duration in milliseconds
	FieldDurationMs = "duration_ms"

	// FieldStatus is the operation or HTTP status
	FieldStatus = "status"

	// FieldSize is the data size in bytes
	FieldSize = "size"
)
