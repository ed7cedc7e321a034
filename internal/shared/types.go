package shared

// Asynq task types and queues. Payload structs live in the owning
// domain's job package; the constants sit here so the worker and the
// enqueueing services agree without import cycles.
const (
	TypeProcessMediaAsset = "media:process_asset"
	TypePurgeStaleAssets  = "media:purge_stale_assets"
	TypeDeleteObject      = "media:delete_object"

	QueueMedia   = "media"
	QueueDefault = "default"
)
