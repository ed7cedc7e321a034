package job

// ProcessAssetPayload identifies the finalized asset to probe.
type ProcessAssetPayload struct {
	AssetID string `json:"asset_id"`
}

// PurgeStaleAssetsPayload carries the purge cutoff.
type PurgeStaleAssetsPayload struct {
	MaxAgeHours int `json:"max_age_hours"`
}
