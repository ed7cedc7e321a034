package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RegisterAssetRequest is the presign step: metadata only, no bytes.
type RegisterAssetRequest struct {
	FileName string `json:"filename"`
	MimeType string `json:"mime_type"`
	Type     string `json:"type"`
}

func (r RegisterAssetRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FileName,
			validation.Required.Error("filename is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.MimeType,
			validation.Required.Error("mime_type is required"),
			validation.Length(1, 128),
		),
		validation.Field(&r.Type,
			validation.Required.Error("type is required"),
			validation.In(string(AssetTypeImage), string(AssetTypeVideo)).
				Error("type must be IMAGE or VIDEO"),
		),
	)
}

// PresignResponse tells the client where to put the bytes and where
// the asset will be served from once finalized.
type PresignResponse struct {
	AssetID   string `json:"asset_id"`
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
}

// FinalizeRequest optionally records pixel dimensions supplied by the
// client. Missing image dimensions are probed by the worker afterwards.
type FinalizeRequest struct {
	Width  *int `json:"width"`
	Height *int `json:"height"`
}

func (r FinalizeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Width, validation.Min(1)),
		validation.Field(&r.Height, validation.Min(1)),
	)
}

// ListAssetsRequest is the admin asset listing filter.
type ListAssetsRequest struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
}
