package model

import (
	"io"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateCanvasRequest accepts either "name" or "title"; name wins when
// both are present.
type CreateCanvasRequest struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// ResolvedName returns whichever of name/title was supplied.
func (r CreateCanvasRequest) ResolvedName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Title
}

func (r CreateCanvasRequest) Validate() error {
	name := r.ResolvedName()
	return validation.Validate(name,
		validation.Required.Error("name is required"),
		validation.Length(1, 255),
	)
}

// PostSubmission is the closed set of payload shapes for post creation,
// decided once at the HTTP boundary.
type PostSubmission interface {
	postSubmission()
}

// TextSubmission is the JSON variant.
type TextSubmission struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

func (TextSubmission) postSubmission() {}

func (r TextSubmission) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.Required, validation.In(string(PostTypeText))),
		validation.Field(&r.Content, validation.Required, validation.Length(1, 0)),
	)
}

// MediaSubmission is the multipart variant. Reader streams the uploaded
// file; Size is the declared length used by the size policy.
type MediaSubmission struct {
	Type     string
	FileName string
	MimeType string
	Size     int64
	Reader   io.Reader
}

func (MediaSubmission) postSubmission() {}

func (r MediaSubmission) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.Required,
			validation.In(string(PostTypeImage), string(PostTypeVideo))),
		validation.Field(&r.FileName, validation.Required),
		validation.Field(&r.MimeType, validation.Required),
	)
}
