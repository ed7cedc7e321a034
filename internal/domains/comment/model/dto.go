package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type SubmitCommentRequest struct {
	AuthorName string `json:"author_name"`
	Body       string `json:"body"`
}

func (r SubmitCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorName, validation.Required),
		validation.Field(&r.Body, validation.Required),
	)
}

type ListModerationRequest struct {
	Status string `form:"status"`
}
