package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateArticleRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Tags, validation.Each(validation.Length(1, 50))),
	)
}

type ListArticlesRequest struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
}

// ArticleSummary is the shape embedded in moderation listings.
type ArticleSummary struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}
