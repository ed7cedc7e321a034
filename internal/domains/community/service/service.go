package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fanzone-backend/internal/domains/community/model"
	"fanzone-backend/internal/domains/community/repository"
)

const defaultPageSize = 20

// ServiceInterface is the community feed.
type ServiceInterface interface {
	CreatePost(ctx context.Context, userID uuid.UUID, req model.CreatePostRequest) (*model.Post, error)

	// ListFeed returns a page of posts newest first plus the total
	// count for pagination.
	ListFeed(ctx context.Context, req model.ListPostsRequest) ([]*model.Post, int, error)
}

type communityService struct {
	postRepo repository.PostRepository
}

func NewCommunityService(postRepo repository.PostRepository) ServiceInterface {
	return &communityService{postRepo: postRepo}
}

func (s *communityService) CreatePost(ctx context.Context, userID uuid.UUID, req model.CreatePostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	post := &model.Post{
		ID:        uuid.New(),
		UserID:    userID,
		Body:      req.Body,
		MediaURL:  req.MediaURL,
		CreatedAt: time.Now(),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create community post: %w", err)
	}
	return post, nil
}

func (s *communityService) ListFeed(ctx context.Context, req model.ListPostsRequest) ([]*model.Post, int, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultPageSize
	}

	posts, err := s.postRepo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list community posts: %w", err)
	}

	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count community posts: %w", err)
	}
	return posts, total, nil
}
