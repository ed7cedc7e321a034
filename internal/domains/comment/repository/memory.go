package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	articlerepo "fanzone-backend/internal/domains/article/repository"
	"fanzone-backend/internal/domains/comment/model"
)

// memoryCommentRepository backs tests. It borrows the article
// repository to produce the parent-article summary the SQL join gives
// the production implementation.
type memoryCommentRepository struct {
	mu          sync.RWMutex
	comments    map[uuid.UUID]*model.Comment
	articleRepo articlerepo.ArticleRepository
}

func NewMemoryCommentRepository(articleRepo articlerepo.ArticleRepository) CommentRepository {
	return &memoryCommentRepository{
		comments:    make(map[uuid.UUID]*model.Comment),
		articleRepo: articleRepo,
	}
}

func (r *memoryCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *comment
	r.comments[comment.ID] = &copied
	return nil
}

func (r *memoryCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comment, ok := r.comments[id]
	if !ok {
		return nil, model.ErrCommentNotFound
	}
	copied := *comment
	return &copied, nil
}

func (r *memoryCommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comments[comment.ID]; !ok {
		return model.ErrCommentNotFound
	}
	copied := *comment
	r.comments[comment.ID] = &copied
	return nil
}

func (r *memoryCommentRepository) ListApprovedByArticle(ctx context.Context, articleID uuid.UUID) ([]*model.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comments := []*model.Comment{}
	for _, comment := range r.comments {
		if comment.ArticleID != articleID || comment.Status != model.CommentStatusApproved {
			continue
		}
		copied := *comment
		comments = append(comments, &copied)
	}

	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (r *memoryCommentRepository) ListForModeration(ctx context.Context, status model.CommentStatus, limit int) ([]*model.ModerationEntry, error) {
	r.mu.RLock()
	matched := []*model.Comment{}
	for _, comment := range r.comments {
		if comment.Status == status {
			copied := *comment
			matched = append(matched, &copied)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	entries := []*model.ModerationEntry{}
	for _, comment := range matched {
		entry := &model.ModerationEntry{Comment: *comment}
		if article, err := r.articleRepo.GetByID(ctx, comment.ArticleID); err == nil {
			entry.Article.Slug = article.Slug
			entry.Article.Title = article.Title
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
