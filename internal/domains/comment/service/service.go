package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	articlemodel "fanzone-backend/internal/domains/article/model"
	articlerepo "fanzone-backend/internal/domains/article/repository"
	"fanzone-backend/internal/domains/comment/model"
	"fanzone-backend/internal/domains/comment/repository"
	"fanzone-backend/internal/shared/utils"
	"fanzone-backend/pkg/cache"
)

const (
	moderationQueueLimit  = 200
	commentCacheTTL       = time.Minute
	commentCacheKeyPrefix = "comments:article:"
)

type commentService struct {
	commentRepo repository.CommentRepository
	articleRepo articlerepo.ArticleRepository
	cache       cache.Cache
	strict      bool
}

// NewCommentService builds the moderation flow. strict gates
// re-moderation: when true, approve/reject require the comment to still
// be PENDING.
func NewCommentService(
	commentRepo repository.CommentRepository,
	articleRepo articlerepo.ArticleRepository,
	c cache.Cache,
	strict bool,
) ServiceInterface {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		cache:       c,
		strict:      strict,
	}
}

func (s *commentService) Submit(ctx context.Context, articleSlug string, req model.SubmitCommentRequest) (*model.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	article, err := s.publishedArticle(ctx, articleSlug)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	comment := &model.Comment{
		ID:         uuid.New(),
		ArticleID:  article.ID,
		AuthorName: utils.Truncate(req.AuthorName, model.MaxAuthorNameLen),
		Body:       utils.Truncate(req.Body, model.MaxBodyLen),
		Status:     model.CommentStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) ListPublic(ctx context.Context, articleSlug string) ([]*model.Comment, error) {
	article, err := s.publishedArticle(ctx, articleSlug)
	if err != nil {
		return nil, err
	}

	cacheKey := commentCacheKeyPrefix + articleSlug
	var cached []*model.Comment
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		log.Warn().Err(err).Str("slug", articleSlug).Msg("comment cache read failed")
	} else if found {
		return cached, nil
	}

	comments, err := s.commentRepo.ListApprovedByArticle(ctx, article.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	if err := s.cache.Set(ctx, cacheKey, comments, commentCacheTTL); err != nil {
		log.Warn().Err(err).Str("slug", articleSlug).Msg("comment cache write failed")
	}
	return comments, nil
}

func (s *commentService) ListForModeration(ctx context.Context, status string) ([]*model.ModerationEntry, error) {
	filter := model.CommentStatus(status)
	if !model.ValidStatus(filter) {
		filter = model.CommentStatusPending
	}

	entries, err := s.commentRepo.ListForModeration(ctx, filter, moderationQueueLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list moderation queue: %w", err)
	}
	return entries, nil
}

func (s *commentService) Approve(ctx context.Context, commentID uuid.UUID) (*model.Comment, error) {
	return s.transition(ctx, commentID, model.CommentStatusApproved)
}

func (s *commentService) Reject(ctx context.Context, commentID uuid.UUID) (*model.Comment, error) {
	return s.transition(ctx, commentID, model.CommentStatusRejected)
}

func (s *commentService) transition(ctx context.Context, commentID uuid.UUID, target model.CommentStatus) (*model.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if err == model.ErrCommentNotFound {
			return nil, model.NewCommentNotFoundError()
		}
		return nil, fmt.Errorf("failed to load comment: %w", err)
	}

	if s.strict && comment.Status != model.CommentStatusPending {
		return nil, model.NewAlreadyModeratedError()
	}

	comment.Status = target
	comment.UpdatedAt = time.Now()

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	s.invalidate(ctx, comment.ArticleID)
	return comment, nil
}

// publishedArticle resolves a slug to a PUBLISHED article; drafts and
// unknown slugs both read as not found.
func (s *commentService) publishedArticle(ctx context.Context, slug string) (*articlemodel.Article, error) {
	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		if err == articlemodel.ErrArticleNotFound {
			return nil, model.NewArticleNotFoundError()
		}
		return nil, fmt.Errorf("failed to load article: %w", err)
	}
	if !article.IsPublished() {
		return nil, model.NewArticleNotFoundError()
	}
	return article, nil
}

func (s *commentService) invalidate(ctx context.Context, articleID uuid.UUID) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return
	}
	if err := s.cache.Delete(ctx, commentCacheKeyPrefix+article.Slug); err != nil {
		log.Warn().Err(err).Str("slug", article.Slug).Msg("comment cache invalidation failed")
	}
}
