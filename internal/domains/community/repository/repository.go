package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"fanzone-backend/internal/domains/community/model"
)

// PostRepository persists community feed posts.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error

	// List returns posts newest first with offset pagination.
	List(ctx context.Context, offset, limit int) ([]*model.Post, error)

	Count(ctx context.Context) (int, error)
}

// ---------------------------------------------------------------------
// Postgres
// ---------------------------------------------------------------------

type postgresPostRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postgresPostRepository{pool: pool}
}

func (r *postgresPostRepository) Create(ctx context.Context, post *model.Post) error {
	query := `
		INSERT INTO community_posts (id, user_id, body, media_url, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, post.ID, post.UserID, post.Body, post.MediaURL, post.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create community post: %w", err)
	}
	return nil
}

func (r *postgresPostRepository) List(ctx context.Context, offset, limit int) ([]*model.Post, error) {
	query := `
		SELECT id, user_id, body, media_url, created_at
		FROM community_posts
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list community posts: %w", err)
	}
	defer rows.Close()

	posts := []*model.Post{}
	for rows.Next() {
		post := &model.Post{}
		err := rows.Scan(&post.ID, &post.UserID, &post.Body, &post.MediaURL, &post.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan community post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *postgresPostRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM community_posts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count community posts: %w", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------
// Memory
// ---------------------------------------------------------------------

type memoryPostRepository struct {
	mu    sync.RWMutex
	posts map[uuid.UUID]*model.Post
}

func NewMemoryPostRepository() PostRepository {
	return &memoryPostRepository{posts: make(map[uuid.UUID]*model.Post)}
}

func (r *memoryPostRepository) Create(ctx context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *memoryPostRepository) List(ctx context.Context, offset, limit int) ([]*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := []*model.Post{}
	for _, post := range r.posts {
		copied := *post
		posts = append(posts, &copied)
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	if offset >= len(posts) {
		return []*model.Post{}, nil
	}
	posts = posts[offset:]
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (r *memoryPostRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts), nil
}
