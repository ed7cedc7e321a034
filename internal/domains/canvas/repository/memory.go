package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"fanzone-backend/internal/domains/canvas/model"
)

// memoryCanvasRepository backs tests.
type memoryCanvasRepository struct {
	mu       sync.RWMutex
	canvases map[uuid.UUID]*model.Canvas
	posts    map[uuid.UUID]*model.Post
}

func NewMemoryCanvasRepository() CanvasRepository {
	return &memoryCanvasRepository{
		canvases: make(map[uuid.UUID]*model.Canvas),
		posts:    make(map[uuid.UUID]*model.Post),
	}
}

func (r *memoryCanvasRepository) CreateCanvas(ctx context.Context, canvas *model.Canvas) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *canvas
	r.canvases[canvas.ID] = &copied
	return nil
}

func (r *memoryCanvasRepository) GetCanvasByID(ctx context.Context, id uuid.UUID) (*model.Canvas, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	canvas, ok := r.canvases[id]
	if !ok {
		return nil, model.ErrCanvasNotFound
	}
	copied := *canvas
	return &copied, nil
}

func (r *memoryCanvasRepository) ListCanvases(ctx context.Context, limit int) ([]*model.Canvas, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	canvases := []*model.Canvas{}
	for _, canvas := range r.canvases {
		copied := *canvas
		canvases = append(canvases, &copied)
	}

	sort.Slice(canvases, func(i, j int) bool {
		return canvases[i].CreatedAt.After(canvases[j].CreatedAt)
	})
	if limit > 0 && len(canvases) > limit {
		canvases = canvases[:limit]
	}
	return canvases, nil
}

func (r *memoryCanvasRepository) CreatePost(ctx context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.canvases[post.CanvasID]; !ok {
		return model.ErrCanvasNotFound
	}
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *memoryCanvasRepository) ListPosts(ctx context.Context, canvasID uuid.UUID) ([]*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := []*model.Post{}
	for _, post := range r.posts {
		if post.CanvasID != canvasID {
			continue
		}
		copied := *post
		posts = append(posts, &copied)
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}
