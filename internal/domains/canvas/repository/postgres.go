package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fanzone-backend/internal/domains/canvas/model"
	"fanzone-backend/pkg/database"
)

type postgresCanvasRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCanvasRepository(pool *pgxpool.Pool) CanvasRepository {
	return &postgresCanvasRepository{pool: pool}
}

func (r *postgresCanvasRepository) CreateCanvas(ctx context.Context, canvas *model.Canvas) error {
	query := `
		INSERT INTO canvases (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, canvas.ID, canvas.Name, canvas.CreatedAt, canvas.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create canvas: %w", err)
	}
	return nil
}

func (r *postgresCanvasRepository) GetCanvasByID(ctx context.Context, id uuid.UUID) (*model.Canvas, error) {
	query := `SELECT id, name, created_at, updated_at FROM canvases WHERE id = $1`

	canvas := &model.Canvas{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&canvas.ID, &canvas.Name, &canvas.CreatedAt, &canvas.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCanvasNotFound
		}
		return nil, fmt.Errorf("failed to get canvas: %w", err)
	}
	return canvas, nil
}

func (r *postgresCanvasRepository) ListCanvases(ctx context.Context, limit int) ([]*model.Canvas, error) {
	query := fmt.Sprintf(`
		SELECT id, name, created_at, updated_at
		FROM canvases
		ORDER BY created_at DESC
		LIMIT %d
	`, limit)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list canvases: %w", err)
	}
	defer rows.Close()

	canvases := []*model.Canvas{}
	for rows.Next() {
		canvas := &model.Canvas{}
		if err := rows.Scan(&canvas.ID, &canvas.Name, &canvas.CreatedAt, &canvas.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan canvas: %w", err)
		}
		canvases = append(canvases, canvas)
	}
	return canvases, rows.Err()
}

func (r *postgresCanvasRepository) CreatePost(ctx context.Context, post *model.Post) error {
	// Existence check and insert share one snapshot so a concurrent
	// canvas delete cannot slip between them.
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM canvases WHERE id = $1)`, post.CanvasID,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check canvas: %w", err)
		}
		if !exists {
			return model.ErrCanvasNotFound
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO canvas_posts (id, canvas_id, type, content, file_url, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`,
			post.ID, post.CanvasID, post.Type, post.Content, post.FileURL, post.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create canvas post: %w", err)
		}
		return nil
	})
}

func (r *postgresCanvasRepository) ListPosts(ctx context.Context, canvasID uuid.UUID) ([]*model.Post, error) {
	query := `
		SELECT id, canvas_id, type, content, file_url, created_at
		FROM canvas_posts
		WHERE canvas_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, canvasID)
	if err != nil {
		return nil, fmt.Errorf("failed to list canvas posts: %w", err)
	}
	defer rows.Close()

	posts := []*model.Post{}
	for rows.Next() {
		post := &model.Post{}
		err := rows.Scan(&post.ID, &post.CanvasID, &post.Type, &post.Content, &post.FileURL, &post.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan canvas post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
