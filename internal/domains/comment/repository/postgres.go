package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fanzone-backend/internal/domains/comment/model"
)

type postgresCommentRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &postgresCommentRepository{pool: pool}
}

const commentColumns = `
	id, article_id, author_name, body, status, created_at, updated_at
`

func (r *postgresCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	query := `
		INSERT INTO comments (` + commentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		comment.ID,
		comment.ArticleID,
		comment.AuthorName,
		comment.Body,
		comment.Status,
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *postgresCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	comment, err := scanComment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return comment, nil
}

func (r *postgresCommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	query := `
		UPDATE comments
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, comment.ID, comment.Status, comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}

func (r *postgresCommentRepository) ListApprovedByArticle(ctx context.Context, articleID uuid.UUID) ([]*model.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE article_id = $1 AND status = $2
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, articleID, model.CommentStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []*model.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (r *postgresCommentRepository) ListForModeration(ctx context.Context, status model.CommentStatus, limit int) ([]*model.ModerationEntry, error) {
	query := fmt.Sprintf(`
		SELECT c.id, c.article_id, c.author_name, c.body, c.status,
		       c.created_at, c.updated_at, a.slug, a.title
		FROM comments c
		JOIN articles a ON a.id = c.article_id
		WHERE c.status = $1
		ORDER BY c.created_at DESC
		LIMIT %d
	`, limit)

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list moderation queue: %w", err)
	}
	defer rows.Close()

	entries := []*model.ModerationEntry{}
	for rows.Next() {
		entry := &model.ModerationEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.ArticleID,
			&entry.AuthorName,
			&entry.Body,
			&entry.Status,
			&entry.CreatedAt,
			&entry.UpdatedAt,
			&entry.Article.Slug,
			&entry.Article.Title,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan moderation entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func scanComment(row pgx.Row) (*model.Comment, error) {
	comment := &model.Comment{}
	err := row.Scan(
		&comment.ID,
		&comment.ArticleID,
		&comment.AuthorName,
		&comment.Body,
		&comment.Status,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return comment, nil
}
