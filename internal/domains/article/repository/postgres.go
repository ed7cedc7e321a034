package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"fanzone-backend/internal/domains/article/model"
)

const uniqueViolationCode = "23505"

type postgresArticleRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresArticleRepository(pool *pgxpool.Pool) ArticleRepository {
	return &postgresArticleRepository{pool: pool}
}

const articleColumns = `
	id, title, slug, content, tags, status, published_at, created_at, updated_at
`

func (r *postgresArticleRepository) Create(ctx context.Context, article *model.Article) error {
	query := `
		INSERT INTO articles (` + articleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		article.ID,
		article.Title,
		article.Slug,
		article.Content,
		pq.Array(article.Tags),
		article.Status,
		article.PublishedAt,
		article.CreatedAt,
		article.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to create article: %w", err)
	}
	return nil
}

func (r *postgresArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	return scanArticle(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresArticleRepository) GetBySlug(ctx context.Context, slug string) (*model.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE slug = $1`
	return scanArticle(r.pool.QueryRow(ctx, query, slug))
}

func (r *postgresArticleRepository) Update(ctx context.Context, article *model.Article) error {
	query := `
		UPDATE articles
		SET title = $2, content = $3, tags = $4, status = $5,
		    published_at = $6, updated_at = $7
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		article.ID,
		article.Title,
		article.Content,
		pq.Array(article.Tags),
		article.Status,
		article.PublishedAt,
		article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrArticleNotFound
	}
	return nil
}

func (r *postgresArticleRepository) List(ctx context.Context, status model.ArticleStatus, limit int) ([]*model.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles`
	args := []interface{}{}

	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d`, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles := []*model.Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (r *postgresArticleRepository) ListSlugsWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	query := `SELECT slug FROM articles WHERE slug LIKE $1 || '%'`

	rows, err := r.pool.Query(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list slugs: %w", err)
	}
	defer rows.Close()

	slugs := []string{}
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("failed to scan slug: %w", err)
		}
		slugs = append(slugs, slug)
	}
	return slugs, rows.Err()
}

func scanArticle(row pgx.Row) (*model.Article, error) {
	article := &model.Article{}
	err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Slug,
		&article.Content,
		pq.Array(&article.Tags),
		&article.Status,
		&article.PublishedAt,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to scan article: %w", err)
	}
	return article, nil
}
