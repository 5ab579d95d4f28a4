package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dinoverse/internal/domain"
)

// PostRepositoryImpl implements the PostRepository interface
type PostRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) domain.PostRepository {
	return &PostRepositoryImpl{db: db}
}

const postColumns = `
	id, title, slug, excerpt, body, cover_image, tags, published,
	published_at, created_at, updated_at
`

func scanPost(row pgx.Row) (*domain.Post, error) {
	post := &domain.Post{}
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Body,
		&post.CoverImage,
		&post.Tags,
		&post.Published,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Create inserts a new post
func (r *PostRepositoryImpl) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (
			id, title, slug, excerpt, body, cover_image, tags, published,
			published_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Body,
		post.CoverImage,
		post.Tags,
		post.Published,
		post.PublishedAt,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

// GetByID retrieves a post by ID
func (r *PostRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get post by ID: %w", err)
	}
	return post, nil
}

// GetBySlug retrieves a post by slug
func (r *PostRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE slug = $1`

	post, err := scanPost(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}
	return post, nil
}

// List retrieves posts, newest first
func (r *PostRepositoryImpl) List(ctx context.Context, filter domain.ContentFilter) ([]*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE 1=1`
	args := []interface{}{}
	argn := 1

	if filter.PublishedOnly {
		query += " AND published = true"
	}
	if filter.Q != "" {
		query += fmt.Sprintf(" AND (title ILIKE $%d OR excerpt ILIKE $%d OR body ILIKE $%d)", argn, argn, argn)
		args = append(args, "%"+filter.Q+"%")
		argn++
	}
	query += " ORDER BY COALESCE(published_at, created_at) DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

// Update rewrites an existing post
func (r *PostRepositoryImpl) Update(ctx context.Context, post *domain.Post) error {
	query := `
		UPDATE posts
		SET title = $1,
		    slug = $2,
		    excerpt = $3,
		    body = $4,
		    cover_image = $5,
		    tags = $6,
		    published = $7,
		    published_at = $8,
		    updated_at = $9
		WHERE id = $10
	`

	tag, err := r.db.Exec(ctx, query,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Body,
		post.CoverImage,
		post.Tags,
		post.Published,
		post.PublishedAt,
		post.UpdatedAt,
		post.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete removes a post
func (r *PostRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
