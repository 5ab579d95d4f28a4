package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"dinoverse/internal/domain"
)

// ProductRepositoryImpl implements the ProductRepository interface
type ProductRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *pgxpool.Pool) domain.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

const productColumns = `
	id, name, slug, description, image, price::text, in_stock, sort_order,
	created_at, updated_at
`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	product := &domain.Product{}
	var price string
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Slug,
		&product.Description,
		&product.Image,
		&price,
		&product.InStock,
		&product.Order,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	product.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("invalid stored price %q: %w", price, err)
	}
	return product, nil
}

// Create inserts a new product
func (r *ProductRepositoryImpl) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (
			id, name, slug, description, image, price, in_stock, sort_order,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Slug,
		product.Description,
		product.Image,
		product.Price.String(),
		product.InStock,
		product.Order,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// GetByID retrieves a product by ID
func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get product by ID: %w", err)
	}
	return product, nil
}

// List retrieves products in display order
func (r *ProductRepositoryImpl) List(ctx context.Context, filter domain.ContentFilter) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []interface{}{}
	argn := 1

	if filter.PublishedOnly {
		query += " AND in_stock = true"
	}
	if filter.Q != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", argn, argn)
		args = append(args, "%"+filter.Q+"%")
		argn++
	}
	query += " ORDER BY sort_order ASC, created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// Update rewrites an existing product
func (r *ProductRepositoryImpl) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name = $1,
		    slug = $2,
		    description = $3,
		    image = $4,
		    price = $5,
		    in_stock = $6,
		    sort_order = $7,
		    updated_at = $8
		WHERE id = $9
	`

	tag, err := r.db.Exec(ctx, query,
		product.Name,
		product.Slug,
		product.Description,
		product.Image,
		product.Price.String(),
		product.InStock,
		product.Order,
		product.UpdatedAt,
		product.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete removes a product
func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
