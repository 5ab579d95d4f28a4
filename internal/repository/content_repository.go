package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dinoverse/internal/domain"
)

// Repositories for the remaining marketing collections. All of them are
// plain record stores ordered by sort_order.

// PortfolioRepositoryImpl implements the PortfolioRepository interface
type PortfolioRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewPortfolioRepository creates a new PortfolioRepository
func NewPortfolioRepository(db *pgxpool.Pool) domain.PortfolioRepository {
	return &PortfolioRepositoryImpl{db: db}
}

const portfolioColumns = `
	id, title, slug, description, image, project_url, tags, featured,
	sort_order, created_at, updated_at
`

func scanPortfolioItem(row pgx.Row) (*domain.PortfolioItem, error) {
	item := &domain.PortfolioItem{}
	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Slug,
		&item.Description,
		&item.Image,
		&item.ProjectURL,
		&item.Tags,
		&item.Featured,
		&item.Order,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Create inserts a new portfolio item
func (r *PortfolioRepositoryImpl) Create(ctx context.Context, item *domain.PortfolioItem) error {
	query := `
		INSERT INTO portfolio_items (
			id, title, slug, description, image, project_url, tags, featured,
			sort_order, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID, item.Title, item.Slug, item.Description, item.Image,
		item.ProjectURL, item.Tags, item.Featured, item.Order,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create portfolio item: %w", err)
	}
	return nil
}

// GetByID retrieves a portfolio item by ID
func (r *PortfolioRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.PortfolioItem, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolio_items WHERE id = $1`

	item, err := scanPortfolioItem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio item by ID: %w", err)
	}
	return item, nil
}

// List retrieves portfolio items in display order
func (r *PortfolioRepositoryImpl) List(ctx context.Context, filter domain.ContentFilter) ([]*domain.PortfolioItem, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolio_items WHERE 1=1`
	args := []interface{}{}

	if filter.Q != "" {
		query += " AND (title ILIKE $1 OR description ILIKE $1)"
		args = append(args, "%"+filter.Q+"%")
	}
	query += " ORDER BY sort_order ASC, created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio items: %w", err)
	}
	defer rows.Close()

	var items []*domain.PortfolioItem
	for rows.Next() {
		item, err := scanPortfolioItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan portfolio item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio items: %w", err)
	}
	return items, nil
}

// Update rewrites an existing portfolio item
func (r *PortfolioRepositoryImpl) Update(ctx context.Context, item *domain.PortfolioItem) error {
	query := `
		UPDATE portfolio_items
		SET title = $1, slug = $2, description = $3, image = $4,
		    project_url = $5, tags = $6, featured = $7, sort_order = $8,
		    updated_at = $9
		WHERE id = $10
	`

	tag, err := r.db.Exec(ctx, query,
		item.Title, item.Slug, item.Description, item.Image, item.ProjectURL,
		item.Tags, item.Featured, item.Order, item.UpdatedAt, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update portfolio item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a portfolio item
func (r *PortfolioRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM portfolio_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ServiceRepositoryImpl implements the ServiceRepository interface
type ServiceRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewServiceRepository creates a new ServiceRepository
func NewServiceRepository(db *pgxpool.Pool) domain.ServiceRepository {
	return &ServiceRepositoryImpl{db: db}
}

const serviceColumns = `
	id, title, description, icon, price_note, sort_order, active,
	created_at, updated_at
`

func scanService(row pgx.Row) (*domain.Service, error) {
	svc := &domain.Service{}
	err := row.Scan(
		&svc.ID,
		&svc.Title,
		&svc.Description,
		&svc.Icon,
		&svc.PriceNote,
		&svc.Order,
		&svc.Active,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// Create inserts a new service
func (r *ServiceRepositoryImpl) Create(ctx context.Context, svc *domain.Service) error {
	query := `
		INSERT INTO services (
			id, title, description, icon, price_note, sort_order, active,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		svc.ID, svc.Title, svc.Description, svc.Icon, svc.PriceNote,
		svc.Order, svc.Active, svc.CreatedAt, svc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// GetByID retrieves a service by ID
func (r *ServiceRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	svc, err := scanService(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get service by ID: %w", err)
	}
	return svc, nil
}

// List retrieves services in display order
func (r *ServiceRepositoryImpl) List(ctx context.Context, filter domain.ContentFilter) ([]*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE 1=1`
	args := []interface{}{}

	if filter.PublishedOnly {
		query += " AND active = true"
	}
	if filter.Q != "" {
		query += " AND (title ILIKE $1 OR description ILIKE $1)"
		args = append(args, "%"+filter.Q+"%")
	}
	query += " ORDER BY sort_order ASC, created_at ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	var services []*domain.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating services: %w", err)
	}
	return services, nil
}

// Update rewrites an existing service
func (r *ServiceRepositoryImpl) Update(ctx context.Context, svc *domain.Service) error {
	query := `
		UPDATE services
		SET title = $1, description = $2, icon = $3, price_note = $4,
		    sort_order = $5, active = $6, updated_at = $7
		WHERE id = $8
	`

	tag, err := r.db.Exec(ctx, query,
		svc.Title, svc.Description, svc.Icon, svc.PriceNote,
		svc.Order, svc.Active, svc.UpdatedAt, svc.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a service
func (r *ServiceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// TestimonialRepositoryImpl implements the TestimonialRepository interface
type TestimonialRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewTestimonialRepository creates a new TestimonialRepository
func NewTestimonialRepository(db *pgxpool.Pool) domain.TestimonialRepository {
	return &TestimonialRepositoryImpl{db: db}
}

const testimonialColumns = `
	id, author, role, avatar, quote, sort_order, published, created_at, updated_at
`

func scanTestimonial(row pgx.Row) (*domain.Testimonial, error) {
	t := &domain.Testimonial{}
	err := row.Scan(
		&t.ID,
		&t.Author,
		&t.Role,
		&t.Avatar,
		&t.Quote,
		&t.Order,
		&t.Published,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Create inserts a new testimonial
func (r *TestimonialRepositoryImpl) Create(ctx context.Context, t *domain.Testimonial) error {
	query := `
		INSERT INTO testimonials (
			id, author, role, avatar, quote, sort_order, published,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		t.ID, t.Author, t.Role, t.Avatar, t.Quote, t.Order, t.Published,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	return nil
}

// GetByID retrieves a testimonial by ID
func (r *TestimonialRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = $1`

	t, err := scanTestimonial(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get testimonial by ID: %w", err)
	}
	return t, nil
}

// List retrieves testimonials in display order
func (r *TestimonialRepositoryImpl) List(ctx context.Context, filter domain.ContentFilter) ([]*domain.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE 1=1`
	args := []interface{}{}

	if filter.PublishedOnly {
		query += " AND published = true"
	}
	if filter.Q != "" {
		query += " AND (author ILIKE $1 OR quote ILIKE $1)"
		args = append(args, "%"+filter.Q+"%")
	}
	query += " ORDER BY sort_order ASC, created_at ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []*domain.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating testimonials: %w", err)
	}
	return testimonials, nil
}

// Update rewrites an existing testimonial
func (r *TestimonialRepositoryImpl) Update(ctx context.Context, t *domain.Testimonial) error {
	query := `
		UPDATE testimonials
		SET author = $1, role = $2, avatar = $3, quote = $4, sort_order = $5,
		    published = $6, updated_at = $7
		WHERE id = $8
	`

	tag, err := r.db.Exec(ctx, query,
		t.Author, t.Role, t.Avatar, t.Quote, t.Order, t.Published,
		t.UpdatedAt, t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update testimonial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a testimonial
func (r *TestimonialRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// PartnerRepositoryImpl implements the PartnerRepository interface
type PartnerRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewPartnerRepository creates a new PartnerRepository
func NewPartnerRepository(db *pgxpool.Pool) domain.PartnerRepository {
	return &PartnerRepositoryImpl{db: db}
}

func scanPartner(row pgx.Row) (*domain.Partner, error) {
	p := &domain.Partner{}
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Logo,
		&p.WebsiteURL,
		&p.Order,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new partner
func (r *PartnerRepositoryImpl) Create(ctx context.Context, p *domain.Partner) error {
	query := `
		INSERT INTO partners (id, name, logo, website_url, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Logo, p.WebsiteURL, p.Order, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create partner: %w", err)
	}
	return nil
}

// GetByID retrieves a partner by ID
func (r *PartnerRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Partner, error) {
	query := `
		SELECT id, name, logo, website_url, sort_order, created_at, updated_at
		FROM partners WHERE id = $1
	`

	p, err := scanPartner(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get partner by ID: %w", err)
	}
	return p, nil
}

// List retrieves partners in display order
func (r *PartnerRepositoryImpl) List(ctx context.Context, filter domain.ContentFilter) ([]*domain.Partner, error) {
	query := `
		SELECT id, name, logo, website_url, sort_order, created_at, updated_at
		FROM partners WHERE 1=1
	`
	args := []interface{}{}

	if filter.Q != "" {
		query += " AND name ILIKE $1"
		args = append(args, "%"+filter.Q+"%")
	}
	query += " ORDER BY sort_order ASC, created_at ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query partners: %w", err)
	}
	defer rows.Close()

	var partners []*domain.Partner
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan partner: %w", err)
		}
		partners = append(partners, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating partners: %w", err)
	}
	return partners, nil
}

// Update rewrites an existing partner
func (r *PartnerRepositoryImpl) Update(ctx context.Context, p *domain.Partner) error {
	query := `
		UPDATE partners
		SET name = $1, logo = $2, website_url = $3, sort_order = $4, updated_at = $5
		WHERE id = $6
	`

	tag, err := r.db.Exec(ctx, query,
		p.Name, p.Logo, p.WebsiteURL, p.Order, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update partner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a partner
func (r *PartnerRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete partner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// FeatureRepositoryImpl implements the FeatureRepository interface
type FeatureRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewFeatureRepository creates a new FeatureRepository
func NewFeatureRepository(db *pgxpool.Pool) domain.FeatureRepository {
	return &FeatureRepositoryImpl{db: db}
}

func scanFeature(row pgx.Row) (*domain.Feature, error) {
	f := &domain.Feature{}
	err := row.Scan(
		&f.ID,
		&f.Title,
		&f.Description,
		&f.Icon,
		&f.Order,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Create inserts a new feature
func (r *FeatureRepositoryImpl) Create(ctx context.Context, f *domain.Feature) error {
	query := `
		INSERT INTO features (id, title, description, icon, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		f.ID, f.Title, f.Description, f.Icon, f.Order, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create feature: %w", err)
	}
	return nil
}

// GetByID retrieves a feature by ID
func (r *FeatureRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Feature, error) {
	query := `
		SELECT id, title, description, icon, sort_order, created_at, updated_at
		FROM features WHERE id = $1
	`

	f, err := scanFeature(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get feature by ID: %w", err)
	}
	return f, nil
}

// List retrieves features in display order
func (r *FeatureRepositoryImpl) List(ctx context.Context, filter domain.ContentFilter) ([]*domain.Feature, error) {
	query := `
		SELECT id, title, description, icon, sort_order, created_at, updated_at
		FROM features WHERE 1=1
	`
	args := []interface{}{}

	if filter.Q != "" {
		query += " AND (title ILIKE $1 OR description ILIKE $1)"
		args = append(args, "%"+filter.Q+"%")
	}
	query += " ORDER BY sort_order ASC, created_at ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query features: %w", err)
	}
	defer rows.Close()

	var features []*domain.Feature
	for rows.Next() {
		f, err := scanFeature(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feature: %w", err)
		}
		features = append(features, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating features: %w", err)
	}
	return features, nil
}

// Update rewrites an existing feature
func (r *FeatureRepositoryImpl) Update(ctx context.Context, f *domain.Feature) error {
	query := `
		UPDATE features
		SET title = $1, description = $2, icon = $3, sort_order = $4, updated_at = $5
		WHERE id = $6
	`

	tag, err := r.db.Exec(ctx, query,
		f.Title, f.Description, f.Icon, f.Order, f.UpdatedAt, f.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update feature: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a feature
func (r *FeatureRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM features WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete feature: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
