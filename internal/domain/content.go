package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The marketing-site collections are flat content records. Each one gets a
// plain struct and a CRUD repository; no derived state lives on any of them.

// Post represents a blog article
type Post struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Body        string     `json:"body"`
	CoverImage  string     `json:"cover_image,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PortfolioItem represents one portfolio entry
type PortfolioItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	ProjectURL  *string   `json:"project_url,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Featured    bool      `json:"featured"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Service represents an offered service
type Service struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	PriceNote   string    `json:"price_note,omitempty"`
	Order       int       `json:"order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Product represents a store item, priced in ETB
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image,omitempty"`
	Price       decimal.Decimal `json:"price"`
	InStock     bool            `json:"in_stock"`
	Order       int             `json:"order"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Testimonial represents a client testimonial
type Testimonial struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Role      string    `json:"role,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Quote     string    `json:"quote"`
	Order     int       `json:"order"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Partner represents a partner logo entry
type Partner struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Logo       string    `json:"logo,omitempty"`
	WebsiteURL string    `json:"website_url,omitempty"`
	Order      int       `json:"order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Feature represents a highlighted capability on the home page
type Feature struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContentFilter narrows content listings
type ContentFilter struct {
	// Q is a free-text search over the collection's text columns.
	Q string
	// PublishedOnly limits the listing to publicly visible records.
	PublishedOnly bool
}

// PostRepository defines the interface for blog posts
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	List(ctx context.Context, filter ContentFilter) ([]*Post, error)
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PortfolioRepository defines the interface for portfolio items
type PortfolioRepository interface {
	Create(ctx context.Context, item *PortfolioItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*PortfolioItem, error)
	List(ctx context.Context, filter ContentFilter) ([]*PortfolioItem, error)
	Update(ctx context.Context, item *PortfolioItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ServiceRepository defines the interface for offered services
type ServiceRepository interface {
	Create(ctx context.Context, svc *Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*Service, error)
	List(ctx context.Context, filter ContentFilter) ([]*Service, error)
	Update(ctx context.Context, svc *Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines the interface for store products
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context, filter ContentFilter) ([]*Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TestimonialRepository defines the interface for testimonials
type TestimonialRepository interface {
	Create(ctx context.Context, t *Testimonial) error
	GetByID(ctx context.Context, id uuid.UUID) (*Testimonial, error)
	List(ctx context.Context, filter ContentFilter) ([]*Testimonial, error)
	Update(ctx context.Context, t *Testimonial) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PartnerRepository defines the interface for partners
type PartnerRepository interface {
	Create(ctx context.Context, p *Partner) error
	GetByID(ctx context.Context, id uuid.UUID) (*Partner, error)
	List(ctx context.Context, filter ContentFilter) ([]*Partner, error)
	Update(ctx context.Context, p *Partner) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// FeatureRepository defines the interface for home-page features
type FeatureRepository interface {
	Create(ctx context.Context, f *Feature) error
	GetByID(ctx context.Context, id uuid.UUID) (*Feature, error)
	List(ctx context.Context, filter ContentFilter) ([]*Feature, error)
	Update(ctx context.Context, f *Feature) error
	Delete(ctx context.Context, id uuid.UUID) error
}
