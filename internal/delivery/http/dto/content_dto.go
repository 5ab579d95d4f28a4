package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"dinoverse/internal/domain"
)

// PostRequest is the create/update payload for a blog post
type PostRequest struct {
	Title      string   `json:"title" validate:"required"`
	Slug       string   `json:"slug" validate:"required"`
	Excerpt    string   `json:"excerpt"`
	Body       string   `json:"body" validate:"required"`
	CoverImage string   `json:"cover_image"`
	Tags       []string `json:"tags"`
	Published  bool     `json:"published"`
}

// Apply copies the payload onto a post, stamping published_at on the
// transition into the published state.
func (r *PostRequest) Apply(post *domain.Post) {
	post.Title = r.Title
	post.Slug = r.Slug
	post.Excerpt = r.Excerpt
	post.Body = r.Body
	post.CoverImage = r.CoverImage
	post.Tags = r.Tags

	if r.Published && !post.Published {
		now := time.Now()
		post.PublishedAt = &now
	}
	if !r.Published {
		post.PublishedAt = nil
	}
	post.Published = r.Published
}

// PortfolioItemRequest is the create/update payload for a portfolio item
type PortfolioItemRequest struct {
	Title       string   `json:"title" validate:"required"`
	Slug        string   `json:"slug" validate:"required"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	ProjectURL  *string  `json:"project_url"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	Order       int      `json:"order"`
}

// Apply copies the payload onto a portfolio item
func (r *PortfolioItemRequest) Apply(item *domain.PortfolioItem) {
	item.Title = r.Title
	item.Slug = r.Slug
	item.Description = r.Description
	item.Image = r.Image
	item.ProjectURL = r.ProjectURL
	item.Tags = r.Tags
	item.Featured = r.Featured
	item.Order = r.Order
}

// ServiceRequest is the create/update payload for a service
type ServiceRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	PriceNote   string `json:"price_note"`
	Order       int    `json:"order"`
	Active      *bool  `json:"active"`
}

// Apply copies the payload onto a service. Active defaults to true.
func (r *ServiceRequest) Apply(svc *domain.Service) {
	svc.Title = r.Title
	svc.Description = r.Description
	svc.Icon = r.Icon
	svc.PriceNote = r.PriceNote
	svc.Order = r.Order
	svc.Active = true
	if r.Active != nil {
		svc.Active = *r.Active
	}
}

// ProductRequest is the create/update payload for a store product
type ProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Slug        string          `json:"slug" validate:"required"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	InStock     *bool           `json:"in_stock"`
	Order       int             `json:"order"`
}

// Apply copies the payload onto a product
func (r *ProductRequest) Apply(product *domain.Product) {
	product.Name = r.Name
	product.Slug = r.Slug
	product.Description = r.Description
	product.Image = r.Image
	product.Price = r.Price
	product.Order = r.Order
	product.InStock = true
	if r.InStock != nil {
		product.InStock = *r.InStock
	}
}

// TestimonialRequest is the create/update payload for a testimonial
type TestimonialRequest struct {
	Author    string `json:"author" validate:"required"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar"`
	Quote     string `json:"quote" validate:"required"`
	Order     int    `json:"order"`
	Published *bool  `json:"published"`
}

// Apply copies the payload onto a testimonial
func (r *TestimonialRequest) Apply(t *domain.Testimonial) {
	t.Author = r.Author
	t.Role = r.Role
	t.Avatar = r.Avatar
	t.Quote = r.Quote
	t.Order = r.Order
	t.Published = true
	if r.Published != nil {
		t.Published = *r.Published
	}
}

// PartnerRequest is the create/update payload for a partner
type PartnerRequest struct {
	Name       string `json:"name" validate:"required"`
	Logo       string `json:"logo"`
	WebsiteURL string `json:"website_url"`
	Order      int    `json:"order"`
}

// Apply copies the payload onto a partner
func (r *PartnerRequest) Apply(p *domain.Partner) {
	p.Name = r.Name
	p.Logo = r.Logo
	p.WebsiteURL = r.WebsiteURL
	p.Order = r.Order
}

// FeatureRequest is the create/update payload for a feature
type FeatureRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
}

// Apply copies the payload onto a feature
func (r *FeatureRequest) Apply(f *domain.Feature) {
	f.Title = r.Title
	f.Description = r.Description
	f.Icon = r.Icon
	f.Order = r.Order
}
