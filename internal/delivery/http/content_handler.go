package http

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"dinoverse/internal/delivery/http/dto"
	"dinoverse/internal/domain"
)

// ContentHandler handles the marketing-site collections: blog posts,
// portfolio items, services, products, testimonials, partners, features.
// Public routes serve published records; admin routes see everything.
type ContentHandler struct {
	postRepo        domain.PostRepository
	portfolioRepo   domain.PortfolioRepository
	serviceRepo     domain.ServiceRepository
	productRepo     domain.ProductRepository
	testimonialRepo domain.TestimonialRepository
	partnerRepo     domain.PartnerRepository
	featureRepo     domain.FeatureRepository
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(
	postRepo domain.PostRepository,
	portfolioRepo domain.PortfolioRepository,
	serviceRepo domain.ServiceRepository,
	productRepo domain.ProductRepository,
	testimonialRepo domain.TestimonialRepository,
	partnerRepo domain.PartnerRepository,
	featureRepo domain.FeatureRepository,
) *ContentHandler {
	return &ContentHandler{
		postRepo:        postRepo,
		portfolioRepo:   portfolioRepo,
		serviceRepo:     serviceRepo,
		productRepo:     productRepo,
		testimonialRepo: testimonialRepo,
		partnerRepo:     partnerRepo,
		featureRepo:     featureRepo,
	}
}

func requestContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

func pathID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	return id, err == nil
}

func contentFilter(c echo.Context, publishedOnly bool) domain.ContentFilter {
	return domain.ContentFilter{Q: c.QueryParam("q"), PublishedOnly: publishedOnly}
}

// Posts

// ListPosts returns all posts for the back-office
// GET /api/admin/posts?q=
func (h *ContentHandler) ListPosts(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	posts, err := h.postRepo.List(ctx, contentFilter(c, false))
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to fetch posts", err)
	}
	return SuccessResponse(c, map[string]interface{}{"posts": posts})
}

// ListPublishedPosts returns published posts for the public site
// GET /api/posts?q=
func (h *ContentHandler) ListPublishedPosts(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	posts, err := h.postRepo.List(ctx, contentFilter(c, true))
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to fetch posts", err)
	}
	return SuccessResponse(c, map[string]interface{}{"posts": posts})
}

// GetPostBySlug returns one published post
// GET /api/posts/:slug
func (h *ContentHandler) GetPostBySlug(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	post, err := h.postRepo.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		return RepoErrorResponse(c, "Failed to fetch post", err)
	}
	if !post.Published {
		return NotFoundResponse(c, "Record not found")
	}
	return SuccessResponse(c, post)
}

// CreatePost records a new post
// POST /api/admin/posts
func (h *ContentHandler) CreatePost(c echo.Context) error {
	var req dto.PostRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	now := time.Now()
	post := &domain.Post{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	req.Apply(post)

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.postRepo.Create(ctx, post); err != nil {
		return InternalServerErrorResponse(c, "Failed to create post", err)
	}
	return CreatedResponse(c, post)
}

// UpdatePost rewrites an existing post
// PUT /api/admin/posts/:id
func (h *ContentHandler) UpdatePost(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid post ID")
	}

	var req dto.PostRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	post, err := h.postRepo.GetByID(ctx, id)
	if err != nil {
		return RepoErrorResponse(c, "Failed to fetch post", err)
	}

	req.Apply(post)
	post.UpdatedAt = time.Now()

	if err := h.postRepo.Update(ctx, post); err != nil {
		return RepoErrorResponse(c, "Failed to update post", err)
	}
	return SuccessResponse(c, post)
}

// DeletePost removes a post
// DELETE /api/admin/posts/:id
func (h *ContentHandler) DeletePost(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid post ID")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.postRepo.Delete(ctx, id); err != nil {
		return RepoErrorResponse(c, "Failed to delete post", err)
	}
	return SuccessResponse(c, map[string]bool{"deleted": true})
}

// Portfolio

// ListPortfolio returns portfolio items
// GET /api/portfolio and GET /api/admin/portfolio
func (h *ContentHandler) ListPortfolio(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	items, err := h.portfolioRepo.List(ctx, contentFilter(c, false))
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to fetch portfolio items", err)
	}
	return SuccessResponse(c, map[string]interface{}{"items": items})
}

// CreatePortfolioItem records a new portfolio item
// POST /api/admin/portfolio
func (h *ContentHandler) CreatePortfolioItem(c echo.Context) error {
	var req dto.PortfolioItemRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	now := time.Now()
	item := &domain.PortfolioItem{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	req.Apply(item)

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.portfolioRepo.Create(ctx, item); err != nil {
		return InternalServerErrorResponse(c, "Failed to create portfolio item", err)
	}
	return CreatedResponse(c, item)
}

// UpdatePortfolioItem rewrites an existing portfolio item
// PUT /api/admin/portfolio/:id
func (h *ContentHandler) UpdatePortfolioItem(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid portfolio item ID")
	}

	var req dto.PortfolioItemRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	item, err := h.portfolioRepo.GetByID(ctx, id)
	if err != nil {
		return RepoErrorResponse(c, "Failed to fetch portfolio item", err)
	}

	req.Apply(item)
	item.UpdatedAt = time.Now()

	if err := h.portfolioRepo.Update(ctx, item); err != nil {
		return RepoErrorResponse(c, "Failed to update portfolio item", err)
	}
	return SuccessResponse(c, item)
}

// DeletePortfolioItem removes a portfolio item
// DELETE /api/admin/portfolio/:id
func (h *ContentHandler) DeletePortfolioItem(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid portfolio item ID")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.portfolioRepo.Delete(ctx, id); err != nil {
		return RepoErrorResponse(c, "Failed to delete portfolio item", err)
	}
	return SuccessResponse(c, map[string]bool{"deleted": true})
}

// Services

// ListServices returns services; public callers see active ones only
// GET /api/services and GET /api/admin/services
func (h *ContentHandler) ListServices(publicOnly bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := requestContext(c)
		defer cancel()

		services, err := h.serviceRepo.List(ctx, contentFilter(c, publicOnly))
		if err != nil {
			return InternalServerErrorResponse(c, "Failed to fetch services", err)
		}
		return SuccessResponse(c, map[string]interface{}{"services": services})
	}
}

// CreateService records a new service
// POST /api/admin/services
func (h *ContentHandler) CreateService(c echo.Context) error {
	var req dto.ServiceRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	now := time.Now()
	svc := &domain.Service{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	req.Apply(svc)

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.serviceRepo.Create(ctx, svc); err != nil {
		return InternalServerErrorResponse(c, "Failed to create service", err)
	}
	return CreatedResponse(c, svc)
}

// UpdateService rewrites an existing service
// PUT /api/admin/services/:id
func (h *ContentHandler) UpdateService(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid service ID")
	}

	var req dto.ServiceRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	svc, err := h.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return RepoErrorResponse(c, "Failed to fetch service", err)
	}

	req.Apply(svc)
	svc.UpdatedAt = time.Now()

	if err := h.serviceRepo.Update(ctx, svc); err != nil {
		return RepoErrorResponse(c, "Failed to update service", err)
	}
	return SuccessResponse(c, svc)
}

// DeleteService removes a service
// DELETE /api/admin/services/:id
func (h *ContentHandler) DeleteService(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid service ID")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.serviceRepo.Delete(ctx, id); err != nil {
		return RepoErrorResponse(c, "Failed to delete service", err)
	}
	return SuccessResponse(c, map[string]bool{"deleted": true})
}

// Products

// ListProducts returns products; public callers see in-stock ones only
// GET /api/products and GET /api/admin/products
func (h *ContentHandler) ListProducts(publicOnly bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := requestContext(c)
		defer cancel()

		products, err := h.productRepo.List(ctx, contentFilter(c, publicOnly))
		if err != nil {
			return InternalServerErrorResponse(c, "Failed to fetch products", err)
		}
		return SuccessResponse(c, map[string]interface{}{"products": products})
	}
}

// CreateProduct records a new product
// POST /api/admin/products
func (h *ContentHandler) CreateProduct(c echo.Context) error {
	var req dto.ProductRequest
	if !BindAndValidate(c, &req) {
		return nil
	}
	if req.Price.IsNegative() {
		return ValidationErrorResponse(c, []FieldError{{Field: "price", Message: "must not be negative"}})
	}

	now := time.Now()
	product := &domain.Product{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	req.Apply(product)

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.productRepo.Create(ctx, product); err != nil {
		return InternalServerErrorResponse(c, "Failed to create product", err)
	}
	return CreatedResponse(c, product)
}

// UpdateProduct rewrites an existing product
// PUT /api/admin/products/:id
func (h *ContentHandler) UpdateProduct(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid product ID")
	}

	var req dto.ProductRequest
	if !BindAndValidate(c, &req) {
		return nil
	}
	if req.Price.IsNegative() {
		return ValidationErrorResponse(c, []FieldError{{Field: "price", Message: "must not be negative"}})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	product, err := h.productRepo.GetByID(ctx, id)
	if err != nil {
		return RepoErrorResponse(c, "Failed to fetch product", err)
	}

	req.Apply(product)
	product.UpdatedAt = time.Now()

	if err := h.productRepo.Update(ctx, product); err != nil {
		return RepoErrorResponse(c, "Failed to update product", err)
	}
	return SuccessResponse(c, product)
}

// DeleteProduct removes a product
// DELETE /api/admin/products/:id
func (h *ContentHandler) DeleteProduct(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid product ID")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.productRepo.Delete(ctx, id); err != nil {
		return RepoErrorResponse(c, "Failed to delete product", err)
	}
	return SuccessResponse(c, map[string]bool{"deleted": true})
}

// Testimonials

// ListTestimonials returns testimonials; public callers see published only
// GET /api/testimonials and GET /api/admin/testimonials
func (h *ContentHandler) ListTestimonials(publicOnly bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := requestContext(c)
		defer cancel()

		testimonials, err := h.testimonialRepo.List(ctx, contentFilter(c, publicOnly))
		if err != nil {
			return InternalServerErrorResponse(c, "Failed to fetch testimonials", err)
		}
		return SuccessResponse(c, map[string]interface{}{"testimonials": testimonials})
	}
}

// CreateTestimonial records a new testimonial
// POST /api/admin/testimonials
func (h *ContentHandler) CreateTestimonial(c echo.Context) error {
	var req dto.TestimonialRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	now := time.Now()
	t := &domain.Testimonial{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	req.Apply(t)

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.testimonialRepo.Create(ctx, t); err != nil {
		return InternalServerErrorResponse(c, "Failed to create testimonial", err)
	}
	return CreatedResponse(c, t)
}

// UpdateTestimonial rewrites an existing testimonial
// PUT /api/admin/testimonials/:id
func (h *ContentHandler) UpdateTestimonial(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid testimonial ID")
	}

	var req dto.TestimonialRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	t, err := h.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		return RepoErrorResponse(c, "Failed to fetch testimonial", err)
	}

	req.Apply(t)
	t.UpdatedAt = time.Now()

	if err := h.testimonialRepo.Update(ctx, t); err != nil {
		return RepoErrorResponse(c, "Failed to update testimonial", err)
	}
	return SuccessResponse(c, t)
}

// DeleteTestimonial removes a testimonial
// DELETE /api/admin/testimonials/:id
func (h *ContentHandler) DeleteTestimonial(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid testimonial ID")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.testimonialRepo.Delete(ctx, id); err != nil {
		return RepoErrorResponse(c, "Failed to delete testimonial", err)
	}
	return SuccessResponse(c, map[string]bool{"deleted": true})
}

// Partners

// ListPartners returns partners in display order
// GET /api/partners and GET /api/admin/partners
func (h *ContentHandler) ListPartners(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	partners, err := h.partnerRepo.List(ctx, contentFilter(c, false))
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to fetch partners", err)
	}
	return SuccessResponse(c, map[string]interface{}{"partners": partners})
}

// CreatePartner records a new partner
// POST /api/admin/partners
func (h *ContentHandler) CreatePartner(c echo.Context) error {
	var req dto.PartnerRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	now := time.Now()
	p := &domain.Partner{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	req.Apply(p)

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.partnerRepo.Create(ctx, p); err != nil {
		return InternalServerErrorResponse(c, "Failed to create partner", err)
	}
	return CreatedResponse(c, p)
}

// UpdatePartner rewrites an existing partner
// PUT /api/admin/partners/:id
func (h *ContentHandler) UpdatePartner(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid partner ID")
	}

	var req dto.PartnerRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	p, err := h.partnerRepo.GetByID(ctx, id)
	if err != nil {
		return RepoErrorResponse(c, "Failed to fetch partner", err)
	}

	req.Apply(p)
	p.UpdatedAt = time.Now()

	if err := h.partnerRepo.Update(ctx, p); err != nil {
		return RepoErrorResponse(c, "Failed to update partner", err)
	}
	return SuccessResponse(c, p)
}

// DeletePartner removes a partner
// DELETE /api/admin/partners/:id
func (h *ContentHandler) DeletePartner(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid partner ID")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.partnerRepo.Delete(ctx, id); err != nil {
		return RepoErrorResponse(c, "Failed to delete partner", err)
	}
	return SuccessResponse(c, map[string]bool{"deleted": true})
}

// Features

// ListFeatures returns home-page features in display order
// GET /api/features and GET /api/admin/features
func (h *ContentHandler) ListFeatures(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	features, err := h.featureRepo.List(ctx, contentFilter(c, false))
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to fetch features", err)
	}
	return SuccessResponse(c, map[string]interface{}{"features": features})
}

// CreateFeature records a new feature
// POST /api/admin/features
func (h *ContentHandler) CreateFeature(c echo.Context) error {
	var req dto.FeatureRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	now := time.Now()
	f := &domain.Feature{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	req.Apply(f)

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.featureRepo.Create(ctx, f); err != nil {
		return InternalServerErrorResponse(c, "Failed to create feature", err)
	}
	return CreatedResponse(c, f)
}

// UpdateFeature rewrites an existing feature
// PUT /api/admin/features/:id
func (h *ContentHandler) UpdateFeature(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid feature ID")
	}

	var req dto.FeatureRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	f, err := h.featureRepo.GetByID(ctx, id)
	if err != nil {
		return RepoErrorResponse(c, "Failed to fetch feature", err)
	}

	req.Apply(f)
	f.UpdatedAt = time.Now()

	if err := h.featureRepo.Update(ctx, f); err != nil {
		return RepoErrorResponse(c, "Failed to update feature", err)
	}
	return SuccessResponse(c, f)
}

// DeleteFeature removes a feature
// DELETE /api/admin/features/:id
func (h *ContentHandler) DeleteFeature(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid feature ID")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.featureRepo.Delete(ctx, id); err != nil {
		return RepoErrorResponse(c, "Failed to delete feature", err)
	}
	return SuccessResponse(c, map[string]bool{"deleted": true})
}
