// Package service provides the implementation of catalog business logic.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avolkov/storefront/internal/filter"
	"github.com/avolkov/storefront/internal/store"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// FindAll returns the products narrowed and ordered by the given filters.
	// Returns an empty slice if nothing matches.
	FindAll(ctx context.Context, filters filter.Params) ([]ProductDto, error)

	// FindByID retrieves a single product by its identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*ProductDto, error)

	// Create adds a new product. The derived rating fields always start at zero.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update merges the provided fields over an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id string, product ProductUpdateDto) (*ProductDto, error)

	// DeleteByID removes a product and reports whether a record was removed.
	DeleteByID(ctx context.Context, id string) (bool, error)

	// Reset replaces the catalog with the seed dataset. Destructive.
	Reset(ctx context.Context) ([]ProductDto, error)

	// Categories returns the distinct category labels, sorted.
	Categories(ctx context.Context) ([]string, error)
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

// ProductCreateDto represents the data transfer object for creating a new product.
// Rating and review count are derived from reviews and are deliberately absent.
type ProductCreateDto struct {
	Name        string  `json:"name"        validate:"required,max=200"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Category    string  `json:"category"    validate:"required"`
	Image       string  `json:"image"       validate:"required"`
	InStock     bool    `json:"inStock"`
}

// ProductUpdateDto represents a partial update: absent fields are left untouched.
type ProductUpdateDto struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Price       *float64 `json:"price"       validate:"omitempty,gt=0"`
	Category    *string  `json:"category"    validate:"omitempty,min=1"`
	Image       *string  `json:"image"       validate:"omitempty,min=1"`
	InStock     *bool    `json:"inStock"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	InStock     bool    `json:"inStock"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// FindAll retrieves all products and applies the filter pipeline.
func (s *Service) FindAll(ctx context.Context, filters filter.Params) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	filtered := filter.Apply(products, filters)

	productDTOs := make([]ProductDto, len(filtered))
	for i, item := range filtered {
		productDTOs[i] = *toDto(&item)
	}
	return productDTOs, nil
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) FindByID(ctx context.Context, id string) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}
	return toDto(product), nil
}

// Create creates a new product and returns it as a ProductDto.
func (s *Service) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	created, err := s.repository.Create(ctx, store.NewProduct{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		Image:       product.Image,
		InStock:     product.InStock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return toDto(created), nil
}

// Update merges the provided fields over an existing product.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) Update(ctx context.Context, id string, product ProductUpdateDto) (*ProductDto, error) {
	updated, err := s.repository.Update(ctx, id, store.ProductUpdate{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		Image:       product.Image,
		InStock:     product.InStock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %s: %w", id, err)
	}
	return toDto(updated), nil
}

// DeleteByID deletes a product by its ID and reports whether a record was removed.
func (s *Service) DeleteByID(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repository.DeleteByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete product with ID %s: %w", id, err)
	}
	return deleted, nil
}

// Reset replaces the catalog with the seed dataset and returns it.
func (s *Service) Reset(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.Reset(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reset catalog: %w", err)
	}
	productDTOs := make([]ProductDto, len(products))
	for i, item := range products {
		productDTOs[i] = *toDto(&item)
	}
	return productDTOs, nil
}

// Categories returns the distinct category labels present in the catalog.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repository.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	dto := &ProductDto{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		Image:       product.Image,
		InStock:     product.InStock,
		Rating:      product.Rating,
		ReviewCount: product.ReviewCount,
		CreatedAt:   product.CreatedAt.Format(time.RFC3339),
	}
	if product.UpdatedAt != nil {
		dto.UpdatedAt = product.UpdatedAt.Format(time.RFC3339)
	}
	return dto
}
