package store

import (
	"context"
	"sort"
	"sync"
	"time"

	serrors "github.com/avolkov/storefront/internal/errors"
	"github.com/google/uuid"
)

// MemoryStore implements ProductStore and ReviewStore using in-memory slices.
// Slices keep insertion order, which listings observe.
type MemoryStore struct {
	mu       sync.RWMutex
	products []Product
	reviews  []Review
}

// NewMemoryStore creates a store pre-populated with the seed catalog.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: seedProducts(),
		reviews:  seedReviews(),
	}
}

// FindByID retrieves a product by its ID.
func (s *MemoryStore) FindByID(_ context.Context, id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, serrors.ErrProductNotFound
}

// FindAll returns a copy of all products in insertion order.
func (s *MemoryStore) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, len(s.products))
	copy(list, s.products)
	return list, nil
}

// Create appends a new product. Derived fields start at zero regardless of input.
func (s *MemoryStore) Create(_ context.Context, product NewProduct) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := Product{
		ID:          uuid.NewString(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		Image:       product.Image,
		InStock:     product.InStock,
		Rating:      0,
		ReviewCount: 0,
		CreatedAt:   time.Now().UTC(),
	}
	s.products = append(s.products, created)

	return &created, nil
}

// Update merges the non-nil fields over the existing record and stamps UpdatedAt.
func (s *MemoryStore) Update(_ context.Context, id string, update ProductUpdate) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if update.Name != nil {
			p.Name = *update.Name
		}
		if update.Description != nil {
			p.Description = *update.Description
		}
		if update.Price != nil {
			p.Price = *update.Price
		}
		if update.Category != nil {
			p.Category = *update.Category
		}
		if update.Image != nil {
			p.Image = *update.Image
		}
		if update.InStock != nil {
			p.InStock = *update.InStock
		}
		if update.Rating != nil {
			p.Rating = *update.Rating
		}
		if update.ReviewCount != nil {
			p.ReviewCount = *update.ReviewCount
		}
		now := time.Now().UTC()
		p.UpdatedAt = &now

		updated := *p
		return &updated, nil
	}
	return nil, serrors.ErrProductNotFound
}

// DeleteByID removes a product and reports whether a record was removed.
func (s *MemoryStore) DeleteByID(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Reset replaces the product and review sets with the seed catalog.
func (s *MemoryStore) Reset(_ context.Context) ([]Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = seedProducts()
	s.reviews = seedReviews()

	list := make([]Product, len(s.products))
	copy(list, s.products)
	return list, nil
}

// Categories returns the distinct category labels, lexicographically sorted.
func (s *MemoryStore) Categories(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.products))
	categories := make([]string, 0, len(s.products))
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

// FindAllReviews returns a copy of all reviews.
func (s *MemoryStore) FindAllReviews(_ context.Context) ([]Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Review, len(s.reviews))
	copy(list, s.reviews)
	return list, nil
}

// FindByProductID returns the reviews referencing the given product ID.
func (s *MemoryStore) FindByProductID(_ context.Context, productID string) ([]Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Review, 0)
	for _, r := range s.reviews {
		if r.ProductID == productID {
			list = append(list, r)
		}
	}
	return list, nil
}

// CreateReview appends a new review without checking the referenced product.
func (s *MemoryStore) CreateReview(_ context.Context, review NewReview) (*Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := Review{
		ID:        uuid.NewString(),
		ProductID: review.ProductID,
		Author:    review.Author,
		Rating:    review.Rating,
		Comment:   review.Comment,
		Date:      review.Date,
	}
	s.reviews = append(s.reviews, created)

	return &created, nil
}
