// Package store provides the catalog data model and storage operations.
package store

import "context"

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// FindByID retrieves a single product by its identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindAll returns all products in insertion order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// Create adds a new product with derived fields zeroed.
	Create(ctx context.Context, product NewProduct) (*Product, error)

	// Update merges the non-nil fields over an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id string, update ProductUpdate) (*Product, error)

	// DeleteByID removes a product by its ID and reports whether a record was removed.
	DeleteByID(ctx context.Context, id string) (bool, error)

	// Reset replaces the product and review sets with the seed catalog.
	Reset(ctx context.Context) ([]Product, error)

	// Categories returns the distinct category labels, lexicographically sorted.
	Categories(ctx context.Context) ([]string, error)
}

// ReviewStore is an interface for review storage operations.
type ReviewStore interface {
	// FindAllReviews returns all reviews.
	FindAllReviews(ctx context.Context) ([]Review, error)

	// FindByProductID returns the reviews referencing the given product ID.
	FindByProductID(ctx context.Context, productID string) ([]Review, error)

	// CreateReview appends a new review. The referenced product is not
	// required to exist.
	CreateReview(ctx context.Context, review NewReview) (*Review, error)
}
