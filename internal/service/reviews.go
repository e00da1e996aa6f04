package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	serrors "github.com/avolkov/storefront/internal/errors"
	"github.com/avolkov/storefront/internal/store"
)

// ReviewService defines the methods for managing reviews and the rating
// aggregates they drive.
type ReviewService interface {
	// FindAll returns all reviews.
	FindAll(ctx context.Context) ([]ReviewDto, error)

	// FindByProductID returns the reviews for one product.
	// Returns an empty slice if the product has no reviews.
	FindByProductID(ctx context.Context, productID string) ([]ReviewDto, error)

	// Create appends a new review and recomputes the rating aggregate of
	// the referenced product.
	Create(ctx context.Context, review ReviewCreateDto) (*ReviewDto, error)
}

// Reviews implements ReviewService. It needs the product store to write
// recomputed rating aggregates back onto products.
type Reviews struct {
	reviews  store.ReviewStore
	products store.ProductStore
	logger   *slog.Logger
}

// NewReviewService creates a new instance of ReviewService.
func NewReviewService(reviews store.ReviewStore, products store.ProductStore, logger *slog.Logger) *Reviews {
	return &Reviews{
		reviews:  reviews,
		products: products,
		logger:   logger.With("component", "reviews"),
	}
}

// ReviewCreateDto represents the data transfer object for creating a review.
// Date is optional; the current calendar date is stamped when absent.
type ReviewCreateDto struct {
	ProductID string `json:"productId" validate:"required"`
	Author    string `json:"author"    validate:"required"`
	Rating    int    `json:"rating"    validate:"required,min=1,max=5"`
	Comment   string `json:"comment"   validate:"required"`
	Date      string `json:"date"      validate:"omitempty,datetime=2006-01-02"`
}

// ReviewDto represents the data transfer object for a review.
type ReviewDto struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Date      string `json:"date"`
}

// FindAll retrieves all reviews as ReviewDTOs.
func (s *Reviews) FindAll(ctx context.Context) ([]ReviewDto, error) {
	reviews, err := s.reviews.FindAllReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return toReviewDtos(reviews), nil
}

// FindByProductID retrieves the reviews for one product as ReviewDTOs.
func (s *Reviews) FindByProductID(ctx context.Context, productID string) ([]ReviewDto, error) {
	reviews, err := s.reviews.FindByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews for product %s: %w", productID, err)
	}
	return toReviewDtos(reviews), nil
}

// Create appends a new review, then recomputes the referenced product's
// rating aggregate. A review may reference a missing product; the aggregate
// write is then skipped.
func (s *Reviews) Create(ctx context.Context, review ReviewCreateDto) (*ReviewDto, error) {
	date := review.Date
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	created, err := s.reviews.CreateReview(ctx, store.NewReview{
		ProductID: review.ProductID,
		Author:    review.Author,
		Rating:    review.Rating,
		Comment:   review.Comment,
		Date:      date,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := s.recomputeRating(ctx, review.ProductID); err != nil {
		return nil, err
	}

	return toReviewDto(created), nil
}

// recomputeRating averages the ratings of all reviews for the product,
// rounds to one decimal place and writes the aggregate back. A missing
// product is logged and skipped; orphaned reviews are allowed to exist.
func (s *Reviews) recomputeRating(ctx context.Context, productID string) error {
	reviews, err := s.reviews.FindByProductID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to fetch reviews for product %s: %w", productID, err)
	}
	if len(reviews) == 0 {
		return nil
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	// Round half-up at one decimal place; review ratings are positive, so
	// math.Round's half-away-from-zero matches.
	rating := math.Round(float64(sum)/float64(len(reviews))*10) / 10
	count := len(reviews)

	_, err = s.products.Update(ctx, productID, store.ProductUpdate{
		Rating:      &rating,
		ReviewCount: &count,
	})
	if err != nil {
		if errors.Is(err, serrors.ErrProductNotFound) {
			s.logger.WarnContext(ctx, "Skipping rating aggregate for missing product", "product_id", productID)
			return nil
		}
		return fmt.Errorf("failed to update rating for product %s: %w", productID, err)
	}
	return nil
}

func toReviewDto(review *store.Review) *ReviewDto {
	return &ReviewDto{
		ID:        review.ID,
		ProductID: review.ProductID,
		Author:    review.Author,
		Rating:    review.Rating,
		Comment:   review.Comment,
		Date:      review.Date,
	}
}

func toReviewDtos(reviews []store.Review) []ReviewDto {
	dtos := make([]ReviewDto, len(reviews))
	for i, r := range reviews {
		dtos[i] = *toReviewDto(&r)
	}
	return dtos
}
