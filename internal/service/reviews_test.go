package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/avolkov/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewService(t *testing.T) (*Reviews, *store.MemoryStore) {
	t.Helper()
	catalog := store.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewReviewService(catalog, catalog, logger), catalog
}

func Test_ReviewService_FindAll(t *testing.T) {
	// given the seeded review set
	service, _ := newReviewService(t)
	// when
	reviews, err := service.FindAll(context.Background())
	// then
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "2", reviews[0].ProductID)
	assert.Equal(t, "John Smith", reviews[0].Author)
}

func Test_ReviewService_Create_RecomputesRating(t *testing.T) {
	// given product "2" seeded with a single rating-5 review
	service, catalog := newReviewService(t)
	// when a second rating-5 review is added
	created, err := service.Create(context.Background(), ReviewCreateDto{
		ProductID: "2",
		Author:    "A",
		Rating:    5,
		Comment:   "x",
		Date:      "2024-01-01",
	})
	// then
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2024-01-01", created.Date)

	product, err := catalog.FindByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, 5.0, product.Rating)
	assert.Equal(t, 2, product.ReviewCount)
}

func Test_ReviewService_Create_RoundsAverageToOneDecimal(t *testing.T) {
	testCases := []struct {
		name           string
		ratings        []int
		expectedRating float64
	}{
		{name: "exact mean is kept", ratings: []int{4, 5}, expectedRating: 4.5},
		{name: "repeating mean rounds down", ratings: []int{4, 4, 5}, expectedRating: 4.3},
		{name: "repeating mean rounds up", ratings: []int{1, 2, 2}, expectedRating: 1.7},
		{name: "single review", ratings: []int{3}, expectedRating: 3.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given a fresh product with no reviews
			service, catalog := newReviewService(t)
			product, err := catalog.Create(context.Background(), store.NewProduct{
				Name:        "Widget",
				Description: "d",
				Price:       9.99,
				Category:    "Misc",
				Image:       "/w.jpg",
			})
			require.NoError(t, err)
			// when
			for _, rating := range tc.ratings {
				_, err := service.Create(context.Background(), ReviewCreateDto{
					ProductID: product.ID,
					Author:    "A",
					Rating:    rating,
					Comment:   "x",
					Date:      "2024-01-01",
				})
				require.NoError(t, err)
			}
			// then
			updated, err := catalog.FindByID(context.Background(), product.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedRating, updated.Rating)
			assert.Equal(t, len(tc.ratings), updated.ReviewCount)
		})
	}
}

func Test_ReviewService_Create_OrphanedReviewIsKept(t *testing.T) {
	// given a product ID that does not exist
	service, catalog := newReviewService(t)
	// when
	created, err := service.Create(context.Background(), ReviewCreateDto{
		ProductID: "missing",
		Author:    "A",
		Rating:    4,
		Comment:   "x",
		Date:      "2024-01-01",
	})
	// then the review exists and the aggregate write was silently skipped
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	orphans, err := service.FindByProductID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Len(t, orphans, 1)

	products, err := catalog.FindAll(context.Background())
	require.NoError(t, err)
	for _, p := range products {
		assert.Nil(t, p.UpdatedAt)
	}
}

func Test_ReviewService_Create_StampsDateWhenAbsent(t *testing.T) {
	// given
	service, _ := newReviewService(t)
	// when
	created, err := service.Create(context.Background(), ReviewCreateDto{
		ProductID: "3",
		Author:    "A",
		Rating:    4,
		Comment:   "x",
	})
	// then
	require.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), created.Date)
}

func Test_ReviewService_FindByProductID(t *testing.T) {
	// given
	service, _ := newReviewService(t)
	// when
	forSeeded, err := service.FindByProductID(context.Background(), "2")
	forEmpty, errEmpty := service.FindByProductID(context.Background(), "1")
	// then
	require.NoError(t, err)
	require.NoError(t, errEmpty)
	assert.Len(t, forSeeded, 1)
	assert.Empty(t, forEmpty)
}
