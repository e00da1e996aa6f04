package service

import (
	"context"
	"errors"
	"testing"
	"time"

	serrors "github.com/avolkov/storefront/internal/errors"
	"github.com/avolkov/storefront/internal/filter"
	"github.com/avolkov/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProductStore is a mock implementation of the ProductStore interface
type mockProductStore struct {
	products   []store.Product
	product    store.Product
	categories []string
	deleted    bool
	error      error
}

// Simulate finding a product by ID
func (m *mockProductStore) FindByID(_ context.Context, _ string) (*store.Product, error) {
	return &m.product, m.error
}

// Simulate finding all products
func (m *mockProductStore) FindAll(_ context.Context) ([]store.Product, error) {
	return m.products, m.error
}

// Simulate creating a product
func (m *mockProductStore) Create(_ context.Context, _ store.NewProduct) (*store.Product, error) {
	return &m.product, m.error
}

// Simulate updating a product
func (m *mockProductStore) Update(_ context.Context, _ string, _ store.ProductUpdate) (*store.Product, error) {
	return &m.product, m.error
}

// Simulate deleting a product by ID
func (m *mockProductStore) DeleteByID(_ context.Context, _ string) (bool, error) {
	return m.deleted, m.error
}

// Simulate resetting the catalog
func (m *mockProductStore) Reset(_ context.Context) ([]store.Product, error) {
	return m.products, m.error
}

// Simulate listing categories
func (m *mockProductStore) Categories(_ context.Context) ([]string, error) {
	return m.categories, m.error
}

func strPtr(s string) *string { return &s }

func Test_ProductService_FindAll(t *testing.T) {
	ErrStoreError := errors.New("store error")
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	catalog := []store.Product{
		{ID: "1", Name: "Console", Category: "Gaming", Price: 399.99, CreatedAt: createdAt},
		{ID: "2", Name: "Earbuds", Category: "Audio", Price: 89.99, CreatedAt: createdAt},
	}
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		filters     filter.Params
		expectedIDs []string
		expectError error
	}{
		{
			name:        "Success - no filters returns everything",
			mockStore:   &mockProductStore{products: catalog},
			filters:     filter.Params{},
			expectedIDs: []string{"1", "2"},
		},
		{
			name:        "Success - category filter narrows the list",
			mockStore:   &mockProductStore{products: catalog},
			filters:     filter.Params{Category: strPtr("Audio")},
			expectedIDs: []string{"2"},
		},
		{
			name:        "Success - no products",
			mockStore:   &mockProductStore{products: []store.Product{}},
			filters:     filter.Params{},
			expectedIDs: []string{},
		},
		{
			name:        "Error - store failure",
			mockStore:   &mockProductStore{error: ErrStoreError},
			filters:     filter.Params{},
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			list, err := service.FindAll(context.Background(), tc.filters)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, list)
				return
			}
			require.NoError(t, err)
			gotIDs := make([]string, len(list))
			for i, dto := range list {
				gotIDs[i] = dto.ID
			}
			assert.Equal(t, tc.expectedIDs, gotIDs)
		})
	}
}

func Test_ProductService_FindByID(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		productID   string
		expected    *ProductDto
		expectError error
	}{
		{
			name: "Success - product found",
			mockStore: &mockProductStore{
				product: store.Product{ID: "1", Name: "Console", CreatedAt: createdAt},
			},
			productID: "1",
			expected: &ProductDto{
				ID:        "1",
				Name:      "Console",
				CreatedAt: createdAt.Format(time.RFC3339),
			},
		},
		{
			name:        "Error - product not found",
			mockStore:   &mockProductStore{error: serrors.ErrProductNotFound},
			productID:   "missing",
			expected:    nil,
			expectError: serrors.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			found, err := service.FindByID(context.Background(), tc.productID)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_ProductService_Create(t *testing.T) {
	ErrStoreError := errors.New("store error")
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		input       ProductCreateDto
		expected    *ProductDto
		expectError error
	}{
		{
			name: "Success - product created with derived fields zeroed",
			mockStore: &mockProductStore{
				product: store.Product{
					ID:        "abc",
					Name:      "Console",
					Price:     399.99,
					CreatedAt: createdAt,
				},
			},
			input: ProductCreateDto{Name: "Console", Description: "d", Price: 399.99, Category: "Gaming", Image: "/c.jpg"},
			expected: &ProductDto{
				ID:        "abc",
				Name:      "Console",
				Price:     399.99,
				CreatedAt: createdAt.Format(time.RFC3339),
			},
		},
		{
			name:        "Error - store failure",
			mockStore:   &mockProductStore{error: ErrStoreError},
			input:       ProductCreateDto{Name: "Console"},
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			created, err := service.Create(context.Background(), tc.input)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, created)
		})
	}
}

func Test_ProductService_Update(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	updatedAt := createdAt.Add(time.Hour)
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		expected    *ProductDto
		expectError error
	}{
		{
			name: "Success - product updated",
			mockStore: &mockProductStore{
				product: store.Product{ID: "1", Name: "Renamed", CreatedAt: createdAt, UpdatedAt: &updatedAt},
			},
			expected: &ProductDto{
				ID:        "1",
				Name:      "Renamed",
				CreatedAt: createdAt.Format(time.RFC3339),
				UpdatedAt: updatedAt.Format(time.RFC3339),
			},
		},
		{
			name:        "Error - product not found",
			mockStore:   &mockProductStore{error: serrors.ErrProductNotFound},
			expectError: serrors.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			name := "Renamed"
			// when
			updated, err := service.Update(context.Background(), "1", ProductUpdateDto{Name: &name})
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, updated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, updated)
		})
	}
}

func Test_ProductService_DeleteByID(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		expected    bool
		expectError error
	}{
		{
			name:      "Success - record removed",
			mockStore: &mockProductStore{deleted: true},
			expected:  true,
		},
		{
			name:      "Success - nothing to remove",
			mockStore: &mockProductStore{deleted: false},
			expected:  false,
		},
		{
			name:        "Error - store failure",
			mockStore:   &mockProductStore{error: ErrStoreError},
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			deleted, err := service.DeleteByID(context.Background(), "1")
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, deleted)
		})
	}
}

func Test_ProductService_Categories(t *testing.T) {
	// given
	service := NewService(&mockProductStore{categories: []string{"Audio", "Gaming"}})
	// when
	categories, err := service.Categories(context.Background())
	// then
	require.NoError(t, err)
	assert.Equal(t, []string{"Audio", "Gaming"}, categories)
}
