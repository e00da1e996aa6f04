// Package rest provides HTTP handlers for the storefront catalog.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	serrors "github.com/avolkov/storefront/internal/errors"
	"github.com/avolkov/storefront/internal/filter"
	"github.com/avolkov/storefront/internal/service"
	"github.com/avolkov/storefront/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	products service.ProductService
	reviews  service.ReviewService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new instance of the catalog API with the provided services.
func NewHandler(products service.ProductService, reviews service.ReviewService, logger *slog.Logger) *Handler {
	return &Handler{
		products: products,
		reviews:  reviews,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the catalog service.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.FindAll)
		r.Post("/", h.Create)
		r.Post("/reset", h.Reset)
		r.Get("/categories", h.Categories)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Put("/", h.Update)
			r.Delete("/", h.DeleteByID)
		})
	})

	r.Route("/api/v1/reviews", func(r chi.Router) {
		r.Get("/", h.FindAllReviews)
		r.Post("/", h.CreateReview)
		r.Get("/{productId}", h.FindReviewsByProduct)
	})

	r.Get("/healthz", h.HealthCheck)
}

// FindAll retrieves the product list narrowed and ordered by query parameters.
func (h *Handler) FindAll(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	filters, ok := parseFilters(w, r, mLogger)
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to find products")
	list, err := h.products.FindAll(r.Context(), filters)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving product list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(list))
	web.RespondData(w, mLogger, http.StatusOK, list)
}

// FindByID retrieves a product by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id := chi.URLParam(r, "id")

	mLogger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)
	found, err := h.products.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, serrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve product with ID %s", id))
		return
	}
	web.RespondData(w, mLogger, http.StatusOK, found)
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var productCreateDto service.ProductCreateDto
	if err := json.NewDecoder(r.Body).Decode(&productCreateDto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to create product", "product", productCreateDto)
	if !h.validateStruct(w, r, mLogger, productCreateDto) {
		return
	}

	newProduct, err := h.products.Create(r.Context(), productCreateDto)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error creating product", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to create product")
		return
	}
	mLogger.InfoContext(r.Context(), "Product created successfully", "ID", newProduct.ID, "Name", newProduct.Name)
	web.RespondData(w, mLogger, http.StatusCreated, newProduct)
}

// Update merges the provided fields over an existing product.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id := chi.URLParam(r, "id")

	mLogger.DebugContext(r.Context(), "Received request to update product", "ID", id)
	var productUpdateDto service.ProductUpdateDto
	if err := json.NewDecoder(r.Body).Decode(&productUpdateDto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !h.validateStruct(w, r, mLogger, productUpdateDto) {
		return
	}

	updated, err := h.products.Update(r.Context(), id, productUpdateDto)
	if err != nil {
		if errors.Is(err, serrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for update", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error updating product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to update product with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Product updated successfully", "ID", updated.ID, "Name", updated.Name)
	web.RespondData(w, mLogger, http.StatusOK, updated)
}

// DeleteByID deletes a product by its ID.
func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id := chi.URLParam(r, "id")

	mLogger.DebugContext(r.Context(), "Received request to delete product", "ID", id)
	deleted, err := h.products.DeleteByID(r.Context(), id)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error deleting product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to delete product with ID %s", id))
		return
	}
	if !deleted {
		mLogger.WarnContext(r.Context(), "Product not found for deletion", "ID", id)
		web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	web.RespondData(w, mLogger, http.StatusOK, true)
}

// Reset replaces the catalog with the seed dataset. Destructive.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	list, err := h.products.Reset(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error resetting catalog", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to reset catalog")
		return
	}
	mLogger.InfoContext(r.Context(), "Catalog reset to seed data", "count", len(list))
	web.RespondData(w, mLogger, http.StatusOK, list)
}

// Categories retrieves the distinct category labels.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	categories, err := h.products.Categories(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving categories", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	web.RespondData(w, mLogger, http.StatusOK, categories)
}

// FindAllReviews retrieves all reviews.
func (h *Handler) FindAllReviews(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	list, err := h.reviews.FindAll(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving reviews", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}
	web.RespondData(w, mLogger, http.StatusOK, list)
}

// FindReviewsByProduct retrieves the reviews for one product.
func (h *Handler) FindReviewsByProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	productID := chi.URLParam(r, "productId")

	list, err := h.reviews.FindByProductID(r.Context(), productID)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving reviews for product", "product_id", productID, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}
	web.RespondData(w, mLogger, http.StatusOK, list)
}

// CreateReview handles the creation of a new review and the rating
// aggregation side effect on the referenced product.
func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var reviewCreateDto service.ReviewCreateDto
	if err := json.NewDecoder(r.Body).Decode(&reviewCreateDto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to create review", "product_id", reviewCreateDto.ProductID)
	if !h.validateStruct(w, r, mLogger, reviewCreateDto) {
		return
	}

	newReview, err := h.reviews.Create(r.Context(), reviewCreateDto)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error creating review", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to create review")
		return
	}
	mLogger.InfoContext(r.Context(), "Review created successfully", "ID", newReview.ID, "product_id", newReview.ProductID)
	web.RespondData(w, mLogger, http.StatusCreated, newReview)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// validateStruct runs struct validation and writes a 400 envelope with
// per-field detail on failure. Returns false if the request was rejected.
func (h *Handler) validateStruct(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, v any) bool {
	err := h.validate.Struct(v)
	if err == nil {
		return true
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			// fieldErr.Tag() returns "required", "max", etc.
			fields = append(fields, fieldErr.Field()+" failed on rule: "+fieldErr.Tag())
		}
		mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", fields)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Validation failed: "+strings.Join(fields, "; "))
		return false
	}
	mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
	web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
	return false
}

// parseFilters maps query parameters onto the tri-state filter spec. Absent
// parameters stay nil so the engine skips that dimension entirely.
func parseFilters(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger) (filter.Params, bool) {
	q := r.URL.Query()
	var params filter.Params

	if v := q.Get("search"); v != "" {
		params.Search = &v
	}
	if v := q.Get("category"); v != "" {
		params.Category = &v
	}
	if v := q.Get("sortBy"); v != "" {
		params.SortBy = &v
	}
	if v := q.Get("sortOrder"); v != "" {
		params.SortOrder = &v
	}
	minPrice, ok := parsePriceBound(w, q.Get("minPrice"), "minPrice", mLogger)
	if !ok {
		return params, false
	}
	params.MinPrice = minPrice
	maxPrice, ok := parsePriceBound(w, q.Get("maxPrice"), "maxPrice", mLogger)
	if !ok {
		return params, false
	}
	params.MaxPrice = maxPrice

	return params, true
}

func parsePriceBound(w http.ResponseWriter, value, key string, mLogger *slog.Logger) (*float64, bool) {
	if value == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		web.RespondError(w, mLogger, http.StatusBadRequest, fmt.Sprintf("Invalid %s number: %s", key, value))
		return nil, false
	}
	return &f, true
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
