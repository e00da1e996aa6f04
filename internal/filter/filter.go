// Package filter derives a narrowed, reordered product list from a filter
// specification. All functions are pure; the input slice is never mutated.
package filter

import (
	"sort"
	"strings"

	"github.com/avolkov/storefront/internal/store"
)

// CategoryAll is the sentinel category meaning "do not filter by category".
const CategoryAll = "all"

// Sort fields accepted by Params.SortBy.
const (
	SortByName   = "name"
	SortByPrice  = "price"
	SortByRating = "rating"
)

// SortOrderDesc reverses the comparator; anything else sorts ascending.
const SortOrderDesc = "desc"

// Params is a tri-state filter specification: a nil field disables
// filtering or sorting on that dimension, which is distinct from filtering
// on a zero value.
type Params struct {
	Search    *string
	Category  *string
	MinPrice  *float64
	MaxPrice  *float64
	SortBy    *string
	SortOrder *string
}

// Apply runs the filter stages in a fixed order: search, category, price
// bounds, sort. Each stage operates on the previous stage's output.
func Apply(products []store.Product, params Params) []store.Product {
	out := make([]store.Product, len(products))
	copy(out, products)

	if params.Search != nil {
		out = search(out, *params.Search)
	}
	if params.Category != nil && *params.Category != CategoryAll {
		out = byCategory(out, *params.Category)
	}
	if params.MinPrice != nil {
		out = keep(out, func(p store.Product) bool { return p.Price >= *params.MinPrice })
	}
	if params.MaxPrice != nil {
		out = keep(out, func(p store.Product) bool { return p.Price <= *params.MaxPrice })
	}
	if params.SortBy != nil {
		sortProducts(out, *params.SortBy, params.SortOrder)
	}

	return out
}

// search keeps records whose name, description or category contains the
// query, case-insensitive. A blank query keeps everything.
func search(products []store.Product, query string) []store.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}
	return keep(products, func(p store.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q)
	})
}

func byCategory(products []store.Product, category string) []store.Product {
	return keep(products, func(p store.Product) bool { return p.Category == category })
}

func keep(products []store.Product, predicate func(store.Product) bool) []store.Product {
	out := make([]store.Product, 0, len(products))
	for _, p := range products {
		if predicate(p) {
			out = append(out, p)
		}
	}
	return out
}

// sortProducts orders the slice in place by the named field, ascending by
// default. String fields compare case-insensitively. An unknown field leaves
// the order untouched.
func sortProducts(products []store.Product, sortBy string, sortOrder *string) {
	var less func(a, b store.Product) bool
	switch sortBy {
	case SortByName:
		less = func(a, b store.Product) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case SortByPrice:
		less = func(a, b store.Product) bool { return a.Price < b.Price }
	case SortByRating:
		less = func(a, b store.Product) bool { return a.Rating < b.Rating }
	default:
		return
	}

	desc := sortOrder != nil && *sortOrder == SortOrderDesc
	sort.SliceStable(products, func(i, j int) bool {
		if desc {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}
