package store

import "time"

// Product represents a catalog entry. Rating and ReviewCount are derived
// from reviews and are never taken from caller input.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
	InStock     bool
	Rating      float64
	ReviewCount int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Review represents a customer review. ProductID is not checked against the
// product set; orphaned reviews are allowed to exist.
type Review struct {
	ID        string
	ProductID string
	Author    string
	Rating    int
	Comment   string
	Date      string
}

// NewProduct carries the caller-settable fields for product creation.
type NewProduct struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
	InStock     bool
}

// ProductUpdate is a partial update: nil fields are left untouched.
// Rating and ReviewCount are reserved for the rating recompute path and are
// not reachable from the public update DTO.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Image       *string
	InStock     *bool
	Rating      *float64
	ReviewCount *int
}

// NewReview carries the caller-settable fields for review creation.
type NewReview struct {
	ProductID string
	Author    string
	Rating    int
	Comment   string
	Date      string
}
