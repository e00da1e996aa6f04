package store

import "time"

// seedProducts returns a fresh copy of the sample catalog. Seed records keep
// fixed numeric IDs; products created at runtime get UUIDs.
func seedProducts() []Product {
	now := time.Now().UTC()
	return []Product{
		{
			ID:          "1",
			Name:        "Sony PlayStation 5 Pro",
			Description: "Next-generation gaming console with 8K support and advanced ray tracing capabilities. Experience gaming like never before with ultra-fast SSD and immersive 3D audio.",
			Price:       399.99,
			Category:    "Gaming",
			Image:       "/playstation.jpg",
			InStock:     true,
			Rating:      4.8,
			ReviewCount: 156,
			CreatedAt:   now,
		},
		{
			ID:          "2",
			Name:        "AirPods Pro (3rd Generation)",
			Description: "Premium wireless earbuds with active noise cancellation, spatial audio, and adaptive transparency mode for the ultimate listening experience.",
			Price:       89.99,
			Category:    "Audio",
			Image:       "/airpod.jpg",
			InStock:     true,
			Rating:      4.6,
			ReviewCount: 89,
			CreatedAt:   now,
		},
		{
			ID:          "3",
			Name:        "iPhone 15 Pro Max 256GB",
			Description: "The most advanced iPhone yet with titanium design, A17 Pro chip, and professional camera system with 5x telephoto zoom.",
			Price:       599.99,
			Category:    "Phones",
			Image:       "/iphone_15.jpg",
			InStock:     true,
			Rating:      4.9,
			ReviewCount: 203,
			CreatedAt:   now,
		},
		{
			ID:          "4",
			Name:        "Polaroid DSLR Camera",
			Description: "Professional full-frame mirrorless camera with 45MP resolution, 8K video recording, and advanced image stabilization.",
			Price:       929.99,
			Category:    "Photography",
			Image:       "/product.jpg",
			InStock:     true,
			Rating:      4.7,
			ReviewCount: 67,
			CreatedAt:   now,
		},
		{
			ID:          "5",
			Name:        "MacBook Pro 14\" M3 Pro",
			Description: "Supercharged for pros with M3 Pro chip, up to 18-hour battery life, and stunning Liquid Retina XDR display.",
			Price:       1299.99,
			Category:    "Laptops",
			Image:       "/macbook.jpg",
			InStock:     false,
			Rating:      4.9,
			ReviewCount: 124,
			CreatedAt:   now,
		},
		{
			ID:          "6",
			Name:        "Amazon Echo Dot (5th Gen)",
			Description: "Smart speaker with Alexa, improved sound quality, and built-in motion detection for smart home automation.",
			Price:       29.99,
			Category:    "Smart Home",
			Image:       "/amazon_echo.jpg",
			InStock:     true,
			Rating:      4.4,
			ReviewCount: 312,
			CreatedAt:   now,
		},
	}
}

// seedReviews returns a fresh copy of the sample review set.
func seedReviews() []Review {
	return []Review{
		{
			ID:        "1",
			ProductID: "2",
			Author:    "John Smith",
			Rating:    5,
			Comment:   "Excellent sound quality and the noise cancellation is amazing!",
			Date:      "2024-01-15",
		},
	}
}
