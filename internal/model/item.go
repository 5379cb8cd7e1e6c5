package model

import (
	"slices"
	"time"
)

// Item represents one inventory entry. Items are created once all image uploads
// succeed and are never mutated or deleted afterwards.
type Item struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	Description      string    `json:"description"`
	CoverImage       string    `json:"cover_image"`
	AdditionalImages []string  `json:"additional_images"`
	CreatedAt        time.Time `json:"created_at"`
}

// MaxAdditionalImages is the cap on images beyond the cover.
const MaxAdditionalImages = 5

// Categories is the fixed set of item categories.
var Categories = []string{
	"Shirt",
	"Pant",
	"Shoes",
	"Sports Gear",
	"Electronics",
	"Accessories",
	"Books",
	"Home & Garden",
	"Other",
}

// ValidCategory reports whether category is a member of the category set.
func ValidCategory(category string) bool {
	return slices.Contains(Categories, category)
}
