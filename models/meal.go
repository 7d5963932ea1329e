package models

import "time"

type Meal struct {
	ID           string      `json:"id"`
	ProviderID   string      `json:"providerId"`
	CategoryID   string      `json:"categoryId"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Price        float64     `json:"price"`
	ImageURL     string      `json:"imageUrl"`
	IsAvailable  bool        `json:"isAvailable"`
	AvgRating    float64     `json:"avgRating"`
	TotalReviews int         `json:"totalReviews"`
	Category     *NameRef    `json:"category,omitempty"`
	Provider     *NameRef    `json:"provider,omitempty"`
	Counts       *MealCounts `json:"_count,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// MealCounts mirrors the backend's joined aggregate counts
type MealCounts struct {
	Reviews int `json:"reviews"`
}

// NameRef is a joined relation carrying only the display name
type NameRef struct {
	Name string `json:"name"`
}

// MealFilter holds the list-read filters. Category carries a human-readable
// category name and must be resolved to CategoryID before the read is issued;
// the backend only understands categoryId.
type MealFilter struct {
	Search      string
	Category    string
	CategoryID  string
	ProviderID  string
	IsAvailable *bool
	Page        int
	Limit       int
	SortBy      string
	SortOrder   string
}

type CreateMealPayload struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	CategoryID  string  `json:"categoryId" binding:"required"`
	ImageURL    string  `json:"imageUrl" binding:"required"`
}

// UpdateMealPayload is a partial PATCH body; nil fields are omitted
type UpdateMealPayload struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
}
