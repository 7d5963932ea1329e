package models

import "time"

type Review struct {
	ID        string      `json:"id"`
	MealID    string      `json:"mealId"`
	UserID    string      `json:"userId"`
	Rating    int         `json:"rating"`
	Comment   string      `json:"comment"`
	IsHidden  bool        `json:"isHidden"`
	User      *ReviewUser `json:"user,omitempty"`
	Meal      *ReviewMeal `json:"meal,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

type ReviewUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ReviewMeal struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

type CreateReviewPayload struct {
	MealID  string `json:"mealId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

// ReviewVisibilityPayload toggles moderation state without deleting the review
type ReviewVisibilityPayload struct {
	IsHidden bool `json:"isHidden"`
}
